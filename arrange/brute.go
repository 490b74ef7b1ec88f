package arrange

import (
	"fmt"

	"github.com/katalvlaran/springs/record"
)

// Generate-and-validate
//
// Description:
//
//	Every Unknown position is resolved by systematic binary substitution:
//	find the first Unknown, set it to Active and recurse, then set it to
//	Inactive and recurse. Each complete candidate is validated by a single
//	left-to-right scan of its Active runs.
//
// Pruning:
//
//	A candidate can only match when its number of Active symbols equals
//	RunList.Sum(); that check is O(1) given the running tally kept while
//	branching and rejects most candidates before the scan.
//
// Complexity:
//
//	Time   = O(2^k · n) for k unknowns
//	Memory = O(n) working copy plus O(k) recursion depth

// Enumerate returns every arrangement of rec as a fully resolved pattern,
// in branch order (Active tried before Inactive at each Unknown).
//
// Enumerate always uses generate-and-validate and honours MaxUnknowns.
func Enumerate(rec record.Record, opts ...Option) ([]record.Pattern, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = Validate(rec); err != nil {
		return nil, err
	}
	if k := rec.Pattern.Unknowns(); k > o.MaxUnknowns {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyUnknowns, k, o.MaxUnknowns)
	}
	if !fits(rec) {
		return nil, nil
	}

	var out []record.Pattern
	generate(rec, o.Hooks, func(p record.Pattern) { out = append(out, p.Clone()) })

	return out, nil
}

// Matches reports whether the fully resolved pattern p has exactly the
// Active runs listed in runs. Any Unknown symbol makes p a non-match.
func Matches(p record.Pattern, runs record.RunList) bool {
	run, open := 0, 0
	for _, s := range p {
		switch s {
		case record.Active:
			open++
		case record.Inactive:
			if open > 0 {
				if run >= len(runs) || runs[run] != open {
					return false
				}
				run++
				open = 0
			}
		default:
			return false
		}
	}
	if open > 0 {
		if run >= len(runs) || runs[run] != open {
			return false
		}
		run++
	}

	return run == len(runs)
}

// brute holds the working state of one enumeration.
type brute struct {
	work   record.Pattern
	runs   record.RunList
	want   int // required Active symbols
	hooks  Hooks
	accept func(record.Pattern)
}

// generate walks every resolution of rec and calls accept for each match.
// The pattern passed to accept is the shared working copy; callers that
// keep it must clone it.
func generate(rec record.Record, hooks Hooks, accept func(record.Pattern)) {
	b := &brute{
		work:   rec.Pattern.Clone(),
		runs:   rec.Runs,
		want:   rec.Runs.Sum(),
		hooks:  hooks,
		accept: accept,
	}
	active := 0
	for _, s := range b.work {
		if s == record.Active {
			active++
		}
	}
	b.branch(0, active)
}

// branch resolves the first Unknown at or after from. active is the number
// of Active symbols currently in the working copy.
func (b *brute) branch(from, active int) {
	i := from
	for i < len(b.work) && b.work[i] != record.Unknown {
		i++
	}
	if i == len(b.work) {
		ok := active == b.want && Matches(b.work, b.runs)
		b.hooks.OnCandidate(b.work, ok)
		if ok {
			b.accept(b.work)
		}

		return
	}

	b.work[i] = record.Active
	b.branch(i+1, active+1)
	b.work[i] = record.Inactive
	b.branch(i+1, active)
	b.work[i] = record.Unknown
}
