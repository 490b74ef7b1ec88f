package arrange

import (
	"math"
	"math/bits"

	"github.com/katalvlaran/springs/record"
)

// Automaton — memoized single pass
//
// Description:
//
//	The pattern is consumed left to right. The state after consuming Pos
//	symbols is (Pos, Run, Length): Run runs have been closed and an open
//	run currently holds Length Active symbols.
//
// Transitions at symbol s = Pattern[Pos]:
//   - Inactive: an open run must equal Runs[Run]; it closes
//     (Run+1, Length=0). With no open run the state just advances.
//   - Active:   Length+1; dead when Run == len(Runs) or Length+1 > Runs[Run].
//   - Unknown:  sum of both of the above.
//
// End of pattern behaves like an Inactive symbol followed by the check
// Run == len(Runs): one arrangement if every run was closed, zero otherwise.
//
// Memo:
//
//	Dense table of (n+1)·(m+1)·(r+1) entries indexed by the state triple,
//	where r = min(Runs.Max(), n) bounds Length. Private to one call.
//
// Overflow:
//
//	Sums saturate at math.MaxUint64 and set the overflow flag; Count
//	turns the flag into ErrCountOverflow.
//
// Complexity:
//
//	Time   = O(n · m · r)
//	Memory = O(n · m · r)

// automaton is the state of one Automaton count.
type automaton struct {
	pattern record.Pattern
	runs    record.RunList
	hooks   Hooks

	// strides of the memo table
	runStride int
	posStride int

	memo  []uint64
	known []bool

	overflow bool
}

// newAutomaton allocates the memo table for rec.
func newAutomaton(rec record.Record, hooks Hooks) *automaton {
	n, m, r := len(rec.Pattern), len(rec.Runs), min(rec.Runs.Max(), len(rec.Pattern))
	runStride := r + 1
	posStride := (m + 1) * runStride
	size := (n + 1) * posStride

	return &automaton{
		pattern:   rec.Pattern,
		runs:      rec.Runs,
		hooks:     hooks,
		runStride: runStride,
		posStride: posStride,
		memo:      make([]uint64, size),
		known:     make([]bool, size),
	}
}

// run counts arrangements from the initial state.
func (a *automaton) run() uint64 {
	return a.count(0, 0, 0)
}

// count returns the number of completions of state (pos, run, length).
func (a *automaton) count(pos, run, length int) uint64 {
	if pos == len(a.pattern) {
		return a.finish(run, length)
	}

	key := pos*a.posStride + run*a.runStride + length
	if a.known[key] {
		a.hooks.OnMemoHit(State{Pos: pos, Run: run, Length: length})

		return a.memo[key]
	}

	var total uint64
	switch a.pattern[pos] {
	case record.Inactive:
		total = a.inactive(pos, run, length)
	case record.Active:
		total = a.active(pos, run, length)
	case record.Unknown:
		total = a.add(a.active(pos, run, length), a.inactive(pos, run, length))
	}

	a.memo[key] = total
	a.known[key] = true
	a.hooks.OnState(State{Pos: pos, Run: run, Length: length}, total)

	return total
}

// add returns x+y, saturating and flagging the computation on carry.
func (a *automaton) add(x, y uint64) uint64 {
	sum, carry := bits.Add64(x, y, 0)
	if carry != 0 {
		a.overflow = true

		return math.MaxUint64
	}

	return sum
}

// inactive consumes pattern[pos] as an Inactive symbol.
func (a *automaton) inactive(pos, run, length int) uint64 {
	if length == 0 {
		return a.count(pos+1, run, 0)
	}
	if length != a.runs[run] {
		return 0
	}

	return a.count(pos+1, run+1, 0)
}

// active consumes pattern[pos] as an Active symbol.
func (a *automaton) active(pos, run, length int) uint64 {
	if run == len(a.runs) || length+1 > a.runs[run] {
		return 0
	}

	return a.count(pos+1, run, length+1)
}

// finish applies the end-of-pattern rule: close an open run exactly as an
// Inactive symbol would, then require the run list to be exhausted.
func (a *automaton) finish(run, length int) uint64 {
	if length > 0 {
		if length != a.runs[run] {
			return 0
		}
		run++
	}
	if run != len(a.runs) {
		return 0
	}

	return 1
}
