package arrange

import (
	"fmt"

	"github.com/katalvlaran/springs/record"
)

// Count returns the number of arrangements of rec.
//
// Errors:
//   - ErrOptionViolation — an invalid Option was supplied.
//   - ErrInvalidRecord   — rec holds an unknown symbol or a run length < 1.
//   - ErrTooManyUnknowns — BruteForce selected and rec has more than
//     MaxUnknowns Unknown positions.
//   - ErrCountOverflow   — the count does not fit in a uint64.
//
// A run list that cannot fit in the pattern counts 0 without allocating,
// whatever its run lengths.
//
// Count never mutates rec and is safe to call concurrently; every call owns
// its working copy and memo table.
func Count(rec record.Record, opts ...Option) (uint64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	if err = Validate(rec); err != nil {
		return 0, err
	}
	if !fits(rec) {
		return 0, nil
	}

	switch o.Strategy {
	case BruteForce:
		if k := rec.Pattern.Unknowns(); k > o.MaxUnknowns {
			return 0, fmt.Errorf("%w: %d > %d", ErrTooManyUnknowns, k, o.MaxUnknowns)
		}
		var n uint64
		generate(rec, o.Hooks, func(record.Pattern) { n++ })

		return n, nil
	default:
		a := newAutomaton(rec, o.Hooks)
		n := a.run()
		if a.overflow {
			return 0, fmt.Errorf("%w: %d symbols, %d runs", ErrCountOverflow, len(rec.Pattern), len(rec.Runs))
		}

		return n, nil
	}
}

// fits reports whether the runs, separated by one Inactive symbol each, can
// fit in the pattern at all. Every run is compared against the pattern length
// first, so the sum below stays within len(Pattern)·len(Runs).
func fits(rec record.Record) bool {
	n := len(rec.Pattern)
	need := len(rec.Runs) - 1
	for _, r := range rec.Runs {
		if r > n {
			return false
		}
		need += r
	}

	return need <= n
}

// Validate reports ErrInvalidRecord when rec cannot be counted.
// Records produced by record.Parse and record.Expand always pass.
func Validate(rec record.Record) error {
	for i, s := range rec.Pattern {
		if !s.Valid() {
			return fmt.Errorf("%w: symbol %d at position %d", ErrInvalidRecord, s, i)
		}
	}
	for i, n := range rec.Runs {
		if n < 1 {
			return fmt.Errorf("%w: run %d has length %d", ErrInvalidRecord, i, n)
		}
	}

	return nil
}
