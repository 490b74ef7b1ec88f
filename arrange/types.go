// Package arrange provides strategies, tunable options, observability hooks
// and error definitions for arrangement counting.
package arrange

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/springs/record"
)

// Sentinel errors for arrangement counting.
var (
	// ErrInvalidRecord is returned for records holding an unknown symbol or a non-positive run.
	ErrInvalidRecord = errors.New("arrange: invalid record")

	// ErrTooManyUnknowns is returned when BruteForce would enumerate more candidates than allowed.
	ErrTooManyUnknowns = errors.New("arrange: too many unknown positions for brute force")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("arrange: invalid option supplied")

	// ErrCountOverflow is returned when the number of arrangements exceeds uint64.
	ErrCountOverflow = errors.New("arrange: arrangement count overflows uint64")
)

// Strategy selects the counting algorithm.
type Strategy int

const (
	// Automaton is the memoized single-pass state machine (default).
	Automaton Strategy = iota

	// BruteForce enumerates every resolution and validates it.
	BruteForce
)

// DefaultMaxUnknowns bounds BruteForce to 2^24 candidates.
const DefaultMaxUnknowns = 24

// String returns the flag/config spelling of s.
func (s Strategy) String() string {
	switch s {
	case Automaton:
		return "automaton"
	case BruteForce:
		return "brute-force"
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps "automaton" / "brute-force" back to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "automaton", "":
		return Automaton, nil
	case "brute-force", "bruteforce":
		return BruteForce, nil
	}

	return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
}

// State is one automaton configuration: Pos symbols consumed, Run runs
// closed, and an open run of Length Active symbols (0 when none is open).
type State struct {
	Pos    int
	Run    int
	Length int
}

// Hooks receive progress notifications. All fields are optional; nil
// callbacks are replaced with no-ops.
type Hooks struct {
	// OnState is called once per automaton state when its count is known.
	OnState func(s State, count uint64)

	// OnMemoHit is called when the automaton reuses a memoized state.
	OnMemoHit func(s State)

	// OnCandidate is called for every complete brute-force candidate.
	OnCandidate func(candidate record.Pattern, accepted bool)
}

// withDefaults fills nil callbacks with no-ops.
func (h Hooks) withDefaults() Hooks {
	if h.OnState == nil {
		h.OnState = func(State, uint64) {}
	}
	if h.OnMemoHit == nil {
		h.OnMemoHit = func(State) {}
	}
	if h.OnCandidate == nil {
		h.OnCandidate = func(record.Pattern, bool) {}
	}

	return h
}

// Option configures counting via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when
// Count or Enumerate runs.
type Option func(*Options)

// Options holds the parameters of one counting call.
type Options struct {
	// Strategy picks the algorithm; Automaton by default.
	Strategy Strategy

	// MaxUnknowns caps BruteForce; records with more Unknown positions
	// fail with ErrTooManyUnknowns.
	MaxUnknowns int

	// Hooks observe the computation.
	Hooks Hooks

	err error
}

// DefaultOptions returns Options with the Automaton strategy,
// DefaultMaxUnknowns and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Strategy:    Automaton,
		MaxUnknowns: DefaultMaxUnknowns,
		Hooks:       Hooks{}.withDefaults(),
	}
}

// WithStrategy selects the counting algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case Automaton, BruteForce:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
		}
	}
}

// WithMaxUnknowns sets the BruteForce guard.
//
//	k > 0: allow at most k Unknown positions
//	k <= 0: invalid option → ErrOptionViolation
func WithMaxUnknowns(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			o.err = fmt.Errorf("%w: MaxUnknowns must be positive (%d)", ErrOptionViolation, k)

			return
		}
		o.MaxUnknowns = k
	}
}

// WithHooks installs observability callbacks; nil fields stay no-ops.
func WithHooks(h Hooks) Option {
	return func(o *Options) {
		o.Hooks = h.withDefaults()
	}
}

// buildOptions applies opts over DefaultOptions.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
