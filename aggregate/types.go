// Package aggregate defines options, error policies, results and sentinel
// errors for summing arrangement counts over many records.
package aggregate

import (
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/springs/arrange"
	"github.com/katalvlaran/springs/record"
)

// Sentinel errors for aggregation.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("aggregate: invalid option supplied")

	// ErrNilReader is returned when Solve receives a nil line source.
	ErrNilReader = errors.New("aggregate: line source is nil")
)

// Policy decides what a malformed line does to the run.
type Policy int

const (
	// SkipInvalid collects every *record.ParseError in Result.Errors and
	// counts the remaining records.
	SkipInvalid Policy = iota

	// AbortOnInvalid stops at the first malformed line and returns its
	// *record.ParseError.
	AbortOnInvalid
)

// String returns the flag/config spelling of p.
func (p Policy) String() string {
	switch p {
	case SkipInvalid:
		return "skip"
	case AbortOnInvalid:
		return "abort"
	}

	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy maps "skip" / "abort" back to a Policy.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "skip", "":
		return SkipInvalid, nil
	case "abort":
		return AbortOnInvalid, nil
	}

	return 0, fmt.Errorf("%w: unknown error policy %q", ErrOptionViolation, name)
}

// Option configures Solve via functional arguments.
type Option func(*Options)

// Options holds the parameters of one aggregation run.
type Options struct {
	// Workers bounds the number of records counted concurrently.
	Workers int

	// Multiplicity unfolds every record before counting; 1 disables it.
	Multiplicity int

	// Strategy is forwarded to arrange.Count.
	Strategy arrange.Strategy

	// Policy handles malformed lines.
	Policy Policy

	// Alphabet decodes pattern symbols.
	Alphabet record.Alphabet

	// Logger receives run-level events; zap.NewNop() by default.
	Logger *zap.Logger

	// Metrics, when non-nil, is updated as records are counted.
	Metrics *Metrics

	err error
}

// DefaultOptions returns Options with one worker per GOMAXPROCS,
// Multiplicity 1, the Automaton strategy, SkipInvalid and DefaultAlphabet.
func DefaultOptions() Options {
	return Options{
		Workers:      runtime.GOMAXPROCS(0),
		Multiplicity: 1,
		Strategy:     arrange.Automaton,
		Policy:       SkipInvalid,
		Alphabet:     record.DefaultAlphabet,
		Logger:       zap.NewNop(),
	}
}

// WithWorkers bounds concurrency; n < 1 → ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1 (%d)", ErrOptionViolation, n)

			return
		}
		o.Workers = n
	}
}

// WithMultiplicity unfolds every record n times; n < 1 → ErrOptionViolation.
func WithMultiplicity(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: multiplicity must be >= 1 (%d)", ErrOptionViolation, n)

			return
		}
		o.Multiplicity = n
	}
}

// WithStrategy selects the counting algorithm.
func WithStrategy(s arrange.Strategy) Option {
	return func(o *Options) {
		switch s {
		case arrange.Automaton, arrange.BruteForce:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
		}
	}
}

// WithPolicy selects how malformed lines are handled.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		switch p {
		case SkipInvalid, AbortOnInvalid:
			o.Policy = p
		default:
			o.err = fmt.Errorf("%w: unknown policy %d", ErrOptionViolation, int(p))
		}
	}
}

// WithAlphabet sets the pattern alphabet; an invalid one → ErrOptionViolation.
func WithAlphabet(a record.Alphabet) Option {
	return func(o *Options) {
		if !a.Valid() {
			o.err = fmt.Errorf("%w: alphabet %q%q%q", ErrOptionViolation, a.Active, a.Inactive, a.Unknown)

			return
		}
		o.Alphabet = a
	}
}

// WithLogger sets the run logger; nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics attaches Prometheus collectors.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// RecordCount is the outcome for one record.
type RecordCount struct {
	// Line is the 1-based input line, or the 1-based index for SolveRecords.
	Line int
	// Record is the record as counted, i.e. after expansion.
	Record record.Record
	// Count is the number of arrangements.
	Count uint64
}

// Result is the outcome of one aggregation run.
type Result struct {
	// Records lists every counted record in input order.
	Records []RecordCount
	// Total is the sum of all counts.
	Total uint64
	// Errors holds the malformed lines skipped under SkipInvalid.
	Errors []*record.ParseError
}

// Counts returns the per-record counts in input order.
func (r *Result) Counts() []uint64 {
	out := make([]uint64, len(r.Records))
	for i, rc := range r.Records {
		out[i] = rc.Count
	}

	return out
}

// buildOptions applies opts over DefaultOptions.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}
