package aggregate

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/springs/arrange"
	"github.com/katalvlaran/springs/record"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// job is one parsed record waiting for a worker.
type job struct {
	line int
	rec  record.Record
}

// Solve reads condition records from r, one per line, and sums their
// arrangement counts.
//
// Blank lines are ignored. Malformed lines follow Options.Policy: under
// SkipInvalid they are collected in Result.Errors, under AbortOnInvalid the
// first one is returned as a *record.ParseError (with LineNo set) and
// nothing is counted.
//
// Records are counted concurrently by at most Options.Workers goroutines;
// each owns its memo table. Cancelling ctx stops dispatching new records
// and Solve returns ctx.Err(); a record already being counted runs to
// completion.
//
// Errors:
//   - ErrOptionViolation, ErrNilReader
//   - *record.ParseError under AbortOnInvalid
//   - arrange errors (e.g. arrange.ErrTooManyUnknowns with BruteForce)
//   - I/O errors from r
func Solve(ctx context.Context, r io.Reader, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrNilReader
	}

	jobs, parseErrs, err := readJobs(r, o)
	if err != nil {
		return nil, err
	}
	res, err := run(ctx, jobs, o)
	if err != nil {
		return nil, err
	}
	res.Errors = parseErrs

	o.Logger.Info("records counted",
		zap.Int("records", len(res.Records)),
		zap.Int("skipped", len(parseErrs)),
		zap.Int("multiplicity", o.Multiplicity),
		zap.Stringer("strategy", o.Strategy),
		zap.Uint64("total", res.Total))

	return res, nil
}

// SolveRecords sums the arrangement counts of already parsed records.
// RecordCount.Line is the 1-based index into recs.
func SolveRecords(ctx context.Context, recs []record.Record, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	jobs := make([]job, len(recs))
	for i, rec := range recs {
		jobs[i] = job{line: i + 1, rec: rec}
	}

	return run(ctx, jobs, o)
}

// readJobs parses every non-blank line of r.
func readJobs(r io.Reader, o Options) ([]job, []*record.ParseError, error) {
	var (
		jobs   []job
		errs   []*record.ParseError
		lineNo int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := record.ParseWith(line, o.Alphabet)
		if err != nil {
			pe, ok := record.AsParseError(err)
			if !ok {
				return nil, nil, err
			}
			pe.LineNo = lineNo
			o.Metrics.parseError()
			if o.Policy == AbortOnInvalid {
				return nil, nil, pe
			}
			o.Logger.Warn("skipping malformed line",
				zap.Int("line", lineNo),
				zap.String("content", line),
				zap.Error(pe.Err))
			errs = append(errs, pe)

			continue
		}
		jobs = append(jobs, job{line: lineNo, rec: rec})
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("aggregate: reading lines: %w", err)
	}

	return jobs, errs, nil
}

// run counts jobs on a bounded errgroup and folds the total as results land.
func run(ctx context.Context, jobs []job, o Options) (*Result, error) {
	res := &Result{Records: make([]RecordCount, len(jobs))}
	var total atomic.Uint64

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for i, j := range jobs {
		i, j := i, j
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			// Go blocks while every worker is busy; the run may have been
			// cancelled in the meantime.
			if egCtx.Err() != nil {
				return nil
			}
			rec := j.rec
			if o.Multiplicity > 1 {
				rec = record.Expand(rec, o.Multiplicity)
			}
			n, err := countOne(rec, o)
			if err != nil {
				return fmt.Errorf("aggregate: line %d: %w", j.line, err)
			}
			res.Records[i] = RecordCount{Line: j.line, Record: rec, Count: n}
			total.Add(n)
			o.Logger.Debug("record counted",
				zap.Int("line", j.line),
				zap.Int("length", len(rec.Pattern)),
				zap.Int("runs", len(rec.Runs)),
				zap.Uint64("count", n))

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res.Total = total.Load()

	return res, nil
}

// countOne runs arrange.Count and feeds the metrics, if any.
func countOne(rec record.Record, o Options) (uint64, error) {
	var states, hits uint64
	opts := []arrange.Option{arrange.WithStrategy(o.Strategy)}
	if o.Metrics != nil {
		opts = append(opts, arrange.WithHooks(arrange.Hooks{
			OnState:   func(arrange.State, uint64) { states++ },
			OnMemoHit: func(arrange.State) { hits++ },
		}))
	}

	start := time.Now()
	n, err := arrange.Count(rec, opts...)
	if err != nil {
		return 0, err
	}
	o.Metrics.observe(o.Strategy, n, states, hits, time.Since(start))

	return n, nil
}
