// Package aggregate sums arrangement counts over a sequence of condition
// records.
//
// Records are independent, so Solve counts them on a bounded pool of
// goroutines (errgroup with SetLimit), each owning its own memo table, and
// folds the total incrementally as results arrive. Malformed lines are
// reported per line as *record.ParseError; whether they abort the run or
// are skipped is the caller's Policy.
//
//	res, err := aggregate.Solve(ctx, file,
//	  aggregate.WithMultiplicity(5),
//	  aggregate.WithWorkers(8),
//	  aggregate.WithPolicy(aggregate.SkipInvalid))
//	fmt.Println(res.Total, len(res.Errors))
package aggregate
