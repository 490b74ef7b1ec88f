package record

import "fmt"

// Expand unfolds rec multiplicity times: the pattern is joined to itself with
// a single Unknown between consecutive copies (none after the last), and the
// run list is repeated multiplicity times.
//
// Expand(rec, 1) returns an equal, independent copy of rec.
//
// multiplicity < 1 is a programming error and panics; callers accepting the
// value from users validate it first.
//
// Complexity: O(multiplicity · (len(Pattern) + len(Runs))).
func Expand(rec Record, multiplicity int) Record {
	if multiplicity < 1 {
		panic(fmt.Sprintf("record: Expand multiplicity must be >= 1, got %d", multiplicity))
	}

	n := len(rec.Pattern)
	pattern := make(Pattern, 0, n*multiplicity+multiplicity-1)
	runs := make(RunList, 0, len(rec.Runs)*multiplicity)
	for i := 0; i < multiplicity; i++ {
		if i > 0 {
			pattern = append(pattern, Unknown)
		}
		pattern = append(pattern, rec.Pattern...)
		runs = append(runs, rec.Runs...)
	}

	return Record{Pattern: pattern, Runs: runs}
}
