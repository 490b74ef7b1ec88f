// Package record models condition records: a partially known row of
// springs plus the lengths of the damaged runs it must contain.
//
// 🚀 What is a condition record?
//
//	A single input line such as
//
//	  ???.### 1,1,3
//
//	holds a Pattern ("???.###") over three symbols (Active '#',
//	Inactive '.', Unknown '?') and a RunList (1,1,3) naming the
//	lengths of the maximal Active runs, left to right.
//
// ✨ Key features:
//   - Parse / ParseWith: all-or-nothing line parsing with a typed *ParseError
//   - configurable Alphabet (default '#', '.', '?')
//   - Expand: self-replication with Unknown joins ("unfolding")
//   - String renders a Record back to its line form
//
// ⚙️ Usage:
//
//	rec, err := record.Parse("???.### 1,1,3")
//	if err != nil {
//	  // errors.Is(err, record.ErrBadSymbol) etc.
//	}
//	big := record.Expand(rec, 5)
//
// Records are plain values; Parse and Expand never share backing arrays
// with their inputs.
package record
