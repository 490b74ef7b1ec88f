// Package arrange counts the ways the Unknown positions of a condition
// record can be resolved so that its Active runs match the run list.
//
// 🚀 What is an arrangement?
//
//	Replacing every Unknown in a Pattern with Active or Inactive yields a
//	candidate row. A candidate is an arrangement of the record when its
//	maximal Active runs, read left to right, have exactly the lengths
//	listed in the RunList: same number of runs, same order, no leftovers.
//
//	  ???.###  1,1,3   →  #.#.###           (1 arrangement)
//	  ?###???????? 3,2,1 → .###.##.#... etc. (10 arrangements)
//
// ✨ Strategies:
//   - BruteForce — generate-and-validate. Branches on the first Unknown,
//     explores both resolutions and checks every complete candidate.
//     Correct by construction, O(2^k · n) for k unknowns; an oracle for
//     small records only (guarded by WithMaxUnknowns).
//   - Automaton  — single left-to-right pass over the state
//     (position, run index, current run length) with a memo table private
//     to the call. O(n · m · r) states for n symbols, m runs and longest
//     run r; each transition is O(1). The production strategy and the only
//     one usable on expanded records.
//
// ⚙️ Usage:
//
//	rec, _ := record.Parse("?###???????? 3,2,1")
//	n, err := arrange.Count(rec)                                   // Automaton
//	n, err = arrange.Count(rec, arrange.WithStrategy(arrange.BruteForce))
//
//	// observe the automaton
//	n, err = arrange.Count(rec, arrange.WithLogger(logger))
//
// Branches that cannot satisfy the run list contribute zero; they are never
// reported as errors. Errors are reserved for invalid records and options.
package arrange
