// Package springs counts the arrangements of damaged-spring condition
// records: rows of springs whose state is Active ('#'), Inactive ('.') or
// Unknown ('?'), each paired with the lengths of its contiguous Active runs.
//
// 🚀 What is springs?
//
//	A small, dependency-light toolkit that brings together:
//		• Records: parse, format and unfold "<pattern> <runs>" lines
//		• Counting: brute-force oracle and a memoized left-to-right automaton
//		• Aggregation: bounded worker pool summing counts over a whole file
//		• CLI: count / solve / expand with YAML config, env and flags
//
// ✨ Why two strategies?
//
//   - BruteForce is obviously correct and cheap to read – it is the oracle
//   - Automaton is O(n · m · r) and the only one usable on unfolded records
//   - Both agree on every record small enough for the oracle to finish
//
// Everything is organized under three library packages:
//
//	record/    — Symbol, Alphabet, Pattern, RunList, Record; Parse and Expand
//	arrange/   — Count, Enumerate, Matches; strategies, options & hooks
//	aggregate/ — Solve over an io.Reader; policies, logging & Prometheus metrics
//
// plus the command in cmd/springs and a worked program in examples/.
//
// Quick example:
//
//	???.### 1,1,3        →  1 arrangement
//	?###???????? 3,2,1   → 10 arrangements
//
//	unfolded ×5:
//	?###???????? 3,2,1   → 506250 arrangements
//
//	go get github.com/katalvlaran/springs
package springs
