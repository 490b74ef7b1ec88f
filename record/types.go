// Package record defines symbols, patterns, run lists and sentinel errors
// for the record subpackage of github.com/katalvlaran/springs.
package record

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors for record parsing.
var (
	// ErrMissingRuns indicates the line has fewer than two whitespace-separated segments.
	ErrMissingRuns = errors.New("record: line must contain a pattern and a run list")
	// ErrExtraSegments indicates trailing data after the run list.
	ErrExtraSegments = errors.New("record: unexpected data after run list")
	// ErrBadSymbol indicates a pattern character outside the alphabet.
	ErrBadSymbol = errors.New("record: pattern symbol outside alphabet")
	// ErrBadRunLength indicates a run-list token that is not a positive base-10 integer.
	ErrBadRunLength = errors.New("record: run length must be a positive integer")
)

// Symbol is one position of a Pattern.
type Symbol uint8

const (
	// Inactive is an operational spring; it terminates any open run.
	Inactive Symbol = iota
	// Active is a damaged spring; consecutive Active symbols form one run.
	Active
	// Unknown is a wildcard that resolves to Active or Inactive.
	Unknown
)

// Valid reports whether s is one of the three known symbols.
func (s Symbol) Valid() bool {
	return s <= Unknown
}

// String renders s with DefaultAlphabet.
func (s Symbol) String() string {
	return string(DefaultAlphabet.Rune(s))
}

// Alphabet maps each Symbol to the literal rune used in input lines.
type Alphabet struct {
	Active   rune
	Inactive rune
	Unknown  rune
}

// DefaultAlphabet is the conventional '#', '.', '?' mapping.
var DefaultAlphabet = Alphabet{Active: '#', Inactive: '.', Unknown: '?'}

// Valid reports whether the three runes are pairwise distinct and none of
// them is whitespace or part of the run-list syntax.
func (a Alphabet) Valid() bool {
	rs := [3]rune{a.Active, a.Inactive, a.Unknown}
	for i, r := range rs {
		if r == 0 || r == ',' || (r >= '0' && r <= '9') || strings.ContainsRune(" \t\r\n\v\f", r) {
			return false
		}
		for _, o := range rs[i+1:] {
			if r == o {
				return false
			}
		}
	}

	return true
}

// Symbol decodes r; ok is false when r is not part of the alphabet.
func (a Alphabet) Symbol(r rune) (Symbol, bool) {
	switch r {
	case a.Active:
		return Active, true
	case a.Inactive:
		return Inactive, true
	case a.Unknown:
		return Unknown, true
	}

	return 0, false
}

// Rune encodes s. Invalid symbols render as the replacement character.
func (a Alphabet) Rune(s Symbol) rune {
	switch s {
	case Active:
		return a.Active
	case Inactive:
		return a.Inactive
	case Unknown:
		return a.Unknown
	}

	return '\uFFFD'
}

// Pattern is an ordered row of symbols.
type Pattern []Symbol

// Unknowns returns the number of Unknown positions in p.
func (p Pattern) Unknowns() int {
	n := 0
	for _, s := range p {
		if s == Unknown {
			n++
		}
	}

	return n
}

// Clone returns an independent copy of p.
func (p Pattern) Clone() Pattern {
	if p == nil {
		return nil
	}
	out := make(Pattern, len(p))
	copy(out, p)

	return out
}

// Format renders p with the given alphabet.
func (p Pattern) Format(a Alphabet) string {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, s := range p {
		sb.WriteRune(a.Rune(s))
	}

	return sb.String()
}

// String renders p with DefaultAlphabet.
func (p Pattern) String() string {
	return p.Format(DefaultAlphabet)
}

// RunList holds the required lengths of the Active runs, left to right.
type RunList []int

// Sum returns the total number of Active symbols a valid resolution holds.
func (r RunList) Sum() int {
	total := 0
	for _, n := range r {
		total += n
	}

	return total
}

// Max returns the longest required run, or 0 for an empty list.
func (r RunList) Max() int {
	m := 0
	for _, n := range r {
		if n > m {
			m = n
		}
	}

	return m
}

// Clone returns an independent copy of r.
func (r RunList) Clone() RunList {
	if r == nil {
		return nil
	}
	out := make(RunList, len(r))
	copy(out, r)

	return out
}

// String renders r in its comma-separated input form.
func (r RunList) String() string {
	parts := make([]string, len(r))
	for i, n := range r {
		parts[i] = strconv.Itoa(n)
	}

	return strings.Join(parts, ",")
}

// Record is one condition record: the unit of work for the counter.
type Record struct {
	Pattern Pattern
	Runs    RunList
}

// Clone returns a deep copy of rec.
func (rec Record) Clone() Record {
	return Record{Pattern: rec.Pattern.Clone(), Runs: rec.Runs.Clone()}
}

// Equal reports whether rec and other hold the same pattern and run list.
func (rec Record) Equal(other Record) bool {
	if len(rec.Pattern) != len(other.Pattern) || len(rec.Runs) != len(other.Runs) {
		return false
	}
	for i := range rec.Pattern {
		if rec.Pattern[i] != other.Pattern[i] {
			return false
		}
	}
	for i := range rec.Runs {
		if rec.Runs[i] != other.Runs[i] {
			return false
		}
	}

	return true
}

// Format renders rec as an input line using the given alphabet.
func (rec Record) Format(a Alphabet) string {
	return rec.Pattern.Format(a) + " " + rec.Runs.String()
}

// String renders rec as an input line using DefaultAlphabet.
func (rec Record) String() string {
	return rec.Format(DefaultAlphabet)
}
