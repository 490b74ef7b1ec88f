package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParseError reports a malformed input line. It wraps one of the record
// sentinel errors, so callers can test the cause with errors.Is.
type ParseError struct {
	// Line is the offending input, verbatim.
	Line string
	// LineNo is the 1-based position of Line in its source, or 0 if unknown.
	LineNo int
	// Err is the underlying cause.
	Err error
}

// Error implements error.
func (e *ParseError) Error() string {
	if e.LineNo > 0 {
		return fmt.Sprintf("line %d %q: %v", e.LineNo, e.Line, e.Err)
	}

	return fmt.Sprintf("line %q: %v", e.Line, e.Err)
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// AsParseError extracts a *ParseError from err's chain.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}

	return nil, false
}

// Parse decodes one "<pattern> <run1>,<run2>,..." line using DefaultAlphabet.
func Parse(line string) (Record, error) {
	return ParseWith(line, DefaultAlphabet)
}

// ParseWith decodes one line using the given alphabet.
//
// The line must hold exactly two whitespace-separated segments: a pattern
// drawn from the alphabet and a comma-separated list of positive base-10
// integers. Parsing is all-or-nothing: on failure the zero Record and a
// *ParseError are returned.
//
// Complexity: O(len(line)).
func ParseWith(line string, a Alphabet) (Record, error) {
	fields := strings.Fields(line)
	switch {
	case len(fields) < 2:
		return Record{}, &ParseError{Line: line, Err: ErrMissingRuns}
	case len(fields) > 2:
		return Record{}, &ParseError{Line: line, Err: fmt.Errorf("%w: %q", ErrExtraSegments, fields[2])}
	}

	pattern, err := parsePattern(fields[0], a)
	if err != nil {
		return Record{}, &ParseError{Line: line, Err: err}
	}
	runs, err := parseRuns(fields[1])
	if err != nil {
		return Record{}, &ParseError{Line: line, Err: err}
	}

	return Record{Pattern: pattern, Runs: runs}, nil
}

// parsePattern maps every rune of s through the alphabet.
func parsePattern(s string, a Alphabet) (Pattern, error) {
	p := make(Pattern, 0, utf8.RuneCountInString(s))
	for i, r := range s {
		sym, ok := a.Symbol(r)
		if !ok {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrBadSymbol, r, i)
		}
		p = append(p, sym)
	}

	return p, nil
}

// parseRuns splits s on commas; every token must be a positive integer.
func parseRuns(s string) (RunList, error) {
	tokens := strings.Split(s, ",")
	runs := make(RunList, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil || n <= 0 || tok[0] == '+' || tok[0] == '-' {
			return nil, fmt.Errorf("%w: %q", ErrBadRunLength, tok)
		}
		runs = append(runs, n)
	}

	return runs, nil
}
