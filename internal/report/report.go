// Package report renders aggregation results for the springs command.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/springs/aggregate"
	"github.com/katalvlaran/springs/record"
)

// ErrUnknownFormat is returned for formats other than text, json and yaml.
var ErrUnknownFormat = errors.New("report: unknown output format")

// Summary is the serialisable view of one or more aggregation runs.
type Summary struct {
	Parts   []Part         `json:"parts" yaml:"parts"`
	Invalid []InvalidEntry `json:"invalid,omitempty" yaml:"invalid,omitempty"`
}

// Part is the outcome of one run at a given multiplicity.
type Part struct {
	Name         string        `json:"name" yaml:"name"`
	Multiplicity int           `json:"multiplicity" yaml:"multiplicity"`
	Total        uint64        `json:"total" yaml:"total"`
	Records      []RecordEntry `json:"records,omitempty" yaml:"records,omitempty"`
}

// RecordEntry is one counted record.
type RecordEntry struct {
	Line   int    `json:"line" yaml:"line"`
	Record string `json:"record" yaml:"record"`
	Count  uint64 `json:"count" yaml:"count"`
}

// InvalidEntry is one skipped line.
type InvalidEntry struct {
	Line    int    `json:"line" yaml:"line"`
	Content string `json:"content" yaml:"content"`
	Reason  string `json:"reason" yaml:"reason"`
}

// NewPart converts a Result; perRecord keeps the individual counts.
// Records are rendered with alpha so they read like the input.
func NewPart(name string, multiplicity int, res *aggregate.Result, perRecord bool, alpha record.Alphabet) Part {
	p := Part{Name: name, Multiplicity: multiplicity, Total: res.Total}
	if perRecord {
		p.Records = make([]RecordEntry, len(res.Records))
		for i, rc := range res.Records {
			p.Records[i] = RecordEntry{Line: rc.Line, Record: rc.Record.Format(alpha), Count: rc.Count}
		}
	}

	return p
}

// Invalid converts skipped parse errors.
func Invalid(errs []*record.ParseError) []InvalidEntry {
	if len(errs) == 0 {
		return nil
	}
	out := make([]InvalidEntry, len(errs))
	for i, pe := range errs {
		out[i] = InvalidEntry{Line: pe.LineNo, Content: pe.Line, Reason: pe.Err.Error()}
	}

	return out
}

// Write renders s to w in the requested format.
func Write(w io.Writer, format string, s Summary) error {
	switch format {
	case "text", "":
		return writeText(w, s)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(s)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}

		return enc.Close()
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// writeText prints per-record lines (if any), then one total per part,
// then the skipped lines.
func writeText(w io.Writer, s Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, p := range s.Parts {
		for _, r := range p.Records {
			fmt.Fprintf(tw, "%d\t%s\t%d\n", r.Line, r.Record, r.Count)
		}
	}
	for _, p := range s.Parts {
		fmt.Fprintf(tw, "%s:\t%d\n", p.Name, p.Total)
	}
	for _, inv := range s.Invalid {
		fmt.Fprintf(tw, "skipped line %d:\t%s\t(%s)\n", inv.Line, inv.Content, inv.Reason)
	}

	return tw.Flush()
}
