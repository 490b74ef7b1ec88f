package report

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/springs/aggregate"
	"github.com/katalvlaran/springs/record"
)

// sampleSummary solves a three-line input with one malformed line.
func sampleSummary(t *testing.T, perRecord bool) Summary {
	t.Helper()
	input := "???.### 1,1,3\n??x 1\n?###???????? 3,2,1\n"
	res, err := aggregate.Solve(context.Background(), strings.NewReader(input), aggregate.WithWorkers(1))
	require.NoError(t, err)

	return Summary{
		Parts:   []Part{NewPart("part1", 1, res, perRecord, record.DefaultAlphabet)},
		Invalid: Invalid(res.Errors),
	}
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "text", sampleSummary(t, true)))
	out := buf.String()

	assert.Contains(t, out, "???.### 1,1,3")
	assert.Contains(t, out, "?###???????? 3,2,1")
	assert.Contains(t, out, "part1:")
	assert.Contains(t, out, "11")
	assert.Contains(t, out, "skipped line 2:")
}

func TestWrite_TextTotalsOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "", sampleSummary(t, false)))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "part1:", strings.Fields(lines[0])[0])
	assert.Equal(t, "11", strings.Fields(lines[0])[1])
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "json", sampleSummary(t, true)))

	var got Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Parts, 1)
	assert.Equal(t, uint64(11), got.Parts[0].Total)
	require.Len(t, got.Parts[0].Records, 2)
	assert.Equal(t, 3, got.Parts[0].Records[1].Line)
	require.Len(t, got.Invalid, 1)
	assert.Equal(t, "??x 1", got.Invalid[0].Content)
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "yaml", sampleSummary(t, false)))

	var got Summary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Parts, 1)
	assert.Equal(t, "part1", got.Parts[0].Name)
	assert.Equal(t, uint64(11), got.Parts[0].Total)
	assert.Empty(t, got.Parts[0].Records)
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, "xml", Summary{})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
