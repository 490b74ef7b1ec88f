package record_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/springs/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExpand_Identity verifies that multiplicity 1 returns an equal but
// independent record.
func TestExpand_Identity(t *testing.T) {
	rec, err := record.Parse(".??..??...?##. 1,1,3")
	require.NoError(t, err)

	got := record.Expand(rec, 1)
	assert.True(t, got.Equal(rec), "Expand(r, 1) must equal r")

	got.Pattern[0] = record.Active
	got.Runs[0] = 9
	assert.Equal(t, record.Inactive, rec.Pattern[0], "expansion must not alias the input pattern")
	assert.Equal(t, 1, rec.Runs[0], "expansion must not alias the input runs")
}

// TestExpand_Five checks the documented fivefold unfolding.
func TestExpand_Five(t *testing.T) {
	rec, err := record.Parse("???.### 1,1,3")
	require.NoError(t, err)

	got := record.Expand(rec, 5)
	want, err := record.Parse("???.###????.###????.###????.###????.### 1,1,3,1,1,3,1,1,3,1,1,3,1,1,3")
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Expand mismatch (-want +got):\n%s", diff)
	}
}

// TestExpand_Shape checks lengths for a range of multiplicities.
func TestExpand_Shape(t *testing.T) {
	rec, err := record.Parse("#.? 1")
	require.NoError(t, err)
	for m := 1; m <= 6; m++ {
		got := record.Expand(rec, m)
		assert.Len(t, got.Pattern, 3*m+m-1, "pattern length at multiplicity %d", m)
		assert.Len(t, got.Runs, m, "run count at multiplicity %d", m)
		assert.Equal(t, m-1+m, got.Pattern.Unknowns(), "one original unknown per copy plus m-1 joins")
	}
}

// TestExpand_PanicsOnContractViolation documents the caller contract.
func TestExpand_PanicsOnContractViolation(t *testing.T) {
	rec := record.Record{Pattern: record.Pattern{record.Active}, Runs: record.RunList{1}}
	assert.Panics(t, func() { record.Expand(rec, 0) })
	assert.Panics(t, func() { record.Expand(rec, -3) })
}

// TestRunList_Helpers covers Sum, Max and String.
func TestRunList_Helpers(t *testing.T) {
	r := record.RunList{1, 6, 5}
	assert.Equal(t, 12, r.Sum())
	assert.Equal(t, 6, r.Max())
	assert.Equal(t, "1,6,5", r.String())
	assert.Equal(t, 0, record.RunList(nil).Max())
	assert.Equal(t, "", record.RunList(nil).String())
}
