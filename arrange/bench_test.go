package arrange_test

import (
	"testing"

	"github.com/katalvlaran/springs/arrange"
	"github.com/katalvlaran/springs/record"
)

// benchmarkCount runs Count on line unfolded multiplicity times.
func benchmarkCount(b *testing.B, line string, multiplicity int, opts ...arrange.Option) {
	rec, err := record.Parse(line)
	if err != nil {
		b.Fatalf("parse %q: %v", line, err)
	}
	rec = record.Expand(rec, multiplicity)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := arrange.Count(rec, opts...); err != nil {
			b.Fatalf("Count failed: %v", err)
		}
	}
}

// BenchmarkCount_BruteForceSmall measures the oracle on 9 unknowns.
func BenchmarkCount_BruteForceSmall(b *testing.B) {
	benchmarkCount(b, "?###???????? 3,2,1", 1, arrange.WithStrategy(arrange.BruteForce))
}

// BenchmarkCount_AutomatonSmall measures the automaton on the same record.
func BenchmarkCount_AutomatonSmall(b *testing.B) {
	benchmarkCount(b, "?###???????? 3,2,1", 1)
}

// BenchmarkCount_AutomatonExpanded measures the fivefold record.
func BenchmarkCount_AutomatonExpanded(b *testing.B) {
	benchmarkCount(b, "?###???????? 3,2,1", 5)
}

// BenchmarkCount_AutomatonWide measures a long all-unknown row.
func BenchmarkCount_AutomatonWide(b *testing.B) {
	benchmarkCount(b, "??????????????????? 1,1,2,3", 5)
}
