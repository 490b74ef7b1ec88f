package arrange_test

import (
	"fmt"

	"github.com/katalvlaran/springs/arrange"
	"github.com/katalvlaran/springs/record"
)

// ExampleCount counts one record with the default automaton.
func ExampleCount() {
	rec, _ := record.Parse("?###???????? 3,2,1")
	n, err := arrange.Count(rec)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(n)
	// Output:
	// 10
}

// ExampleCount_expanded unfolds a record five times before counting.
//
// Complexity: O(n · m · r) states; the brute-force oracle would face 2^29
// candidates here.
func ExampleCount_expanded() {
	rec, _ := record.Parse(".??..??...?##. 1,1,3")
	n, _ := arrange.Count(record.Expand(rec, 5))
	fmt.Println(n)
	// Output:
	// 16384
}

// ExampleEnumerate lists every arrangement of a small record.
func ExampleEnumerate() {
	rec, _ := record.Parse("????.######..#####. 1,6,5")
	all, _ := arrange.Enumerate(rec)
	for _, p := range all {
		fmt.Println(p)
	}
	// Output:
	// #....######..#####.
	// .#...######..#####.
	// ..#..######..#####.
	// ...#.######..#####.
}
