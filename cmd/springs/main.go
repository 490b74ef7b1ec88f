// Command springs counts the arrangements of damaged-spring condition
// records read from a file, one "<pattern> <runs>" record per line.
//
//	springs count input.txt
//	springs count input.txt --multiplicity 5 --per-record --format yaml
//	springs solve input.txt
//	springs expand "???.### 1,1,3" --multiplicity 5
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
