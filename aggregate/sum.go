package aggregate

// Sum folds counts into a 64-bit total. Addition is associative and
// commutative, so the order of counts is irrelevant.
func Sum(counts []uint64) uint64 {
	var total uint64
	for _, c := range counts {
		total += c
	}

	return total
}
