package repository

// Bulk statements must stay under the storage layer's bound-parameter
// limit (about 2100 on the smallest store this schema has run against).
// paramBudget leaves headroom below that limit.
const paramBudget = 1800

// SafeBatchSize returns how many rows fit in one bulk statement for the
// given row width. Parameters per row are estimated as columns*2+6: up to
// two bindings per column plus fixed per-statement overhead. Always >= 1.
func SafeBatchSize(columnsPerRow int) int {
	paramsPerRow := columnsPerRow*2 + 6
	if paramsPerRow < 1 {
		paramsPerRow = 1
	}
	size := paramBudget / paramsPerRow
	if size < 1 {
		size = 1
	}
	return size
}

func splitBatches[T any](rows []T, size int) [][]T {
	if size < 1 {
		size = 1
	}
	batches := make([][]T, 0, (len(rows)+size-1)/size)
	for start := 0; start < len(rows); start += size {
		end := start + size
		if end > len(rows) {
			end = len(rows)
		}
		batches = append(batches, rows[start:end])
	}
	return batches
}
