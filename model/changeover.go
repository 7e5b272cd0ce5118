package model

// ChangeoverMatrix is a square table of idle changeover days indexed by
// (from-product, to-product). Out-of-range product indices and the
// diagonal both resolve to zero, giving O(1) lookups (spec.md §3, §4.1).
type ChangeoverMatrix struct {
	n     int
	days  []int // row-major n*n
}

// NewChangeoverMatrix builds a changeover matrix from a dense
// row-major table of days. The diagonal is forced to zero regardless
// of the input, per spec.md §3 ("Diagonal = 0, no changeover within a
// campaign"). Negative entries are rejected.
func NewChangeoverMatrix(n int, days []int) (*ChangeoverMatrix, error) {
	if len(days) != n*n {
		return nil, configErrorf("changeover_days", "expected %d entries for %d products, got %d", n*n, n, len(days))
	}
	table := make([]int, n*n)
	copy(table, days)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if table[i*n+j] < 0 {
				return nil, configErrorf("changeover_days", "negative changeover time from product %d to %d", i, j)
			}
		}
		table[i*n+i] = 0
	}
	return &ChangeoverMatrix{n: n, days: table}, nil
}

// Days returns the changeover time, in days, to switch the line or
// suite from product `from` to product `to`.
func (m *ChangeoverMatrix) Days(from, to int) int {
	if from < 0 || to < 0 || from >= m.n || to >= m.n {
		return 0
	}
	return m.days[from*m.n+to]
}
