package tsp

// BinomialRow returns T of length n with T[p] = C(n-1, p): the number of
// p-subsets of the n-1 non-origin vertices. It is the last row of Pascal's
// triangle of order n, built with the additive recurrence
// T[i][j] = T[i-1][j-1] + T[i-1][j], T[i][0] = T[i][i] = 1, kept in a single
// row updated right to left.
//
// The row sizes every size-class array before enumeration starts and gives the
// static fill partition its exact totals. It requires n ≥ 1; for n ≤ 0 it
// returns nil.
//
// Complexity: O(n²) time, O(n) space.
func BinomialRow(n int) []int {
	if n <= 0 {
		return nil
	}
	row := make([]int, n)
	row[0] = 1

	var i, j int
	for i = 1; i < n; i++ {
		row[i] = 1
		for j = i - 1; j > 0; j-- {
			row[j] += row[j-1]
		}
	}

	return row
}
