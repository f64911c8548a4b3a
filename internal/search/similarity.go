package search

// Levenshtein returns the edit distance between a and b, with insertion,
// deletion and substitution each costing 1.
//
// It fills the whole (len(a)+1) x (len(b)+1) table. Callers only pass
// query-sized windows, never whole pages.
func Levenshtein(a, b []rune) int {
	rows, cols := len(a)+1, len(b)+1
	dp := make([][]int, rows)
	for i := range dp {
		dp[i] = make([]int, cols)
		dp[i][0] = i
	}
	for j := 0; j < cols; j++ {
		dp[0][j] = j
	}
	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			dp[i][j] = min(
				dp[i-1][j]+1,
				dp[i][j-1]+1,
				dp[i-1][j-1]+cost,
			)
		}
	}
	return dp[rows-1][cols-1]
}

// Similarity maps the edit distance of a and b into [0,1]:
// 1 - distance/max(len(a), len(b)). Two empty strings are identical (1);
// an empty string against a non-empty one scores 0.
func Similarity(a, b []rune) float64 {
	la, lb := len(a), len(b)
	if la == 0 {
		if lb == 0 {
			return 1
		}
		return 0
	}
	if lb == 0 {
		return 0
	}
	return 1 - float64(Levenshtein(a, b))/float64(max(la, lb))
}
