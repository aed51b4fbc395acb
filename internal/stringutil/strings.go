// Package stringutil provides common string manipulation utilities.
package stringutil

import "strings"

// LCSSimilarity returns the longest-common-subsequence similarity of a
// and b, normalized by the length of the shorter string, in [0, 1].
// Operates on bytes; the inputs here are ASCII university names.
//
// Example:
//
//	LCSSimilarity("Carnegie Mellon University", "Carnegie Melon Univ") > 0.9
func LCSSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	n, m := len(a), len(b)

	// Classic DP over two rows.
	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}

	shorter := n
	if m < n {
		shorter = m
	}
	return float64(prev[m]) / float64(shorter)
}

// CountOccurrences sums the case-insensitive occurrence counts of every
// keyword in s. Overlapping keywords are counted independently, so
// "eecs" contributes to both "eecs" and "cs".
func CountOccurrences(keywords []string, s string) int {
	s = strings.ToLower(s)
	total := 0
	for _, kw := range keywords {
		total += strings.Count(s, strings.ToLower(kw))
	}
	return total
}
