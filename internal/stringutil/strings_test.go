package stringutil

import (
	"math"
	"testing"
)

func TestLCSSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"Identical", "Purdue University", "Purdue University", 1.0},
		{"Disjoint", "abc", "xyz", 0.0},
		{"Empty left", "", "anything", 0.0},
		{"Empty both", "", "", 0.0},
		{"Subsequence", "abcdef", "ace", 1.0},
		{"Partial overlap", "abcd", "abxd", 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LCSSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("LCSSimilarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLCSSimilarityTypo(t *testing.T) {
	// Misspelled school names should still score above the fuzzy-match
	// threshold used by the admission resolver.
	got := LCSSimilarity("Univ of Southern Califonia", "University of Southern California")
	if got <= 0.75 {
		t.Errorf("similarity = %v, want > 0.75 for a close misspelling", got)
	}
}

func TestCountOccurrences(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		s        string
		want     int
	}{
		{"No hits", []string{"cs", "ee"}, "history department", 0},
		{"Single hit", []string{"cs"}, "mscs admit", 1},
		{"Multiple keywords", []string{"cs", "ee"}, "cs and ee and eecs", 4},
		{"Case insensitive", []string{"cs"}, "CS MSCS", 2},
		{"Empty keywords", nil, "whatever", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountOccurrences(tt.keywords, tt.s)
			if got != tt.want {
				t.Errorf("CountOccurrences(%v, %q) = %d, want %d", tt.keywords, tt.s, got, tt.want)
			}
		})
	}
}
