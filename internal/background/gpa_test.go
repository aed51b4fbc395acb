package background

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFindGPA(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name      string
		content   string
		wantMax   float64
		wantMin   float64
		wantMean  float64
		wantScale float64
	}{
		{
			name:      "Single GPA with scale",
			content:   "Background:\nGPA 3.75/4.0",
			wantMax:   3.75,
			wantMin:   3.75,
			wantMean:  3.75,
			wantScale: 4.0,
		},
		{
			name:      "Overall and major GPA",
			content:   "Background:\nGPA: 3.6 (major 3.9)",
			wantMax:   3.9,
			wantMin:   3.6,
			wantMean:  3.75,
			wantScale: -1,
		},
		{
			name:      "Scale 4.3",
			content:   "Education\nGPA 4.1/4.3",
			wantMax:   4.1,
			wantMin:   4.1,
			wantMean:  4.1,
			wantScale: 4.3,
		},
		{
			name:      "Perfect score counts as GPA too",
			content:   "Background:\nGPA 4.0/4.0",
			wantMax:   4.0,
			wantMin:   4.0,
			wantMean:  4.0,
			wantScale: 4.0,
		},
		{
			name:      "GRE scores on GPA line ignored",
			content:   "Background:\nGPA 3.52 GRE V155 Q170 AW 3.0",
			wantMax:   3.52,
			wantMin:   3.52,
			wantMean:  3.52,
			wantScale: -1,
		},
		{
			name:      "Half step beside GRE reads as sub-score",
			content:   "Background:\nGPA 3.5 GRE 320 AW 3.0",
			wantMax:   -1,
			wantMin:   -1,
			wantMean:  -1,
			wantScale: -1,
		},
		{
			name:      "Number on line after keyword",
			content:   "Background:\nGPA\n3.82",
			wantMax:   3.82,
			wantMin:   3.82,
			wantMean:  3.82,
			wantScale: -1,
		},
		{
			name:      "Year is not a GPA",
			content:   "Background:\nGPA 3.4, class of 2019",
			wantMax:   3.4,
			wantMin:   3.4,
			wantMean:  3.4,
			wantScale: -1,
		},
		{
			name:      "Far numbers ignored",
			content:   "沒有成績的文章\nTOEFL 100.5",
			wantMax:   -1,
			wantMin:   -1,
			wantMean:  -1,
			wantScale: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uni := r.FindUniversity(tt.content)
			got := r.FindGPA(tt.content, uni)
			if !almostEqual(got.Max, tt.wantMax) || !almostEqual(got.Min, tt.wantMin) ||
				!almostEqual(got.Mean, tt.wantMean) || !almostEqual(got.Scale, tt.wantScale) {
				t.Errorf("FindGPA(%q) = %+v, want max=%v min=%v mean=%v scale=%v",
					tt.content, got, tt.wantMax, tt.wantMin, tt.wantMean, tt.wantScale)
			}
		})
	}
}

func TestFindGPAUnknownSentinel(t *testing.T) {
	r := newTestResolver()
	got := r.FindGPA("請益文,完全沒有數字", nil)
	if !got.Unknown() {
		t.Errorf("expected unknown sentinel, got %+v", got)
	}
	if got != UnknownGPA {
		t.Errorf("got %+v, want %+v", got, UnknownGPA)
	}
}
