package sliceutil

import (
	"reflect"
	"testing"
)

func TestDeduplicate(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"No duplicates", []string{"MIT", "CMU"}, []string{"MIT", "CMU"}},
		{"Duplicates removed", []string{"MIT", "CMU", "MIT"}, []string{"MIT", "CMU"}},
		{"Order preserved", []string{"b", "a", "b", "c", "a"}, []string{"b", "a", "c"}},
		{"Empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Deduplicate(tt.input, func(s string) string { return s })
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Deduplicate(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDeduplicateStructKey(t *testing.T) {
	type rec struct {
		Level      string
		University string
	}
	recs := []rec{
		{"MS", "MIT"},
		{"PhD", "MIT"},
		{"MS", "MIT"},
	}
	got := Deduplicate(recs, func(r rec) string { return r.Level + "@" + r.University })
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
}
