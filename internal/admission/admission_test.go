package admission

import (
	"strings"
	"testing"

	"github.com/alvinbhou/ptt-studyabroad-api/internal/program"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/refdata"
)

func newTestParser() *Parser {
	tables := refdata.Load()
	return NewParser(tables, program.NewResolver(tables))
}

func TestNormalizeUniversityName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"U prefix", "U Michigan", "University of Michigan"},
		{"U dot without of", "U. Washington", "University of Washington"},
		{"U of", "U of Texas", "University of Texas"},
		{"UC dash", "UC-Davis", "UC Davis"},
		{"UC comma", "University of California, Davis", "University of California  Davis"},
		{"State U", "Ohio State U", "Ohio State University"},
		{"Two letter noise TA", "TA", ""},
		{"Two letter noise yr", "yr", ""},
		{"Kept as is", "Purdue", "Purdue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeUniversityName(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeUniversityName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSectionTitle(t *testing.T) {
	p := newTestParser()

	sec := p.ParseSection("[錄取] MIT/CMU EECS", "")
	want := []string{"MIT", "CMU EECS"}
	if len(sec.TitleFragments) != len(want) {
		t.Fatalf("title fragments = %v, want %v", sec.TitleFragments, want)
	}
	for i := range want {
		if sec.TitleFragments[i] != want[i] {
			t.Errorf("fragment[%d] = %q, want %q", i, sec.TitleFragments[i], want[i])
		}
	}
}

func TestParseSectionBody(t *testing.T) {
	p := newTestParser()

	body := strings.Join([]string{
		"Background: NTU CSIE",
		"Admission:",
		"  MIT EECS 2/15",
		"  CMU MSCS",
		"Rejection: Stanford",
		"以下閒聊",
	}, "\n")

	sec := p.ParseSection("[錄取] 2020 Fall CS", body)

	joined := strings.Join(sec.BodyFragments, "|")
	if !strings.Contains(joined, "MIT EECS") {
		t.Errorf("body fragments %v missing MIT EECS", sec.BodyFragments)
	}
	if !strings.Contains(joined, "CMU MSCS") {
		t.Errorf("body fragments %v missing CMU MSCS", sec.BodyFragments)
	}
	if strings.Contains(joined, "Stanford") {
		t.Errorf("body fragments %v leak past the rejection marker", sec.BodyFragments)
	}
	if strings.Contains(joined, "2/15") {
		t.Errorf("body fragments %v keep a date", sec.BodyFragments)
	}
}

func TestParseSectionNoEndMarker(t *testing.T) {
	p := newTestParser()

	// Without a reject/pending line the outcome block has no bound, so
	// nothing is extracted from the body.
	sec := p.ParseSection("[錄取]", "Admit: MIT\n還有很多雜訊")
	if len(sec.BodyFragments) != 0 {
		t.Errorf("body fragments = %v, want none", sec.BodyFragments)
	}
}

func TestSearchUniversity(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name     string
		fragment string
		want     string
	}{
		{"Full top name", "Stanford University MSCS", "Stanford University"},
		{"Top uid token", "CMU", "Carnegie Mellon University"},
		{"Uid needs boundary", "CMUSV", ""},
		{"Fuzzy misspelling", "Carnegie Melon University", "Carnegie Mellon University"},
		{"Fuzzy tie keeps larger name", "University", "Yale University"},
		{"Short fragment no fuzzy", "Carnegi", ""},
		{"No match", "totally unknown school", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.SearchUniversity(tt.fragment)
			if got != tt.want {
				t.Errorf("SearchUniversity(%q) = %q, want %q", tt.fragment, got, tt.want)
			}
		})
	}
}

func TestSearchAllUniversities(t *testing.T) {
	p := newTestParser()

	got := p.SearchAllUniversities("MIT Stanford")
	if len(got) != 2 {
		t.Fatalf("got %v, want two universities", got)
	}
}

func TestSearchAllCornellTechRule(t *testing.T) {
	p := newTestParser()

	got := p.SearchAllUniversities("Cornell Tech")
	for _, uni := range got {
		if uni == "Cornell University" {
			t.Errorf("Cornell University must be dropped when Cornell Tech matches: %v", got)
		}
	}
	if len(got) == 0 || got[0] != "Cornell Tech" {
		t.Errorf("got %v, want Cornell Tech", got)
	}
}

func TestResolve(t *testing.T) {
	p := newTestParser()

	body := strings.Join([]string{
		"admit:",
		"  MIT MS EECS",
		"  Stanford University",
		"rejected by others",
	}, "\n")
	sec := p.ParseSection("[錄取] 2020 Fall", body)
	out := p.Resolve(sec)

	if len(out.Universities) != 2 {
		t.Fatalf("universities = %v, want 2", out.Universities)
	}
	if len(out.Pairs) != 2 {
		t.Fatalf("pairs = %+v, want 2", out.Pairs)
	}

	byUni := map[string]ProgramPair{}
	for _, pp := range out.Pairs {
		byUni[pp.University] = pp
	}

	mit, ok := byUni["Massachusetts Institute of Technology"]
	if !ok {
		t.Fatalf("no MIT pair in %+v", out.Pairs)
	}
	if mit.Level != "MS" || mit.Name != "EECS" {
		t.Errorf("MIT pair = %+v, want MS/EECS", mit)
	}

	// Stanford carried no program of its own; level and name backfill
	// from the body.
	stanford, ok := byUni["Stanford University"]
	if !ok {
		t.Fatalf("no Stanford pair in %+v", out.Pairs)
	}
	if stanford.Level != "MS" || stanford.Name != "EECS" {
		t.Errorf("Stanford pair = %+v, want backfilled MS/EECS", stanford)
	}
}

func TestResolveTitleOnly(t *testing.T) {
	p := newTestParser()

	sec := Section{TitleFragments: []string{"MIT", "CMU MSCS"}}
	out := p.Resolve(sec)

	if len(out.Universities) != 2 {
		t.Fatalf("universities = %v, want 2", out.Universities)
	}
	for _, pp := range out.Pairs {
		if pp.Name != "MSCS" {
			t.Errorf("pair %+v should backfill MSCS from the title", pp)
		}
		if pp.Level != "MS" {
			t.Errorf("pair %+v should default to MS for a masters-only program", pp)
		}
	}
}

func TestResolveDeduplicates(t *testing.T) {
	p := newTestParser()

	sec := Section{BodyFragments: []string{"MIT MSCS", "MIT MSCS"}}
	out := p.Resolve(sec)

	if len(out.Pairs) != 1 {
		t.Errorf("pairs = %+v, want a single deduplicated pair", out.Pairs)
	}
}

func TestResolveOneProgramPerSchool(t *testing.T) {
	p := newTestParser()

	// Same school and program claimed at two levels still count once.
	sec := Section{BodyFragments: []string{"MIT MS EECS", "MIT PhD EECS"}}
	out := p.Resolve(sec)

	if len(out.Pairs) != 1 {
		t.Fatalf("pairs = %+v, want one per (university, program)", out.Pairs)
	}
	if out.Pairs[0].Level != "MS" {
		t.Errorf("pair = %+v, want the first-seen level kept", out.Pairs[0])
	}
}
