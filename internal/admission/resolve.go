package admission

import (
	"strings"

	"github.com/samber/lo"

	"github.com/alvinbhou/ptt-studyabroad-api/internal/sliceutil"
)

// ProgramPair binds one admitted university to the program and level
// the poster was admitted to. Level and Name may stay empty when the
// post never says.
type ProgramPair struct {
	Level      string
	Name       string
	University string
}

// Key is the dedup identity of a pair: one program per school per
// post, whatever level the lines claimed.
func (pp ProgramPair) Key() string {
	return pp.University + "@" + pp.Name
}

// Outcome is the resolved admission result of one post: the distinct
// universities, the program levels and names seen anywhere, and the
// university/program pairs after cross-filling.
type Outcome struct {
	Universities  []string
	ProgramLevels []string
	ProgramNames  []string
	Pairs         []ProgramPair
}

// Resolve turns a parsed section into an admission outcome. Body
// fragments are normalized, stripped of program tokens and matched to a
// single university each; title fragments match every university they
// mention. Pairs missing a level or name are backfilled from the title
// first, then the body; universities that never paired with a program
// get a synthesized pair from the same fallbacks.
func (p *Parser) Resolve(sec Section) Outcome {
	var (
		universities []string
		levels       []string
		names        []string
		pairs        []ProgramPair
		paired       = map[string]bool{}
	)

	for _, row := range sec.BodyFragments {
		row = NormalizeUniversityName(row)
		if row == "" {
			continue
		}
		match, rest := p.programs.Search(row)
		if match.Level != "" {
			levels = append(levels, match.Level)
		}
		if match.Name != "" {
			names = append(names, match.Name)
		}
		if strings.TrimSpace(rest) == "" {
			continue
		}
		uni := p.SearchUniversity(rest)
		if uni == "" {
			continue
		}
		universities = append(universities, uni)
		if match.Level != "" || match.Name != "" {
			pairs = append(pairs, ProgramPair{Level: match.Level, Name: match.Name, University: uni})
			paired[uni] = true
		}
	}

	// Titles cut the program out first; what survives normalization is
	// searched for every school it names.
	var titleLevels, titleNames []string
	for _, frag := range sec.TitleFragments {
		match, rest := p.programs.Search(frag)
		if match.Level != "" {
			titleLevels = append(titleLevels, match.Level)
		}
		if match.Name != "" {
			titleNames = append(titleNames, match.Name)
		}
		rest = NormalizeUniversityName(strings.TrimSpace(rest))
		if rest == "" {
			continue
		}
		universities = append(universities, p.SearchAllUniversities(rest)...)
	}

	universities = lo.Uniq(universities)

	fillLevel := firstOf(titleLevels, levels)
	fillName := firstOf(titleNames, names)
	for i := range pairs {
		if pairs[i].Level == "" {
			pairs[i].Level = fillLevel
		}
		if pairs[i].Name == "" {
			pairs[i].Name = fillName
		}
	}

	for _, uni := range universities {
		if !paired[uni] {
			pairs = append(pairs, ProgramPair{Level: fillLevel, Name: fillName, University: uni})
		}
	}
	pairs = sliceutil.Deduplicate(pairs, ProgramPair.Key)

	return Outcome{
		Universities:  universities,
		ProgramLevels: lo.Uniq(append(levels, titleLevels...)),
		ProgramNames:  lo.Uniq(append(names, titleNames...)),
		Pairs:         pairs,
	}
}

func firstOf(lists ...[]string) string {
	for _, list := range lists {
		if len(list) > 0 {
			return list[0]
		}
	}
	return ""
}
