package admission

import (
	"strings"

	"github.com/alvinbhou/ptt-studyabroad-api/internal/stringutil"
)

// lcsThreshold is the longest-common-subsequence similarity a fragment
// must reach against a full university name before a fuzzy match is
// accepted. Short fragments are too easy to hit and are skipped.
const (
	lcsThreshold = 0.75
	lcsMinLen    = 10
)

// SearchUniversity resolves a single body fragment to one university
// identifier. Tiers, most to least reliable: full top-school name, top
// school uid as a standalone token, full long-tail name, fuzzy match
// against top-school names, long-tail uid as a standalone token.
func (p *Parser) SearchUniversity(fragment string) string {
	us := p.tables.US
	lower := strings.ToLower(fragment)
	padded := " " + fragment + " "

	for _, name := range us.TopNames {
		if strings.Contains(lower, strings.ToLower(name)) {
			return name
		}
	}
	for _, uni := range us.TopUIDs {
		if strings.Contains(padded, " "+uni.UID+" ") {
			return uni.Name
		}
	}
	for _, name := range us.OtherNames {
		if strings.Contains(lower, strings.ToLower(name)) {
			return name
		}
	}

	if len(fragment) >= lcsMinLen {
		// Ties on similarity resolve to the lexicographically larger name.
		best, bestSim := "", lcsThreshold
		for _, name := range us.TopNames {
			sim := stringutil.LCSSimilarity(fragment, name)
			if sim > bestSim || (best != "" && sim == bestSim && name > best) {
				best, bestSim = name, sim
			}
		}
		if best != "" {
			return best
		}
	}

	for _, uni := range us.OtherUIDs {
		if strings.Contains(padded, " "+uni.UID+" ") {
			return uni.Name
		}
	}
	return ""
}

// SearchAllUniversities resolves a title fragment to every university
// it mentions; titles routinely enumerate several schools at once.
// "Cornell University" is dropped when "Cornell Tech" is also present,
// since the latter's full name contains the former.
func (p *Parser) SearchAllUniversities(fragment string) []string {
	us := p.tables.US
	lower := strings.ToLower(fragment)
	padded := " " + fragment + " "

	var matches []string
	for _, name := range us.TopNames {
		if strings.Contains(lower, strings.ToLower(name)) {
			matches = append(matches, name)
		}
	}
	for _, uni := range us.TopUIDs {
		if strings.Contains(padded, " "+uni.UID+" ") {
			matches = append(matches, uni.Name)
		}
	}
	for _, name := range us.OtherNames {
		if strings.Contains(lower, strings.ToLower(name)) {
			matches = append(matches, name)
		}
	}
	for _, uni := range us.OtherUIDs {
		if strings.Contains(padded, " "+uni.UID+" ") {
			matches = append(matches, uni.Name)
		}
	}

	if contains(matches, "Cornell Tech") {
		matches = remove(matches, "Cornell University")
	}
	return matches
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func remove(list []string, s string) []string {
	out := list[:0]
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}
