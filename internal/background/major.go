package background

import (
	"regexp"
	"strings"
)

var (
	// majorNoiseRe strips tokens that sit next to majors in background
	// lines and break token matching ("CS student", "TOEFL 105").
	majorNoiseRe = regexp.MustCompile(`(?i)(student|TOEFL|GRE)`)

	// majorPunctRe is the punctuation class separating majors from
	// schools and scores on the same line.
	majorPunctRe = regexp.MustCompile(`[.,:;/()]`)

	// entBoundaryRe re-checks the ENT suffix: "STUDENT" must not
	// resolve to Entomology, a standalone "ENT" token still may.
	entBoundaryRe = regexp.MustCompile(`\bENT$`)
)

// FindMajor scans the post body for the poster's home major. The search
// window runs from the background header to a few lines past the
// university line, with the university line itself tried first — "NTU
// EE" style lines carry both. Returns "" when no major is found.
func (r *Resolver) FindMajor(content string, uni *UniversityMatch) string {
	rows := strings.Split(content, "\n")

	start, end := 0, len(rows)
	if uni != nil {
		if uni.AnchorIndex >= 0 {
			start = uni.AnchorIndex
		}
		if uni.RowIndex+4 < end {
			end = uni.RowIndex + 4
		}
		// A wraparound match names the school on a line above the
		// background header; the scan then covers just that line.
		if end < start {
			end = start
		}
	}

	order := make([]int, 0, end-start+1)
	if uni != nil {
		order = append(order, uni.RowIndex)
	}
	for i := start; i < end; i++ {
		order = append(order, i)
	}

	for _, ridx := range order {
		if mid := r.MajorFromSentence(rows[ridx], uni); mid != "" {
			return mid
		}
	}
	return ""
}

// MajorFromSentence resolves a single line to a major id, or "".
//
// English full names match anywhere in the line. Token matching starts
// just before the university token when the university sits on this
// line (the major often directly precedes it, "EE" in "交大 EE"), or
// just after the background keyword — whichever offset is earlier.
// Token precedence: exact Chinese name, exact Chinese abbreviation,
// exact id (excluding "BA", which is usually Bachelor of Arts), id as
// token suffix, Chinese abbreviation inside a token.
func (r *Resolver) MajorFromSentence(sentence string, uni *UniversityMatch) string {
	sentence = majorNoiseRe.ReplaceAllString(sentence, " ")

	for _, m := range r.tables.Majors {
		if m.Name != "" && strings.Contains(sentence, m.Name) {
			return m.ID
		}
	}

	start := 0
	if uni != nil && uni.MatchedWord != "" {
		if pos := strings.Index(sentence, uni.MatchedWord); pos >= 0 {
			// Small lookback so "NTU EE" still catches the major when
			// it precedes the matched university token.
			start = pos - 10
			if start < 0 {
				start = 0
			}
		}
	}
	if loc := backgroundRe.FindStringIndex(sentence); loc != nil && loc[1] < start {
		start = loc[1]
	}

	sentence = majorPunctRe.ReplaceAllString(sentence[start:], " ")

	for _, word := range strings.Fields(sentence) {
		if mid, ok := r.tables.MCname2MID[word]; ok {
			return mid
		}
		if mid, ok := r.tables.MCabbr2MID[word]; ok {
			return mid
		}
		upper := strings.ToUpper(word)
		if _, ok := r.tables.MID2Name[upper]; ok && upper != "BA" {
			return upper
		}
		if mid := r.midSuffix(word); mid != "" {
			return mid
		}
		for _, m := range r.tables.Majors {
			if m.Cabbr != "" && strings.Contains(word, m.Cabbr) {
				return m.ID
			}
		}
	}
	return ""
}

// midSuffix matches a major id as a token suffix ("EE" in "NTUEE").
// "BA" is excluded entirely; "ENT" needs a word boundary so common
// English words do not resolve to Entomology.
func (r *Resolver) midSuffix(word string) string {
	for _, m := range r.tables.Majors {
		if !strings.HasSuffix(word, m.ID) {
			continue
		}
		if m.ID == "BA" {
			continue
		}
		if m.ID == "ENT" && !entBoundaryRe.MatchString(word) {
			continue
		}
		return m.ID
	}
	return ""
}
