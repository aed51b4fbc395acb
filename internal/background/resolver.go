// Package background extracts the poster's own academic background
// (home university, major, GPA) from a post body. All lookups are
// positional heuristics anchored on the "Background" section of the
// post; a miss is a normal outcome reported as a zero value, never an
// error.
package background

import (
	"regexp"
	"strings"

	"github.com/alvinbhou/ptt-studyabroad-api/internal/refdata"
)

// backgroundRe matches the section header under which posters list
// their own academic history.
var backgroundRe = regexp.MustCompile(`(?i)(background|education|經歷|學歷|academic record)`)

// UniversityMatch reports where and how the home university was found.
// MatchedWord anchors the subsequent major search on the same line
// ("NTU EE" lists the major right next to the school).
type UniversityMatch struct {
	UniID       string
	MatchedWord string
	RowIndex    int // line on which the university matched
	AnchorIndex int // line of the background section header, -1 if absent
}

// Resolver locates home university, major and GPA in post bodies.
type Resolver struct {
	tables *refdata.Tables
}

// NewResolver creates a resolver over the given reference tables.
func NewResolver(tables *refdata.Tables) *Resolver {
	return &Resolver{tables: tables}
}

// MajorType returns the type bucket (CS, EE, ...) of a major id, or
// "" when the major carries none.
func (r *Resolver) MajorType(mid string) string {
	return r.tables.MID2Type[mid]
}

// FindUniversity scans the post body for the poster's home university.
// The scan starts at the background section header when one exists and
// wraps around, so signatures and quoted text get searched last.
// Returns nil when no university is found.
func (r *Resolver) FindUniversity(content string) *UniversityMatch {
	rows := strings.Split(content, "\n")

	anchor := -1
	for idx, row := range rows {
		if backgroundRe.MatchString(row) {
			anchor = idx
			break
		}
	}

	for _, ridx := range searchOrder(len(rows), anchor) {
		if uid, word := r.UniversityFromSentence(rows[ridx]); uid != "" {
			return &UniversityMatch{
				UniID:       uid,
				MatchedWord: word,
				RowIndex:    ridx,
				AnchorIndex: anchor,
			}
		}
	}
	return nil
}

// ntuSiblings are schools whose abbreviation contains "NTU" but which
// are not National Taiwan University.
var ntuSiblings = []string{"NTUT", "NTUST"}

// UniversityFromSentence resolves a single line to a university id.
// Matching precedence, first hit wins: exact Chinese full name, exact
// Chinese abbreviation, the NTU special cases, exact id, campus IP
// prefix, id as token suffix ("NTUEE"), Chinese abbreviation inside a
// token ("台大電機"). Falls back to English full-name search over the
// whole line. Returns ("", "") when nothing matches.
func (r *Resolver) UniversityFromSentence(sentence string) (string, string) {
	for _, word := range strings.Fields(sentence) {
		if uid, ok := r.tables.Cname2UID[word]; ok {
			return uid, word
		}
		if uid, ok := r.tables.Cabbr2UID[word]; ok {
			return uid, word
		}
		// NTU special cases: "NTU" buried in a compound token, minus
		// the sibling schools, plus both spellings of 台灣大學.
		if (strings.Contains(word, "NTU") && !containsAny(word, ntuSiblings)) ||
			strings.Contains(word, "台灣大學") || strings.Contains(word, "臺灣大學") {
			return "NTU", word
		}
		if _, ok := r.tables.UID2Cname[strings.ToUpper(word)]; ok {
			return strings.ToUpper(word), word
		}
		if uid, ok := r.tables.IP2UID[word]; ok {
			return uid, word
		}
		// id as token suffix, e.g. "NTU" in "NTUEE". "Hsinchu" is a
		// known false positive for NCHU.
		if word != "Hsinchu" {
			if uid := r.uidSuffix(word); uid != "" {
				return uid, word
			}
		}
		// Chinese abbreviation inside a token, e.g. "台大" in "台大電機".
		for _, u := range r.tables.Universities {
			if u.Cabbr != "" && strings.Contains(word, u.Cabbr) {
				return u.ID, word
			}
		}
	}

	// English full name anywhere in the line.
	for _, u := range r.tables.Universities {
		if u.Name != "" && strings.Contains(sentence, u.Name) {
			return u.ID, u.Name
		}
	}
	return "", ""
}

func (r *Resolver) uidSuffix(word string) string {
	for _, u := range r.tables.Universities {
		if strings.HasSuffix(word, u.ID) {
			return u.ID
		}
	}
	return ""
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
