// Package classify tags board posts by how useful they are to a
// CS/EE-oriented matching query. Tagging is keyword-driven and errs
// toward exclusion: posts about civil engineering, economics or other
// unrelated fields are cut early so they never reach extraction.
package classify

import (
	"regexp"
	"strings"

	"github.com/alvinbhou/ptt-studyabroad-api/internal/admission"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/stringutil"
)

// ArticleType buckets a post for downstream extraction and querying.
type ArticleType string

const (
	// TypeAdmission is an admission-outcome report.
	TypeAdmission ArticleType = "ADMISSION"
	// TypeAsk is a school-choice question.
	TypeAsk ArticleType = "ASK"
	// TypeGeneralCS is any other CS/EE-relevant post.
	TypeGeneralCS ArticleType = "GENERAL_CS"
	// TypeAll marks posts outside the CS/EE scope; they are stored but
	// never scored.
	TypeAll ArticleType = "ALL"
)

// askTag is the literal board tag marking a school-choice question.
const askTag = "選校"

var csKeywords = []string{
	"eecs", "ece", "cs", "ee", "ds", "ml", "stat", "mscv",
	" ce ", " se ", "cmusv", "cmu-sv", " sv", "hci", "nlp",
	"robotics", "computer science",
}

// falsePositives are substrings that hit a CS keyword by accident:
// "economics" contains "cs", "needs" contains "ds", and so on.
var falsePositives = []string{
	"cheers", "physics", "ucs.", "csu", "facebook", "indeed", "fee",
	"cec", "economics", "mlb", "mli", "emle", "emlyon", "need",
	"career", "sva", "milwaukee", "leeds", "records", "sdsu",
	"ds2019", "ds2016", "kids", "state",
}

var (
	civilRe = regexp.MustCompile(`(?i)( CEE|CEEB|civil and environmental engineering)`)

	// engineerRe catches non-EE/CS engineering posts: "engineer"
	// without an electrical/computer/software engineer bigram.
	engineerRe   = regexp.MustCompile(`(?i)engineer`)
	csEngineerRe = regexp.MustCompile(`(?i)(electrical|computer|software) engineer`)
)

// minCSHits is how many CS keyword occurrences outweigh a single
// false-positive hit.
const minCSHits = 2

// Classify tags one post from its title. The body stays out of it:
// ordinary English prose contains substrings like "ee" and "ds" in
// nearly every sentence and would drain the ALL bucket.
func Classify(title string) ArticleType {
	text := strings.ToLower(title)

	hit := false
	for _, kw := range csKeywords {
		if strings.Contains(text, kw) {
			hit = true
			break
		}
	}
	if !hit {
		return TypeAll
	}

	for _, fp := range falsePositives {
		if strings.Contains(text, fp) &&
			stringutil.CountOccurrences(csKeywords, text) < minCSHits {
			return TypeAll
		}
	}
	if civilRe.MatchString(text) {
		return TypeAll
	}
	if engineerRe.MatchString(text) && !csEngineerRe.MatchString(text) {
		return TypeAll
	}

	switch {
	case strings.Contains(title, admission.AdmissionTag) && !strings.Contains(title, "Re: "):
		return TypeAdmission
	case strings.Contains(title, askTag):
		return TypeAsk
	default:
		return TypeGeneralCS
	}
}
