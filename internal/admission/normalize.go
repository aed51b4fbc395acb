package admission

import (
	"regexp"
	"strings"
)

var (
	stateURe   = regexp.MustCompile(`\w*State U\b`)
	univDotRe  = regexp.MustCompile(`(?i)\w*Univ.\b`)
	twoCharRe  = regexp.MustCompile(`(?i)(no|yr|ta|ra|ms)`)
	ucCommaStr = "University of California,"
)

// NormalizeUniversityName rewrites the shorthand forms posters use for
// US schools into the canonical long form the university lists carry:
// "U Michigan" becomes "University of Michigan", "UC-Davis" becomes
// "UC Davis", "Ohio State U" becomes "State University" and so on.
// Two-character noise tokens (TA, RA, yr, ...) collapse to nothing.
func NormalizeUniversityName(words string) string {
	// "U of X" first, so the bare "U " prefix rule does not double the
	// "of".
	words = strings.ReplaceAll(words, "U of ", "University of ")
	if strings.HasPrefix(words, "U ") {
		words = strings.ReplaceAll(words, "U ", "University of ")
	}
	if strings.Contains(words, "U. ") {
		if strings.Contains(words, "of") {
			words = strings.ReplaceAll(words, "U. ", "University ")
		} else {
			words = strings.ReplaceAll(words, "U. ", "University of ")
		}
	}
	words = strings.ReplaceAll(words, "Univ ", "University ")
	words = strings.ReplaceAll(words, "UC-", "UC ")
	words = strings.ReplaceAll(words, ucCommaStr, "University of California ")
	words = stateURe.ReplaceAllString(words, "State University")
	words = univDotRe.ReplaceAllString(words, "University")

	if len(words) == 2 && twoCharRe.MatchString(words) {
		return ""
	}
	return words
}
