// Package admission isolates and resolves the admission-outcome section
// of a post: which universities admitted the poster, to which program
// and at which level. Body and title both contribute signal and are
// merged at the end.
package admission

import (
	"regexp"
	"strings"

	"github.com/alvinbhou/ptt-studyabroad-api/internal/program"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/refdata"
)

// AdmissionTag is the literal board tag marking an admission-outcome
// post.
const AdmissionTag = "[錄取]"

var (
	admitRe   = regexp.MustCompile(`(?i)(admit|admission|admision|accept|appected|ad |ad:|offer|錄取)`)
	rejectRe  = regexp.MustCompile(`(?i)(reject|rejection|rejection:|rej|rej:|拒絕|打槍)`)
	pendingRe = regexp.MustCompile(`(?i)(pending|waitlist|wl |wl:|無聲|無消息)`)

	// uselessRe drops funding/date/interview chatter that otherwise
	// pollutes university fragments ("CMU w/ funding 2/15").
	uselessRe = regexp.MustCompile(`(?i)w/|w/o|funding|without|with|stipend|tuition|waived|waive|waiver|fellowship| RA|email|e-mail|year|month|date|interviewed|decision|semester|first|for | per| technical|nomination| by | out|\(|\)`)

	nonASCIIRe = regexp.MustCompile(`[^\x00-\x7F]+`)
	dateRe     = regexp.MustCompile(`\d+/\d+`)

	titleSplitRe = regexp.MustCompile(`[:;/(),\[\]]`)
	bodySplitRe  = regexp.MustCompile(`[:;,/\[\]]`)
)

// rejectWindow bounds how far below the admission marker a
// reject/pending marker still terminates the outcome block.
const rejectWindow = 4

// Section is the tokenized admission section of a single post: cleaned
// title fragments plus body fragments cut from the outcome block.
type Section struct {
	TitleFragments []string
	BodyFragments  []string
}

// Parser resolves admission sections against the US university list and
// the program vocabulary.
type Parser struct {
	tables   *refdata.Tables
	programs *program.Resolver
}

// NewParser creates a parser over the given reference tables.
func NewParser(tables *refdata.Tables, programs *program.Resolver) *Parser {
	return &Parser{tables: tables, programs: programs}
}

// ProgramType returns the type bucket of a resolved program name, or
// "" for unknown or empty names.
func (p *Parser) ProgramType(name string) string {
	return p.programs.TypeOf(name)
}

// NormalizeProgram rewrites a resolved program name into its canonical
// short form for storage.
func (p *Parser) NormalizeProgram(level, name string) string {
	return p.programs.Normalize(level, name)
}

// ParseSection cuts the admission-outcome block out of a post. The
// block starts at the first admission-marker line and ends at the
// nearest reject/pending marker within rejectWindow lines (reject wins
// ties); without an end marker no body fragments are produced. The
// title is cleaned and split independently.
func (p *Parser) ParseSection(title, body string) Section {
	sec := Section{TitleFragments: p.splitTitle(title)}

	rows := strings.Split(body, "\n")

	adIdx, rejIdx, pendIdx := -1, -1, -1
	for ridx, row := range rows {
		if admitRe.MatchString(row) &&
			(rejIdx == -1 || ridx <= rejIdx) && (pendIdx == -1 || ridx <= pendIdx) {
			adIdx = ridx
		}
		if rejectRe.MatchString(row) &&
			(rejIdx == -1 || (adIdx != -1 && rejIdx <= adIdx && ridx <= adIdx+rejectWindow)) {
			rejIdx = ridx
		}
		if pendingRe.MatchString(row) &&
			(pendIdx == -1 || (adIdx != -1 && pendIdx <= adIdx && ridx <= adIdx+rejectWindow)) {
			pendIdx = ridx
		}
	}

	endIdx, endRe := pickEnd(rejIdx, pendIdx)
	if adIdx == -1 || endIdx == -1 {
		return sec
	}

	for idx := adIdx; idx <= endIdx && idx < len(rows); idx++ {
		row := nonASCIIRe.ReplaceAllString(rows[idx], " ")

		// Drop the admission marker itself.
		if loc := admitRe.FindStringIndex(row); loc != nil {
			row = row[:loc[0]] + row[loc[1]:]
		}

		// Drop everything from the end marker onward, then stop.
		last := false
		if loc := endRe.FindStringIndex(row); loc != nil {
			row = row[:loc[0]]
			last = true
		}

		row = dateRe.ReplaceAllString(row, " ")
		row = uselessRe.ReplaceAllString(row, " ")

		// Few commas means decorative punctuation ("MIT, EECS"), many
		// means an enumeration that must stay splittable.
		if strings.Count(row, ",") <= 2 {
			row = strings.ReplaceAll(row, ",", " ")
		}

		for _, frag := range bodySplitRe.Split(row, -1) {
			frag = strings.TrimSpace(frag)
			if len(frag) > 1 {
				sec.BodyFragments = append(sec.BodyFragments, frag)
			}
		}

		if last {
			break
		}
	}

	return sec
}

// pickEnd chooses the outcome block's end line between the reject and
// pending markers; reject wins ties.
func pickEnd(rejIdx, pendIdx int) (int, *regexp.Regexp) {
	switch {
	case rejIdx == -1 && pendIdx == -1:
		return -1, nil
	case pendIdx == -1:
		return rejIdx, rejectRe
	case rejIdx == -1:
		return pendIdx, pendingRe
	case rejIdx <= pendIdx:
		return rejIdx, rejectRe
	default:
		return pendIdx, pendingRe
	}
}

func (p *Parser) splitTitle(title string) []string {
	title = strings.ReplaceAll(title, AdmissionTag, "")
	title = nonASCIIRe.ReplaceAllString(title, " ")
	title = uselessRe.ReplaceAllString(title, " ")

	var frags []string
	for _, frag := range titleSplitRe.Split(title, -1) {
		frag = strings.TrimSpace(frag)
		if len(frag) > 1 {
			frags = append(frags, frag)
		}
	}
	return frags
}
