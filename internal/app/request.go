package app

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/alvinbhou/ptt-studyabroad-api/internal/admission"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/errors"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/program"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/refdata"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/scoring"
)

// MatchRequest is the applicant profile posted to the ranking
// endpoints. University, Major, TargetSchools and TargetPrograms take
// free text (Chinese or English where applicable) and are resolved
// through the same tables the extractors use.
type MatchRequest struct {
	GPA            float64  `json:"gpa"`
	University     string   `json:"university"`
	Major          string   `json:"major"`
	TargetSchools  []string `json:"target_schools"`
	TargetPrograms []string `json:"target_programs"`
	ProgramTypes   []string `json:"program_types"`
	Level          string   `json:"program_level"`
}

const maxGPAScale = 4.3

// Validate checks the request's bounded fields.
func (req *MatchRequest) Validate() error {
	if req.GPA < 0 || req.GPA > maxGPAScale {
		return errors.NewValidationError("gpa",
			fmt.Sprintf("must be between 0 and %.1f", maxGPAScale))
	}
	if req.Level != "" {
		switch strings.ToUpper(req.Level) {
		case "MS", "PHD":
		default:
			return errors.NewValidationError("program_level", "must be MS or PhD")
		}
	}
	for _, typ := range req.ProgramTypes {
		if canonicalType(typ) == "" {
			return errors.NewValidationError("program_types",
				fmt.Sprintf("unknown program type %q, want one of %s",
					typ, strings.Join(refdata.ProgramTypes, ", ")))
		}
	}
	return nil
}

func canonicalType(typ string) string {
	for _, known := range refdata.ProgramTypes {
		if strings.EqualFold(typ, known) {
			return known
		}
	}
	return ""
}

// buildProfile resolves the request's free-text fields into a scoring
// profile. Unresolvable universities, majors and programs simply drop
// out; their bonuses never fire.
func (h *Handler) buildProfile(req *MatchRequest) scoring.Profile {
	p := scoring.Profile{GPA: req.GPA}

	if req.Level != "" {
		if strings.ToUpper(req.Level) == "PHD" {
			p.Level = program.LevelPhD
		} else {
			p.Level = program.LevelMS
		}
	}

	for _, typ := range req.ProgramTypes {
		p.ProgramTypes = append(p.ProgramTypes, canonicalType(typ))
	}

	// Target schools match stored rows on their resolved full names.
	for _, school := range req.TargetSchools {
		if name := h.admission.SearchUniversity(admission.NormalizeUniversityName(school)); name != "" {
			p.Universities = append(p.Universities, name)
		}
	}

	// Target programs resolve to canonical short forms; their types
	// widen the requested type set.
	for _, prog := range req.TargetPrograms {
		match, _ := h.programs.Search(prog)
		name := h.programs.Normalize(match.Level, match.Name)
		if name == "" {
			continue
		}
		p.Programs = append(p.Programs, name)
		if typ := h.programs.TypeOf(match.Name); typ != "" {
			p.ProgramTypes = append(p.ProgramTypes, typ)
		}
	}
	p.Programs = lo.Uniq(p.Programs)
	p.ProgramTypes = lo.Uniq(p.ProgramTypes)

	if req.University != "" {
		uid, word := h.background.UniversityFromSentence(req.University)
		p.UniID = uid
		if req.Major != "" {
			mid := h.background.MajorFromSentence(req.Major, majorAnchor(word))
			p.MajorID = mid
			p.MajorType = h.background.MajorType(mid)
		}
	} else if req.Major != "" {
		mid := h.background.MajorFromSentence(req.Major, nil)
		p.MajorID = mid
		p.MajorType = h.background.MajorType(mid)
	}

	return p
}
