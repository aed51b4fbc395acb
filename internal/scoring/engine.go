// Package scoring ranks stored admission reports against an
// applicant's profile. Two modes exist: similar-background ranking,
// where shared school/major/GPA dominates, and target-school ranking,
// where the wanted programs and universities dominate.
package scoring

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/alvinbhou/ptt-studyabroad-api/internal/storage"
)

// Profile is the applicant side of a ranking query. Empty fields
// simply never contribute score.
type Profile struct {
	GPA          float64
	Level        string
	UniID        string
	MajorID      string
	MajorType    string
	Programs     []string // wanted programs, canonical short forms
	ProgramTypes []string
	Universities []string // wanted schools, resolved full names
}

// RankedArticle is one scored admission report. The four slices are
// parallel: index i describes the article's i-th admission row.
type RankedArticle struct {
	ArticleID     string    `json:"article_id"`
	URL           string    `json:"url"`
	Title         string    `json:"article_title"`
	Date          time.Time `json:"date"`
	Score         float64   `json:"score"`
	GPADiff       float64   `json:"gpa_diff"`
	MeanGPA       float64   `json:"mean_gpa"`
	Universities  []string  `json:"universities"`
	Programs      []string  `json:"programs"`
	ProgramLevels []string  `json:"program_levels"`
	ProgramTypes  []string  `json:"program_types"`
}

func (r *RankedArticle) appendRow(row storage.ProgramRow) {
	r.Universities = append(r.Universities, row.University)
	r.Programs = append(r.Programs, row.Program)
	r.ProgramLevels = append(r.ProgramLevels, row.Level)
	r.ProgramTypes = append(r.ProgramTypes, row.ProgramType)
}

// topTierUni and secondTierUni gate the shared-school bonus: sharing a
// school matters more the less common that school is on the board. The
// two exclusions apply independently, so a second-tier school clears
// the first and a long-tail school clears both.
var (
	topTierUni    = []string{"NTU", "NCTU", "NTHU"}
	secondTierUni = []string{"NCCU", "NCKU"}
)

// RankSimilar scores every article whose program types pass the
// profile's filter, keyed on background similarity. An article's score
// is the maximum over its program rows; ties break on GPA distance,
// then recency.
func RankSimilar(rows []storage.ProgramRow, p Profile) []RankedArticle {
	best := map[string]*RankedArticle{}
	for _, articleRows := range groupByArticle(rows, p.ProgramTypes) {
		for _, row := range articleRows {
			score := similarScore(row, p)
			cur, ok := best[row.ArticleID]
			if !ok {
				cur = &RankedArticle{
					ArticleID: row.ArticleID,
					URL:       row.URL,
					Title:     row.Title,
					Date:      row.Date,
					Score:     score,
					GPADiff:   math.Abs(row.MeanGPA - p.GPA),
					MeanGPA:   row.MeanGPA,
				}
				best[row.ArticleID] = cur
			} else if score > cur.Score {
				cur.Score = score
			}
			cur.appendRow(row)
		}
	}

	out := collect(best)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].GPADiff != out[j].GPADiff {
			return out[i].GPADiff < out[j].GPADiff
		}
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// RankTargetSchools scores articles by how well they cover the
// profile's wanted programs and universities; background plays no
// part. Ties break on recency.
func RankTargetSchools(rows []storage.ProgramRow, p Profile) []RankedArticle {
	best := map[string]*RankedArticle{}
	for _, articleRows := range groupByArticle(rows, p.ProgramTypes) {
		for _, row := range articleRows {
			score := targetScore(row, p)
			cur, ok := best[row.ArticleID]
			if !ok {
				cur = &RankedArticle{
					ArticleID: row.ArticleID,
					URL:       row.URL,
					Title:     row.Title,
					Date:      row.Date,
					Score:     score,
					MeanGPA:   row.MeanGPA,
				}
				best[row.ArticleID] = cur
			} else if score > cur.Score {
				cur.Score = score
			}
			cur.appendRow(row)
		}
	}

	out := collect(best)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Date.After(out[j].Date)
	})
	return out
}

func similarScore(row storage.ProgramRow, p Profile) float64 {
	var score float64

	diff := math.Abs(row.MeanGPA - p.GPA)
	switch {
	case row.MeanGPA == -1:
		score += weightNoGPA
	case diff <= gpaTightBand:
		score += weightGPATight
	case diff <= gpaNearBand:
		score += weightGPANear
	case diff <= gpaLooseBand:
		score += weightGPALoose
	}
	if row.MinGPA > 0 && row.MinGPA <= lowGPA {
		if math.Abs(row.MinGPA-p.GPA) <= gpaMinBand {
			score += weightLowMinNear
		}
		if p.GPA <= lowGPA {
			score += weightLowMinBoth
		}
	}

	uniMatch := p.UniID != "" && row.UniID == p.UniID
	if uniMatch {
		score += weightSameUni
		if !containsAny(row.UniID, topTierUni) {
			score += weightUniNotTop3
		}
		if !containsAny(row.UniID, secondTierUni) {
			score += weightUniNotNext2
		}
	}

	majorExact := p.MajorID != "" && row.MajorID == p.MajorID
	if p.MajorType != "" && (majorExact || row.MajorType == p.MajorType) {
		score += weightMajor
	}
	if majorExact && !containsAny(p.MajorType, []string{"CS", "EE"}) {
		score += weightMajorRare
	}
	if uniMatch && majorExact {
		score += weightUniAndMajor
	}

	if containsAny(row.Program, p.Programs) {
		score += weightProgram
		if !strings.Contains(row.Program, "CS") && !strings.Contains(row.Program, "EE") {
			score += weightProgramRare
		}
	}
	if contains(p.ProgramTypes, row.ProgramType) {
		score += weightProgramType
	}

	if p.Level == "PhD" && row.Level == p.Level {
		score += weightPhDLevel
	}
	if len(p.Universities) > 0 && containsAny(row.University, p.Universities) {
		score += weightTargetUni
	}

	return score
}

func targetScore(row storage.ProgramRow, p Profile) float64 {
	var score float64

	if containsAny(row.Program, p.Programs) {
		score += targetWeightProgram
	}
	if contains(p.ProgramTypes, row.ProgramType) {
		score += targetWeightProgramType
	}
	if p.Level == "PhD" && row.Level == p.Level {
		score += targetWeightPhDLevel
	}
	if len(p.Universities) > 0 && containsAny(row.University, p.Universities) {
		score += targetWeightUniversity
	}

	return score
}

// groupByArticle buckets rows per article, dropping articles none of
// whose program types pass the filter. A filtered-in article keeps all
// of its rows.
func groupByArticle(rows []storage.ProgramRow, types []string) map[string][]storage.ProgramRow {
	grouped := map[string][]storage.ProgramRow{}
	for _, row := range rows {
		grouped[row.ArticleID] = append(grouped[row.ArticleID], row)
	}
	if len(types) == 0 {
		return grouped
	}
	for id, articleRows := range grouped {
		keep := false
		for _, row := range articleRows {
			if contains(types, row.ProgramType) {
				keep = true
				break
			}
		}
		if !keep {
			delete(grouped, id)
		}
	}
	return grouped
}

// Trim drops the long tail of an oversized result list: when more
// than limit results came back, entries scoring under half the best
// score are cut.
func Trim(results []RankedArticle, limit int) []RankedArticle {
	if len(results) <= limit {
		return results
	}
	maxScore := results[0].Score
	out := make([]RankedArticle, 0, limit)
	for _, r := range results {
		if r.Score < maxScore/2 {
			break
		}
		out = append(out, r)
	}
	return out
}

func collect(best map[string]*RankedArticle) []RankedArticle {
	out := make([]RankedArticle, 0, len(best))
	for _, r := range best {
		out = append(out, *r)
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
