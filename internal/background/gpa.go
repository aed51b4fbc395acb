package background

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// GPAStats summarizes every GPA figure accepted from a post. Scale is
// the grading scale (4.0 or 4.3) when the post states one. All fields
// are -1 when no GPA evidence was found.
type GPAStats struct {
	Max   float64 `json:"max_gpa"`
	Min   float64 `json:"min_gpa"`
	Mean  float64 `json:"mean_gpa"`
	Scale float64 `json:"gpa_scale"`
}

// UnknownGPA is the sentinel for posts without any accepted GPA figure.
var UnknownGPA = GPAStats{Max: -1, Min: -1, Mean: -1, Scale: -1}

// Unknown reports whether the stats carry the unknown sentinel.
func (g GPAStats) Unknown() bool {
	return g.Mean == -1
}

var (
	// gpaKeywordRe flags lines that introduce grade information.
	gpaKeywordRe = regexp.MustCompile(`(?i)(GPA|Rank| Education|Background)`)

	// greRe flags GRE score markers; GRE sub-scores on a GPA line are
	// the main source of fake GPA readings.
	greRe = regexp.MustCompile(`(?i)(GRE|G:|G |AW|V1|Q1|V 1|Q 1|V:|Q:)`)

	// yearRe scrubs four-digit calendar years before numeric search.
	yearRe = regexp.MustCompile(`[2][0-9]{3}`)

	floatRe = regexp.MustCompile(`\d+\.\d+`)
)

// gpaWindow bounds how far past the background header the GPA search
// runs.
const gpaWindow = 20

// FindGPA extracts GPA statistics from the post body. Numbers are only
// read from GPA-keyword lines and their immediate successor, GRE score
// spans are trimmed away when they share a line with the GPA, and a
// figure followed by a "/4.0" or "/4.3" marker sets the scale instead
// of counting as a GPA. Returns UnknownGPA when nothing was accepted.
func (r *Resolver) FindGPA(content string, uni *UniversityMatch) GPAStats {
	rows := strings.Split(content, "\n")

	anchor := -1
	if uni != nil {
		anchor = uni.AnchorIndex
	}

	scale := -1.0
	lastKeywordIdx := -1
	var candidates []float64

	for idx, row := range rows {
		gpaLoc := gpaKeywordRe.FindStringIndex(row)
		if gpaLoc != nil {
			lastKeywordIdx = idx
		}
		greLoc := greRe.FindStringIndex(row)

		// GPA and GRE on one line: keep only the side of the line away
		// from the GRE marker so V/Q/AW numbers never get parsed.
		if greLoc != nil && gpaLoc != nil {
			if greLoc[0] > gpaLoc[1] {
				row = row[:greLoc[0]]
			} else if greLoc[1] < gpaLoc[0] {
				row = row[gpaLoc[0]:]
			}
		}

		row = yearRe.ReplaceAllString(row, " ")

		// Numbers only count on keyword lines and the line after one.
		if gpaLoc != nil || (lastKeywordIdx >= 0 && idx-lastKeywordIdx <= 1) {
			for _, numStr := range floatRe.FindAllString(row, -1) {
				num := parseFloat(numStr)
				// A half-integer next to a GRE marker is a sub-score
				// (AW 3.5), not a GPA.
				if greLoc != nil && isHalfStep(num) {
					continue
				}
				if num < 0.001 || num > 4.31 {
					continue
				}
				switch {
				case closeTo(num, 4.0) && (strings.Contains(row, "/4.0") || strings.Contains(row, "/ 4.0")):
					scale = 4.0
				case closeTo(num, 4.3) && (strings.Contains(row, "/4.3") || strings.Contains(row, "/ 4.3")):
					scale = 4.3
				default:
					candidates = append(candidates, num)
				}
			}
			// A leading perfect score ("4.3/4.3") reads as scale
			// marker only; credit the poster with the GPA as well.
			if strings.Contains(row, "4.3/") || strings.Contains(row, "4.3 /") {
				candidates = append(candidates, 4.3)
			} else if strings.Contains(row, "4.0/") || strings.Contains(row, "4.0 /") {
				candidates = append(candidates, 4.0)
			}
		}

		if anchor >= 0 && idx-anchor > gpaWindow {
			break
		}
	}

	if len(candidates) == 0 {
		return UnknownGPA
	}

	maxGPA, minGPA, sum := candidates[0], candidates[0], 0.0
	for _, c := range candidates {
		if c > maxGPA {
			maxGPA = c
		}
		if c < minGPA {
			minGPA = c
		}
		sum += c
	}
	mean := math.Round(sum/float64(len(candidates))*100) / 100

	return GPAStats{Max: maxGPA, Min: minGPA, Mean: mean, Scale: scale}
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return -1
	}
	return v
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// isHalfStep reports whether v lies on the GRE sub-score grid
// {1.0, 1.5, ..., 6.0}.
func isHalfStep(v float64) bool {
	if v < 1.0 || v > 6.0 {
		return false
	}
	doubled := v * 2
	return closeTo(doubled, math.Round(doubled))
}
