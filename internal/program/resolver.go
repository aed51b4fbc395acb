// Package program resolves graduate program levels and names from free
// text fragments and normalizes raw program names into their canonical
// short forms (e.g. "Master of Science in Computer Science" -> "MSCS").
package program

import (
	"strings"

	"github.com/alvinbhou/ptt-studyabroad-api/internal/refdata"
)

// LevelMS and LevelPhD are the canonical program levels.
const (
	LevelMS  = "MS"
	LevelPhD = "PhD"
)

// Match is the result of a program search on a fragment. Empty fields
// mean the token was not present; absence is a normal outcome, not an
// error.
type Match struct {
	Level string // "MS", "PhD" or ""
	Name  string // raw vocabulary token as matched, or ""
}

// Resolver matches program tokens against the loaded vocabulary.
type Resolver struct {
	table refdata.ProgramTable
}

// NewResolver creates a resolver over the given reference tables.
func NewResolver(tables *refdata.Tables) *Resolver {
	return &Resolver{table: tables.Programs}
}

// Search scans fragment for a program level and a program name, both as
// whitespace-delimited tokens, and returns the match together with the
// fragment stripped of the matched tokens. The stripped remainder is
// what a university search should run on, so program tokens do not get
// mistaken for school names.
//
// When both an MS and a PhD token appear in the same fragment the level
// is forced to MS: the post is read as "applied PhD, admitted MS". The
// inverse case is not special-cased.
func (r *Resolver) Search(fragment string) (Match, string) {
	row := " " + fragment + " "

	var level, name string
	if strings.Contains(row, " MS ") && strings.Contains(row, " PhD ") {
		level = "MS"
	} else {
		for _, lv := range r.table.Levels {
			if strings.Contains(row, " "+lv+" ") {
				level = lv
				break
			}
		}
	}

	// First vocabulary match wins; the table is ordered so longer and
	// more specific tokens are tried before their substrings.
	for _, p := range r.table.Programs {
		if strings.Contains(row, " "+p+" ") {
			name = p
			break
		}
	}

	// Name strips first: multi-word names ("Master of Computer
	// Science") contain the level token and must go out whole.
	if name != "" {
		row = strings.ReplaceAll(row, " "+name+" ", " ")
	}
	if level != "" {
		row = strings.ReplaceAll(row, " "+level+" ", " ")
	}

	if level != "" {
		if strings.HasPrefix(level, "P") {
			level = LevelPhD
		} else {
			level = LevelMS
		}
	}

	// A master's-only program implies MS even without a level token.
	if name != "" && level == "" && r.table.Masters[name] {
		level = LevelMS
	}

	return Match{Level: level, Name: name}, strings.TrimSpace(row)
}

// TypeOf returns the coarse program type for a raw vocabulary name, or
// "" when the name is not in the vocabulary.
func (r *Resolver) TypeOf(name string) string {
	return r.table.TypeOf[name]
}

// Normalize rewrites a raw program name into its canonical short form,
// keyed by the program's coarse type. Pure and deterministic;
// normalizing an already-canonical name returns it unchanged.
func (r *Resolver) Normalize(level, name string) string {
	if name == "" {
		return ""
	}

	// Literal overrides, independent of type.
	switch name {
	case "MSIT-Mob":
		return "MSIT-MOB"
	case "MS in Machine Learning":
		return "MSML"
	}

	switch r.table.TypeOf[name] {
	case "MEng":
		return "MEng"

	case "SE":
		collapsed := strings.ReplaceAll(name, " ", "")
		switch collapsed {
		case "MSE", "SiliconValley", "SV-SE", "SE", "SoftwareEngineering":
			return "MSSE"
		}
		return collapsed

	case "IS":
		switch name {
		case "Information Management", "MSIM":
			return "MSIM"
		case "Master of Science in Information", "Information System", "IS":
			return "MSIS"
		}
		return strings.ReplaceAll(name, " ", "")

	case "HCI":
		switch name {
		case "Human-Centered Design and Engineering", "MCDE":
			return "MCDE"
		}
		return "MHCI"

	case "EE":
		if level == LevelMS {
			if name == "MSECE" || name == "MS ECE" {
				return "MS ECE"
			}
			return "MSEE"
		}
		return "EE"

	case "CS":
		name = strings.TrimPrefix(name, "CMU ")
		switch name {
		case "MSCS", "MS CS", "Master of Science in Computer Science", "MS in CS":
			return "MSCS"
		case "Computer Science", "CS", "CSE":
			if level == LevelMS {
				return "MSCS"
			}
			return "CS"
		case "Professional CS", "MCS", "Master of Computer Science":
			return "MCS"
		case "EE CS", "EECS":
			if level == LevelMS {
				return "MS EECS"
			}
			return "EECS"
		case "CV", "Computer Vision":
			if level == LevelMS {
				return "MSCV"
			}
			return "CV"
		}
		return name
	}

	return name
}
