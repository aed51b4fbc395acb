package storage

import "time"

// Article is one stored board post plus the background extracted from
// its body. GPA fields use -1 when extraction found nothing.
type Article struct {
	ID        string    `json:"article_id"`
	URL       string    `json:"url"`
	Title     string    `json:"article_title"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Date      time.Time `json:"date"`
	Type      string    `json:"article_type"`
	UniID     string    `json:"uni_id,omitempty"`
	MajorID   string    `json:"major_id,omitempty"`
	MajorType string    `json:"major_type,omitempty"`
	MaxGPA    float64   `json:"max_gpa"`
	MinGPA    float64   `json:"min_gpa"`
	MeanGPA   float64   `json:"mean_gpa"`
	GPAScale  float64   `json:"gpa_scale"`
}

// AdmissionUniversity is one admitted-to school mentioned by a post.
type AdmissionUniversity struct {
	ArticleID  string `json:"article_id"`
	University string `json:"university"`
}

// AdmissionProgram is one resolved (level, program, university) triple
// for a post. Name holds the canonical short form; Type is the program
// family (CS, EE, ...), "N/A" when the post names no program.
type AdmissionProgram struct {
	ArticleID  string `json:"article_id"`
	Level      string `json:"level"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	University string `json:"university"`
}

// ProgramRow is one row of the scoring corpus: an article joined with
// one of its admission programs.
type ProgramRow struct {
	ArticleID   string
	URL         string
	Title       string
	Date        time.Time
	Type        string
	UniID       string
	MajorID     string
	MajorType   string
	MaxGPA      float64
	MinGPA      float64
	MeanGPA     float64
	GPAScale    float64
	Level       string
	Program     string
	ProgramType string
	University  string
}
