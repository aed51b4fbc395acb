package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// RawArticle is one crawled post as it appears in the articles dump.
type RawArticle struct {
	ArticleID string `json:"article_id"`
	URL       string `json:"url"`
	Title     string `json:"article_title"`
	Author    string `json:"author"`
	Date      string `json:"date"`
	Content   string `json:"content"`
}

// board post header date, e.g. "Tue Mar 10 02:33:10 2020"
const postDateLayout = "Mon Jan 2 15:04:05 2006"

// epochDate stands in for dates the board mangled; it sorts last so
// undated posts never outrank dated ones.
var epochDate = time.Unix(0, 0).UTC()

// LoadArticles reads the crawled articles dump. Posts repeating an
// already-seen article id are dropped, first occurrence wins; the
// second return value counts the drops.
func LoadArticles(path string) ([]RawArticle, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read articles dump: %w", err)
	}

	var raw []RawArticle
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("parse articles dump: %w", err)
	}

	seen := make(map[string]bool, len(raw))
	out := raw[:0]
	for _, a := range raw {
		if a.ArticleID == "" || seen[a.ArticleID] {
			continue
		}
		seen[a.ArticleID] = true
		out = append(out, a)
	}
	return out, len(raw) - len(out), nil
}

// ParseDate parses a post header date, falling back to the epoch when
// the header is mangled.
func ParseDate(s string) time.Time {
	t, err := time.Parse(postDateLayout, s)
	if err != nil {
		return epochDate
	}
	return t.UTC()
}
