package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// ExecBatchContext runs fn with a prepared statement inside a single
// transaction. Batching keeps lock contention down while the pipeline
// writes thousands of rows.
func (db *DB) ExecBatchContext(ctx context.Context, query string, fn func(stmt *sql.Stmt) error) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin batch: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare batch: %w", err)
	}
	defer stmt.Close()

	if err := fn(stmt); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// SaveArticlesBatch inserts or updates articles in one transaction.
func (db *DB) SaveArticlesBatch(ctx context.Context, articles []*Article) error {
	if len(articles) == 0 {
		return nil
	}

	query := `
		INSERT INTO articles (article_id, url, title, author, content, date, article_type,
			uni_id, major_id, major_type, max_gpa, min_gpa, mean_gpa, gpa_scale)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(article_id) DO UPDATE SET
			url = excluded.url,
			title = excluded.title,
			author = excluded.author,
			content = excluded.content,
			date = excluded.date,
			article_type = excluded.article_type,
			uni_id = excluded.uni_id,
			major_id = excluded.major_id,
			major_type = excluded.major_type,
			max_gpa = excluded.max_gpa,
			min_gpa = excluded.min_gpa,
			mean_gpa = excluded.mean_gpa,
			gpa_scale = excluded.gpa_scale
	`

	start := time.Now()
	err := db.ExecBatchContext(ctx, query, func(stmt *sql.Stmt) error {
		for _, a := range articles {
			if _, err := stmt.ExecContext(ctx, a.ID, a.URL, a.Title, a.Author, a.Content,
				a.Date.Unix(), a.Type, a.UniID, a.MajorID, a.MajorType,
				a.MaxGPA, a.MinGPA, a.MeanGPA, a.GPAScale); err != nil {
				slog.ErrorContext(ctx, "failed to save article in batch",
					"article_id", a.ID,
					"error", err)
				return fmt.Errorf("failed to save article %s: %w", a.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if duration := time.Since(start); duration > 500*time.Millisecond {
		slog.WarnContext(ctx, "slow batch operation",
			"operation", "SaveArticlesBatch",
			"count", len(articles),
			"duration_ms", duration.Milliseconds())
	}
	return nil
}

// SaveAdmissionUniversitiesBatch inserts admitted-to universities,
// skipping duplicates for the same article.
func (db *DB) SaveAdmissionUniversitiesBatch(ctx context.Context, rows []*AdmissionUniversity) error {
	if len(rows) == 0 {
		return nil
	}

	query := `
		INSERT INTO admission_universities (article_id, university)
		VALUES (?, ?)
		ON CONFLICT(article_id, university) DO NOTHING
	`

	return db.ExecBatchContext(ctx, query, func(stmt *sql.Stmt) error {
		for _, r := range rows {
			if _, err := stmt.ExecContext(ctx, r.ArticleID, r.University); err != nil {
				return fmt.Errorf("failed to save admission university for %s: %w", r.ArticleID, err)
			}
		}
		return nil
	})
}

// SaveAdmissionProgramsBatch inserts resolved program pairs. A post
// admits to one program per (university, name); repeats differing only
// in level are dropped.
func (db *DB) SaveAdmissionProgramsBatch(ctx context.Context, rows []*AdmissionProgram) error {
	if len(rows) == 0 {
		return nil
	}

	query := `
		INSERT INTO admission_programs (article_id, level, name, type, university)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(article_id, university, name) DO NOTHING
	`

	return db.ExecBatchContext(ctx, query, func(stmt *sql.Stmt) error {
		for _, r := range rows {
			if _, err := stmt.ExecContext(ctx, r.ArticleID, r.Level, r.Name, r.Type, r.University); err != nil {
				return fmt.Errorf("failed to save admission program for %s: %w", r.ArticleID, err)
			}
		}
		return nil
	})
}

// GetArticleByID retrieves a single article, or nil when absent.
func (db *DB) GetArticleByID(ctx context.Context, id string) (*Article, error) {
	query := `
		SELECT article_id, url, title, author, content, date, article_type,
			uni_id, major_id, major_type, max_gpa, min_gpa, mean_gpa, gpa_scale
		FROM articles WHERE article_id = ?
	`

	var (
		a    Article
		date int64
	)
	err := db.conn.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.URL, &a.Title, &a.Author, &a.Content, &date, &a.Type,
		&a.UniID, &a.MajorID, &a.MajorType, &a.MaxGPA, &a.MinGPA, &a.MeanGPA, &a.GPAScale,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query article: %w", err)
	}
	a.Date = time.Unix(date, 0).UTC()
	return &a, nil
}

// CountArticlesByType returns how many stored articles carry each type.
func (db *DB) CountArticlesByType(ctx context.Context) (map[string]int, error) {
	rows, err := db.conn.QueryContext(ctx, `SELECT article_type, COUNT(*) FROM articles GROUP BY article_type`)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var (
			typ string
			n   int
		)
		if err := rows.Scan(&typ, &n); err != nil {
			return nil, fmt.Errorf("scan article count: %w", err)
		}
		counts[typ] = n
	}
	return counts, rows.Err()
}

// LoadProgramRows loads the scoring corpus: every admission program
// joined with its article. articleTypes and programTypes narrow the
// corpus when non-empty.
func (db *DB) LoadProgramRows(ctx context.Context, articleTypes, programTypes []string) ([]ProgramRow, error) {
	builder := sq.Select(
		"a.article_id", "a.url", "a.title", "a.date", "a.article_type",
		"a.uni_id", "a.major_id", "a.major_type",
		"a.max_gpa", "a.min_gpa", "a.mean_gpa", "a.gpa_scale",
		"p.level", "p.name", "p.type", "p.university",
	).
		From("admission_programs p").
		Join("articles a ON a.article_id = p.article_id")

	if len(articleTypes) > 0 {
		builder = builder.Where(sq.Eq{"a.article_type": articleTypes})
	}
	if len(programTypes) > 0 {
		builder = builder.Where(sq.Eq{"p.type": programTypes})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build program rows query: %w", err)
	}

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query program rows: %w", err)
	}
	defer rows.Close()

	var out []ProgramRow
	for rows.Next() {
		var (
			r    ProgramRow
			date int64
		)
		if err := rows.Scan(
			&r.ArticleID, &r.URL, &r.Title, &date, &r.Type,
			&r.UniID, &r.MajorID, &r.MajorType,
			&r.MaxGPA, &r.MinGPA, &r.MeanGPA, &r.GPAScale,
			&r.Level, &r.Program, &r.ProgramType, &r.University,
		); err != nil {
			return nil, fmt.Errorf("scan program row: %w", err)
		}
		r.Date = time.Unix(date, 0).UTC()
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if duration := time.Since(start); duration > 100*time.Millisecond {
		slog.WarnContext(ctx, "slow database operation",
			"operation", "LoadProgramRows",
			"rows", len(out),
			"duration_ms", duration.Milliseconds())
	}
	return out, nil
}
