package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// InitSchema creates all necessary tables and indexes.
func InitSchema(db *sql.DB) error {
	if err := createArticlesTable(db); err != nil {
		return err
	}
	if err := createAdmissionUniversitiesTable(db); err != nil {
		return err
	}
	return createAdmissionProgramsTable(db)
}

func createArticlesTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS articles (
		article_id TEXT PRIMARY KEY,
		url TEXT NOT NULL,
		title TEXT NOT NULL,
		author TEXT,
		content TEXT,
		date INTEGER NOT NULL,
		article_type TEXT NOT NULL,
		uni_id TEXT,
		major_id TEXT,
		major_type TEXT,
		max_gpa REAL NOT NULL DEFAULT -1,
		min_gpa REAL NOT NULL DEFAULT -1,
		mean_gpa REAL NOT NULL DEFAULT -1,
		gpa_scale REAL NOT NULL DEFAULT -1
	);
	CREATE INDEX IF NOT EXISTS idx_articles_type ON articles(article_type);
	CREATE INDEX IF NOT EXISTS idx_articles_date ON articles(date);
	CREATE INDEX IF NOT EXISTS idx_articles_uni ON articles(uni_id);
	`

	if _, err := db.ExecContext(context.Background(), query); err != nil {
		return fmt.Errorf("failed to create articles table: %w", err)
	}
	return nil
}

func createAdmissionUniversitiesTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS admission_universities (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		article_id TEXT NOT NULL REFERENCES articles(article_id) ON DELETE CASCADE,
		university TEXT NOT NULL,
		UNIQUE(article_id, university)
	);
	CREATE INDEX IF NOT EXISTS idx_adm_unis_article ON admission_universities(article_id);
	`

	if _, err := db.ExecContext(context.Background(), query); err != nil {
		return fmt.Errorf("failed to create admission_universities table: %w", err)
	}
	return nil
}

func createAdmissionProgramsTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS admission_programs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		article_id TEXT NOT NULL REFERENCES articles(article_id) ON DELETE CASCADE,
		level TEXT,
		name TEXT,
		type TEXT,
		university TEXT NOT NULL,
		UNIQUE(article_id, university, name)
	);
	CREATE INDEX IF NOT EXISTS idx_adm_programs_article ON admission_programs(article_id);
	CREATE INDEX IF NOT EXISTS idx_adm_programs_type ON admission_programs(type);
	`

	if _, err := db.ExecContext(context.Background(), query); err != nil {
		return fmt.Errorf("failed to create admission_programs table: %w", err)
	}
	return nil
}
