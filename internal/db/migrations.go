package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS snapshot (
			id         INTEGER PRIMARY KEY CHECK(id = 1),
			endpoint   TEXT NOT NULL,
			fetched_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS entries (
			position             INTEGER PRIMARY KEY,
			day                  INTEGER NOT NULL,
			start_hour           INTEGER NOT NULL,
			duration             INTEGER NOT NULL,
			professor            TEXT NOT NULL DEFAULT '',
			classroom            TEXT NOT NULL DEFAULT '',
			subject_name         TEXT NOT NULL,
			subject_abbreviation TEXT NOT NULL DEFAULT '',
			subject_location     TEXT NOT NULL DEFAULT '',
			subject_type         TEXT NOT NULL DEFAULT ''
		);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating snapshot tables: %w", err)
	}

	return nil
}
