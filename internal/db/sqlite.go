// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/urnik/internal/timetable"
)

// SQLite implements timetable.SnapshotStore using SQLite.
type SQLite struct {
	db *sql.DB
}

var _ timetable.SnapshotStore = (*SQLite)(nil)

// New creates a new SQLite store and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return newStore(db)
}

// newStore takes ownership of db and closes it when setup fails.
func newStore(db *sql.DB) (*SQLite, error) {
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Open creates the parent directory of path and opens the store.
func Open(path string) (*SQLite, error) {
	if path == "" {
		return nil, errors.New("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return New(path)
}

// SaveSnapshot replaces the stored entry set in one transaction.
func (s *SQLite) SaveSnapshot(ctx context.Context, snap timetable.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("clearing entries: %w", err)
	}

	query := `
		INSERT INTO entries (
			position, day, start_hour, duration, professor, classroom,
			subject_name, subject_abbreviation, subject_location, subject_type
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, e := range snap.Entries {
		_, err := stmt.ExecContext(ctx,
			i,
			e.Day,
			e.StartHour,
			e.Duration,
			e.Professor,
			e.Classroom,
			e.Subject.Name,
			e.Subject.Abbreviation,
			e.Subject.Location,
			e.Subject.Type,
		)
		if err != nil {
			return fmt.Errorf("inserting entry %q: %w", e.Subject.Name, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO snapshot (id, endpoint, fetched_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET endpoint = excluded.endpoint, fetched_at = excluded.fetched_at
	`, snap.Endpoint, snap.FetchedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("updating snapshot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// LoadSnapshot returns the stored entry set in its original order.
func (s *SQLite) LoadSnapshot(ctx context.Context) (*timetable.Snapshot, error) {
	var (
		snap      timetable.Snapshot
		fetchedAt string
	)

	err := s.db.QueryRowContext(ctx, `SELECT endpoint, fetched_at FROM snapshot WHERE id = 1`).
		Scan(&snap.Endpoint, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, timetable.ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("querying snapshot: %w", err)
	}

	// Stored in UTC; callers compare against local wall-clock time.
	at, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing fetched at: %w", err)
	}
	snap.FetchedAt = at.In(time.Local)

	rows, err := s.db.QueryContext(ctx, `
		SELECT day, start_hour, duration, professor, classroom,
		       subject_name, subject_abbreviation, subject_location, subject_type
		FROM entries
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	snap.Entries = []timetable.Entry{}
	for rows.Next() {
		var e timetable.Entry
		if err := rows.Scan(
			&e.Day,
			&e.StartHour,
			&e.Duration,
			&e.Professor,
			&e.Classroom,
			&e.Subject.Name,
			&e.Subject.Abbreviation,
			&e.Subject.Location,
			&e.Subject.Type,
		); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		snap.Entries = append(snap.Entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}

	return &snap, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}
