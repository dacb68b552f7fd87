package db

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/urnik/internal/timetable"
)

func TestLoadSnapshot_Empty(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.LoadSnapshot(context.Background())
	if !errors.Is(err, timetable.ErrNoSnapshot) {
		t.Fatalf("err = %v, want ErrNoSnapshot", err)
	}
}

func TestSaveSnapshot_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	fetchedAt := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)
	entries := []timetable.Entry{
		{
			Day: 0, StartHour: 9, Duration: 2,
			Professor: "Dr. Novak", Classroom: "P1",
			Subject: timetable.Subject{Name: "Algorithms", Abbreviation: "ALG", Location: "FRI", Type: "Lecture"},
		},
		{
			Day: 2, StartHour: 14, Duration: 1,
			Subject: timetable.Subject{Name: "DB"},
		},
	}

	err := repo.SaveSnapshot(ctx, timetable.Snapshot{
		Endpoint:  "http://localhost:8080/timetable",
		FetchedAt: fetchedAt,
		Entries:   entries,
	})
	if err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	got, err := repo.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if got.Endpoint != "http://localhost:8080/timetable" {
		t.Errorf("endpoint = %q", got.Endpoint)
	}
	if !got.FetchedAt.Equal(fetchedAt) {
		t.Errorf("fetched at = %v, want %v", got.FetchedAt, fetchedAt)
	}
	if !reflect.DeepEqual(got.Entries, entries) {
		t.Errorf("entries = %+v, want %+v", got.Entries, entries)
	}
}

func TestSaveSnapshot_ReplacesPreviousSet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := []timetable.Entry{
		{Day: 0, StartHour: 8, Duration: 1, Subject: timetable.Subject{Name: "Old A"}},
		{Day: 1, StartHour: 8, Duration: 1, Subject: timetable.Subject{Name: "Old B"}},
		{Day: 2, StartHour: 8, Duration: 1, Subject: timetable.Subject{Name: "Old C"}},
	}
	second := []timetable.Entry{
		{Day: 4, StartHour: 12, Duration: 3, Subject: timetable.Subject{Name: "New"}},
	}

	if err := repo.SaveSnapshot(ctx, timetable.Snapshot{Endpoint: "a", FetchedAt: time.Now(), Entries: first}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := repo.SaveSnapshot(ctx, timetable.Snapshot{Endpoint: "b", FetchedAt: time.Now(), Entries: second}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := repo.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if got.Endpoint != "b" {
		t.Errorf("endpoint = %q, want b", got.Endpoint)
	}
	if !reflect.DeepEqual(got.Entries, second) {
		t.Errorf("entries = %+v, want %+v", got.Entries, second)
	}
}

func TestSaveSnapshot_EmptySet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.SaveSnapshot(ctx, timetable.Snapshot{Endpoint: "a", FetchedAt: time.Now()}); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	got, err := repo.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if got.Entries == nil || len(got.Entries) != 0 {
		t.Errorf("entries = %v, want empty slice", got.Entries)
	}
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "urnik.db")

	repo, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	_ = repo.Close()

	if _, err := Open(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestLoadSnapshot_FetchedAtInLocalTime(t *testing.T) {
	prev := time.Local
	time.Local = time.FixedZone("JST", 9*3600)
	t.Cleanup(func() { time.Local = prev })

	repo := newTestRepo(t)
	ctx := context.Background()

	// Just after local midnight is still the previous day in UTC.
	fetchedAt := time.Date(2025, 3, 5, 0, 30, 0, 0, time.Local)
	if err := repo.SaveSnapshot(ctx, timetable.Snapshot{Endpoint: "a", FetchedAt: fetchedAt}); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	got, err := repo.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if !got.FetchedAt.Equal(fetchedAt) {
		t.Fatalf("fetched at = %v, want %v", got.FetchedAt, fetchedAt)
	}
	if got.FetchedAt.Location() != time.Local {
		t.Fatalf("location = %v, want local", got.FetchedAt.Location())
	}
	if y, m, d := got.FetchedAt.Date(); y != 2025 || m != time.March || d != 5 {
		t.Fatalf("date = %d-%02d-%02d, want local 2025-03-05", y, m, d)
	}
	if got.FetchedAt.Hour() != 0 || got.FetchedAt.Minute() != 30 {
		t.Fatalf("clock = %s, want 00:30", got.FetchedAt.Format("15:04"))
	}
}

func TestNew_ClosesDatabaseOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.db")
	junk := strings.Repeat("this is not a sqlite database file ", 32)
	if err := os.WriteFile(path, []byte(junk), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := newStore(db); err == nil {
		t.Fatal("expected setup to fail on a non-database file")
	}
	if err := db.Ping(); err == nil || !strings.Contains(err.Error(), "database is closed") {
		t.Fatalf("Ping after failed setup = %v, want closed database", err)
	}

	if _, err := New(t.TempDir()); err == nil {
		t.Fatal("expected error for a directory path")
	}
}

func newTestRepo(t *testing.T) *SQLite {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	repo, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create test repo: %v", err)
	}

	t.Cleanup(func() {
		_ = repo.Close()
	})

	return repo
}
