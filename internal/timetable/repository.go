package timetable

import (
	"context"
	"errors"
	"time"
)

// ErrNoSnapshot is returned when no entry set has been stored yet.
var ErrNoSnapshot = errors.New("no stored timetable")

// Snapshot is the last entry set fetched successfully.
type Snapshot struct {
	Endpoint  string
	FetchedAt time.Time
	Entries   []Entry
}

// SnapshotStore persists the last good entry set between runs.
type SnapshotStore interface {
	// SaveSnapshot replaces the stored entry set.
	SaveSnapshot(ctx context.Context, s Snapshot) error

	// LoadSnapshot returns the stored entry set or ErrNoSnapshot.
	LoadSnapshot(ctx context.Context) (*Snapshot, error)

	// Close releases any resources held by the store.
	Close() error
}
