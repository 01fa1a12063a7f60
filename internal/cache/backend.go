package cache

import (
	"context"

	"gavel/internal/courtapi"
)

// The snapshot doubles as a read-only catalog backend so offline mode
// can reuse the regular catalog loading path.

// ListRecordings returns the snapshot's recordings.
func (s Snapshot) ListRecordings(ctx context.Context) ([]courtapi.Recording, error) {
	return s.Recordings, nil
}

// ListCourts returns the snapshot's courts.
func (s Snapshot) ListCourts(ctx context.Context) ([]courtapi.Court, error) {
	return s.Courts, nil
}

// ListCourtrooms returns the snapshot's courtrooms.
func (s Snapshot) ListCourtrooms(ctx context.Context) ([]courtapi.Courtroom, error) {
	return s.Courtrooms, nil
}

// ListUsers returns the snapshot's user directory.
func (s Snapshot) ListUsers(ctx context.Context) ([]courtapi.User, error) {
	return s.Users, nil
}
