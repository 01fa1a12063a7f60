package cache

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gavel/internal/courtapi"
)

const savedAtKey = "saved_at"

// SaveSnapshot replaces the stored snapshot with the given collections.
// The write holds the cache file lock so concurrent invocations cannot
// interleave their transactions.
func (s *Store) SaveSnapshot(ctx context.Context, snap Snapshot) error {
	ctx = ensureContext(ctx)

	locked, err := s.lock.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return fmt.Errorf("acquire cache lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("acquire cache lock: another process holds it")
	}
	defer func() { _ = s.lock.Unlock() }()

	return retryOnBusy(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin snapshot transaction: %w", err)
		}
		if err := writeSnapshot(ctx, tx, snap); err != nil {
			_ = tx.Rollback()
			return err
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit snapshot: %w", err)
		}
		return nil
	})
}

func writeSnapshot(ctx context.Context, tx *sql.Tx, snap Snapshot) error {
	for _, table := range []string{"recordings", "courts", "courtrooms", "users"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, rec := range snap.Recordings {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO recordings (id, case_number, title, date, court_id, courtroom_id, court, courtroom, judge_name, notes, transcript)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.ID, rec.CaseNumber, rec.Title, rec.Date, rec.CourtID, rec.CourtroomID,
			rec.Court, rec.Courtroom, rec.JudgeName, rec.Notes, rec.Transcript)
		if err != nil {
			return fmt.Errorf("insert recording %d: %w", rec.ID, err)
		}
	}
	for _, court := range snap.Courts {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO courts (court_id, court_name) VALUES (?, ?)", court.ID, court.Name)
		if err != nil {
			return fmt.Errorf("insert court %d: %w", court.ID, err)
		}
	}
	for _, room := range snap.Courtrooms {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO courtrooms (courtroom_id, courtroom_name, court_id) VALUES (?, ?, ?)",
			room.ID, room.Name, room.CourtID)
		if err != nil {
			return fmt.Errorf("insert courtroom %d: %w", room.ID, err)
		}
	}
	for _, user := range snap.Users {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO users (id, email, name, role) VALUES (?, ?, ?, ?)",
			user.ID, user.Email, user.Name, string(user.Role))
		if err != nil {
			return fmt.Errorf("insert user %d: %w", user.ID, err)
		}
	}

	savedAt := snap.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now().UTC()
	}
	_, err := tx.ExecContext(ctx,
		"INSERT INTO meta (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		savedAtKey, savedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("record snapshot time: %w", err)
	}
	return nil
}

// LoadSnapshot reads the stored snapshot. ErrNoSnapshot is returned
// when the cache has never been written.
func (s *Store) LoadSnapshot(ctx context.Context) (Snapshot, error) {
	ctx = ensureContext(ctx)

	var snap Snapshot
	var savedAt string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM meta WHERE key = ?", savedAtKey).Scan(&savedAt)
	if err == sql.ErrNoRows {
		return Snapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("read snapshot time: %w", err)
	}
	if ts, parseErr := time.Parse(time.RFC3339, savedAt); parseErr == nil {
		snap.SavedAt = ts
	}

	if snap.Recordings, err = s.loadRecordings(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Courts, err = s.loadCourts(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Courtrooms, err = s.loadCourtrooms(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Users, err = s.loadUsers(ctx); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (s *Store) loadRecordings(ctx context.Context) ([]courtapi.Recording, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, case_number, title, date, court_id, courtroom_id, court, courtroom, judge_name, notes, transcript
         FROM recordings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load recordings: %w", err)
	}
	defer rows.Close()

	var recordings []courtapi.Recording
	for rows.Next() {
		var rec courtapi.Recording
		if err := rows.Scan(&rec.ID, &rec.CaseNumber, &rec.Title, &rec.Date, &rec.CourtID, &rec.CourtroomID,
			&rec.Court, &rec.Courtroom, &rec.JudgeName, &rec.Notes, &rec.Transcript); err != nil {
			return nil, fmt.Errorf("scan recording: %w", err)
		}
		recordings = append(recordings, rec)
	}
	return recordings, rows.Err()
}

func (s *Store) loadCourts(ctx context.Context) ([]courtapi.Court, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT court_id, court_name FROM courts ORDER BY court_id")
	if err != nil {
		return nil, fmt.Errorf("load courts: %w", err)
	}
	defer rows.Close()

	var courts []courtapi.Court
	for rows.Next() {
		var court courtapi.Court
		if err := rows.Scan(&court.ID, &court.Name); err != nil {
			return nil, fmt.Errorf("scan court: %w", err)
		}
		courts = append(courts, court)
	}
	return courts, rows.Err()
}

func (s *Store) loadCourtrooms(ctx context.Context) ([]courtapi.Courtroom, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT courtroom_id, courtroom_name, court_id FROM courtrooms ORDER BY courtroom_id")
	if err != nil {
		return nil, fmt.Errorf("load courtrooms: %w", err)
	}
	defer rows.Close()

	var rooms []courtapi.Courtroom
	for rows.Next() {
		var room courtapi.Courtroom
		if err := rows.Scan(&room.ID, &room.Name, &room.CourtID); err != nil {
			return nil, fmt.Errorf("scan courtroom: %w", err)
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

func (s *Store) loadUsers(ctx context.Context) ([]courtapi.User, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, email, name, role FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	defer rows.Close()

	var users []courtapi.User
	for rows.Next() {
		var user courtapi.User
		var role string
		if err := rows.Scan(&user.ID, &user.Email, &user.Name, &role); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		user.Role = courtapi.Role(role)
		users = append(users, user)
	}
	return users, rows.Err()
}
