package cache

import "context"

const schema = `
CREATE TABLE IF NOT EXISTS meta (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS recordings (
    id INTEGER PRIMARY KEY,
    case_number TEXT NOT NULL DEFAULT '',
    title TEXT NOT NULL DEFAULT '',
    date TEXT NOT NULL DEFAULT '',
    court_id INTEGER NOT NULL DEFAULT 0,
    courtroom_id INTEGER NOT NULL DEFAULT 0,
    court TEXT NOT NULL DEFAULT '',
    courtroom TEXT NOT NULL DEFAULT '',
    judge_name TEXT NOT NULL DEFAULT '',
    notes TEXT NOT NULL DEFAULT '',
    transcript TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS courts (
    court_id INTEGER PRIMARY KEY,
    court_name TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS courtrooms (
    courtroom_id INTEGER PRIMARY KEY,
    courtroom_name TEXT NOT NULL DEFAULT '',
    court_id INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY,
    email TEXT NOT NULL DEFAULT '',
    name TEXT NOT NULL DEFAULT '',
    role TEXT NOT NULL DEFAULT ''
);
`

func (s *Store) initSchema(ctx context.Context) error {
	return retryOnBusy(ensureContext(ctx), func() error {
		_, err := s.db.ExecContext(ctx, schema)
		return err
	})
}
