package sqlite

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/conversekit/luisc/pkg/luisc/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled and the build
// schema initialized.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS builds (
	id TEXT PRIMARY KEY,
	app_name TEXT NOT NULL,
	culture TEXT NOT NULL,
	schema_version TEXT NOT NULL,
	created_at TEXT NOT NULL,
	intent_count INTEGER NOT NULL,
	utterance_count INTEGER NOT NULL,
	model_json TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_builds_app ON builds(app_name);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveBuild records a build, replacing any existing row with the same ID.
func (s *sqliteStore) SaveBuild(ctx context.Context, b store.Build) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO builds (id, app_name, culture, schema_version, created_at, intent_count, utterance_count, model_json)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	app_name = excluded.app_name,
	culture = excluded.culture,
	schema_version = excluded.schema_version,
	created_at = excluded.created_at,
	intent_count = excluded.intent_count,
	utterance_count = excluded.utterance_count,
	model_json = excluded.model_json`,
		b.ID, b.AppName, b.Culture, b.SchemaVersion,
		b.CreatedAt.UTC().Format(time.RFC3339Nano),
		b.IntentCount, b.UtteranceCount, b.ModelJSON)
	return err
}

// GetBuild returns a build by ID.
func (s *sqliteStore) GetBuild(ctx context.Context, id string) (store.Build, bool, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, app_name, culture, schema_version, created_at, intent_count, utterance_count, model_json
FROM builds WHERE id = ?`, id)

	b, err := scanBuild(row)
	if err == sql.ErrNoRows {
		return store.Build{}, false, nil
	}
	if err != nil {
		return store.Build{}, false, err
	}
	return b, true, nil
}

// ListBuilds returns up to limit builds, newest first.
func (s *sqliteStore) ListBuilds(ctx context.Context, limit int) ([]store.Build, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT id, app_name, culture, schema_version, created_at, intent_count, utterance_count, model_json
FROM builds ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Build
	for rows.Next() {
		b, err := scanBuild(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBuild(row rowScanner) (store.Build, error) {
	var b store.Build
	var createdAt string
	if err := row.Scan(&b.ID, &b.AppName, &b.Culture, &b.SchemaVersion,
		&createdAt, &b.IntentCount, &b.UtteranceCount, &b.ModelJSON); err != nil {
		return store.Build{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return store.Build{}, err
	}
	b.CreatedAt = t
	return b, nil
}
