package favorites

import (
	"context"
	"database/sql"
	stderrors "errors"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/KirkDiggler/pokedex/internal/errors"
)

const createKVTable = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// SQLiteStore is a file-backed key/value table. It owns the database handle.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the SQLite database at path
func OpenSQLite(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite db")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close() // nolint:errcheck // already failing
		return nil, errors.Wrap(err, "failed to ping sqlite db")
	}
	if _, err := db.Exec(createKVTable); err != nil {
		_ = db.Close() // nolint:errcheck // already failing
		return nil, errors.Wrap(err, "failed to create kv table")
	}

	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying connection
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

type sqliteRepository struct {
	store *SQLiteStore
	key   string
}

// SQLiteConfig contains configuration for the SQLite favorites repository.
type SQLiteConfig struct {
	Store *SQLiteStore
	// Key (optional, defaults to DefaultKey)
	Key string
}

// Validate validates the SQLiteConfig.
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Store == nil || cfg.Store.db == nil {
		return errors.InvalidArgument("store cannot be nil")
	}
	if cfg.Key == "" {
		cfg.Key = DefaultKey
	}
	return nil
}

// NewSQLite creates a new SQLite-backed favorites repository
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &sqliteRepository{
		store: cfg.Store,
		key:   cfg.Key,
	}, nil
}

func (r *sqliteRepository) Load(ctx context.Context) (*LoadOutput, error) {
	var value string
	err := r.store.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, r.key).Scan(&value)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return &LoadOutput{IDs: []int{}}, nil
		}
		return nil, errors.Wrapf(err, "failed to load favorites from %s", r.key)
	}

	ids, err := decodeIDs(r.key, []byte(value))
	if err != nil {
		return nil, err
	}
	return &LoadOutput{IDs: ids}, nil
}

func (r *sqliteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	data, err := encodeIDs(input.IDs)
	if err != nil {
		return nil, err
	}

	_, err = r.store.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		r.key, string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save favorites to %s", r.key)
	}
	return &SaveOutput{}, nil
}
