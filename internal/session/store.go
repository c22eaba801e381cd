// Package session persists backend session cookies in a local SQLite database.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/Veraticus/wardrobe/internal/common"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Store implements service.SessionStore using SQLite.
type Store struct {
	db     *sql.DB
	dbPath string
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source Load uses to skip expired cookies.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Open opens (creating if needed) the session database at dbPath and migrates it.
func Open(ctx context.Context, dbPath string, opts ...Option) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("%w: session database path", common.ErrMissingConfig)
	}

	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
			return nil, fmt.Errorf("failed to create session directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	// A single connection keeps :memory: databases alive across calls.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping session database: %w", err)
	}

	s := &Store{db: db, dbPath: dbPath, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// NewWithDB wraps an already-open database. The caller is responsible for migrating it.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save replaces the stored cookies for host.
func (s *Store) Save(ctx context.Context, host string, cookies []*http.Cookie) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM session_cookies WHERE host = ?`, host); err != nil {
		return fmt.Errorf("failed to clear previous session: %w", err)
	}

	savedAt := s.now().Unix()
	for _, ck := range cookies {
		if ck == nil || ck.Name == "" {
			continue
		}

		var expires sql.NullInt64
		if !ck.Expires.IsZero() {
			expires = sql.NullInt64{Int64: ck.Expires.Unix(), Valid: true}
		}

		path := ck.Path
		if path == "" {
			path = "/"
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO session_cookies (host, name, value, path, expires_at, saved_at) VALUES (?, ?, ?, ?, ?, ?)`,
			host, ck.Name, ck.Value, path, expires, savedAt); err != nil {
			return fmt.Errorf("failed to save cookie %q: %w", ck.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session: %w", err)
	}
	return nil
}

// Load returns the unexpired cookies saved for host, or common.ErrNoSession.
func (s *Store) Load(ctx context.Context, host string) ([]*http.Cookie, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, value, path, expires_at FROM session_cookies WHERE host = ? ORDER BY name`, host)
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	now := s.now()
	var cookies []*http.Cookie
	for rows.Next() {
		var (
			ck      http.Cookie
			expires sql.NullInt64
		)
		if err := rows.Scan(&ck.Name, &ck.Value, &ck.Path, &expires); err != nil {
			return nil, fmt.Errorf("failed to scan cookie: %w", err)
		}
		if expires.Valid {
			ck.Expires = time.Unix(expires.Int64, 0)
			if !ck.Expires.After(now) {
				continue
			}
		}
		cookies = append(cookies, &ck)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	if len(cookies) == 0 {
		return nil, common.ErrNoSession
	}
	return cookies, nil
}

// Clear removes the saved session for host.
func (s *Store) Clear(ctx context.Context, host string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session_cookies WHERE host = ?`, host); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
