// Package store persists named drafts in a SQLite database.
//
// Drafts are stored as raw content JSON, so a saved document reloads with its
// block types, depths and inline styles intact.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // pure Go driver, registers "sqlite"

	"github.com/iw2rmb/inkwell/richtext"
)

var (
	ErrNotFound    = errors.New("draft not found")
	ErrInvalidName = errors.New("invalid draft name")
)

const schema = `
CREATE TABLE IF NOT EXISTS drafts (
	name       TEXT PRIMARY KEY,
	raw        TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS drafts_updated_at ON drafts(updated_at);
`

// Draft describes a stored draft without its content.
type Draft struct {
	Name      string
	UpdatedAt time.Time
}

type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at path and migrates it.
// The special path ":memory:" opens a private in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set pragma: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate store: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Save writes c under name, replacing any previous draft of that name.
func (s *Store) Save(ctx context.Context, name string, c *richtext.Content) error {
	if err := checkName(name); err != nil {
		return err
	}
	data, err := richtext.MarshalRaw(c)
	if err != nil {
		return fmt.Errorf("save draft %q: %w", name, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO drafts (name, raw, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET raw = excluded.raw, updated_at = excluded.updated_at`,
		name, string(data), s.now().UnixNano())
	if err != nil {
		return fmt.Errorf("save draft %q: %w", name, err)
	}
	return nil
}

// Load returns the content saved under name, or ErrNotFound.
func (s *Store) Load(ctx context.Context, name string) (*richtext.Content, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, "SELECT raw FROM drafts WHERE name = ?", name).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("load draft %q: %w", name, err)
	}
	c, err := richtext.UnmarshalRaw([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("load draft %q: %w", name, err)
	}
	return c, nil
}

// List returns all drafts, most recently saved first.
func (s *Store) List(ctx context.Context) ([]Draft, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name, updated_at FROM drafts ORDER BY updated_at DESC, name ASC")
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	defer rows.Close()

	var out []Draft
	for rows.Next() {
		var d Draft
		var ts int64
		if err := rows.Scan(&d.Name, &ts); err != nil {
			return nil, fmt.Errorf("list drafts: %w", err)
		}
		d.UpdatedAt = time.Unix(0, ts)
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	return out, nil
}

// Delete removes a draft. Deleting a missing draft returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM drafts WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("delete draft %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete draft %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return nil
}
