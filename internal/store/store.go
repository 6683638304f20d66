// Package store handles SQLite persistence of the passage library.
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

	"github.com/verte-zerg/recite/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// ErrNotFound is returned when no passage has the requested name.
var ErrNotFound = errors.New("passage not found")

// Store wraps SQLite access for passages.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS passages (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			body TEXT NOT NULL,
			sentence_count INTEGER NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SavePassage inserts a passage or replaces the body of the one with the same name.
func (s *Store) SavePassage(ctx context.Context, p model.Passage) (int64, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return 0, fmt.Errorf("passage name must not be empty")
	}
	now := s.now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO passages (name, body, sentence_count, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			body = excluded.body,
			sentence_count = excluded.sentence_count,
			updated_at = excluded.updated_at`,
		name, p.Body, p.SentenceCount, now, now,
	)
	if err != nil {
		return 0, err
	}
	var id int64
	if err := s.db.QueryRowContext(ctx, `SELECT id FROM passages WHERE name = ?`, name).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// GetPassage returns the passage with the given name.
func (s *Store) GetPassage(ctx context.Context, name string) (model.Passage, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, body, sentence_count, created_at, updated_at
		 FROM passages WHERE name = ?`, strings.TrimSpace(name))
	p, err := scanPassage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Passage{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return p, err
}

// ListPassages returns all passages ordered by name.
func (s *Store) ListPassages(ctx context.Context) ([]model.Passage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, body, sentence_count, created_at, updated_at
		 FROM passages ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var passages []model.Passage
	for rows.Next() {
		p, err := scanPassage(rows)
		if err != nil {
			return nil, err
		}
		passages = append(passages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return passages, nil
}

// DeletePassage removes the passage with the given name.
func (s *Store) DeletePassage(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM passages WHERE name = ?`, strings.TrimSpace(name))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPassage(row rowScanner) (model.Passage, error) {
	var p model.Passage
	var createdAt, updatedAt string
	if err := row.Scan(&p.ID, &p.Name, &p.Body, &p.SentenceCount, &createdAt, &updatedAt); err != nil {
		return model.Passage{}, err
	}
	var err error
	if p.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return model.Passage{}, err
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return model.Passage{}, err
	}
	return p, nil
}
