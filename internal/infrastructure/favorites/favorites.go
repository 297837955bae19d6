// Package favorites persists favorite-article membership.
package favorites

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS favorites (
	article_id TEXT PRIMARY KEY,
	saved_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// Store persists favorite article ids in a sqlite database.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens (and if needed creates) the favorites database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Load returns the set of favorite article ids.
func (s *Store) Load() (map[string]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT article_id FROM favorites`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	ids := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = true
	}
	return ids, rows.Err()
}

// Set stores or removes favorite membership for one article id.
func (s *Store) Set(articleID string, favorite bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if favorite {
		_, err := s.db.Exec(`INSERT OR IGNORE INTO favorites (article_id) VALUES (?)`, articleID)
		return err
	}
	_, err := s.db.Exec(`DELETE FROM favorites WHERE article_id = ?`, articleID)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
