// Package store persists accepted feedback corrections in sqlite so the
// trained-example cache survives restarts.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/draiimon/PanicSense-Final/internal/trained"
)

// Store wraps the corrections database.
type Store struct {
	db *sql.DB
}

// Open creates or opens the sqlite file at path and ensures the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open corrections db: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS sentiment_corrections (
		id                  INTEGER PRIMARY KEY AUTOINCREMENT,
		text_key            TEXT NOT NULL UNIQUE,
		original_text       TEXT NOT NULL,
		original_sentiment  TEXT DEFAULT '',
		corrected_sentiment TEXT DEFAULT '',
		corrected_location  TEXT DEFAULT '',
		corrected_disaster  TEXT DEFAULT '',
		status              TEXT DEFAULT 'accepted',
		corrected_at        DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_sc_date ON sentiment_corrections(corrected_at);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure corrections schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save upserts the correction for text, keyed by its normalized form.
func (s *Store) Save(text, originalSentiment, status string, ex trained.Example) error {
	_, err := s.db.Exec(
		`INSERT INTO sentiment_corrections
		   (text_key, original_text, original_sentiment, corrected_sentiment, corrected_location, corrected_disaster, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(text_key) DO UPDATE SET
		   original_sentiment = excluded.original_sentiment,
		   corrected_sentiment = excluded.corrected_sentiment,
		   corrected_location = excluded.corrected_location,
		   corrected_disaster = excluded.corrected_disaster,
		   status = excluded.status,
		   corrected_at = CURRENT_TIMESTAMP`,
		trained.Key(text), text, originalSentiment,
		ex.Sentiment, ex.Location, ex.DisasterType, status,
	)
	if err != nil {
		return fmt.Errorf("save correction: %w", err)
	}
	return nil
}

// LoadInto replays every stored correction into the cache and returns the
// number loaded.
func (s *Store) LoadInto(cache *trained.Cache) (int, error) {
	rows, err := s.db.Query(
		`SELECT original_text, corrected_sentiment, corrected_location, corrected_disaster
		   FROM sentiment_corrections`)
	if err != nil {
		return 0, fmt.Errorf("load corrections: %w", err)
	}
	defer rows.Close()

	n := 0
	for rows.Next() {
		var text string
		var ex trained.Example
		if err := rows.Scan(&text, &ex.Sentiment, &ex.Location, &ex.DisasterType); err != nil {
			return n, fmt.Errorf("scan correction: %w", err)
		}
		cache.Put(text, ex)
		n++
	}
	return n, rows.Err()
}
