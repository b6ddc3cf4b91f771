// Package storage keeps the high-score table of finished popper rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only results of completed rounds are stored; a round in progress is never
// saved or restored.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// Round is the outcome of one finished game, as recorded.
type Round struct {
	Difficulty string
	Score      int
	Won        bool
	Spheres    int           // Spheres removed by collapses
	Duration   time.Duration // Simulated play time
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID int64
	Round
	CreatedAt time.Time
}

// Stats contains aggregated statistics over recorded rounds.
type Stats struct {
	GamesCount   int
	Wins         int
	HighScore    int
	AvgScore     float64
	TotalSpheres int64
	LastPlayed   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			spheres INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(score DESC);
		CREATE INDEX IF NOT EXISTS idx_rounds_difficulty ON rounds(difficulty, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(r Round) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO rounds (difficulty, score, won, spheres, duration_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		r.Difficulty, r.Score, r.Won, r.Spheres, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N rounds, best first.
// An empty difficulty matches every difficulty.
func (s *Store) TopScores(difficulty string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, difficulty, score, won, spheres, duration_ms, created_at
		 FROM rounds
		 WHERE ? = '' OR difficulty = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		difficulty, difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Difficulty, &e.Score, &e.Won, &e.Spheres, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMS) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest recorded score.
// An empty difficulty matches every difficulty. Returns 0 if no scores exist.
func (s *Store) HighScore(difficulty string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM rounds WHERE ? = '' OR difficulty = ?",
		difficulty, difficulty,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// GetStats retrieves aggregated statistics.
// An empty difficulty matches every difficulty.
func (s *Store) GetStats(difficulty string) (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(spheres), 0)
		 FROM rounds WHERE ? = '' OR difficulty = ?`,
		difficulty, difficulty,
	).Scan(&stats.GamesCount, &stats.Wins, &stats.HighScore, &stats.AvgScore, &stats.TotalSpheres)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM rounds WHERE ? = '' OR difficulty = ?
		 ORDER BY created_at DESC, id DESC LIMIT 1`,
		difficulty, difficulty,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// ClearScores deletes every recorded round.
func (s *Store) ClearScores() error {
	_, err := s.db.Exec("DELETE FROM rounds")
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(sqliteTime, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
