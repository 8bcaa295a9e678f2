// Package storage provides SQLite-based persistence for best scores and
// round history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/snakeplus/internal/game"
)

// Store manages the SQLite database connection. It is safe for concurrent
// use; database/sql serializes access to the underlying connection pool.
type Store struct {
	db *sql.DB
}

// HighscoreEntry is the persisted best score for one ruleset.
type HighscoreEntry struct {
	Ruleset   string
	Score     int
	UpdatedAt time.Time
}

// RoundRecord is one finished round in the history table.
type RoundRecord struct {
	ID           string // UUID, generated on insert when empty
	Ruleset      string
	Score        int
	DurationSecs int
	EndReason    string
	CreatedAt    time.Time
}

// RulesetStats contains aggregated round history for one ruleset.
type RulesetStats struct {
	Ruleset    string
	Rounds     int
	Best       int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS highscores (
			ruleset TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS rounds (
			id TEXT PRIMARY KEY,
			ruleset TEXT NOT NULL,
			score INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_ruleset ON rounds(ruleset);
		CREATE INDEX IF NOT EXISTS idx_rounds_recent ON rounds(created_at DESC);
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

// Highscore returns the best score stored for the given ruleset.
// Returns 0 if the ruleset has never been played.
func (s *Store) Highscore(ruleset string) (int, error) {
	var score int
	err := s.db.QueryRow(
		"SELECT score FROM highscores WHERE ruleset = ?",
		ruleset,
	).Scan(&score)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query highscore: %w", err)
	}
	return score, nil
}

// SetHighscore stores the best score for a ruleset, inserting or replacing
// the single row for that key. The caller decides whether the new score
// qualifies; this is a plain write.
func (s *Store) SetHighscore(ruleset string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO highscores (ruleset, score, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(ruleset) DO UPDATE SET
			score = excluded.score,
			updated_at = CURRENT_TIMESTAMP`,
		ruleset, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save highscore: %w", err)
	}
	return nil
}

// AllHighscores retrieves every stored best score, highest first.
func (s *Store) AllHighscores() ([]HighscoreEntry, error) {
	rows, err := s.db.Query(
		`SELECT ruleset, score, updated_at
		 FROM highscores
		 ORDER BY score DESC, ruleset ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query highscores: %w", err)
	}
	defer rows.Close()

	var entries []HighscoreEntry
	for rows.Next() {
		var e HighscoreEntry
		var updatedAt any
		if err := rows.Scan(&e.Ruleset, &e.Score, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.UpdatedAt = parseTimestamp(updatedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// RecordRound appends one finished round to the history table and returns
// its ID. An empty ID is replaced with a fresh UUID.
func (s *Store) RecordRound(rec RoundRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	_, err := s.db.Exec(
		`INSERT INTO rounds (id, ruleset, score, duration_secs, end_reason)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.Ruleset, rec.Score, rec.DurationSecs, rec.EndReason,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot record round: %w", err)
	}
	return rec.ID, nil
}

// RecentRounds retrieves the most recent rounds, newest first. An empty
// ruleset matches every ruleset.
func (s *Store) RecentRounds(ruleset string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, ruleset, score, duration_secs, end_reason, created_at
		 FROM rounds`
	args := []any{}
	if ruleset != "" {
		query += ` WHERE ruleset = ?`
		args = append(args, ruleset)
	}
	query += ` ORDER BY created_at DESC, id LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Ruleset, &r.Score, &r.DurationSecs, &r.EndReason, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// Stats retrieves aggregated round history for a specific ruleset.
func (s *Store) Stats(ruleset string) (*RulesetStats, error) {
	stats := &RulesetStats{Ruleset: ruleset}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM rounds WHERE ruleset = ?`,
		ruleset,
	).Scan(&stats.Rounds, &stats.Best, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get ruleset stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM rounds WHERE ruleset = ? ORDER BY created_at DESC LIMIT 1`,
		ruleset,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// AllStats retrieves aggregated round history for every ruleset that has
// been played.
func (s *Store) AllStats() (map[string]*RulesetStats, error) {
	rows, err := s.db.Query(
		`SELECT ruleset, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(created_at)
		 FROM rounds
		 GROUP BY ruleset`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*RulesetStats)
	for rows.Next() {
		var rs RulesetStats
		var lastPlayed any
		if err := rows.Scan(&rs.Ruleset, &rs.Rounds, &rs.Best, &rs.AvgScore, &rs.TotalScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		rs.LastPlayed = parseTimestamp(lastPlayed)
		stats[rs.Ruleset] = &rs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// Reset deletes the stored best score and round history for one ruleset.
func (s *Store) Reset(ruleset string) error {
	if _, err := s.db.Exec("DELETE FROM highscores WHERE ruleset = ?", ruleset); err != nil {
		return fmt.Errorf("storage: cannot reset highscore: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM rounds WHERE ruleset = ?", ruleset); err != nil {
		return fmt.Errorf("storage: cannot reset rounds: %w", err)
	}
	return nil
}

// parseTimestamp normalizes a scanned DATETIME column, which the driver may
// surface as time.Time or string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Ensure Store satisfies the session's persistence interface.
var _ game.ScoreStore = (*Store)(nil)
