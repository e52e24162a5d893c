// Package storage provides SQLite-based persistence for the voyage log.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only finished voyages are recorded; a voyage in progress is never saved.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcome values recorded for a voyage.
const (
	OutcomeFound     = "found"
	OutcomeAbandoned = "abandoned"
)

// Store manages the SQLite database connection for the voyage log.
type Store struct {
	db *sql.DB
}

// Voyage is one finished voyage.
type Voyage struct {
	ID        string // UUID, assigned on save when empty
	Scenario  string
	Seed      int64
	Outcome   string
	Goal      string // empty if the treasure was never declared
	Moves     int
	Rejected  int
	Explored  int
	Islands   int
	Revealed  int
	Clues     int
	Duration  time.Duration
	CreatedAt time.Time
}

// Found reports whether the treasure was found.
func (v Voyage) Found() bool { return v.Outcome == OutcomeFound }

// ScenarioStats aggregates the voyages of one scenario.
type ScenarioStats struct {
	Scenario   string
	Voyages    int
	Found      int
	BestMoves  int // fewest moves over voyages that found the treasure, 0 if none
	TotalMoves int64
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS voyages (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			voyage_id TEXT NOT NULL UNIQUE,
			scenario TEXT NOT NULL,
			seed INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			goal TEXT,
			moves INTEGER NOT NULL DEFAULT 0,
			rejected INTEGER NOT NULL DEFAULT 0,
			explored INTEGER NOT NULL DEFAULT 0,
			islands INTEGER NOT NULL DEFAULT 0,
			revealed INTEGER NOT NULL DEFAULT 0,
			clues INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_voyages_scenario ON voyages(scenario);
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

// SaveVoyage records a finished voyage and returns its ID.
func (s *Store) SaveVoyage(v Voyage) (string, error) {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	var goal sql.NullString
	if v.Goal != "" {
		goal = sql.NullString{String: v.Goal, Valid: true}
	}

	_, err := s.db.Exec(
		`INSERT INTO voyages (voyage_id, scenario, seed, outcome, goal,
		                      moves, rejected, explored, islands, revealed, clues, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.ID, v.Scenario, v.Seed, v.Outcome, goal,
		v.Moves, v.Rejected, v.Explored, v.Islands, v.Revealed, v.Clues, v.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save voyage: %w", err)
	}
	return v.ID, nil
}

const voyageColumns = `voyage_id, scenario, seed, outcome, goal,
	moves, rejected, explored, islands, revealed, clues, duration_ms, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanVoyage(row scanner) (Voyage, error) {
	var (
		v          Voyage
		goal       sql.NullString
		durationMS int64
		createdAt  any
	)
	err := row.Scan(
		&v.ID, &v.Scenario, &v.Seed, &v.Outcome, &goal,
		&v.Moves, &v.Rejected, &v.Explored, &v.Islands, &v.Revealed, &v.Clues,
		&durationMS, &createdAt,
	)
	if err != nil {
		return v, err
	}
	if goal.Valid {
		v.Goal = goal.String
	}
	v.Duration = time.Duration(durationMS) * time.Millisecond
	v.CreatedAt = parseTime(createdAt)
	return v, nil
}

// VoyageByID retrieves a voyage. Returns nil if it does not exist.
func (s *Store) VoyageByID(id string) (*Voyage, error) {
	v, err := scanVoyage(s.db.QueryRow(
		`SELECT `+voyageColumns+` FROM voyages WHERE voyage_id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query voyage: %w", err)
	}
	return &v, nil
}

// RecentVoyages retrieves the most recent voyages, newest first. An empty
// scenario matches every scenario.
func (s *Store) RecentVoyages(scenario string, limit int) ([]Voyage, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+voyageColumns+`
		 FROM voyages
		 WHERE ? = '' OR scenario = ?
		 ORDER BY seq DESC
		 LIMIT ?`,
		scenario, scenario, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query voyages: %w", err)
	}
	defer rows.Close()

	var voyages []Voyage
	for rows.Next() {
		v, err := scanVoyage(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		voyages = append(voyages, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return voyages, nil
}

// ClearVoyages deletes every voyage of a scenario.
func (s *Store) ClearVoyages(scenario string) error {
	_, err := s.db.Exec("DELETE FROM voyages WHERE scenario = ?", scenario)
	if err != nil {
		return fmt.Errorf("storage: cannot clear voyages: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for every scenario that has been played.
func (s *Store) Stats() (map[string]*ScenarioStats, error) {
	rows, err := s.db.Query(
		`SELECT scenario, COUNT(*),
		        SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END),
		        COALESCE(MIN(CASE WHEN outcome = ? THEN moves END), 0),
		        SUM(moves), MAX(created_at)
		 FROM voyages
		 GROUP BY scenario`,
		OutcomeFound, OutcomeFound,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get voyage stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ScenarioStats)
	for rows.Next() {
		var st ScenarioStats
		var lastPlayed any
		if err := rows.Scan(&st.Scenario, &st.Voyages, &st.Found, &st.BestMoves, &st.TotalMoves, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Scenario] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
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
