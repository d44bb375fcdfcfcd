// Package storage provides SQLite-based persistence for runs and lifetime
// counters. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
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

	"github.com/vovakirdan/skyrun/internal/core"
)

// DefaultPath is where the database lives unless overridden.
const DefaultPath = "~/.skyrun/skyrun.db"

// Counter names in the counters table.
const (
	counterDeaths     = "deaths"
	counterHighScore  = "high_score"
	counterTotalCoins = "total_coins"
)

const timeLayout = "2006-01-02 15:04:05"

// ErrNotFound is returned when a run id does not exist.
var ErrNotFound = errors.New("storage: not found")

// Store manages the SQLite database connection.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Run is one persisted finished run.
type Run struct {
	ID        string    `json:"id"`
	Score     int       `json:"score"`
	Coins     int       `json:"coins"`
	Steps     int       `json:"steps"`
	TopSpeed  float64   `json:"top_speed"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats aggregates lifetime counters and run history.
type Stats struct {
	HighScore  int       `json:"high_score"`
	TotalCoins int       `json:"total_coins"`
	Deaths     int       `json:"deaths"`
	RunsPlayed int       `json:"runs_played"`
	AvgScore   float64   `json:"avg_score"`
	LastPlayed time.Time `json:"last_played"`
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

	// One writer at a time; SSH sessions and the API share the file
	db.SetMaxOpenConns(1)

	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			score INTEGER NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			steps INTEGER NOT NULL DEFAULT 0,
			top_speed REAL NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);

		CREATE TABLE IF NOT EXISTS counters (
			name TEXT PRIMARY KEY,
			value INTEGER NOT NULL DEFAULT 0
		);
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

// RecordDeath increments the lifetime death counter.
func (s *Store) RecordDeath() error {
	_, err := s.db.Exec(
		`INSERT INTO counters (name, value) VALUES (?, 1)
		 ON CONFLICT(name) DO UPDATE SET value = value + 1`,
		counterDeaths,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record death: %w", err)
	}
	return nil
}

// SaveRun stores a finished run and reports whether it set a new high score.
func (s *Store) SaveRun(result core.RunResult) (bool, error) {
	_, newHigh, err := s.InsertRun(result)
	return newHigh, err
}

// InsertRun stores a finished run, adds its coins to the lifetime total
// and raises the high score when beaten. All of it happens in one
// transaction.
func (s *Store) InsertRun(result core.RunResult) (Run, bool, error) {
	run := Run{
		ID:        uuid.NewString(),
		Score:     result.Score,
		Coins:     result.Coins,
		Steps:     result.Steps,
		TopSpeed:  result.TopSpeed,
		CreatedAt: s.now().UTC().Truncate(time.Second),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return Run{}, false, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	high, err := counter(tx, counterHighScore)
	if err != nil {
		return Run{}, false, err
	}

	_, err = tx.Exec(
		`INSERT INTO runs (id, score, coins, steps, top_speed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Score, run.Coins, run.Steps, run.TopSpeed, run.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return Run{}, false, fmt.Errorf("storage: cannot save run: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO counters (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = value + excluded.value`,
		counterTotalCoins, run.Coins,
	)
	if err != nil {
		return Run{}, false, fmt.Errorf("storage: cannot add coins: %w", err)
	}

	newHigh := run.Score > high
	if newHigh {
		_, err = tx.Exec(
			`INSERT INTO counters (name, value) VALUES (?, ?)
			 ON CONFLICT(name) DO UPDATE SET value = excluded.value`,
			counterHighScore, run.Score,
		)
		if err != nil {
			return Run{}, false, fmt.Errorf("storage: cannot update high score: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Run{}, false, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return run, newHigh, nil
}

// queryRower is satisfied by both *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

func counter(q queryRower, name string) (int, error) {
	var v int
	err := q.QueryRow("SELECT value FROM counters WHERE name = ?", name).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read counter %s: %w", name, err)
	}
	return v, nil
}

// HighScore returns the best score ever recorded, 0 when none.
func (s *Store) HighScore() (int, error) {
	return counter(s.db, counterHighScore)
}

// TotalCoins returns the lifetime coin count.
func (s *Store) TotalCoins() (int, error) {
	return counter(s.db, counterTotalCoins)
}

// Deaths returns the lifetime death count.
func (s *Store) Deaths() (int, error) {
	return counter(s.db, counterDeaths)
}

// TopRuns retrieves the best N runs, highest score first.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	return s.queryRuns(`ORDER BY score DESC, seq ASC LIMIT ?`, normalizeLimit(limit))
}

// RecentRuns retrieves the latest N runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	return s.queryRuns(`ORDER BY seq DESC LIMIT ?`, normalizeLimit(limit))
}

// RunByID returns one run or ErrNotFound.
func (s *Store) RunByID(id string) (Run, error) {
	runs, err := s.queryRuns(`WHERE id = ? LIMIT 1`, id)
	if err != nil {
		return Run{}, err
	}
	if len(runs) == 0 {
		return Run{}, ErrNotFound
	}
	return runs[0], nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 10
	}
	if limit > 100 {
		return 100
	}
	return limit
}

func (s *Store) queryRuns(tail string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, score, coins, steps, top_speed, created_at FROM runs `+tail,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Score, &r.Coins, &r.Steps, &r.TopSpeed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// parseTime handles the driver returning either time.Time or text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Stats returns lifetime counters plus aggregates over stored runs.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	var err error

	if st.HighScore, err = s.HighScore(); err != nil {
		return Stats{}, err
	}
	if st.TotalCoins, err = s.TotalCoins(); err != nil {
		return Stats{}, err
	}
	if st.Deaths, err = s.Deaths(); err != nil {
		return Stats{}, err
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(AVG(score), 0), MAX(created_at) FROM runs`,
	).Scan(&st.RunsPlayed, &st.AvgScore, &lastPlayed)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	st.LastPlayed = parseTime(lastPlayed)

	return st, nil
}

// ClearRuns deletes every run and resets all counters.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs; DELETE FROM counters;")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
