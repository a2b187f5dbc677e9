// Package storage keeps a history of autopilot audits in SQLite.
// Only audit summaries are stored; generated levels never are.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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

// DefaultPath is where the CLI keeps its audit history.
const DefaultPath = "~/.dashcourse/audits.db"

// Store manages the SQLite connection for audit history.
type Store struct {
	db *sql.DB
}

// AuditRecord is the summary of one autopilot run over a generated level.
type AuditRecord struct {
	ID         int64
	LevelID    int
	Mode       string
	Difficulty int
	Seed       int64 // 0 when the level was generated from the clock
	Obstacles  int
	Holds      int
	Cleared    int
	CreatedAt  time.Time
}

// Passed reports whether every obstacle was cleared.
func (r AuditRecord) Passed() bool {
	return r.Cleared == r.Obstacles
}

// Rate returns the cleared fraction, 1 for an empty level.
func (r AuditRecord) Rate() float64 {
	if r.Obstacles == 0 {
		return 1
	}
	return float64(r.Cleared) / float64(r.Obstacles)
}

// AuditStats aggregates the history of one level.
type AuditStats struct {
	LevelID   int
	Runs      int
	Passed    int
	AvgRate   float64
	LastAudit time.Time
}

// Open creates or opens a SQLite database at the given path.
// A leading ~ is expanded; parent directories are created and migrations run.
func Open(dbPath string) (*Store, error) {
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS audits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id INTEGER NOT NULL,
			mode TEXT NOT NULL,
			difficulty INTEGER NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			obstacles INTEGER NOT NULL,
			holds INTEGER NOT NULL DEFAULT 0,
			cleared INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_audits_level_id ON audits(level_id);
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

// SaveAudit records an audit summary and returns its ID.
func (s *Store) SaveAudit(r AuditRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO audits (level_id, mode, difficulty, seed, obstacles, holds, cleared)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.LevelID, r.Mode, r.Difficulty, r.Seed, r.Obstacles, r.Holds, r.Cleared,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save audit: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const auditColumns = `id, level_id, mode, difficulty, seed, obstacles, holds, cleared, created_at`

// RecentAudits returns the newest audits of a level, newest first.
func (s *Store) RecentAudits(levelID, limit int) ([]AuditRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+auditColumns+`
		 FROM audits
		 WHERE level_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query audits: %w", err)
	}
	defer rows.Close()

	var records []AuditRecord
	for rows.Next() {
		r, err := scanAudit(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// BestAudit returns the audit of a level with the highest cleared fraction,
// or nil when the level has no history.
func (s *Store) BestAudit(levelID int) (*AuditRecord, error) {
	row := s.db.QueryRow(
		`SELECT `+auditColumns+`
		 FROM audits
		 WHERE level_id = ?
		 ORDER BY CAST(cleared AS REAL) / MAX(obstacles, 1) DESC, id DESC
		 LIMIT 1`,
		levelID,
	)

	r, err := scanAudit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Stats aggregates the audit history of a level.
func (s *Store) Stats(levelID int) (*AuditStats, error) {
	stats := &AuditStats{LevelID: levelID}

	var last any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN cleared = obstacles THEN 1 ELSE 0 END), 0),
		        COALESCE(AVG(CAST(cleared AS REAL) / MAX(obstacles, 1)), 0),
		        MAX(created_at)
		 FROM audits WHERE level_id = ?`,
		levelID,
	).Scan(&stats.Runs, &stats.Passed, &stats.AvgRate, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get audit stats: %w", err)
	}
	stats.LastAudit = parseTime(last)

	return stats, nil
}

// ClearAudits deletes the history of a level.
func (s *Store) ClearAudits(levelID int) error {
	_, err := s.db.Exec("DELETE FROM audits WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear audits: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAudit(sc scanner) (AuditRecord, error) {
	var r AuditRecord
	var createdAt any
	err := sc.Scan(&r.ID, &r.LevelID, &r.Mode, &r.Difficulty, &r.Seed,
		&r.Obstacles, &r.Holds, &r.Cleared, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both driver-decoded times and SQLite's text format.
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
