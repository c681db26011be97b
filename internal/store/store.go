// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/tuitype/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// timeLayout is fixed-width so timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps SQLite access for typing test results.
type Store struct {
	db *sql.DB
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
	store := &Store{db: db}
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
		`CREATE TABLE IF NOT EXISTS test_results (
			id TEXT PRIMARY KEY,
			timestamp TEXT NOT NULL,
			mode TEXT NOT NULL,
			speed REAL NOT NULL,
			raw_speed REAL NOT NULL,
			accuracy REAL NOT NULL,
			consistency REAL NOT NULL,
			passage_length INTEGER NOT NULL,
			duration_seconds INTEGER NOT NULL,
			source TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE INDEX IF NOT EXISTS idx_test_results_timestamp ON test_results(timestamp);`,
		`CREATE INDEX IF NOT EXISTS idx_test_results_mode ON test_results(mode);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveOutcome stores one completed test.
func (s *Store) SaveOutcome(ctx context.Context, o model.TestOutcome) error {
	if o.ID == "" {
		return fmt.Errorf("failed to save outcome: missing id")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO test_results (id, timestamp, mode, speed, raw_speed, accuracy, consistency, passage_length, duration_seconds, source)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID,
		o.Timestamp.UTC().Format(timeLayout),
		o.Mode.String(),
		o.Speed,
		o.RawSpeed,
		o.Accuracy,
		o.Consistency,
		o.PassageLength,
		o.DurationSeconds,
		o.Source,
	)
	if err != nil {
		return fmt.Errorf("failed to save outcome: %w", err)
	}
	return nil
}

// RecentOutcomes returns up to limit outcomes, newest first.
func (s *Store) RecentOutcomes(ctx context.Context, limit int) ([]model.TestOutcome, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, timestamp, mode, speed, raw_speed, accuracy, consistency, passage_length, duration_seconds, source
		 FROM test_results
		 ORDER BY timestamp DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.TestOutcome
	for rows.Next() {
		var o model.TestOutcome
		var ts, mode string
		if err := rows.Scan(&o.ID, &ts, &mode, &o.Speed, &o.RawSpeed, &o.Accuracy, &o.Consistency, &o.PassageLength, &o.DurationSeconds, &o.Source); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(timeLayout, ts)
		if err != nil {
			return nil, err
		}
		o.Timestamp = parsed
		o.Mode, err = model.ParseMode(mode)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UserStats aggregates every stored outcome. An empty table yields zeros.
func (s *Store) UserStats(ctx context.Context) (model.UserStats, error) {
	var st model.UserStats
	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(MAX(speed), 0.0), COALESCE(AVG(speed), 0.0),
			COALESCE(AVG(accuracy), 0.0), COALESCE(SUM(duration_seconds), 0)
		 FROM test_results`)
	if err := row.Scan(&st.TotalTests, &st.BestSpeed, &st.AvgSpeed, &st.AvgAccuracy, &st.TotalTimeSeconds); err != nil {
		return model.UserStats{}, err
	}
	return st, nil
}

// ModeStats aggregates stored outcomes per mode, in mode cycling order.
// Modes without results are omitted.
func (s *Store) ModeStats(ctx context.Context) ([]model.ModeStats, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT mode, COUNT(*), MAX(speed), AVG(speed), AVG(accuracy), SUM(duration_seconds)
		 FROM test_results
		 GROUP BY mode`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	byMode := map[model.Mode]model.ModeStats{}
	for rows.Next() {
		var name string
		var ms model.ModeStats
		if err := rows.Scan(&name, &ms.TotalTests, &ms.BestSpeed, &ms.AvgSpeed, &ms.AvgAccuracy, &ms.TotalTimeSeconds); err != nil {
			return nil, err
		}
		mode, err := model.ParseMode(name)
		if err != nil {
			return nil, err
		}
		ms.Mode = mode
		byMode[mode] = ms
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	result := make([]model.ModeStats, 0, len(byMode))
	for _, mode := range model.Modes {
		if ms, ok := byMode[mode]; ok {
			result = append(result, ms)
		}
	}
	return result, nil
}
