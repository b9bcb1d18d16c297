package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// PostgresStore keeps every run in a kana_runs table
type PostgresStore struct {
	db  *sql.DB
	log logrus.FieldLogger
}

// OpenPostgres connects to dsn and ensures the schema exists
func OpenPostgres(ctx context.Context, dsn string, log logrus.FieldLogger) (*PostgresStore, error) {
	if dsn == "" {
		return nil, ErrNoDatabase
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := NewPostgresStore(db, log)
	if err := s.ensureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	s.log.Info("connected to postgres")
	return s, nil
}

// NewPostgresStore wraps an open database
func NewPostgresStore(db *sql.DB, log logrus.FieldLogger) *PostgresStore {
	return &PostgresStore{db: db, log: orDiscard(log).WithField("component", "store")}
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kana_runs (
			run_id UUID PRIMARY KEY,
			player TEXT NOT NULL,
			mode TEXT NOT NULL,
			kana_set TEXT NOT NULL,
			score INTEGER NOT NULL,
			correct INTEGER NOT NULL,
			max_combo INTEGER NOT NULL,
			duration_ms BIGINT NOT NULL,
			played_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS kana_runs_mode_score ON kana_runs (mode, score DESC, played_at);
	`)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, r Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kana_runs (run_id, player, mode, kana_set, score, correct, max_combo, duration_ms, played_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (run_id) DO NOTHING
	`, r.RunID, r.Player, r.Mode, r.Set, r.Score, r.Correct, r.MaxCombo, r.Duration.Milliseconds(), r.PlayedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			s.log.WithFields(logrus.Fields{"code": pqErr.Code.Name(), "run_id": r.RunID}).Warn("insert run failed")
		}
		return fmt.Errorf("insert run: %w", err)
	}
	s.log.WithFields(logrus.Fields{"run_id": r.RunID, "mode": r.Mode, "score": r.Score}).Info("run saved")
	return nil
}

func (s *PostgresStore) Top(ctx context.Context, mode string, n int) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, player, mode, kana_set, score, correct, max_combo, duration_ms, played_at
		FROM kana_runs
		WHERE mode = $1
		ORDER BY score DESC, played_at ASC
		LIMIT $2
	`, mode, n)
	if err != nil {
		return nil, fmt.Errorf("query top runs: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var durationMS int64
		if err := rows.Scan(&r.RunID, &r.Player, &r.Mode, &r.Set, &r.Score, &r.Correct, &r.MaxCombo, &durationMS, &r.PlayedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
