// Package history persists run summaries to Postgres so CI trends can be
// queried across runs.
package history

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/clinichub/apicheck/internal/report"
)

const schema = `
CREATE TABLE IF NOT EXISTS apicheck_runs (
	id          BIGSERIAL PRIMARY KEY,
	target      TEXT        NOT NULL,
	started_at  TIMESTAMPTZ NOT NULL,
	finished_at TIMESTAMPTZ NOT NULL,
	passed      INT         NOT NULL,
	failed      INT         NOT NULL,
	skipped     INT         NOT NULL
);
CREATE TABLE IF NOT EXISTS apicheck_results (
	id       BIGSERIAL PRIMARY KEY,
	run_id   BIGINT REFERENCES apicheck_runs(id) ON DELETE CASCADE,
	suite    TEXT NOT NULL,
	"check"  TEXT NOT NULL,
	outcome  TEXT NOT NULL,
	error    TEXT,
	duration_ms BIGINT NOT NULL
);`

type Store struct {
	db *sqlx.DB
}

func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect history store: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure history schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun writes the summary and its per-check results in one transaction.
func (s *Store) SaveRun(ctx context.Context, summary report.Summary) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin history tx: %w", err)
	}
	defer tx.Rollback()

	var runID int64
	err = tx.QueryRowxContext(ctx,
		`INSERT INTO apicheck_runs (target, started_at, finished_at, passed, failed, skipped)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		summary.Target, summary.StartedAt, summary.FinishedAt,
		summary.Passed, summary.Failed, summary.Skipped,
	).Scan(&runID)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, res := range summary.Results {
		var errText *string
		if res.Err != nil {
			msg := res.Err.Error()
			errText = &msg
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO apicheck_results (run_id, suite, "check", outcome, error, duration_ms)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			runID, res.Suite, res.Check, string(res.Outcome), errText, res.Duration.Milliseconds(),
		)
		if err != nil {
			return fmt.Errorf("insert result: %w", err)
		}
	}
	return tx.Commit()
}
