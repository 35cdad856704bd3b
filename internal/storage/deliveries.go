// Package storage persists webhook delivery audit records.
package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	// import db drivers
	_ "github.com/lib/pq"

	"github.com/chkwon/redpen-app/internal/core"
)

// DeliveryStore defines the database operations for the delivery audit log.
type DeliveryStore interface {
	SaveDelivery(ctx context.Context, d *core.Delivery) error
	ListRecent(ctx context.Context, limit int) ([]core.Delivery, error)
}

type postgresStore struct {
	db *sqlx.DB
}

// NewStore creates a new DeliveryStore backed by Postgres.
func NewStore(db *sqlx.DB) DeliveryStore {
	return &postgresStore{db: db}
}

// SaveDelivery inserts one delivery record.
func (s *postgresStore) SaveDelivery(ctx context.Context, d *core.Delivery) error {
	query := `
		INSERT INTO deliveries
			(received_at, repo_full_name, commit_sha, commenter, outcome, detail, mode, language, commits)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := s.db.ExecContext(ctx, query,
		d.ReceivedAt, d.RepoFullName, d.CommitSHA, d.Commenter,
		d.Outcome, d.Detail, d.Mode, d.Language, d.Commits)
	if err != nil {
		return fmt.Errorf("failed to insert delivery record: %w", err)
	}
	return nil
}

// ListRecent returns the most recent delivery records, newest first.
func (s *postgresStore) ListRecent(ctx context.Context, limit int) ([]core.Delivery, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT id, received_at, repo_full_name, commit_sha, commenter, outcome, detail, mode, language, commits
		FROM deliveries
		ORDER BY received_at DESC
		LIMIT $1`

	var out []core.Delivery
	if err := s.db.SelectContext(ctx, &out, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list delivery records: %w", err)
	}
	return out, nil
}
