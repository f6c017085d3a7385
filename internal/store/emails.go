package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Email statuses follow the pipeline: received → analyzed → drafted.
const (
	StatusReceived = "received"
	StatusAnalyzed = "analyzed"
	StatusDrafted  = "drafted"
)

type Email struct {
	ID         uuid.UUID
	From       string
	Subject    string
	Body       string
	Status     string
	ReceivedAt time.Time
}

// InsertEmail records an inbound email. Re-delivery of the same event is a
// no-op so the pipeline handler stays idempotent.
func (s *Store) InsertEmail(ctx context.Context, e Email) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO emails (id, sender, subject, body, status, received_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (id) DO NOTHING`,
		e.ID, e.From, e.Subject, e.Body, e.Status,
	)
	if err != nil {
		return fmt.Errorf("insert email: %w", err)
	}
	return nil
}

func (s *Store) GetEmail(ctx context.Context, id uuid.UUID) (*Email, error) {
	var e Email
	err := s.pool.QueryRow(ctx, `
		SELECT id, sender, subject, body, status, received_at
		FROM emails WHERE id = $1`,
		id,
	).Scan(&e.ID, &e.From, &e.Subject, &e.Body, &e.Status, &e.ReceivedAt)
	if err != nil {
		return nil, fmt.Errorf("get email: %w", err)
	}
	return &e, nil
}

func (s *Store) UpdateEmailStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE emails SET status = $1 WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("update email status: %w", err)
	}
	return nil
}
