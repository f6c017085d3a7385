package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Draft struct {
	ID        uuid.UUID
	EmailID   uuid.UUID
	Reply     string
	Mode      string
	CreatedAt time.Time
}

func (s *Store) WriteDraft(ctx context.Context, emailID uuid.UUID, reply, mode string) (uuid.UUID, error) {
	draftID := uuid.New()
	_, err := s.pool.Exec(ctx, `
		INSERT INTO drafts (id, email_id, reply, mode, created_at)
		VALUES ($1, $2, $3, $4, now())`,
		draftID, emailID, reply, mode,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert draft: %w", err)
	}
	return draftID, nil
}

// GetDraftByEmail returns the most recent draft for an email.
func (s *Store) GetDraftByEmail(ctx context.Context, emailID uuid.UUID) (*Draft, error) {
	var d Draft
	err := s.pool.QueryRow(ctx, `
		SELECT id, email_id, reply, mode, created_at
		FROM drafts WHERE email_id = $1
		ORDER BY created_at DESC LIMIT 1`,
		emailID,
	).Scan(&d.ID, &d.EmailID, &d.Reply, &d.Mode, &d.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get draft: %w", err)
	}
	return &d, nil
}
