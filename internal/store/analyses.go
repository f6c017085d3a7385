package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Kaushal-04/Legal-Email-Assistant/internal/analyzer"
)

// WriteAnalysis persists the extracted metadata for an email, recording which
// mode produced it. One analysis per email; a re-run replaces the old row.
func (s *Store) WriteAnalysis(ctx context.Context, emailID uuid.UUID, a *analyzer.Analysis, mode string) (uuid.UUID, error) {
	var analysisID uuid.UUID
	err := s.pool.QueryRow(ctx, `
		INSERT INTO analyses (id, email_id, intent, primary_topic, urgency, parties, dates, questions, mode, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
		ON CONFLICT (email_id) DO UPDATE
		SET intent = EXCLUDED.intent,
		    primary_topic = EXCLUDED.primary_topic,
		    urgency = EXCLUDED.urgency,
		    parties = EXCLUDED.parties,
		    dates = EXCLUDED.dates,
		    questions = EXCLUDED.questions,
		    mode = EXCLUDED.mode,
		    created_at = now()
		RETURNING id`,
		uuid.New(), emailID, a.Intent, a.PrimaryTopic, a.Urgency, a.Parties, a.Dates, a.Questions, mode,
	).Scan(&analysisID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert analysis: %w", err)
	}
	return analysisID, nil
}

func (s *Store) GetAnalysis(ctx context.Context, emailID uuid.UUID) (*analyzer.Analysis, error) {
	var a analyzer.Analysis
	err := s.pool.QueryRow(ctx, `
		SELECT intent, primary_topic, urgency, parties, dates, questions
		FROM analyses WHERE email_id = $1`,
		emailID,
	).Scan(&a.Intent, &a.PrimaryTopic, &a.Urgency, &a.Parties, &a.Dates, &a.Questions)
	if err != nil {
		return nil, fmt.Errorf("get analysis: %w", err)
	}
	return &a, nil
}
