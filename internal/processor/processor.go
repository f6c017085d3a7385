// Package processor orchestrates the assistant's pipeline: an inbound email
// event is analyzed, the analysis persisted, a reply drafted and persisted,
// and the finished draft announced on the bus.
package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Kaushal-04/Legal-Email-Assistant/internal/analyzer"
	"github.com/Kaushal-04/Legal-Email-Assistant/internal/bus"
	"github.com/Kaushal-04/Legal-Email-Assistant/internal/clauses"
	"github.com/Kaushal-04/Legal-Email-Assistant/internal/drafter"
	"github.com/Kaushal-04/Legal-Email-Assistant/internal/llm"
	"github.com/Kaushal-04/Legal-Email-Assistant/internal/store"
)

type Processor struct {
	store    *store.Store
	analyzer *analyzer.Analyzer
	drafter  *drafter.Drafter
	bus      *bus.Client
	clauses  clauses.Set
	mode     llm.Mode
	logger   *slog.Logger
}

func New(s *store.Store, an *analyzer.Analyzer, dr *drafter.Drafter, b *bus.Client, cl clauses.Set, mode llm.Mode, logger *slog.Logger) *Processor {
	return &Processor{
		store:    s,
		analyzer: an,
		drafter:  dr,
		bus:      b,
		clauses:  cl,
		mode:     mode,
		logger:   logger,
	}
}

// HandleEmailReceived is the NATS handler for legal.email.received. Failures
// are logged and swallowed so a bad event never takes the subscriber down.
func (p *Processor) HandleEmailReceived(subject string, data []byte) {
	ctx := context.Background()

	var evt bus.EmailReceivedEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		p.logger.Error("failed to parse email event", "error", err)
		return
	}

	emailID, err := uuid.Parse(evt.EmailID)
	if err != nil {
		p.logger.Error("invalid email id", "email_id", evt.EmailID, "error", err)
		return
	}

	p.logger.Info("processing email",
		"email_id", evt.EmailID,
		"from", evt.From,
		"subject", evt.Subject,
	)

	// Idempotency: a re-delivered event for an already-drafted email is a no-op.
	if existing, err := p.store.GetEmail(ctx, emailID); err == nil && existing.Status == store.StatusDrafted {
		p.logger.Info("email already drafted, skipping", "email_id", evt.EmailID)
		return
	}

	if err := p.store.InsertEmail(ctx, store.Email{
		ID:      emailID,
		From:    evt.From,
		Subject: evt.Subject,
		Body:    evt.Body,
		Status:  store.StatusReceived,
	}); err != nil {
		p.logger.Error("failed to store email", "email_id", evt.EmailID, "error", err)
		return
	}

	emailText := composeEmailText(evt.Subject, evt.Body)

	analysis := p.analyzer.Analyze(ctx, emailText)
	if _, err := p.store.WriteAnalysis(ctx, emailID, analysis, string(p.mode)); err != nil {
		p.logger.Error("failed to store analysis", "email_id", evt.EmailID, "error", err)
		return
	}
	if err := p.store.UpdateEmailStatus(ctx, emailID, store.StatusAnalyzed); err != nil {
		p.logger.Error("failed to update email status", "email_id", evt.EmailID, "error", err)
		return
	}

	reply := p.drafter.Draft(ctx, emailText, analysis, p.clauses)
	draftID, err := p.store.WriteDraft(ctx, emailID, reply, string(p.mode))
	if err != nil {
		p.logger.Error("failed to store draft", "email_id", evt.EmailID, "error", err)
		return
	}
	if err := p.store.UpdateEmailStatus(ctx, emailID, store.StatusDrafted); err != nil {
		p.logger.Error("failed to update email status", "email_id", evt.EmailID, "error", err)
		return
	}

	if err := p.bus.Publish(bus.SubjectEmailDrafted, bus.EmailDraftedEvent{
		EmailID: evt.EmailID,
		DraftID: draftID.String(),
		Intent:  analysis.Intent,
		Mode:    string(p.mode),
	}); err != nil {
		p.logger.Error("failed to publish drafted event", "email_id", evt.EmailID, "error", err)
		return
	}

	p.logger.Info("email processed",
		"email_id", evt.EmailID,
		"draft_id", draftID,
		"intent", analysis.Intent,
		"mode", string(p.mode),
	)
}

// composeEmailText rebuilds the single text block the analyzer expects from a
// split subject/body event.
func composeEmailText(subject, body string) string {
	if subject == "" {
		return body
	}
	return fmt.Sprintf("Subject: %s\n%s", subject, body)
}
