// Package drafter turns a validated Analysis plus a clause library into a
// reply email. Live output is free text and passed through verbatim — there is
// no schema to validate a draft against.
package drafter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Kaushal-04/Legal-Email-Assistant/internal/analyzer"
	"github.com/Kaushal-04/Legal-Email-Assistant/internal/clauses"
	"github.com/Kaushal-04/Legal-Email-Assistant/internal/llm"
)

type Drafter struct {
	llm     *llm.Client
	mode    llm.Mode
	prompts Prompts
	logger  *slog.Logger
}

func New(client *llm.Client, mode llm.Mode, prompts Prompts, logger *slog.Logger) *Drafter {
	return &Drafter{llm: client, mode: mode, prompts: prompts, logger: logger}
}

// Draft produces a reply to emailText grounded in the analysis and clause set.
// Like the analyzer it never fails: a transport or API error in live mode is
// absorbed by returning the fixed fallback reply.
func (d *Drafter) Draft(ctx context.Context, emailText string, a *analyzer.Analysis, set clauses.Set) string {
	if d.mode == llm.ModeMock {
		return FallbackReply()
	}

	client := "the client"
	if len(a.Parties) > 0 {
		client = a.Parties[0]
	}

	analysisJSON, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		d.logger.Warn("failed to serialise analysis, substituting fallback reply", "error", err)
		return FallbackReply()
	}

	prompt := fmt.Sprintf(d.prompts.User, client, set.Render(), emailText, analysisJSON)
	messages := []llm.Message{
		{Role: "user", Content: prompt},
	}

	reply, err := d.llm.Complete(ctx, d.prompts.System, messages, 2048)
	if err != nil {
		d.logger.Warn("drafting call failed, substituting fallback reply", "error", err)
		return FallbackReply()
	}

	d.logger.Info("reply drafted",
		"client", client,
		"clauses", set.Len(),
		"reply_len", len(reply),
	)

	return reply
}
