// Package analyzer turns raw email text into a schema-validated Analysis
// record. In live mode it asks the completion API and validates the reply; any
// malformed or incomplete response is replaced wholesale by the fixture record,
// so downstream code never sees a partial Analysis.
package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Kaushal-04/Legal-Email-Assistant/internal/llm"
)

type Analyzer struct {
	llm     *llm.Client
	mode    llm.Mode
	prompts Prompts
	logger  *slog.Logger
}

func New(client *llm.Client, mode llm.Mode, prompts Prompts, logger *slog.Logger) *Analyzer {
	return &Analyzer{llm: client, mode: mode, prompts: prompts, logger: logger}
}

// Analyze extracts structured metadata from an email. It never fails: every
// recoverable condition — no credential, transport error, invalid JSON, missing
// field — resolves to the deterministic fallback record. No retries are made;
// a single bad response triggers the substitution immediately.
func (a *Analyzer) Analyze(ctx context.Context, emailText string) *Analysis {
	if a.mode == llm.ModeMock {
		return FallbackAnalysis()
	}

	prompt := fmt.Sprintf(a.prompts.User, emailText)
	messages := []llm.Message{
		{Role: "user", Content: prompt},
	}

	raw, err := a.llm.Complete(ctx, a.prompts.System, messages, 1024)
	if err != nil {
		a.logger.Warn("completion call failed, substituting fallback analysis", "error", err)
		return FallbackAnalysis()
	}

	parsed, err := parseAnalysis(raw)
	if err != nil {
		a.logger.Warn("analysis response rejected, substituting fallback analysis",
			"error", err,
			"raw", raw,
		)
		return FallbackAnalysis()
	}

	a.logger.Info("email analyzed",
		"intent", parsed.Intent,
		"parties", len(parsed.Parties),
		"questions", len(parsed.Questions),
	)

	return parsed
}

// parseAnalysis validates a raw completion against the Analysis contract.
// Presence is checked on the raw document first, since decoding into the
// struct alone cannot distinguish a missing key from a zero value.
func parseAnalysis(raw string) (*Analysis, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("parse analysis: %w", err)
	}

	for _, key := range requiredFields {
		v, ok := fields[key]
		if !ok || string(v) == "null" {
			return nil, fmt.Errorf("missing required field %q", key)
		}
	}

	var parsed Analysis
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("parse analysis: %w", err)
	}

	return &parsed, nil
}
