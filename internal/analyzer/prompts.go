package analyzer

// Prompts holds the templates the Analyzer renders before calling the
// completion API. They are injected at construction so callers can swap them
// without touching extraction logic; DefaultPrompts covers the common case.
type Prompts struct {
	System string
	// User is a format string taking the raw email text as its one argument.
	User string
}

func DefaultPrompts() Prompts {
	return Prompts{System: systemPrompt, User: userPrompt}
}

const systemPrompt = `You are a legal AI assistant. Extract structured data from the provided email.`

const userPrompt = `Analyze the following email from a client to their legal counsel and extract its metadata.

EMAIL:
---
%s
---

Respond with valid JSON matching this schema:
{
  "intent": "short label for the email's purpose, e.g. legal_advice_request, dispute, inquiry",
  "parties": ["every organisation or person named, in order of appearance"],
  "dates": ["every date mentioned, verbatim, in order of appearance"],
  "questions": ["each question the sender asks, explicitly or implicitly"],
  "primary_topic": "the main legal topic discussed",
  "urgency": "low|medium|high"
}

The intent, parties, dates and questions fields are mandatory. Return ONLY the JSON object, no markdown fences or other text.`
