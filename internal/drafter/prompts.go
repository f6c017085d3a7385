package drafter

// Prompts holds the drafting templates, injected at construction like the
// analyzer's. User takes, in order: client name, rendered clause text, the
// incoming email, and the analysis record serialised as JSON.
type Prompts struct {
	System string
	User   string
}

func DefaultPrompts() Prompts {
	return Prompts{System: systemPrompt, User: userPrompt}
}

const systemPrompt = `You are a professional lawyer drafting replies to client emails.`

const userPrompt = `Draft a reply to the following email based on the provided analysis and contract clauses.

CONTEXT:
- Your Client: %s
- Sender Name (address them): derived from the email signature
- Contract Clauses:
%s

INCOMING EMAIL:
%s

ANALYSIS DATA:
%s

REQUIREMENTS:
1. Use a professional legal tone.
2. Clearly answer the specific questions identified in the analysis.
3. Cite specific clauses (e.g. 9.1, 9.2, 10.2) to support your answers.
4. Explicitly mention that repeated failure to meet delivery timelines is a material breach.
5. State the notice period clearly.
6. Do NOT admit liability.
7. Keep it concise.`
