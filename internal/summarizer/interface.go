package summarizer

import "context"

// Summarizer turns a meeting transcript into a bilingual (Arabic + English)
// key-point summary.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}

// Provider is a single LLM completion backend. Implementations must be safe
// for sequential reuse across meetings.
type Provider interface {
	Complete(ctx context.Context, system, prompt string, maxTokens int) (string, error)
}
