// Package relay answers chat messages with a repair guide: a message, a model
// description and the repair steps. Answers come from a language model or,
// in mock mode, from a built-in demo.
package relay

import "context"

// Client sends a prompt to a language model and returns the reply text.
// Model is provider-specific (e.g. "gpt-4o-mini").
type Client interface {
	Complete(ctx context.Context, model, systemPrompt, userMessage string) (string, error)
}
