package llm

import "context"

// Request is one completion call: a system preamble, the composed prompt and
// generation controls.
type Request struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}

type Provider interface {
	// Complete returns the full generated text for req.
	Complete(ctx context.Context, req Request) (string, error)
	Close() error
}
