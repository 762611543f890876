// internal/providers/provider.go

// Package providers defines the boundary to external generative text
// capabilities. The retrieval core depends only on the Generator
// interface, so the template-mode path is testable with no external
// dependency at all.
package providers

import "context"

// Generator produces a bounded natural-language answer from a bounded
// prompt. Implementations may fail (timeout, unavailable host, malformed
// output); callers are expected to degrade rather than propagate.
type Generator interface {
	// Generate returns the model's text for the given prompt.
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls the wrapped function.
func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
