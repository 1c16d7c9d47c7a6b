// Package llm provides the generative model client.
package llm

import "context"

// Generator produces a text completion for a prompt. Implementations may
// fail on transport errors; callers apply the fail-soft policy, never retry.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Close() error
}
