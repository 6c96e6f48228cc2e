// ABOUTME: Capability interfaces for embedding and text generation backends
// ABOUTME: Lets tests substitute deterministic fakes for live models
package core

import "context"

// Embedder maps text to a fixed-dimension dense vector
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Generator produces text from a prompt
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
