// ABOUTME: Deterministic fake embedder and generator for core tests
// ABOUTME: Substitutes for live models via the capability interfaces

package core

import (
	"context"
	"strings"
)

// vocab defines the dimensions of the fake embedding space
var vocab = []string{"employee", "onboard", "leave", "sick", "policy", "expense", "refund", "day"}

// fakeEmbedder maps text to keyword-count vectors over a fixed vocabulary,
// so lexically related texts get high cosine similarity
type fakeEmbedder struct {
	calls int
	err   error
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	lower := strings.ToLower(text)
	vector := make([]float64, len(vocab))
	for i, word := range vocab {
		vector[i] = float64(strings.Count(lower, word))
	}
	return vector, nil
}

// fakeGenerator returns scripted responses in order and records prompts
type fakeGenerator struct {
	responses []string
	prompts   []string
	err       error
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "", nil
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp, nil
}

func (f *fakeGenerator) callCount() int {
	return len(f.prompts)
}
