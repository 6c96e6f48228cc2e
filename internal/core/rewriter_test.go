// ABOUTME: Tests for history-aware query rewriting
// ABOUTME: Verifies empty-history identity and graceful fallback on failure

package core

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/SATHEESH-MEADI/KHIA-Tech/internal/models"
)

func TestRewrite_EmptyHistoryReturnsQuestionUnchanged(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"should not be used"}}
	r := NewQueryRewriter(gen)

	got := r.Rewrite(context.Background(), nil, "What is the refund policy?")
	if got != "What is the refund policy?" {
		t.Errorf("Rewrite() = %q, want question unchanged", got)
	}
	if gen.callCount() != 0 {
		t.Errorf("Generator called %d times with empty history, want 0", gen.callCount())
	}
}

func TestRewrite_UsesHistory(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"company leave policy sick leave"}}
	r := NewQueryRewriter(gen)

	history := []models.ConversationTurn{
		{TurnIndex: 0, Question: "What is the leave policy?", Answer: "Twenty days of paid leave per year."},
	}

	got := r.Rewrite(context.Background(), history, "What about sick leave specifically?")
	if got != "company leave policy sick leave" {
		t.Errorf("Rewrite() = %q, want scripted rewrite", got)
	}
	if gen.callCount() != 1 {
		t.Fatalf("Generator called %d times, want 1", gen.callCount())
	}

	prompt := gen.prompts[0]
	if !strings.Contains(prompt, "What is the leave policy?") {
		t.Error("Rewrite prompt missing prior question")
	}
	if !strings.Contains(prompt, "Twenty days of paid leave per year.") {
		t.Error("Rewrite prompt missing prior answer")
	}
	if !strings.Contains(prompt, "What about sick leave specifically?") {
		t.Error("Rewrite prompt missing new question")
	}
}

func TestRewrite_FallsBackOnGeneratorFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("model unavailable")}
	r := NewQueryRewriter(gen)

	history := []models.ConversationTurn{{Question: "prior", Answer: "prior answer"}}

	got := r.Rewrite(context.Background(), history, "What about the second one?")
	if got != "What about the second one?" {
		t.Errorf("Rewrite() = %q, want verbatim question on failure", got)
	}
}

func TestRewrite_FallsBackOnBlankResponse(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"   \n"}}
	r := NewQueryRewriter(gen)

	history := []models.ConversationTurn{{Question: "prior", Answer: "prior answer"}}

	got := r.Rewrite(context.Background(), history, "and the deadline?")
	if got != "and the deadline?" {
		t.Errorf("Rewrite() = %q, want verbatim question on blank response", got)
	}
}

func TestRewrite_TrimsResponse(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"  onboarding deadline policy \n"}}
	r := NewQueryRewriter(gen)

	history := []models.ConversationTurn{{Question: "prior", Answer: "prior answer"}}

	got := r.Rewrite(context.Background(), history, "when is it due?")
	if got != "onboarding deadline policy" {
		t.Errorf("Rewrite() = %q, want trimmed rewrite", got)
	}
}
