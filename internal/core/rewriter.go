// ABOUTME: QueryRewriter collapses follow-up questions into standalone search queries
// ABOUTME: Prompts the generator with the full turn history; degrades to the verbatim question
package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/SATHEESH-MEADI/KHIA-Tech/internal/models"
)

// QueryRewriter reformulates an elliptical follow-up question into a
// self-contained search query using prior turns as context. It only
// reformulates; it never retrieves.
type QueryRewriter struct {
	generator Generator
}

// NewQueryRewriter creates a QueryRewriter backed by the given generator
func NewQueryRewriter(generator Generator) *QueryRewriter {
	return &QueryRewriter{generator: generator}
}

// Rewrite returns a standalone search query for the new question.
//
// With empty history the question is returned unchanged without a model
// call: there is nothing to disambiguate. If generation fails, the verbatim
// question is returned rather than blocking retrieval.
func (r *QueryRewriter) Rewrite(ctx context.Context, history []models.ConversationTurn, question string) string {
	if len(history) == 0 {
		return question
	}

	prompt := buildRewritePrompt(history, question)
	rewritten, err := r.generator.Generate(ctx, prompt)
	if err != nil {
		return question
	}

	rewritten = strings.TrimSpace(rewritten)
	if rewritten == "" {
		return question
	}
	return rewritten
}

// buildRewritePrompt assembles the conversation transcript and rewrite instruction
func buildRewritePrompt(history []models.ConversationTurn, question string) string {
	var sb strings.Builder
	sb.WriteString("CONVERSATION SO FAR:\n")
	for _, turn := range history {
		fmt.Fprintf(&sb, "User: %s\n", turn.Question)
		fmt.Fprintf(&sb, "Assistant: %s\n", turn.Answer)
	}
	fmt.Fprintf(&sb, "User: %s\n\n", question)
	sb.WriteString("Given the above conversation, generate a search query to look up in order to get information relevant to the conversation. Respond with only the search query, nothing else.")
	return sb.String()
}
