// ABOUTME: AnswerSynthesizer produces grounded answers from retrieved chunks
// ABOUTME: Prompts the generator with context, history, and question; never raises
package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/SATHEESH-MEADI/KHIA-Tech/internal/models"
)

// NoRelevantInformationMessage is returned when retrieval produced no
// results for a populated index.
const NoRelevantInformationMessage = "No relevant answers found for your question."

// InsufficientContextMessage is the exact phrase the model is instructed to
// emit when the retrieved context cannot answer the question. The pipeline
// does not independently verify groundedness.
const InsufficientContextMessage = "I'm sorry, I don't have enough information from the provided documents to answer that."

// AnswerSynthesizer generates an answer strictly grounded in retrieved
// chunk texts.
type AnswerSynthesizer struct {
	generator   Generator
	tokenBudget int
}

// NewAnswerSynthesizer creates a synthesizer with the given context token budget
func NewAnswerSynthesizer(generator Generator, tokenBudget int) *AnswerSynthesizer {
	return &AnswerSynthesizer{generator: generator, tokenBudget: tokenBudget}
}

// Synthesize produces the answer text for one question. Three outcomes:
// a fixed no-information message when retrieved is empty (no model call),
// the insufficient-context sentinel when the model judges the evidence
// inadequate, or the generated answer trimmed of surrounding whitespace.
// Generation failures are converted to a user-visible error string so the
// pipeline never crashes mid-session.
func (s *AnswerSynthesizer) Synthesize(ctx context.Context, question string, retrieved []models.RetrievalResult, history []models.ConversationTurn) string {
	if len(retrieved) == 0 {
		return NoRelevantInformationMessage
	}

	prompt := s.buildAnswerPrompt(question, retrieved, history)

	answer, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		if ctx.Err() != nil {
			return "Your request timed out. Please try again."
		}
		return fmt.Sprintf("An error occurred while processing your question: %v", err)
	}

	return strings.TrimSpace(answer)
}

// buildAnswerPrompt assembles context block, conversation history, and the
// current question under a strict grounding instruction
func (s *AnswerSynthesizer) buildAnswerPrompt(question string, retrieved []models.RetrievalResult, history []models.ConversationTurn) string {
	// Context block: chunk texts in similarity-rank order, token-limited
	var ctxBlock strings.Builder
	for i, result := range retrieved {
		if i > 0 {
			ctxBlock.WriteString("\n\n")
		}
		ctxBlock.WriteString(result.Chunk.Text)
	}
	contextBlock := truncateToTokens(ctxBlock.String(), s.tokenBudget)

	var sb strings.Builder
	sb.WriteString("You are a helpful assistant. Answer the user's question strictly based on the following context. ")
	fmt.Fprintf(&sb, "If the answer cannot be found in the context, reply with exactly: %q\n\n", InsufficientContextMessage)
	sb.WriteString("CONTEXT:\n")
	sb.WriteString(contextBlock)
	sb.WriteString("\n\n")

	if len(history) > 0 {
		sb.WriteString("CONVERSATION SO FAR:\n")
		for _, turn := range history {
			fmt.Fprintf(&sb, "User: %s\n", turn.Question)
			fmt.Fprintf(&sb, "Assistant: %s\n", turn.Answer)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "QUESTION: %s", question)
	return sb.String()
}
