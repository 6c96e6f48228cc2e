// ABOUTME: History is the append-only conversation state for one session
// ABOUTME: Turns accumulate in strictly increasing index order, never mutated
package core

import (
	"time"

	"github.com/SATHEESH-MEADI/KHIA-Tech/internal/models"
)

// History records completed conversation turns for a single session.
// Append-only: no mutation or deletion operation exists, so the history
// remains a faithful audit trail. A session has a single control flow per
// interaction, so History is not safe for concurrent use.
type History struct {
	turns []models.ConversationTurn
}

// NewHistory creates an empty conversation history
func NewHistory() *History {
	return &History{}
}

// Append records a completed turn. TurnIndex starts at 0 and increases by
// one per call. Called only after the full answer is known.
func (h *History) Append(question, rewrittenQuery string, retrievedChunkIDs []string, answer string) models.ConversationTurn {
	turn := models.ConversationTurn{
		TurnIndex:         len(h.turns),
		Timestamp:         time.Now().UTC(),
		Question:          question,
		RewrittenQuery:    rewrittenQuery,
		RetrievedChunkIDs: retrievedChunkIDs,
		Answer:            answer,
	}
	h.turns = append(h.turns, turn)
	return turn
}

// Turns returns a read-only copy of the recorded turns in order
func (h *History) Turns() []models.ConversationTurn {
	out := make([]models.ConversationTurn, len(h.turns))
	copy(out, h.turns)
	return out
}

// Len returns the number of recorded turns
func (h *History) Len() int {
	return len(h.turns)
}
