// ABOUTME: ConversationTurn represents a single question/answer exchange
// ABOUTME: Core data structure for the append-only session history
package models

import "time"

// ConversationTurn is one completed exchange in a session. Turns are
// appended in strictly increasing TurnIndex order and never mutated.
type ConversationTurn struct {
	TurnIndex         int       `json:"turn_index"`
	Timestamp         time.Time `json:"timestamp"`
	Question          string    `json:"question"`
	RewrittenQuery    string    `json:"rewritten_query"`
	RetrievedChunkIDs []string  `json:"retrieved_chunk_ids,omitempty"`
	Answer            string    `json:"answer"`
}
