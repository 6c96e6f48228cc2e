// ABOUTME: Tests for the append-only conversation history
// ABOUTME: Verifies strictly increasing turn indices and read-only views

package core

import "testing"

func TestHistory_Append(t *testing.T) {
	h := NewHistory()

	if h.Len() != 0 {
		t.Errorf("New history Len() = %d, want 0", h.Len())
	}

	first := h.Append("What is the leave policy?", "leave policy", []string{"chunk_a"}, "Twenty days per year.")
	second := h.Append("What about sick leave?", "sick leave policy", []string{"chunk_b"}, "Ten days per year.")

	if first.TurnIndex != 0 {
		t.Errorf("First TurnIndex = %d, want 0", first.TurnIndex)
	}
	if second.TurnIndex != 1 {
		t.Errorf("Second TurnIndex = %d, want 1", second.TurnIndex)
	}
	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.Len())
	}

	turns := h.Turns()
	for i, turn := range turns {
		if turn.TurnIndex != i {
			t.Errorf("Turn %d has TurnIndex %d", i, turn.TurnIndex)
		}
		if turn.Timestamp.IsZero() {
			t.Errorf("Turn %d has zero timestamp", i)
		}
	}
}

func TestHistory_TurnsReturnsCopy(t *testing.T) {
	h := NewHistory()
	h.Append("question", "query", nil, "answer")

	turns := h.Turns()
	turns[0].Answer = "tampered"

	if got := h.Turns()[0].Answer; got != "answer" {
		t.Errorf("History mutated through Turns() view: Answer = %q", got)
	}
}
