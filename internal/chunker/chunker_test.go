// ABOUTME: Tests for the overlapping window chunker
// ABOUTME: Verifies window sizing, overlap round-trip, and config validation

package chunker

import (
	"errors"
	"strings"
	"testing"

	"github.com/SATHEESH-MEADI/KHIA-Tech/internal/config"
	"github.com/SATHEESH-MEADI/KHIA-Tech/internal/models"
)

func testDoc(text string) *models.Document {
	return &models.Document{ID: "doc_test", Name: "test.txt", RawText: text}
}

func TestNew_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name    string
		window  int
		overlap int
	}{
		{"overlap equals window", 100, 100},
		{"overlap exceeds window", 100, 150},
		{"negative overlap", 100, -1},
		{"zero window", 0, 0},
		{"negative window", -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.window, tt.overlap)
			if err == nil {
				t.Fatal("Expected error for invalid configuration")
			}
			if !errors.Is(err, config.ErrInvalidConfiguration) {
				t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
			}
			if c != nil {
				t.Error("Expected nil chunker on error")
			}
		})
	}
}

func TestSplit_EmptyText(t *testing.T) {
	c, err := New(100, 20)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	chunks := c.Split(testDoc(""))
	if len(chunks) != 0 {
		t.Errorf("Expected zero chunks for empty text, got %d", len(chunks))
	}
}

func TestSplit_ShortText(t *testing.T) {
	c, err := New(100, 20)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	text := "Employees must complete onboarding within 30 days."
	chunks := c.Split(testDoc(text))
	if len(chunks) != 1 {
		t.Fatalf("Expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Text != text {
		t.Errorf("Chunk text = %q, want full text", chunks[0].Text)
	}
	if chunks[0].StartOffset != 0 || chunks[0].EndOffset != len([]rune(text)) {
		t.Errorf("Offsets = [%d, %d), want [0, %d)", chunks[0].StartOffset, chunks[0].EndOffset, len([]rune(text)))
	}
	if chunks[0].DocumentID != "doc_test" {
		t.Errorf("DocumentID = %q, want doc_test", chunks[0].DocumentID)
	}
}

func TestSplit_WindowAndOverlap(t *testing.T) {
	c, err := New(10, 4)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	text := strings.Repeat("abcdefghij", 3) // 30 chars
	chunks := c.Split(testDoc(text))

	if len(chunks) < 2 {
		t.Fatalf("Expected multiple chunks, got %d", len(chunks))
	}

	for i, ch := range chunks {
		if got := ch.EndOffset - ch.StartOffset; got > 10 {
			t.Errorf("Chunk %d width = %d, want <= 10", i, got)
		}
		if ch.SequenceIndex != i {
			t.Errorf("Chunk %d SequenceIndex = %d", i, ch.SequenceIndex)
		}
		if i > 0 {
			prev := chunks[i-1]
			if ch.StartOffset <= prev.StartOffset {
				t.Errorf("Chunk %d StartOffset %d not after previous %d", i, ch.StartOffset, prev.StartOffset)
			}
			if overlap := prev.EndOffset - ch.StartOffset; overlap != 4 && prev.EndOffset-prev.StartOffset == 10 {
				t.Errorf("Chunk %d overlap = %d, want 4", i, overlap)
			}
		}
	}
}

func TestSplit_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		window  int
		overlap int
		text    string
	}{
		{"no overlap", 8, 0, "The quick brown fox jumps over the lazy dog"},
		{"small overlap", 10, 3, "Employees must complete onboarding within 30 days of their start date."},
		{"large overlap", 20, 15, strings.Repeat("policy text ", 20)},
		{"exact multiple", 10, 5, strings.Repeat("x", 25)},
		{"unicode", 6, 2, "naïve café résumé — überraschung"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.window, tt.overlap)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			chunks := c.Split(testDoc(tt.text))
			if len(chunks) == 0 {
				t.Fatal("Expected at least one chunk for non-empty text")
			}

			// Reconstruct by dropping each chunk's leading overlap
			var sb strings.Builder
			for i, ch := range chunks {
				runes := []rune(ch.Text)
				if i == 0 {
					sb.WriteString(ch.Text)
					continue
				}
				skip := chunks[i-1].EndOffset - ch.StartOffset
				if skip < 0 || skip > len(runes) {
					t.Fatalf("Chunk %d has inconsistent offsets", i)
				}
				sb.WriteString(string(runes[skip:]))
			}

			if sb.String() != tt.text {
				t.Errorf("Round-trip = %q, want %q", sb.String(), tt.text)
			}
		})
	}
}

func TestSplit_Deterministic(t *testing.T) {
	c, err := New(12, 4)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	doc := testDoc("Sick leave accrues at one day per month of employment.")
	a := c.Split(doc)
	b := c.Split(doc)

	if len(a) != len(b) {
		t.Fatalf("Chunk counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Text != b[i].Text || a[i].StartOffset != b[i].StartOffset || a[i].EndOffset != b[i].EndOffset {
			t.Errorf("Chunk %d differs between runs", i)
		}
	}
}
