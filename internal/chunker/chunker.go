// ABOUTME: Chunker splits document text into overlapping fixed-size windows
// ABOUTME: Character-based windows sized for embedding, with configurable overlap
package chunker

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/SATHEESH-MEADI/KHIA-Tech/internal/config"
	"github.com/SATHEESH-MEADI/KHIA-Tech/internal/models"
)

// Chunker partitions raw text into windows of at most windowSize characters
// (Unicode code points), each overlapping the previous by overlapSize.
type Chunker struct {
	windowSize  int
	overlapSize int
}

// New creates a Chunker, validating 0 <= overlapSize < windowSize
func New(windowSize, overlapSize int) (*Chunker, error) {
	if windowSize <= 0 {
		return nil, fmt.Errorf("%w: window size must be positive, got %d", config.ErrInvalidConfiguration, windowSize)
	}
	if overlapSize < 0 || overlapSize >= windowSize {
		return nil, fmt.Errorf("%w: overlap must satisfy 0 <= overlap < window, got overlap=%d window=%d",
			config.ErrInvalidConfiguration, overlapSize, windowSize)
	}
	return &Chunker{windowSize: windowSize, overlapSize: overlapSize}, nil
}

// Split partitions the document's text into ordered overlapping chunks.
// Pure function: produces at least one chunk for non-empty text and zero
// chunks for empty text. Offsets are code-point indices into RawText.
func (c *Chunker) Split(doc *models.Document) []models.Chunk {
	runes := []rune(doc.RawText)
	if len(runes) == 0 {
		return nil
	}

	stride := c.windowSize - c.overlapSize

	var chunks []models.Chunk
	for start := 0; start < len(runes); start += stride {
		end := start + c.windowSize
		if end > len(runes) {
			end = len(runes)
		}

		chunks = append(chunks, models.Chunk{
			ChunkID:       generateChunkID(),
			DocumentID:    doc.ID,
			SequenceIndex: len(chunks),
			Text:          string(runes[start:end]),
			StartOffset:   start,
			EndOffset:     end,
		})

		if end == len(runes) {
			break
		}
	}

	return chunks
}

// generateChunkID generates a unique chunk ID
func generateChunkID() string {
	return "chunk_" + uuid.New().String()
}
