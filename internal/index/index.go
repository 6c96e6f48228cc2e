// ABOUTME: In-memory vector index with incremental insert and cosine similarity search
// ABOUTME: Stores (embedding, chunk) entries; append-only, no eviction
package index

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/SATHEESH-MEADI/KHIA-Tech/internal/models"
)

// ErrDimensionMismatch signals that a newly computed embedding's dimension
// differs from the index's established dimension. This indicates the
// embedder was swapped mid-session; fatal, never retried.
var ErrDimensionMismatch = errors.New("embedding dimension mismatch")

// Embedder maps text to a fixed-dimension dense vector
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// entry is one stored (embedding, chunk) pair
type entry struct {
	embedding models.Embedding
	chunk     models.Chunk
}

// Index holds all entries in memory, bounded only by available memory.
// Entries are insertion-ordered; retrieval order is similarity-ranked.
type Index struct {
	mu       sync.RWMutex
	embedder Embedder

	// dimension is established by the first inserted embedding
	dimension int
	entries   []entry
}

// New creates an empty Index backed by the given embedder
func New(embedder Embedder) *Index {
	return &Index{embedder: embedder}
}

// Insert embeds each chunk and appends the resulting entries. Safe to call
// repeatedly for incremental growth; never removes or rewrites entries.
func (ix *Index) Insert(ctx context.Context, chunks []models.Chunk) error {
	for _, chunk := range chunks {
		vector, err := ix.embedder.Embed(ctx, chunk.Text)
		if err != nil {
			return fmt.Errorf("embedding chunk %s: %w", chunk.ChunkID, err)
		}

		ix.mu.Lock()
		if ix.dimension == 0 {
			ix.dimension = len(vector)
		} else if len(vector) != ix.dimension {
			ix.mu.Unlock()
			return fmt.Errorf("%w: index has dimension %d, got %d for chunk %s",
				ErrDimensionMismatch, ix.dimension, len(vector), chunk.ChunkID)
		}
		ix.entries = append(ix.entries, entry{
			embedding: models.Embedding{ChunkID: chunk.ChunkID, Vector: vector, Dimension: len(vector)},
			chunk:     chunk,
		})
		ix.mu.Unlock()
	}
	return nil
}

// Search returns at most k entries ranked by descending cosine similarity.
// Ties are broken by insertion order (earlier-inserted chunk wins), so
// identical inputs always produce identical ordered results. An empty index
// yields an empty result, not an error.
func (ix *Index) Search(queryVector []float64, k int) []models.RetrievalResult {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if k <= 0 || len(ix.entries) == 0 {
		return nil
	}

	results := make([]models.RetrievalResult, 0, len(ix.entries))
	for _, e := range ix.entries {
		results = append(results, models.RetrievalResult{
			Chunk:           e.chunk,
			SimilarityScore: cosineSimilarity(queryVector, e.embedding.Vector),
		})
	}

	// Stable sort keeps insertion order among equal scores
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].SimilarityScore > results[j].SimilarityScore
	})

	if len(results) > k {
		results = results[:k]
	}
	return results
}

// Len returns the number of stored entries
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.entries)
}

// cosineSimilarity calculates cosine similarity between two vectors
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
