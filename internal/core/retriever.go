// ABOUTME: Retriever embeds a query and returns the top-k most similar chunks
// ABOUTME: Thin read-path wrapper around the vector index
package core

import (
	"context"
	"fmt"

	"github.com/SATHEESH-MEADI/KHIA-Tech/internal/index"
	"github.com/SATHEESH-MEADI/KHIA-Tech/internal/models"
)

// DefaultTopK is the recommended number of chunks to retrieve per query
const DefaultTopK = 3

// Retriever wraps the vector index for the query path
type Retriever struct {
	embedder Embedder
	index    *index.Index
	topK     int
}

// NewRetriever creates a Retriever with a fixed top-k
func NewRetriever(embedder Embedder, ix *index.Index, topK int) *Retriever {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Retriever{embedder: embedder, index: ix, topK: topK}
}

// Retrieve embeds the query and searches the index. An empty result is a
// normal outcome (empty index or no entries), not an error.
func (r *Retriever) Retrieve(ctx context.Context, query string) ([]models.RetrievalResult, error) {
	vector, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	return r.index.Search(vector, r.topK), nil
}
