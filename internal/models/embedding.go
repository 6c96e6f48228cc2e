// ABOUTME: Embedding models for vector storage and semantic search
// ABOUTME: Defines Embedding and RetrievalResult structures
package models

// Embedding represents a stored embedding vector for a text chunk
type Embedding struct {
	ChunkID   string    `json:"chunk_id"`
	Vector    []float64 `json:"vector"`
	Dimension int       `json:"dimension"`
}

// RetrievalResult pairs a chunk with its similarity score for one query.
// Ephemeral: produced per query and consumed by the answer synthesizer.
type RetrievalResult struct {
	Chunk           Chunk   `json:"chunk"`
	SimilarityScore float64 `json:"similarity_score"`
}
