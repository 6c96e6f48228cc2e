// ABOUTME: Chunk is a bounded contiguous span of a document used for retrieval
// ABOUTME: Derived deterministically by the chunker, immutable once created
package models

// Chunk is one overlapping window of a document's text.
// Offsets are in Unicode code points into the document's raw text.
type Chunk struct {
	ChunkID       string `json:"chunk_id"`
	DocumentID    string `json:"document_id"`
	SequenceIndex int    `json:"sequence_index"`
	Text          string `json:"text"`
	StartOffset   int    `json:"start_offset"`
	EndOffset     int    `json:"end_offset"`
}
