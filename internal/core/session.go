// ABOUTME: Session owns one vector index plus conversation history and runs the ask pipeline
// ABOUTME: Explicit per-session state; nothing is shared across sessions
package core

import (
	"context"
	"fmt"

	"github.com/SATHEESH-MEADI/KHIA-Tech/internal/chunker"
	"github.com/SATHEESH-MEADI/KHIA-Tech/internal/config"
	"github.com/SATHEESH-MEADI/KHIA-Tech/internal/index"
	"github.com/SATHEESH-MEADI/KHIA-Tech/internal/models"
)

// NoDocumentsMessage is returned when a question arrives before any ingestion
const NoDocumentsMessage = "No documents indexed for retrieval. Please upload files first."

// EmptyQuestionMessage is returned for a blank question
const EmptyQuestionMessage = "Please provide a question to answer."

// Answer is the query-boundary result. Sources lists the chunk identifiers
// the answer was grounded in, in similarity-rank order; callers use it to
// show provenance.
type Answer struct {
	Answer         string   `json:"answer"`
	RewrittenQuery string   `json:"rewritten_query"`
	Sources        []string `json:"sources"`
}

// Session is the explicit per-session state object. It owns its index and
// history exclusively; independent sessions never share either. Callers
// must not issue a new Ask while a prior one is in flight.
type Session struct {
	chunker     *chunker.Chunker
	index       *index.Index
	rewriter    *QueryRewriter
	retriever   *Retriever
	synthesizer *AnswerSynthesizer
	history     *History
	documents   []*models.Document
}

// NewSession builds a session from configuration and capability backends.
// Configuration errors (chunker window/overlap, top-k) are fatal here and
// never recovered later.
func NewSession(cfg *config.Config, embedder Embedder, generator Generator) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ck, err := chunker.New(cfg.WindowSize, cfg.OverlapSize)
	if err != nil {
		return nil, err
	}

	ix := index.New(embedder)

	return &Session{
		chunker:     ck,
		index:       ix,
		rewriter:    NewQueryRewriter(generator),
		retriever:   NewRetriever(embedder, ix, cfg.TopK),
		synthesizer: NewAnswerSynthesizer(generator, cfg.ContextTokenBudget),
		history:     NewHistory(),
	}, nil
}

// Ingest accepts one normalized document, chunks it, and folds the chunks
// into the session's index. A dimension mismatch from the index is a fatal
// configuration error and propagates.
func (s *Session) Ingest(ctx context.Context, name, rawText string) (*models.Document, error) {
	doc, err := models.NewDocument(name, rawText)
	if err != nil {
		return nil, fmt.Errorf("ingesting %q: %w", name, err)
	}

	chunks := s.chunker.Split(doc)
	if err := s.index.Insert(ctx, chunks); err != nil {
		return nil, fmt.Errorf("indexing %q: %w", name, err)
	}

	s.documents = append(s.documents, doc)
	return doc, nil
}

// Ask answers one question through the rewrite → retrieve → synthesize
// pipeline and appends the completed turn to the history. Every path
// produces a textual answer; transient model failures surface as
// user-visible strings, never as faults.
func (s *Session) Ask(ctx context.Context, question string) Answer {
	p := newAskPipeline(s, question)
	return p.run(ctx)
}

// Documents returns the ingested documents in ingestion order
func (s *Session) Documents() []*models.Document {
	out := make([]*models.Document, len(s.documents))
	copy(out, s.documents)
	return out
}

// History returns a copy of the completed conversation turns
func (s *Session) History() []models.ConversationTurn {
	return s.history.Turns()
}

// IndexSize returns the number of chunks currently indexed
func (s *Session) IndexSize() int {
	return s.index.Len()
}
