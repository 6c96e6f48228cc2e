// ABOUTME: Two-stage ask pipeline: Rewriting then Synthesizing, then Done
// ABOUTME: Each step is a function from (stage, input) to (next stage, output)
package core

import (
	"context"
	"strings"

	"github.com/SATHEESH-MEADI/KHIA-Tech/internal/models"
)

// pipelineStage identifies the current stage of an in-flight question
type pipelineStage int

const (
	stageRewriting pipelineStage = iota
	stageSynthesizing
	stageDone
)

// askPipeline carries one question through the two language-model stages.
// The turn is appended to history only once the final answer string is
// known; that ordering is the transaction boundary.
type askPipeline struct {
	session *Session

	stage     pipelineStage
	question  string
	rewritten string
	retrieved []models.RetrievalResult
	answer    string
}

func newAskPipeline(session *Session, question string) *askPipeline {
	return &askPipeline{
		session:  session,
		stage:    stageRewriting,
		question: strings.TrimSpace(question),
	}
}

// run advances the pipeline to completion and records the turn
func (p *askPipeline) run(ctx context.Context) Answer {
	// Guard clauses: blank questions are rejected without a turn, and a
	// session with no indexed chunks answers with the fixed message.
	if p.question == "" {
		return Answer{Answer: EmptyQuestionMessage}
	}
	if p.session.index.Len() == 0 {
		p.rewritten = p.question
		p.answer = NoDocumentsMessage
		p.stage = stageDone
		p.record()
		return p.result()
	}

	for p.stage != stageDone {
		p.step(ctx)
	}
	p.record()
	return p.result()
}

// step executes the current stage and advances to the next
func (p *askPipeline) step(ctx context.Context) {
	switch p.stage {
	case stageRewriting:
		p.rewritten = p.session.rewriter.Rewrite(ctx, p.session.history.Turns(), p.question)
		p.stage = stageSynthesizing

	case stageSynthesizing:
		retrieved, err := p.session.retriever.Retrieve(ctx, p.rewritten)
		if err != nil {
			if ctx.Err() != nil {
				p.answer = "Your request timed out. Please try again."
			} else {
				p.answer = "An error occurred while processing your question: " + err.Error()
			}
			p.stage = stageDone
			return
		}
		p.retrieved = retrieved
		p.answer = p.session.synthesizer.Synthesize(ctx, p.question, retrieved, p.session.history.Turns())
		p.stage = stageDone
	}
}

// record appends the completed turn to the session history
func (p *askPipeline) record() {
	p.session.history.Append(p.question, p.rewritten, p.sources(), p.answer)
}

func (p *askPipeline) result() Answer {
	return Answer{
		Answer:         p.answer,
		RewrittenQuery: p.rewritten,
		Sources:        p.sources(),
	}
}

// sources returns retrieved chunk IDs in similarity-rank order
func (p *askPipeline) sources() []string {
	if len(p.retrieved) == 0 {
		return nil
	}
	ids := make([]string, len(p.retrieved))
	for i, r := range p.retrieved {
		ids[i] = r.Chunk.ChunkID
	}
	return ids
}
