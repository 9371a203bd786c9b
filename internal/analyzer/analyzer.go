// Package analyzer drives the chunk → LLM → validate → merge flow that turns
// extracted text into a validated document structure.
package analyzer

import (
	"context"
	"fmt"

	"github.com/dgallion1/autodoc/internal/chunker"
	"github.com/dgallion1/autodoc/internal/docschema"
	"github.com/dgallion1/autodoc/internal/llm"
)

// Analyzer owns the chunking threshold and a provider client.
type Analyzer struct {
	client    llm.Client
	threshold int
}

func New(client llm.Client, chunkThreshold int) *Analyzer {
	return &Analyzer{
		client:    client,
		threshold: chunkThreshold,
	}
}

// Analyze converts text into a DocumentStructure. Long documents are split
// into chunks analyzed sequentially; any chunk failure aborts the whole
// analysis with that chunk's error.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*docschema.DocumentStructure, error) {
	chunks := chunker.Chunk(text, a.threshold)

	if len(chunks) == 1 {
		return a.analyzeChunk(ctx, chunks[0])
	}

	results := make([]*docschema.DocumentStructure, 0, len(chunks))
	for i, chunk := range chunks {
		if i > 0 {
			// Tell the model it is receiving a fragment of a longer document.
			chunk = fmt.Sprintf("[Suite du document - Partie %d/%d]\n\n%s", i+1, len(chunks), chunk)
		}
		doc, err := a.analyzeChunk(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
		}
		results = append(results, doc)
	}

	return Merge(results), nil
}

func (a *Analyzer) analyzeChunk(ctx context.Context, chunk string) (*docschema.DocumentStructure, error) {
	raw, err := a.client.Analyze(ctx, chunk)
	if err != nil {
		return nil, err
	}
	return docschema.Validate(llm.StripCodeFence(raw))
}
