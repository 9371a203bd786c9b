// Package convert orchestrates one document conversion: extract text,
// analyze it with the configured LLM, render the structure to HTML.
package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgallion1/autodoc/internal/analyzer"
	"github.com/dgallion1/autodoc/internal/docschema"
	"github.com/dgallion1/autodoc/internal/extractor"
	"github.com/dgallion1/autodoc/internal/llm"
	"github.com/dgallion1/autodoc/internal/render"
)

// Result is the boundary value for a conversion. Failures are carried as a
// message, never as a raw internal error crossing the boundary.
type Result struct {
	Success  bool
	HTML     string
	Filename string
	Error    string
}

// Service runs conversions. It is stateless per request; the latency stats
// collector is the only shared state and is concurrency-safe.
type Service struct {
	log            *slog.Logger
	chunkThreshold int
	llmTimeout     time.Duration
	stats          *llm.Stats

	// newClient is swapped in tests.
	newClient func(cfg llm.Config, timeout time.Duration, stats *llm.Stats) (llm.Client, error)
}

func NewService(log *slog.Logger, chunkThreshold int, llmTimeout time.Duration, stats *llm.Stats) *Service {
	return &Service{
		log:            log,
		chunkThreshold: chunkThreshold,
		llmTimeout:     llmTimeout,
		stats:          stats,
		newClient:      llm.New,
	}
}

// Convert turns uploaded file bytes into a rendered HTML report.
func (s *Service) Convert(ctx context.Context, data []byte, filename string, cfg llm.Config) Result {
	log := s.log.With("filename", filename, "provider", cfg.Provider)

	text, err := extractor.Extract(data, filename)
	if err != nil {
		log.Error("extraction failed", "error", err)
		return failure(err)
	}
	if strings.TrimSpace(text) == "" {
		return Result{Error: "Le document ne contient pas de texte extractible."}
	}

	client, err := s.newClient(cfg, s.llmTimeout, s.stats)
	if err != nil {
		return failure(err)
	}

	start := time.Now()
	doc, err := analyzer.New(client, s.chunkThreshold).Analyze(ctx, text)
	if err != nil {
		log.Error("analysis failed", "error", err)
		return failure(err)
	}
	log.Info("analysis complete",
		"sections", len(doc.Sections),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return Result{
		Success:  true,
		HTML:     render.Render(doc),
		Filename: outputFilename(filename),
	}
}

// failure maps internal errors onto the two user-facing message families
// the API exposes: validation problems and everything else.
func failure(err error) Result {
	var se *docschema.SchemaError
	var pe *extractor.ParseError
	switch {
	case errors.As(err, &se),
		errors.As(err, &pe),
		errors.Is(err, extractor.ErrUnsupportedType):
		return Result{Error: fmt.Sprintf("Erreur de validation: %s", err)}
	default:
		return Result{Error: fmt.Sprintf("Erreur lors de la conversion: %s", err)}
	}
}

// outputFilename swaps the input extension for "_converted.html".
func outputFilename(input string) string {
	base := input
	if idx := strings.LastIndex(input, "."); idx >= 0 {
		base = input[:idx]
	}
	return base + "_converted.html"
}
