package analyzer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dgallion1/autodoc/internal/docschema"
)

// scriptedClient returns canned responses in call order and records the
// texts it was sent.
type scriptedClient struct {
	responses []string
	err       error
	failAt    int // 1-based call index to fail on; 0 = never
	calls     []string
}

func (c *scriptedClient) Analyze(_ context.Context, text string) (string, error) {
	c.calls = append(c.calls, text)
	n := len(c.calls)
	if c.failAt != 0 && n == c.failAt {
		return "", c.err
	}
	if n > len(c.responses) {
		return "", fmt.Errorf("unexpected call %d", n)
	}
	return c.responses[n-1], nil
}

func chunkResponse(title string, sections ...string) string {
	var secs []string
	for _, s := range sections {
		secs = append(secs, fmt.Sprintf(`{"title":%q,"content":[]}`, s))
	}
	return fmt.Sprintf(`{"metadata":{"title":%q},"sections":[%s]}`, title, strings.Join(secs, ","))
}

func TestAnalyzeSingleChunk(t *testing.T) {
	client := &scriptedClient{responses: []string{"```json\n" + chunkResponse("T", "A") + "\n```"}}
	a := New(client, 6000)

	doc, err := a.Analyze(context.Background(), "Hello world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Metadata.Title != "T" {
		t.Errorf("expected title T, got %q", doc.Metadata.Title)
	}
	if len(client.calls) != 1 {
		t.Fatalf("expected 1 LLM call, got %d", len(client.calls))
	}
	if strings.Contains(client.calls[0], "[Suite du document") {
		t.Error("single chunk must not carry a continuation marker")
	}
}

func TestAnalyzeMultiChunkMarkersAndMerge(t *testing.T) {
	// Three paragraphs of 400 chars (100 tokens each), threshold 100:
	// each paragraph becomes its own chunk.
	para := strings.Repeat("abcd", 100)
	text := strings.Join([]string{para, para, para}, "\n\n")

	r1 := `{"metadata":{"title":"M1"},"sections":[{"title":"S1","content":[]}],"sources":[{"title":"src1"}]}`
	r2 := `{"metadata":{"title":"M2"},"sections":[{"title":"S2","content":[]}]}`
	r3 := `{"metadata":{"title":"M3"},"sections":[{"title":"S3","content":[]}],"conclusion":{"title":"C3"},"sources":[{"title":"src3"}]}`
	client := &scriptedClient{responses: []string{r1, r2, r3}}

	a := New(client, 100)
	doc, err := a.Analyze(context.Background(), text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(client.calls) != 3 {
		t.Fatalf("expected 3 LLM calls, got %d", len(client.calls))
	}
	if strings.Contains(client.calls[0], "[Suite du document") {
		t.Error("first chunk must not carry a continuation marker")
	}
	if !strings.HasPrefix(client.calls[1], "[Suite du document - Partie 2/3]\n\n") {
		t.Errorf("chunk 2 marker wrong: %q", client.calls[1][:60])
	}
	if !strings.HasPrefix(client.calls[2], "[Suite du document - Partie 3/3]\n\n") {
		t.Errorf("chunk 3 marker wrong: %q", client.calls[2][:60])
	}

	if doc.Metadata.Title != "M1" {
		t.Errorf("expected first chunk's metadata, got %q", doc.Metadata.Title)
	}
	var titles []string
	for _, s := range doc.Sections {
		titles = append(titles, s.Title)
	}
	if strings.Join(titles, ",") != "S1,S2,S3" {
		t.Errorf("expected sections in chunk order, got %v", titles)
	}
	if doc.Conclusion == nil || doc.Conclusion.Title != "C3" {
		t.Errorf("expected last chunk's conclusion, got %#v", doc.Conclusion)
	}
	if len(doc.Sources) != 2 {
		t.Errorf("expected concatenated sources, got %#v", doc.Sources)
	}
	if !doc.TOC {
		t.Error("merged document must force toc on")
	}
}

func TestAnalyzeChunkFailureAborts(t *testing.T) {
	para := strings.Repeat("abcd", 100)
	text := para + "\n\n" + para

	callErr := errors.New("rate limited")
	client := &scriptedClient{
		responses: []string{chunkResponse("M1", "S1"), ""},
		failAt:    2,
		err:       callErr,
	}

	a := New(client, 100)
	_, err := a.Analyze(context.Background(), text)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, callErr) {
		t.Errorf("expected wrapped chunk error, got %v", err)
	}
	if !strings.Contains(err.Error(), "chunk 2/2") {
		t.Errorf("expected chunk position in error, got %q", err.Error())
	}
}

func TestAnalyzeInvalidResponseSurfacesSchemaError(t *testing.T) {
	client := &scriptedClient{responses: []string{"not json at all"}}
	a := New(client, 6000)

	_, err := a.Analyze(context.Background(), "short text")
	var se *docschema.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if se.Kind != docschema.KindMalformedJSON {
		t.Errorf("expected KindMalformedJSON, got %v", se.Kind)
	}
}

func TestMergeProperties(t *testing.T) {
	d1 := &docschema.DocumentStructure{Metadata: docschema.Metadata{Title: "M1"}}
	d2 := &docschema.DocumentStructure{Metadata: docschema.Metadata{Title: "M2"}}
	d3 := &docschema.DocumentStructure{
		Metadata:   docschema.Metadata{Title: "M3"},
		Conclusion: &docschema.Conclusion{Title: "C3"},
	}

	merged := Merge([]*docschema.DocumentStructure{d1, d2, d3})
	if merged.Metadata.Title != "M1" {
		t.Errorf("expected metadata M1, got %q", merged.Metadata.Title)
	}
	if merged.Conclusion == nil || merged.Conclusion.Title != "C3" {
		t.Errorf("expected conclusion C3, got %#v", merged.Conclusion)
	}

	// Last chunk without a conclusion means no conclusion at all, even if
	// an earlier chunk had one.
	d2.Conclusion = &docschema.Conclusion{Title: "C2"}
	d3.Conclusion = nil
	merged = Merge([]*docschema.DocumentStructure{d1, d2, d3})
	if merged.Conclusion != nil {
		t.Errorf("expected no conclusion, got %#v", merged.Conclusion)
	}
}
