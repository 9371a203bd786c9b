package extractor

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestForFileSelection(t *testing.T) {
	cases := []struct {
		filename string
		wantType string
	}{
		{"report.pdf", "*extractor.PDFExtractor"},
		{"Report.PDF", "*extractor.PDFExtractor"},
		{"notes.docx", "*extractor.DOCXExtractor"},
		{"readme.txt", "*extractor.TextExtractor"},
		{"readme.md", "*extractor.MarkdownExtractor"},
		{"page.html", "*extractor.HTMLExtractor"},
		{"page.HTM", "*extractor.HTMLExtractor"},
	}
	for _, tc := range cases {
		ex, err := ForFile(tc.filename)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.filename, err)
			continue
		}
		if got := fmt.Sprintf("%T", ex); got != tc.wantType {
			t.Errorf("%s: expected %s, got %s", tc.filename, tc.wantType, got)
		}
	}
}

func TestForFileUnsupportedExtension(t *testing.T) {
	_, err := ForFile("data.csv")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}

	_, err = Extract([]byte("x"), "archive.zip")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType before any parse, got %v", err)
	}
}

func TestTextExtractorParagraphs(t *testing.T) {
	data := []byte("line one\r\nline two\r\n\r\n\r\nsecond para\n")
	got, err := Extract(data, "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "line one\nline two\n\nsecond para"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestMarkdownExtractorStructure(t *testing.T) {
	data := []byte("# Title\n\nFirst paragraph.\n\n## Sub\n\n- one\n- two\n")
	got, err := Extract(data, "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "# Title") {
		t.Errorf("expected heading marker kept, got %q", got)
	}
	if !strings.Contains(got, "## Sub") {
		t.Errorf("expected level-2 heading marker, got %q", got)
	}
	if !strings.Contains(got, "- one") || !strings.Contains(got, "- two") {
		t.Errorf("expected list dashes, got %q", got)
	}
	if !strings.Contains(got, "First paragraph.") {
		t.Errorf("expected paragraph text, got %q", got)
	}
}

func TestHTMLExtractorStructure(t *testing.T) {
	data := []byte(`<html><head><title>x</title><style>p{}</style></head>
<body><h1>Top</h1><p>Body   text</p><script>var a;</script><ul><li>item</li></ul></body></html>`)
	got, err := Extract(data, "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "# Top") {
		t.Errorf("expected heading line, got %q", got)
	}
	if !strings.Contains(got, "Body text") {
		t.Errorf("expected collapsed paragraph text, got %q", got)
	}
	if strings.Contains(got, "var a") {
		t.Errorf("script content leaked: %q", got)
	}
	if !strings.Contains(got, "item") {
		t.Errorf("expected list item text, got %q", got)
	}
}

func TestPDFExtractorRejectsGarbage(t *testing.T) {
	ex := &PDFExtractor{FallbackPdftotext: false}
	_, err := ex.Extract([]byte("this is not a pdf"), "bad.pdf")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if pe.Filename != "bad.pdf" {
		t.Errorf("expected filename in error, got %q", pe.Filename)
	}
}

func TestDOCXExtractorRejectsGarbage(t *testing.T) {
	ex := &DOCXExtractor{}
	_, err := ex.Extract([]byte("this is not a docx"), "bad.docx")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}
