// Package extractor converts uploaded document bytes into plain text for
// analysis. Extraction keeps light structure inline (heading markers, list
// dashes, page separators) so the model sees the document's shape.
package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedType is returned before any extraction attempt when the file
// extension is not recognized.
var ErrUnsupportedType = errors.New("unsupported file type")

// ParseError wraps a library failure while reading a supported file.
type ParseError struct {
	Filename string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.Filename, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Extractor converts raw document bytes into text.
type Extractor interface {
	Extract(data []byte, filename string) (string, error)
}

// ForFile returns the extractor for a filename, selected by extension,
// case-insensitive.
func ForFile(filename string) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFExtractor{FallbackPdftotext: true}, nil
	case ".docx":
		return &DOCXExtractor{}, nil
	case ".txt":
		return &TextExtractor{}, nil
	case ".md", ".markdown":
		return &MarkdownExtractor{}, nil
	case ".html", ".htm":
		return &HTMLExtractor{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}
}

// Extract is the package-level entry point: pick an extractor by extension
// and run it.
func Extract(data []byte, filename string) (string, error) {
	ex, err := ForFile(filename)
	if err != nil {
		return "", err
	}
	return ex.Extract(data, filename)
}

// TextExtractor handles plain text files: normalize line endings, collapse
// runs of blank lines into paragraph breaks.
type TextExtractor struct{}

func (e *TextExtractor) Extract(data []byte, _ string) (string, error) {
	text := strings.ReplaceAll(string(bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))), "\r", "\n")

	var paragraphs []string
	var current []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				paragraphs = append(paragraphs, strings.Join(current, "\n"))
				current = nil
			}
		} else {
			current = append(current, line)
		}
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, strings.Join(current, "\n"))
	}

	return strings.Join(paragraphs, "\n\n"), nil
}
