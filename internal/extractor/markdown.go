package extractor

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownExtractor flattens markdown to text via the goldmark AST, keeping
// heading markers and list dashes inline.
type MarkdownExtractor struct{}

func (e *MarkdownExtractor) Extract(data []byte, filename string) (string, error) {
	md := goldmark.New()
	reader := text.NewReader(data)
	doc := md.Parser().Parse(reader)

	var parts []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			if t := nodeText(node, data); t != "" {
				parts = append(parts, strings.Repeat("#", node.Level)+" "+t)
			}
		case *ast.List:
			var lines []string
			for item := node.FirstChild(); item != nil; item = item.NextSibling() {
				if t := nodeText(item, data); t != "" {
					lines = append(lines, "- "+t)
				}
			}
			if len(lines) > 0 {
				parts = append(parts, strings.Join(lines, "\n"))
			}
		default:
			if t := nodeText(n, data); t != "" {
				parts = append(parts, t)
			}
		}
	}

	return strings.Join(parts, "\n\n"), nil
}

// nodeText collects the raw text under an AST node.
func nodeText(n ast.Node, src []byte) string {
	var buf strings.Builder
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := node.(*ast.Text); ok {
			buf.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte('\n')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(buf.String())
}
