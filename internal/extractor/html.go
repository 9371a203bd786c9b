package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// HTMLExtractor flattens an HTML document to text: headings become markdown
// heading lines, block elements become paragraphs, script/style are skipped.
type HTMLExtractor struct{}

var headingLevels = map[string]int{
	"h1": 1, "h2": 2, "h3": 3, "h4": 4, "h5": 5, "h6": 6,
}

func (e *HTMLExtractor) Extract(data []byte, filename string) (string, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return "", &ParseError{Filename: filename, Err: fmt.Errorf("parse html: %w", err)}
	}

	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "head":
				return
			case "h1", "h2", "h3", "h4", "h5", "h6":
				if t := collapseSpace(textContent(n)); t != "" {
					parts = append(parts, strings.Repeat("#", headingLevels[n.Data])+" "+t)
				}
				return
			case "p", "li", "blockquote", "pre", "td", "th":
				if t := collapseSpace(textContent(n)); t != "" {
					parts = append(parts, t)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(parts, "\n\n"), nil
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
