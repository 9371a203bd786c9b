// Package render turns a validated document structure into a self-contained
// HTML report. Rendering is pure and deterministic: identical input yields
// identical output, and malformed blocks degrade to empty strings instead of
// failing the document.
package render

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/dgallion1/autodoc/internal/docschema"
)

// maxDepth bounds two-col recursion. Blocks nested deeper render empty.
const maxDepth = 8

var (
	boldRe   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe = regexp.MustCompile(`\*(.+?)\*`)
)

// escape HTML-escapes text, then expands inline markdown emphasis. Bold runs
// first so ** is consumed before single-star matching sees it.
func escape(text string) string {
	if text == "" {
		return ""
	}
	escaped := html.EscapeString(text)
	escaped = boldRe.ReplaceAllString(escaped, "<strong>$1</strong>")
	escaped = italicRe.ReplaceAllString(escaped, "<em>$1</em>")
	return escaped
}

// Render produces the complete HTML document for doc.
func Render(doc *docschema.DocumentStructure) string {
	var parts []string

	parts = append(parts, renderCover(doc.Metadata))
	parts = append(parts, `<div class="content">`)

	if doc.TOC && len(doc.Sections) > 0 {
		parts = append(parts, renderTOC(doc.Sections))
	}

	for i, section := range doc.Sections {
		parts = append(parts, renderSection(section, i+1))
		if i < len(doc.Sections)-1 {
			parts = append(parts, `<div class="divider">· · ·</div>`)
		}
	}

	if doc.Conclusion != nil {
		parts = append(parts, renderConclusion(doc.Conclusion))
	}

	if len(doc.Sources) > 0 {
		parts = append(parts, renderSources(doc.Sources))
	}

	parts = append(parts, `</div>`)
	parts = append(parts, renderFooter(doc.Metadata))

	content := strings.Join(parts, "\n")
	return fmt.Sprintf(documentShell, escape(doc.Metadata.Title), baseCSS, content)
}

func renderCover(meta docschema.Metadata) string {
	parts := []string{`<div class="cover">`}

	if meta.Phase != "" {
		parts = append(parts, `    <div class="cover-phase">`+escape(meta.Phase)+`</div>`)
	}

	parts = append(parts, `    <h1>`+escape(meta.Title)+`</h1>`)

	if meta.Subtitle != "" {
		parts = append(parts, `    <p class="cover-subtitle">`+escape(meta.Subtitle)+`</p>`)
	}

	parts = append(parts, `    <div style="margin-top: auto;">`)
	if meta.Brand != "" {
		parts = append(parts, `        <div class="cover-brand">`+escape(meta.Brand)+`</div>`)
	}
	if meta.Tagline != "" {
		parts = append(parts, `        <p class="cover-tagline">`+escape(meta.Tagline)+`</p>`)
	}
	parts = append(parts, `    </div>`)

	if meta.Date != "" {
		parts = append(parts, `    <div class="cover-date">`+escape(meta.Date)+`</div>`)
	}

	parts = append(parts, `</div>`)
	return strings.Join(parts, "\n")
}

func renderTOC(sections []docschema.Section) string {
	parts := []string{`<div class="toc">`, `    <h2>Sommaire</h2>`, `    <ol>`}
	for _, section := range sections {
		parts = append(parts, `        <li><span>`+escape(section.Title)+`</span></li>`)
	}
	parts = append(parts, `    </ol>`, `</div>`)
	return strings.Join(parts, "\n")
}

func renderSection(section docschema.Section, num int) string {
	parts := []string{`<div class="section">`}

	parts = append(parts, `    <div class="section-header">`)
	parts = append(parts, fmt.Sprintf(`        <div class="section-num">%02d</div>`, num))
	parts = append(parts, `        <h2 class="section-title">`+escape(section.Title)+`</h2>`)
	parts = append(parts, `    </div>`)

	for _, block := range section.Content {
		if blockHTML := renderBlock(block, 0); blockHTML != "" {
			parts = append(parts, blockHTML)
		}
	}

	parts = append(parts, `</div>`)
	return strings.Join(parts, "\n")
}

// renderBlock dispatches a content block to its sub-renderer. Unknown blocks
// contribute nothing, not even whitespace.
func renderBlock(block docschema.Block, depth int) string {
	if depth > maxDepth {
		return ""
	}

	switch b := block.(type) {
	case docschema.Paragraph:
		return `    <p>` + escape(b.Text) + `</p>`
	case docschema.Heading:
		return renderHeading(b)
	case docschema.Callout:
		return renderCallout(b)
	case docschema.List:
		return renderList(b)
	case docschema.Table:
		return renderTable(b)
	case docschema.Quote:
		return `    <div class="quote">` + escape(b.Text) + `</div>`
	case docschema.Timeline:
		return renderTimeline(b)
	case docschema.Stats:
		return renderStats(b)
	case docschema.Cards:
		return renderCards(b)
	case docschema.TwoCol:
		return renderTwoCol(b, depth)
	default:
		return ""
	}
}

func renderHeading(b docschema.Heading) string {
	text := escape(b.Text)
	switch b.Level {
	case 3:
		return `    <h3 class="subsection-title">` + text + `</h3>`
	case 4:
		return `    <h4>` + text + `</h4>`
	default:
		return fmt.Sprintf(`    <h%d>%s</h%d>`, b.Level, text, b.Level)
	}
}

func renderCallout(b docschema.Callout) string {
	variantClass := ""
	if b.Variant != docschema.CalloutNote {
		variantClass = " " + b.Variant
	}

	parts := []string{`    <div class="note` + variantClass + `">`}
	if b.Title != "" {
		parts = append(parts, `        <div class="note-title">`+escape(b.Title)+`</div>`)
	}
	parts = append(parts, `        <p>`+escape(b.Content)+`</p>`)
	parts = append(parts, `    </div>`)
	return strings.Join(parts, "\n")
}

func renderList(b docschema.List) string {
	var parts []string
	switch b.Style {
	case docschema.StyleChecklist:
		parts = append(parts, `    <ul class="checklist">`)
		for _, item := range b.Items {
			crossClass := ""
			if item.Checked == "cross" {
				crossClass = ` class="cross"`
			}
			parts = append(parts, `        <li`+crossClass+`>`+escape(item.Text)+`</li>`)
		}
		parts = append(parts, `    </ul>`)
	case docschema.StyleNumbered:
		parts = append(parts, `    <ol>`)
		for _, item := range b.Items {
			parts = append(parts, `        <li>`+escape(item.Text)+`</li>`)
		}
		parts = append(parts, `    </ol>`)
	default:
		parts = append(parts, `    <ul>`)
		for _, item := range b.Items {
			parts = append(parts, `        <li>`+escape(item.Text)+`</li>`)
		}
		parts = append(parts, `    </ul>`)
	}
	return strings.Join(parts, "\n")
}

func renderTable(b docschema.Table) string {
	parts := []string{`    <table>`, `        <thead>`, `            <tr>`}

	for _, header := range b.Headers {
		parts = append(parts, `                <th>`+escape(header)+`</th>`)
	}

	parts = append(parts, `            </tr>`, `        </thead>`, `        <tbody>`)

	// Rows render as-is; no padding or truncation to header length.
	for _, row := range b.Rows {
		parts = append(parts, `            <tr>`)
		for _, cell := range row {
			parts = append(parts, `                <td>`+escape(cell)+`</td>`)
		}
		parts = append(parts, `            </tr>`)
	}

	parts = append(parts, `        </tbody>`, `    </table>`)
	return strings.Join(parts, "\n")
}

func renderTimeline(b docschema.Timeline) string {
	parts := []string{`    <div class="timeline">`}
	for _, item := range b.Items {
		parts = append(parts, `        <div class="timeline-item">`)
		parts = append(parts, `            <div class="timeline-title">`+escape(item.Title)+`</div>`)
		parts = append(parts, `            <p>`+escape(item.Description)+`</p>`)
		parts = append(parts, `        </div>`)
	}
	parts = append(parts, `    </div>`)
	return strings.Join(parts, "\n")
}

func renderStats(b docschema.Stats) string {
	parts := []string{`    <div class="stats">`}
	for _, item := range b.Items {
		parts = append(parts, `        <div class="stat">`)
		parts = append(parts, `            <div class="stat-value">`+escape(item.Value)+`</div>`)
		parts = append(parts, `            <div class="stat-label">`+escape(item.Label)+`</div>`)
		parts = append(parts, `        </div>`)
	}
	parts = append(parts, `    </div>`)
	return strings.Join(parts, "\n")
}

func renderCards(b docschema.Cards) string {
	parts := []string{`    <div class="cards">`}
	for _, item := range b.Items {
		parts = append(parts, `        <div class="card">`)
		parts = append(parts, `            <div class="card-title">`+escape(item.Title)+`</div>`)
		parts = append(parts, `            <p>`+escape(item.Content)+`</p>`)
		parts = append(parts, `        </div>`)
	}
	parts = append(parts, `    </div>`)
	return strings.Join(parts, "\n")
}

func renderTwoCol(b docschema.TwoCol, depth int) string {
	parts := []string{`    <div class="two-col">`}
	parts = append(parts, renderColumn(b.Left, depth+1)...)
	parts = append(parts, renderColumn(b.Right, depth+1)...)
	parts = append(parts, `    </div>`)
	return strings.Join(parts, "\n")
}

func renderColumn(col docschema.Column, depth int) []string {
	parts := []string{`        <div class="col">`}
	if col.Title != "" {
		parts = append(parts, `            <div class="col-title">`+escape(col.Title)+`</div>`)
	}
	for _, block := range col.Content {
		if blockHTML := renderBlock(block, depth); blockHTML != "" {
			parts = append(parts, blockHTML)
		}
	}
	parts = append(parts, `        </div>`)
	return parts
}

func renderConclusion(c *docschema.Conclusion) string {
	parts := []string{`<div class="conclusion">`}

	parts = append(parts, `    <h2>`+escape(c.Title)+`</h2>`)
	if c.Summary != "" {
		parts = append(parts, `    <p>`+escape(c.Summary)+`</p>`)
	}

	for _, group := range c.Sections {
		parts = append(parts, `    <h3>`+escape(group.Title)+`</h3>`)
		parts = append(parts, `    <ul>`)
		for _, item := range group.Items {
			parts = append(parts, `        <li>`+escape(item)+`</li>`)
		}
		parts = append(parts, `    </ul>`)
	}

	parts = append(parts, `</div>`)
	return strings.Join(parts, "\n")
}

func renderSources(sources []docschema.Source) string {
	parts := []string{`<div class="sources">`, `    <h2>Sources</h2>`}
	for _, source := range sources {
		parts = append(parts, `    <div class="source">`)
		parts = append(parts, `        <strong>`+escape(source.Title)+`</strong>`)
		if source.URL != "" {
			parts = append(parts, `        <div class="source-url">`+escape(source.URL)+`</div>`)
		}
		if source.Meta != "" {
			parts = append(parts, `        <div class="source-meta">`+escape(source.Meta)+`</div>`)
		}
		parts = append(parts, `    </div>`)
	}
	parts = append(parts, `</div>`)
	return strings.Join(parts, "\n")
}

func renderFooter(meta docschema.Metadata) string {
	parts := []string{`<div class="footer">`}
	if meta.Brand != "" {
		parts = append(parts, `    <div class="footer-brand">`+escape(meta.Brand)+`</div>`)
	}
	parts = append(parts, `    <p>`+escape(meta.Title)+`</p>`)
	if meta.Date != "" {
		parts = append(parts, `    <p>`+escape(meta.Date)+`</p>`)
	}
	parts = append(parts, `</div>`)
	return strings.Join(parts, "\n")
}
