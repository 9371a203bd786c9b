// Package docschema defines the document structure produced by LLM analysis
// and validates untrusted model output into it.
package docschema

// DocumentStructure is the root of an analyzed document.
type DocumentStructure struct {
	Metadata   Metadata
	TOC        bool // Render a table of contents.
	Sections   []Section
	Conclusion *Conclusion
	Sources    []Source
}

// Metadata holds cover-page fields. Title is always non-empty.
type Metadata struct {
	Title    string
	Subtitle string
	Phase    string
	Brand    string
	Tagline  string
	Date     string
}

// Section is one numbered section of the report.
type Section struct {
	Title   string
	Content []Block
}

// Block is one typed unit of section content. The set of implementations is
// closed; anything the model produces outside it decodes to Unknown.
type Block interface {
	isBlock()
}

// Callout variants.
const (
	CalloutNote    = "note"
	CalloutSuccess = "success"
	CalloutWarning = "warning"
	CalloutAlert   = "alert"
	CalloutInfo    = "info"
)

// List styles.
const (
	StyleBullet    = "bullet"
	StyleNumbered  = "numbered"
	StyleChecklist = "checklist"
)

type Paragraph struct {
	Text string
}

type Heading struct {
	Level int // Clamped to [1,4] during validation.
	Text  string
}

type Callout struct {
	Variant string // One of the Callout* constants.
	Title   string
	Content string
}

type ListItem struct {
	Text    string
	Checked string // "true", "false" or "cross"; empty means "true".
}

type List struct {
	Style string // One of the Style* constants.
	Items []ListItem
}

type Table struct {
	Headers []string
	Rows    [][]string // Row lengths may differ from len(Headers).
}

type Quote struct {
	Text string
}

type TimelineItem struct {
	Title       string
	Description string
}

type Timeline struct {
	Items []TimelineItem
}

type StatItem struct {
	Value string
	Label string
}

type Stats struct {
	Items []StatItem
}

type CardItem struct {
	Title   string
	Content string
}

type Cards struct {
	Items []CardItem
}

// Column is one side of a two-column block. Content recurses into Block.
type Column struct {
	Title   string
	Content []Block
}

type TwoCol struct {
	Left  Column
	Right Column
}

// Unknown preserves a block whose type tag or payload the schema does not
// recognize. The renderer emits nothing for it.
type Unknown struct {
	Type string
}

func (Paragraph) isBlock() {}
func (Heading) isBlock()   {}
func (Callout) isBlock()   {}
func (List) isBlock()      {}
func (Table) isBlock()     {}
func (Quote) isBlock()     {}
func (Timeline) isBlock()  {}
func (Stats) isBlock()     {}
func (Cards) isBlock()     {}
func (TwoCol) isBlock()    {}
func (Unknown) isBlock()   {}

// Conclusion closes the document with an optional summary and grouped items.
type Conclusion struct {
	Title    string
	Summary  string
	Sections []ConclusionGroup
}

// ConclusionGroup is a heading plus a bullet list inside the conclusion.
type ConclusionGroup struct {
	Title string
	Items []string
}

// Source is one reference entry.
type Source struct {
	Title string
	URL   string
	Meta  string
}
