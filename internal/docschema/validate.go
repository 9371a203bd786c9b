package docschema

import (
	"encoding/json"
	"fmt"
)

// ErrorKind classifies schema validation failures. Callers report a response
// that is not JSON at all differently from valid JSON of the wrong shape.
type ErrorKind int

const (
	KindMalformedJSON ErrorKind = iota
	KindMissingField
	KindOther
)

func (k ErrorKind) String() string {
	switch k {
	case KindMalformedJSON:
		return "malformed_json"
	case KindMissingField:
		return "missing_field"
	default:
		return "other"
	}
}

// SchemaError reports why an LLM response failed validation.
type SchemaError struct {
	Kind    ErrorKind
	Path    string
	Message string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema: %s at %s: %s", e.Kind, e.Path, e.Message)
}

// maxNestingDepth bounds two-col recursion so adversarial model output
// cannot blow the stack.
const maxNestingDepth = 8

// Wire shapes. Pointers and RawMessage distinguish absent from empty.
type rawDocument struct {
	Metadata   json.RawMessage   `json:"metadata"`
	TOC        *bool             `json:"toc"`
	Sections   []json.RawMessage `json:"sections"`
	Conclusion *rawConclusion    `json:"conclusion"`
	Sources    []rawSource       `json:"sources"`
}

type rawMetadata struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Phase    string `json:"phase"`
	Brand    string `json:"brand"`
	Tagline  string `json:"tagline"`
	Date     string `json:"date"`
}

type rawSection struct {
	Title   string            `json:"title"`
	Content []json.RawMessage `json:"content"`
}

type rawConclusion struct {
	Title    string               `json:"title"`
	Summary  string               `json:"summary"`
	Sections []rawConclusionGroup `json:"sections"`
}

type rawConclusionGroup struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

type rawSource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Meta  string `json:"meta"`
}

// Validate parses and coerces an untrusted JSON document into a
// DocumentStructure. Unknown top-level keys are ignored. Missing required
// keys (metadata.title, sections) fail with KindMissingField. Unknown or
// malformed content blocks pass through as Unknown rather than rejecting
// the whole document.
func Validate(raw string) (*DocumentStructure, error) {
	data := []byte(raw)
	if !json.Valid(data) {
		return nil, &SchemaError{
			Kind:    KindMalformedJSON,
			Path:    "$",
			Message: "response is not valid JSON",
		}
	}

	// Detect a missing sections key before struct decoding flattens it.
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, &SchemaError{
			Kind:    KindOther,
			Path:    "$",
			Message: "response is not a JSON object",
		}
	}

	var doc rawDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &SchemaError{Kind: KindOther, Path: "$", Message: err.Error()}
	}

	if doc.Metadata == nil {
		return nil, &SchemaError{
			Kind:    KindMissingField,
			Path:    "metadata",
			Message: "metadata is required",
		}
	}
	var meta rawMetadata
	if err := json.Unmarshal(doc.Metadata, &meta); err != nil {
		return nil, &SchemaError{Kind: KindOther, Path: "metadata", Message: err.Error()}
	}
	if meta.Title == "" {
		return nil, &SchemaError{
			Kind:    KindMissingField,
			Path:    "metadata.title",
			Message: "title is required",
		}
	}

	if _, ok := keys["sections"]; !ok {
		return nil, &SchemaError{
			Kind:    KindMissingField,
			Path:    "sections",
			Message: "sections is required",
		}
	}

	out := &DocumentStructure{
		Metadata: Metadata{
			Title:    meta.Title,
			Subtitle: meta.Subtitle,
			Phase:    meta.Phase,
			Brand:    meta.Brand,
			Tagline:  meta.Tagline,
			Date:     meta.Date,
		},
		TOC: true,
	}
	if doc.TOC != nil {
		out.TOC = *doc.TOC
	}

	for i, rawSec := range doc.Sections {
		var sec rawSection
		if err := json.Unmarshal(rawSec, &sec); err != nil {
			return nil, &SchemaError{
				Kind:    KindOther,
				Path:    fmt.Sprintf("sections[%d]", i),
				Message: err.Error(),
			}
		}
		out.Sections = append(out.Sections, Section{
			Title:   sec.Title,
			Content: decodeBlocks(sec.Content, 0),
		})
	}

	if doc.Conclusion != nil {
		c := &Conclusion{
			Title:   doc.Conclusion.Title,
			Summary: doc.Conclusion.Summary,
		}
		for _, g := range doc.Conclusion.Sections {
			c.Sections = append(c.Sections, ConclusionGroup{Title: g.Title, Items: g.Items})
		}
		out.Conclusion = c
	}

	for _, s := range doc.Sources {
		out.Sources = append(out.Sources, Source{Title: s.Title, URL: s.URL, Meta: s.Meta})
	}

	return out, nil
}

func decodeBlocks(raws []json.RawMessage, depth int) []Block {
	var blocks []Block
	for _, r := range raws {
		blocks = append(blocks, decodeBlock(r, depth))
	}
	return blocks
}

// decodeBlock turns one raw block into its typed variant. Anything that does
// not fit degrades to Unknown so a single bad block never sinks the document.
func decodeBlock(raw json.RawMessage, depth int) Block {
	var tag struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &tag); err != nil {
		return Unknown{}
	}

	switch tag.Type {
	case "paragraph":
		var b struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(raw, &b); err != nil {
			return Unknown{Type: tag.Type}
		}
		return Paragraph{Text: b.Text}

	case "heading":
		var b struct {
			Level *int   `json:"level"`
			Text  string `json:"text"`
		}
		if err := json.Unmarshal(raw, &b); err != nil {
			return Unknown{Type: tag.Type}
		}
		level := 3
		if b.Level != nil {
			level = *b.Level
		}
		if level < 1 {
			level = 1
		}
		if level > 4 {
			level = 4
		}
		return Heading{Level: level, Text: b.Text}

	case "callout":
		var b struct {
			Variant string `json:"variant"`
			Title   string `json:"title"`
			Content string `json:"content"`
		}
		if err := json.Unmarshal(raw, &b); err != nil {
			return Unknown{Type: tag.Type}
		}
		switch b.Variant {
		case CalloutNote, CalloutSuccess, CalloutWarning, CalloutAlert, CalloutInfo:
		default:
			// Tolerate model drift instead of failing the document.
			b.Variant = CalloutNote
		}
		return Callout{Variant: b.Variant, Title: b.Title, Content: b.Content}

	case "list":
		var b struct {
			Style string            `json:"style"`
			Items []json.RawMessage `json:"items"`
		}
		if err := json.Unmarshal(raw, &b); err != nil {
			return Unknown{Type: tag.Type}
		}
		switch b.Style {
		case StyleBullet, StyleNumbered, StyleChecklist:
		default:
			b.Style = StyleBullet
		}
		list := List{Style: b.Style}
		for _, ri := range b.Items {
			list.Items = append(list.Items, decodeListItem(ri))
		}
		return list

	case "table":
		var b struct {
			Headers []string   `json:"headers"`
			Rows    [][]string `json:"rows"`
		}
		if err := json.Unmarshal(raw, &b); err != nil {
			return Unknown{Type: tag.Type}
		}
		return Table{Headers: b.Headers, Rows: b.Rows}

	case "quote":
		var b struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(raw, &b); err != nil {
			return Unknown{Type: tag.Type}
		}
		return Quote{Text: b.Text}

	case "timeline":
		var b struct {
			Items []struct {
				Title       string `json:"title"`
				Description string `json:"description"`
			} `json:"items"`
		}
		if err := json.Unmarshal(raw, &b); err != nil {
			return Unknown{Type: tag.Type}
		}
		tl := Timeline{}
		for _, it := range b.Items {
			tl.Items = append(tl.Items, TimelineItem{Title: it.Title, Description: it.Description})
		}
		return tl

	case "stats":
		var b struct {
			Items []struct {
				Value string `json:"value"`
				Label string `json:"label"`
			} `json:"items"`
		}
		if err := json.Unmarshal(raw, &b); err != nil {
			return Unknown{Type: tag.Type}
		}
		st := Stats{}
		for _, it := range b.Items {
			st.Items = append(st.Items, StatItem{Value: it.Value, Label: it.Label})
		}
		return st

	case "cards":
		var b struct {
			Items []struct {
				Title   string `json:"title"`
				Content string `json:"content"`
			} `json:"items"`
		}
		if err := json.Unmarshal(raw, &b); err != nil {
			return Unknown{Type: tag.Type}
		}
		cd := Cards{}
		for _, it := range b.Items {
			cd.Items = append(cd.Items, CardItem{Title: it.Title, Content: it.Content})
		}
		return cd

	case "two-col":
		if depth >= maxNestingDepth {
			return Unknown{Type: tag.Type}
		}
		var b struct {
			Left  json.RawMessage `json:"left"`
			Right json.RawMessage `json:"right"`
		}
		if err := json.Unmarshal(raw, &b); err != nil {
			return Unknown{Type: tag.Type}
		}
		return TwoCol{
			Left:  decodeColumn(b.Left, depth+1),
			Right: decodeColumn(b.Right, depth+1),
		}

	default:
		return Unknown{Type: tag.Type}
	}
}

func decodeColumn(raw json.RawMessage, depth int) Column {
	if raw == nil {
		return Column{}
	}
	var c struct {
		Title   string            `json:"title"`
		Content []json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(raw, &c); err != nil {
		return Column{}
	}
	return Column{Title: c.Title, Content: decodeBlocks(c.Content, depth)}
}

// decodeListItem accepts either {"text": ..., "checked": ...} or a bare
// string, which some models emit for simple lists.
func decodeListItem(raw json.RawMessage) ListItem {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return ListItem{Text: s}
	}
	var it struct {
		Text    string `json:"text"`
		Checked string `json:"checked"`
	}
	if err := json.Unmarshal(raw, &it); err != nil {
		return ListItem{}
	}
	return ListItem{Text: it.Text, Checked: it.Checked}
}
