package analyzer

import "github.com/dgallion1/autodoc/internal/docschema"

// Merge combines per-chunk structures into one document. This is a fixed
// approximation, not semantic re-analysis: the first chunk's metadata stands
// in for the whole document, sections and sources concatenate in chunk
// order without deduplication, the last chunk's conclusion wins, and the
// table of contents is always enabled.
func Merge(docs []*docschema.DocumentStructure) *docschema.DocumentStructure {
	merged := &docschema.DocumentStructure{
		Metadata: docschema.Metadata{Title: "Document"},
		TOC:      true,
	}

	for i, doc := range docs {
		if i == 0 {
			merged.Metadata = doc.Metadata
		}
		merged.Sections = append(merged.Sections, doc.Sections...)
		if i == len(docs)-1 {
			merged.Conclusion = doc.Conclusion
		}
		merged.Sources = append(merged.Sources, doc.Sources...)
	}

	return merged
}
