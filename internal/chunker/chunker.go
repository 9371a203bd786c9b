// Package chunker splits extracted document text into token-budgeted chunks
// on paragraph boundaries. Chunking is total: it never fails and never loses
// characters.
package chunker

import "strings"

// Chunk splits text into pieces whose estimated token count stays within
// threshold. Text at or under the threshold is returned unchanged as a
// single chunk. Oversized text is split on blank lines and consecutive
// paragraphs are packed greedily; a single paragraph larger than the
// threshold becomes its own chunk with no further sub-splitting.
func Chunk(text string, threshold int) []string {
	if EstimateTokens(text) <= threshold {
		return []string{text}
	}

	paragraphs := strings.Split(text, "\n\n")

	var chunks []string
	var current []string
	currentSize := 0

	for _, para := range paragraphs {
		paraTokens := EstimateTokens(para)

		if currentSize+paraTokens > threshold {
			if len(current) > 0 {
				chunks = append(chunks, strings.Join(current, "\n\n"))
			}
			current = []string{para}
			currentSize = paraTokens
		} else {
			current = append(current, para)
			currentSize += paraTokens
		}
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, "\n\n"))
	}

	return chunks
}
