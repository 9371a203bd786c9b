package chunker

// EstimateTokens approximates the token count as len(text)/4. The ratio is
// part of the chunking contract: thresholds are calibrated against it, so
// swapping in a real tokenizer would change their meaning.
func EstimateTokens(text string) int {
	return len(text) / 4
}
