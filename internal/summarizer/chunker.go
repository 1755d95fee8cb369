package summarizer

// chunkText splits text into overlapping windows of at most size runes.
// The final window always covers the tail of the text, so it may overlap
// the previous one by more than overlap. Rune-based so Arabic text is never
// split mid-character.
func chunkText(text string, size, overlap int) []string {
	runes := []rune(text)
	if len(runes) <= size {
		return []string{text}
	}

	step := size - overlap
	var chunks []string
	for start := 0; ; start += step {
		if start+size >= len(runes) {
			last := string(runes[len(runes)-size:])
			if len(chunks) == 0 || chunks[len(chunks)-1] != last {
				chunks = append(chunks, last)
			}
			break
		}
		chunks = append(chunks, string(runes[start:start+size]))
	}

	return chunks
}
