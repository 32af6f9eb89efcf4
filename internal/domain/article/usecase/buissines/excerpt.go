package buissines

// excerptLimit is the excerpt length in runes; longer content gets the marker
const excerptLimit = 140

const excerptMarker = "..."

// makeExcerpt derives the feed excerpt from article content.
// Truncation is rune-based, content is mostly Cyrillic.
func makeExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptLimit {
		return content
	}
	return string(runes[:excerptLimit]) + excerptMarker
}
