package wikiexport

// Extractor extracts markdown chunks from raw HTML text.
type Extractor interface {
	// Extract scans html in a single left-to-right pass and returns the
	// embedded markdown fragments in source order, unescaped. A page with
	// no fragments yields an empty, non-nil set and no error.
	Extract(html string) (ChunkSet, error)
}
