package wikiexport

import "strings"

// DefaultSeparator joins chunks in single-file output. It renders as a
// markdown horizontal rule between fragments.
const DefaultSeparator = "\n\n---\n\n"

// Chunk is one markdown fragment extracted from a wiki page. Chunks are
// immutable and have no identity beyond their position in the extraction
// order.
type Chunk string

// ChunkSet is an ordered sequence of chunks produced from one page.
// Positions are 0-based and contiguous; order follows the position of each
// fragment in the source text and determines join order and per-file
// numbering.
type ChunkSet []Chunk

// Join concatenates the chunks in order, separated by sep.
func (s ChunkSet) Join(sep string) string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = string(c)
	}
	return strings.Join(parts, sep)
}
