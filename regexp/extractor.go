// Package regexp provides the pattern-based implementation of
// wikiexport.Extractor. It scans raw HTML for markdown payloads embedded
// in the page's script data stream, without parsing the DOM.
package regexp

import (
	"regexp"

	"github.com/fwojciec/wikiexport"
)

// Pattern matches markdown payloads in the page's framework data stream.
// Pages push server-rendered rows as escaped string literals of the form
//
//	self.__next_f.push([1,"<hex id>:T<hex length>,<text>"])
//
// where the T marker tags long text rows. The capture group holds the
// escaped text; rows without the marker (component trees, references) do
// not match, so pages without markdown payloads yield zero matches.
const Pattern = `self\.__next_f\.push\(\[1,\s*"[0-9a-fA-F]+:T[0-9a-fA-F]+,((?:[^"\\]|\\.)*)"\s*\]\)`

// Ensure Extractor implements wikiexport.Extractor at compile time.
var _ wikiexport.Extractor = (*Extractor)(nil)

// Extractor extracts markdown chunks from raw HTML using Pattern.
type Extractor struct {
	re *regexp.Regexp
}

// NewExtractor compiles Pattern and returns an Extractor. A compile
// failure is a configuration error (ECONFIG): the caller must treat it as
// fatal and stop before any network activity.
func NewExtractor() (*Extractor, error) {
	re, err := regexp.Compile(Pattern)
	if err != nil {
		return nil, wikiexport.Errorf(wikiexport.ECONFIG, "extraction pattern failed to compile: %s", err)
	}
	return &Extractor{re: re}, nil
}

// Extract scans html in a single pass and returns the unescaped markdown
// fragments in source order. Zero matches return an empty, non-nil set.
func (e *Extractor) Extract(html string) (wikiexport.ChunkSet, error) {
	matches := e.re.FindAllStringSubmatch(html, -1)

	chunks := make(wikiexport.ChunkSet, 0, len(matches))
	for _, m := range matches {
		chunks = append(chunks, wikiexport.Chunk(Unescape(m[1])))
	}
	return chunks, nil
}
