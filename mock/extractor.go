package mock

import "github.com/fwojciec/wikiexport"

var _ wikiexport.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of wikiexport.Extractor.
type Extractor struct {
	ExtractFn func(html string) (wikiexport.ChunkSet, error)
}

func (e *Extractor) Extract(html string) (wikiexport.ChunkSet, error) {
	return e.ExtractFn(html)
}
