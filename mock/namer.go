package mock

import "github.com/fwojciec/wikiexport"

var _ wikiexport.ChunkNamer = (*ChunkNamer)(nil)

// ChunkNamer is a mock implementation of wikiexport.ChunkNamer.
type ChunkNamer struct {
	NameChunkFn func(content string, index int) (string, error)
}

func (n *ChunkNamer) NameChunk(content string, index int) (string, error) {
	return n.NameChunkFn(content, index)
}
