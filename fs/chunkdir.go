package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/wikiexport"
)

// DefaultChunkExtension is appended to per-chunk filenames when no
// extension is configured.
const DefaultChunkExtension = ".md"

// Ensure ChunkDirWriter implements wikiexport.SplitWriter at compile time.
var _ wikiexport.SplitWriter = (*ChunkDirWriter)(nil)

// ChunkDirWriter writes each chunk to its own file inside a directory.
// Filenames come from the configured ChunkNamer; chunks the namer leaves
// unnamed fall back to chapter_<n> (1-based), and chunks whose naming
// fails are recorded under the placeholder chunk_<i>_unnamed (0-based).
type ChunkDirWriter struct {
	namer wikiexport.ChunkNamer
	ext   string
	codec wikiexport.Codec
}

// NewChunkDirWriter creates a ChunkDirWriter. A nil namer leaves every
// chunk to the positional fallback, an empty ext defaults to
// DefaultChunkExtension, and a nil codec writes UTF-8 bytes unchanged.
func NewChunkDirWriter(namer wikiexport.ChunkNamer, ext string, codec wikiexport.Codec) *ChunkDirWriter {
	if ext == "" {
		ext = DefaultChunkExtension
	}
	return &ChunkDirWriter{namer: namer, ext: wikiexport.NormalizeExtension(ext), codec: codec}
}

// WriteSplit writes one file per chunk into dir, which must already
// exist. A chunk that fails to name or write is recorded in the result
// and does not stop the remaining chunks.
func (w *ChunkDirWriter) WriteSplit(ctx context.Context, dir string, chunks wikiexport.ChunkSet) (*wikiexport.SplitResult, error) {
	result := &wikiexport.SplitResult{}

	for i, chunk := range chunks {
		name, err := w.nameChunk(string(chunk), i)
		if err != nil {
			result.Failures = append(result.Failures, wikiexport.ChunkWriteError{
				Index: i,
				Name:  fmt.Sprintf("chunk_%d_unnamed", i),
				Err:   err,
			})
			continue
		}
		if name == "" {
			name = fmt.Sprintf("chapter_%d", i+1)
		}

		path := filepath.Join(dir, name+w.ext)
		content := encode(string(chunk), w.codec)
		if err := os.WriteFile(path, content, 0644); err != nil {
			result.Failures = append(result.Failures, wikiexport.ChunkWriteError{Index: i, Name: name, Err: err})
			continue
		}

		result.Written++
		result.Bytes += len(content)
	}

	return result, nil
}

func (w *ChunkDirWriter) nameChunk(content string, index int) (string, error) {
	if w.namer == nil {
		return "", nil
	}
	return w.namer.NameChunk(content, index)
}
