// Package fs provides file-based implementations of the chunk and
// document writers.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/wikiexport"
)

// Ensure MarkdownWriter implements wikiexport.JoinedWriter at compile time.
var _ wikiexport.JoinedWriter = (*MarkdownWriter)(nil)

// MarkdownWriter writes a chunk set to a single markdown file.
type MarkdownWriter struct {
	sep   string
	codec wikiexport.Codec
}

// NewMarkdownWriter creates a MarkdownWriter that joins chunks with sep.
// A nil codec writes UTF-8 bytes unchanged.
func NewMarkdownWriter(sep string, codec wikiexport.Codec) *MarkdownWriter {
	return &MarkdownWriter{sep: sep, codec: codec}
}

// WriteJoined joins the chunks with the configured separator and writes
// the result to path, creating parent directories as needed. An empty set
// writes an empty file. Returns the number of bytes written.
func (w *MarkdownWriter) WriteJoined(ctx context.Context, path string, chunks wikiexport.ChunkSet) (int, error) {
	content := encode(chunks.Join(w.sep), w.codec)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, wikiexport.Errorf(wikiexport.EINTERNAL, "creating directory for %s: %s", path, err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return 0, wikiexport.Errorf(wikiexport.EINTERNAL, "writing %s: %s", path, err)
	}

	return len(content), nil
}

// encode renders s with codec, or as raw UTF-8 bytes when codec is nil.
func encode(s string, codec wikiexport.Codec) []byte {
	if codec == nil {
		return []byte(s)
	}
	return codec.Encode(s)
}
