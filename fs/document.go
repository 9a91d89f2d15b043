package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/wikiexport"
)

// Ensure HTMLWriter implements wikiexport.DocumentWriter at compile time.
var _ wikiexport.DocumentWriter = (*HTMLWriter)(nil)

// HTMLWriter persists fetched pages, re-encoded with the page codec.
type HTMLWriter struct {
	codec wikiexport.Codec
}

// NewHTMLWriter creates an HTMLWriter. A nil codec writes UTF-8 bytes
// unchanged.
func NewHTMLWriter(codec wikiexport.Codec) *HTMLWriter {
	return &HTMLWriter{codec: codec}
}

// WriteDocument writes the document's HTML to path, creating parent
// directories as needed.
func (w *HTMLWriter) WriteDocument(ctx context.Context, path string, doc *wikiexport.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return wikiexport.Errorf(wikiexport.EINTERNAL, "creating directory for %s: %s", path, err)
	}

	if err := os.WriteFile(path, encode(doc.HTML, w.codec), 0644); err != nil {
		return wikiexport.Errorf(wikiexport.EINTERNAL, "writing %s: %s", path, err)
	}

	return nil
}
