package mock

import (
	"context"

	"github.com/fwojciec/wikiexport"
)

var _ wikiexport.JoinedWriter = (*JoinedWriter)(nil)

// JoinedWriter is a mock implementation of wikiexport.JoinedWriter.
type JoinedWriter struct {
	WriteJoinedFn func(ctx context.Context, path string, chunks wikiexport.ChunkSet) (int, error)
}

func (w *JoinedWriter) WriteJoined(ctx context.Context, path string, chunks wikiexport.ChunkSet) (int, error) {
	return w.WriteJoinedFn(ctx, path, chunks)
}

var _ wikiexport.SplitWriter = (*SplitWriter)(nil)

// SplitWriter is a mock implementation of wikiexport.SplitWriter.
type SplitWriter struct {
	WriteSplitFn func(ctx context.Context, dir string, chunks wikiexport.ChunkSet) (*wikiexport.SplitResult, error)
}

func (w *SplitWriter) WriteSplit(ctx context.Context, dir string, chunks wikiexport.ChunkSet) (*wikiexport.SplitResult, error) {
	return w.WriteSplitFn(ctx, dir, chunks)
}

var _ wikiexport.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of wikiexport.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, path string, doc *wikiexport.Document) error
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, path string, doc *wikiexport.Document) error {
	return w.WriteDocumentFn(ctx, path, doc)
}
