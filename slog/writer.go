package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wikiexport"
)

// Ensure LoggingJoinedWriter implements wikiexport.JoinedWriter.
var _ wikiexport.JoinedWriter = (*LoggingJoinedWriter)(nil)

// LoggingJoinedWriter wraps a JoinedWriter with operation logging.
type LoggingJoinedWriter struct {
	next   wikiexport.JoinedWriter
	logger *slog.Logger
}

// NewLoggingJoinedWriter creates a new LoggingJoinedWriter.
func NewLoggingJoinedWriter(next wikiexport.JoinedWriter, logger *slog.Logger) *LoggingJoinedWriter {
	return &LoggingJoinedWriter{next: next, logger: logger}
}

// WriteJoined delegates to the wrapped writer and logs the operation.
func (w *LoggingJoinedWriter) WriteJoined(ctx context.Context, path string, chunks wikiexport.ChunkSet) (n int, err error) {
	defer func(begin time.Time) {
		w.logger.Info("write markdown",
			"path", path,
			"chunks", len(chunks),
			"bytes", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteJoined(ctx, path, chunks)
}

// Ensure LoggingSplitWriter implements wikiexport.SplitWriter.
var _ wikiexport.SplitWriter = (*LoggingSplitWriter)(nil)

// LoggingSplitWriter wraps a SplitWriter with operation logging. Each
// recorded chunk failure is logged as a warning.
type LoggingSplitWriter struct {
	next   wikiexport.SplitWriter
	logger *slog.Logger
}

// NewLoggingSplitWriter creates a new LoggingSplitWriter.
func NewLoggingSplitWriter(next wikiexport.SplitWriter, logger *slog.Logger) *LoggingSplitWriter {
	return &LoggingSplitWriter{next: next, logger: logger}
}

// WriteSplit delegates to the wrapped writer and logs the operation.
func (w *LoggingSplitWriter) WriteSplit(ctx context.Context, dir string, chunks wikiexport.ChunkSet) (result *wikiexport.SplitResult, err error) {
	defer func(begin time.Time) {
		var written, failed int
		if result != nil {
			written = result.Written
			failed = len(result.Failures)
			for _, f := range result.Failures {
				w.logger.Warn("chunk write failed",
					"index", f.Index,
					"name", f.Name,
					"err", f.Err,
				)
			}
		}
		w.logger.Info("write chunks",
			"dir", dir,
			"written", written,
			"failed", failed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteSplit(ctx, dir, chunks)
}

// Ensure LoggingDocumentWriter implements wikiexport.DocumentWriter.
var _ wikiexport.DocumentWriter = (*LoggingDocumentWriter)(nil)

// LoggingDocumentWriter wraps a DocumentWriter with operation logging.
// Failures are logged as warnings because a failed page save does not
// abort an export.
type LoggingDocumentWriter struct {
	next   wikiexport.DocumentWriter
	logger *slog.Logger
}

// NewLoggingDocumentWriter creates a new LoggingDocumentWriter.
func NewLoggingDocumentWriter(next wikiexport.DocumentWriter, logger *slog.Logger) *LoggingDocumentWriter {
	return &LoggingDocumentWriter{next: next, logger: logger}
}

// WriteDocument delegates to the wrapped writer and logs the operation.
func (w *LoggingDocumentWriter) WriteDocument(ctx context.Context, path string, doc *wikiexport.Document) (err error) {
	defer func(begin time.Time) {
		if err != nil {
			w.logger.Warn("save html",
				"path", path,
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		w.logger.Info("save html",
			"path", path,
			"bytes", len(doc.HTML),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return w.next.WriteDocument(ctx, path, doc)
}
