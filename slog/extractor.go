package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/wikiexport"
)

// Ensure LoggingExtractor implements wikiexport.Extractor.
var _ wikiexport.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with operation logging.
type LoggingExtractor struct {
	next   wikiexport.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next wikiexport.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (chunks wikiexport.ChunkSet, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"chunks", len(chunks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
