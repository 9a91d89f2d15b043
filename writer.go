package wikiexport

import "context"

// JoinedWriter persists a chunk set as a single file.
type JoinedWriter interface {
	// WriteJoined joins chunks and writes the result to path, creating
	// parent directories as needed. An empty set writes an empty file.
	// Returns the number of bytes written. The write either succeeds as a
	// whole or fails as a whole.
	WriteJoined(ctx context.Context, path string, chunks ChunkSet) (int, error)
}

// SplitWriter persists each chunk as its own file.
type SplitWriter interface {
	// WriteSplit writes one file per chunk into dir, which must already
	// exist. A failure on one chunk does not stop the remaining writes;
	// per-chunk outcomes are reported in the result. The error return is
	// reserved for failures of the operation itself, not of individual
	// chunks.
	WriteSplit(ctx context.Context, dir string, chunks ChunkSet) (*SplitResult, error)
}

// DocumentWriter persists a fetched page verbatim.
type DocumentWriter interface {
	// WriteDocument writes the document's HTML to path, creating parent
	// directories as needed.
	WriteDocument(ctx context.Context, path string, doc *Document) error
}

// SplitResult reports the outcome of a split-mode write.
type SplitResult struct {
	// Written counts the chunks successfully written to disk.
	Written int

	// Bytes counts the total bytes written across all files.
	Bytes int

	// Failures records the chunks that could not be written.
	Failures []ChunkWriteError
}

// Ok reports whether every chunk in the set was written. An empty set is
// trivially ok.
func (r *SplitResult) Ok() bool {
	return len(r.Failures) == 0
}

// ChunkWriteError records one chunk that could not be written.
type ChunkWriteError struct {
	// Index is the chunk's 0-based position in the set.
	Index int

	// Name is the filename stem the writer attempted, or the positional
	// placeholder when naming itself failed.
	Name string

	// Err is the underlying naming or I/O error.
	Err error
}
