// Package export provides documentation export orchestration.
// It coordinates URL transformation, fetching, chunk extraction, and
// writing of the output files for a single wiki page.
package export

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/fwojciec/wikiexport"
)

// Request describes a single export run.
type Request struct {
	// TargetURL is the page to export, either a github.com source URL or
	// a deepwiki.com wiki URL.
	TargetURL string

	// MarkdownPath is where the joined markdown document is written.
	MarkdownPath string

	// KeepHTML saves the fetched page alongside the markdown output.
	KeepHTML bool

	// HTMLPath overrides the derived location of the saved page. Ignored
	// unless KeepHTML is set.
	HTMLPath string

	// SplitDir, when set, additionally writes each chunk to its own file
	// inside the directory. The directory must already exist.
	SplitDir string
}

// Result holds the outcome of an export operation.
type Result struct {
	// DownloadURL is the wiki URL the page was fetched from.
	DownloadURL string

	// Chunks is the number of markdown chunks extracted from the page.
	Chunks int

	// Bytes is the size of the joined markdown document as written.
	Bytes int

	// ContentHash fingerprints the extracted chunks for change detection
	// between runs.
	ContentHash string

	// MarkdownPath is the location of the joined markdown document.
	MarkdownPath string

	// HTMLPath is the location of the saved page, when one was written.
	HTMLPath string
}

// Exporter orchestrates the export of a wiki page to local files.
type Exporter struct {
	Fetcher   wikiexport.Fetcher
	Extractor wikiexport.Extractor
	Markdown  wikiexport.JoinedWriter
	Chunks    wikiexport.SplitWriter    // required when Request.SplitDir is set
	HTML      wikiexport.DocumentWriter // required when Request.KeepHTML is set
	PageCodec wikiexport.Codec          // decodes fetched bytes; nil means UTF-8 as is
}

// Export runs a single export: transform the target URL, fetch the wiki
// page, extract its markdown chunks, and write the requested files. A
// failure to save the page HTML is not fatal; Result.HTMLPath stays
// empty in that case.
func (e *Exporter) Export(ctx context.Context, req Request) (*Result, error) {
	wikiURL, err := wikiexport.TransformURL(req.TargetURL)
	if err != nil {
		return nil, err
	}

	body, err := e.Fetcher.Fetch(ctx, wikiURL)
	if err != nil {
		return nil, err
	}
	html := e.decode(body)

	var htmlPath string
	if req.KeepHTML {
		htmlPath = req.HTMLPath
		if htmlPath == "" {
			htmlPath = DeriveHTMLPath(req.MarkdownPath)
		}
		doc := &wikiexport.Document{URL: wikiURL, HTML: html}
		if err := e.HTML.WriteDocument(ctx, htmlPath, doc); err != nil {
			htmlPath = ""
		}
	}

	chunks, err := e.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	n, err := e.Markdown.WriteJoined(ctx, req.MarkdownPath, chunks)
	if err != nil {
		return nil, err
	}

	if req.SplitDir != "" {
		split, err := e.Chunks.WriteSplit(ctx, req.SplitDir, chunks)
		if err != nil {
			return nil, err
		}
		if !split.Ok() {
			return nil, wikiexport.Errorf(wikiexport.EINTERNAL, "%d of %d chunks failed to write", len(split.Failures), len(chunks))
		}
	}

	return &Result{
		DownloadURL:  wikiURL,
		Chunks:       len(chunks),
		Bytes:        n,
		ContentHash:  ContentHash(chunks),
		MarkdownPath: req.MarkdownPath,
		HTMLPath:     htmlPath,
	}, nil
}

func (e *Exporter) decode(b []byte) string {
	if e.PageCodec == nil {
		return string(b)
	}
	return e.PageCodec.Decode(b)
}

// DeriveHTMLPath returns the default location for the saved page HTML
// next to a markdown output path: the markdown extension is replaced
// with an _original.html suffix.
func DeriveHTMLPath(markdownPath string) string {
	return strings.TrimSuffix(markdownPath, filepath.Ext(markdownPath)) + "_original.html"
}
