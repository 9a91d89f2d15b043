package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/wikiexport"
	"github.com/fwojciec/wikiexport/export"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	req := export.Request{
		TargetURL:    c.TargetURL,
		MarkdownPath: ResolveOutputPath(c.Output, c.TargetURL),
		KeepHTML:     c.KeepHTML,
		HTMLPath:     ResolveHTMLPath(c.HTMLOutput, c.TargetURL),
		SplitDir:     c.SplitDir,
	}

	if req.SplitDir != "" {
		if err := os.MkdirAll(req.SplitDir, 0755); err != nil {
			return wikiexport.Errorf(wikiexport.EINTERNAL, "creating directory %s: %s", req.SplitDir, err)
		}
	}

	result, err := deps.Exporter.Export(deps.Ctx, req)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiexport.ErrorMessage(err))
		return err
	}

	if result.Chunks == 0 {
		fmt.Fprintln(deps.Stderr, "warning: no documentation chunks found in the page")
	}

	fmt.Fprintf(deps.Stdout, "Fetched %s\n", export.TruncateURL(result.DownloadURL, 60))
	fmt.Fprintf(deps.Stdout, "Saved %d chunks (%s) to %s\n", result.Chunks, export.FormatBytes(result.Bytes), result.MarkdownPath)
	fmt.Fprintf(deps.Stdout, "Content hash: %s\n", result.ContentHash)
	if result.HTMLPath != "" {
		fmt.Fprintf(deps.Stdout, "Saved page HTML to %s\n", result.HTMLPath)
	}

	return nil
}

// ResolveOutputPath returns the markdown output path for a target URL.
// An empty output means a URL-derived name in the current directory; an
// existing directory gets the derived name inside it; anything else is
// used as the file path.
func ResolveOutputPath(output, targetURL string) string {
	if output == "" {
		return wikiexport.DeriveFilenameFromURL(targetURL, ".md")
	}
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return filepath.Join(output, wikiexport.DeriveFilenameFromURL(targetURL, ".md"))
	}
	return output
}

// ResolveHTMLPath returns the saved-page path for a target URL. An
// empty htmlOutput returns empty, meaning the location is derived from
// the markdown path; an existing directory gets a URL-derived filename
// inside it; anything else is used as the file path.
func ResolveHTMLPath(htmlOutput, targetURL string) string {
	if htmlOutput == "" {
		return ""
	}
	if info, err := os.Stat(htmlOutput); err == nil && info.IsDir() {
		return filepath.Join(htmlOutput, wikiexport.DeriveFilenameFromURL(targetURL, ".html"))
	}
	return htmlOutput
}
