package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/wikiexport"
	main "github.com/fwojciec/wikiexport/cmd/wikiexport"
	"github.com/fwojciec/wikiexport/export"
	"github.com/fwojciec/wikiexport/mock"
)

// newTestExporter returns an exporter whose collaborators are mocked
// out, so command tests run without network or filesystem access.
func newTestExporter(chunks wikiexport.ChunkSet) *export.Exporter {
	return &export.Exporter{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) ([]byte, error) {
				return []byte("<html></html>"), nil
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(html string) (wikiexport.ChunkSet, error) {
				return chunks, nil
			},
		},
		Markdown: &mock.JoinedWriter{
			WriteJoinedFn: func(_ context.Context, path string, chunks wikiexport.ChunkSet) (int, error) {
				return len(chunks.Join("\n")), nil
			},
		},
	}
}

func TestExportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints an export summary", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &stdout,
			Stderr:   &stderr,
			Exporter: newTestExporter(wikiexport.ChunkSet{"# One", "# Two"}),
		}
		cmd := &main.ExportCmd{
			TargetURL: "https://github.com/golang/go",
			Output:    "go.md",
		}

		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "https://deepwiki.com/golang/go")
		assert.Contains(t, output, "Saved 2 chunks")
		assert.Contains(t, output, "go.md")
		assert.Contains(t, output, "Content hash:")
	})

	t.Run("warns when no chunks are found", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &stdout,
			Stderr:   &stderr,
			Exporter: newTestExporter(wikiexport.ChunkSet{}),
		}
		cmd := &main.ExportCmd{
			TargetURL: "https://deepwiki.com/golang/go",
			Output:    "go.md",
		}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "no documentation chunks found")
		assert.Contains(t, stdout.String(), "Saved 0 chunks")
	})

	t.Run("reports errors on stderr", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &stdout,
			Stderr:   &stderr,
			Exporter: newTestExporter(nil),
		}
		cmd := &main.ExportCmd{
			TargetURL: "https://gitlab.com/golang/go",
			Output:    "go.md",
		}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, wikiexport.EINVALID, wikiexport.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("creates the split directory", func(t *testing.T) {
		t.Parallel()

		splitDir := filepath.Join(t.TempDir(), "chunks")
		exporter := newTestExporter(wikiexport.ChunkSet{"# One"})
		exporter.Chunks = &mock.SplitWriter{
			WriteSplitFn: func(_ context.Context, dir string, chunks wikiexport.ChunkSet) (*wikiexport.SplitResult, error) {
				return &wikiexport.SplitResult{Written: len(chunks)}, nil
			},
		}

		var stdout, stderr bytes.Buffer
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &stdout,
			Stderr:   &stderr,
			Exporter: exporter,
		}
		cmd := &main.ExportCmd{
			TargetURL: "https://deepwiki.com/golang/go",
			Output:    "go.md",
			SplitDir:  splitDir,
		}

		require.NoError(t, cmd.Run(deps))

		info, err := os.Stat(splitDir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	t.Run("derives a name in the current directory when empty", func(t *testing.T) {
		t.Parallel()
		got := main.ResolveOutputPath("", "https://github.com/golang/go")
		assert.Equal(t, "go.md", got)
	})

	t.Run("derives a name inside an existing directory", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		got := main.ResolveOutputPath(dir, "https://github.com/golang/go")
		assert.Equal(t, filepath.Join(dir, "go.md"), got)
	})

	t.Run("uses a non-directory path as the file path", func(t *testing.T) {
		t.Parallel()
		got := main.ResolveOutputPath("out/docs.md", "https://github.com/golang/go")
		assert.Equal(t, "out/docs.md", got)
	})
}

func TestResolveHTMLPath(t *testing.T) {
	t.Parallel()

	t.Run("returns empty when unset", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, main.ResolveHTMLPath("", "https://github.com/golang/go"))
	})

	t.Run("derives a name inside an existing directory", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		got := main.ResolveHTMLPath(dir, "https://github.com/golang/go")
		assert.Equal(t, filepath.Join(dir, "go.html"), got)
	})

	t.Run("uses a non-directory path as the file path", func(t *testing.T) {
		t.Parallel()
		got := main.ResolveHTMLPath("page.html", "https://github.com/golang/go")
		assert.Equal(t, "page.html", got)
	})
}
