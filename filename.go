package wikiexport

import (
	"net/url"
	"regexp"
	"strings"
)

// maxStemLength caps the derived filename stem, excluding the extension.
const maxStemLength = 50

var (
	unsafeRe     = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)
	underscoreRe = regexp.MustCompile(`_+`)
	headingRe    = regexp.MustCompile(`(?m)^#{1,6}[ \t]+(.+)$`)
)

// ChunkNamer derives a filename stem for a chunk from its content and
// 0-based position. An empty stem tells the caller to fall back to
// positional naming.
type ChunkNamer interface {
	NameChunk(content string, index int) (string, error)
}

// ChunkNamerFunc adapts a function to the ChunkNamer interface.
type ChunkNamerFunc func(content string, index int) (string, error)

// NameChunk calls f(content, index).
func (f ChunkNamerFunc) NameChunk(content string, index int) (string, error) {
	return f(content, index)
}

// SanitizeFilenameComponent makes a string safe for use as a filename
// component. Every maximal run of characters outside [a-zA-Z0-9._-] becomes
// a single underscore, leading and trailing dots and underscores are
// stripped, and repeated underscores collapse to one. A result with nothing
// left becomes "untitled".
func SanitizeFilenameComponent(name string) string {
	name = unsafeRe.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	name = underscoreRe.ReplaceAllString(name, "_")
	if name == "" {
		return "untitled"
	}
	return name
}

// DeriveFilenameFromURL derives a sanitized filename from a URL. The stem
// comes from the final path segment without its suffix (a single leading
// dot is stripped so hidden-style names keep their base), falling back to
// the URL host and then to "untitled_url". The stem is capped at 50
// characters and the extension is normalized to a single leading dot.
// The result is deterministic and non-empty for any input string.
func DeriveFilenameFromURL(rawURL, ext string) string {
	urlPath, host := rawURL, ""
	if u, err := url.Parse(rawURL); err == nil {
		urlPath, host = u.Path, u.Host
	}

	name := strings.TrimPrefix(stem(lastSegment(urlPath)), ".")
	if name == "" {
		name = host
	}
	if name == "" {
		name = "untitled_url"
	}

	name = SanitizeFilenameComponent(name)
	if len(name) > maxStemLength {
		name = name[:maxStemLength]
	}
	return name + NormalizeExtension(ext)
}

// DeriveChunkName names a chunk after its first markdown heading,
// sanitized and capped like a URL-derived stem. Chunks without a heading
// yield "" so the caller can apply its positional fallback. It satisfies
// the ChunkNamerFunc signature.
func DeriveChunkName(content string, _ int) (string, error) {
	m := headingRe.FindStringSubmatch(content)
	if m == nil {
		return "", nil
	}
	name := SanitizeFilenameComponent(strings.TrimSpace(m[1]))
	if len(name) > maxStemLength {
		name = name[:maxStemLength]
	}
	return name, nil
}

// NormalizeExtension returns ext with exactly one leading dot.
// An empty extension stays empty.
func NormalizeExtension(ext string) string {
	if ext == "" {
		return ""
	}
	return "." + strings.TrimLeft(ext, ".")
}

// lastSegment returns the final non-empty path segment, ignoring "."
// segments and trailing slashes. Returns "" when no segment exists.
func lastSegment(urlPath string) string {
	segments := strings.Split(urlPath, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" && segments[i] != "." {
			return segments[i]
		}
	}
	return ""
}

// stem returns name without its suffix. The dot must be interior: names
// with only a leading dot (".config") or a trailing dot ("name.") have no
// suffix and are returned whole.
func stem(name string) string {
	if i := strings.LastIndexByte(name, '.'); i > 0 && i < len(name)-1 {
		return name[:i]
	}
	return name
}
