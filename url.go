package wikiexport

import "strings"

// Base URL prefixes accepted by TransformURL.
const (
	// WikiBaseURL is the origin pages are downloaded from.
	WikiBaseURL = "https://deepwiki.com/"

	// SourceBaseURL is the repository origin accepted as an alias for its
	// wiki counterpart.
	SourceBaseURL = "https://github.com/"
)

// TransformURL validates target and rewrites it into a download URL.
// Wiki URLs pass through unchanged; repository URLs keep everything after
// the base prefix (path, query, fragment) byte-for-byte and swap the
// origin. Any other input returns EINVALID. The prefix check ignores the
// query string and fragment.
func TransformURL(target string) (string, error) {
	base := target
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}

	switch {
	case strings.HasPrefix(base, WikiBaseURL):
		return target, nil
	case strings.HasPrefix(base, SourceBaseURL):
		return WikiBaseURL + target[len(SourceBaseURL):], nil
	}

	return "", Errorf(EINVALID, "url must start with %q or %q, got %q", WikiBaseURL, SourceBaseURL, target)
}
