// Package charset resolves named character encodings and converts page
// text between them and UTF-8. Labels are matched against the WHATWG
// encoding index, so any label a browser accepts (utf-8, latin1,
// shift_jis, ...) works here too.
package charset

import (
	htmlcharset "golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"

	"github.com/fwojciec/wikiexport"
)

// DefaultEncoding is the encoding assumed when none is configured.
const DefaultEncoding = "utf-8"

// Ensure Codec implements wikiexport.Codec at compile time.
var _ wikiexport.Codec = (*Codec)(nil)

// Codec converts between one named character encoding and UTF-8.
// Conversion is lossy rather than failing: malformed input decodes to
// U+FFFD and unrepresentable characters encode to the encoding's
// substitute byte.
type Codec struct {
	name string
	enc  encoding.Encoding
}

// Lookup resolves an encoding label to a Codec. An empty label resolves
// to DefaultEncoding; an unknown label returns EINVALID.
func Lookup(label string) (*Codec, error) {
	if label == "" {
		label = DefaultEncoding
	}
	enc, name := htmlcharset.Lookup(label)
	if enc == nil {
		return nil, wikiexport.Errorf(wikiexport.EINVALID, "unknown encoding %q", label)
	}
	return &Codec{name: name, enc: enc}, nil
}

// Name returns the canonical name of the encoding.
func (c *Codec) Name() string {
	return c.name
}

// Decode converts encoded bytes to a UTF-8 string. Malformed sequences
// become U+FFFD.
func (c *Codec) Decode(b []byte) string {
	out, err := c.enc.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}

// Encode converts a UTF-8 string to encoded bytes. Characters the
// encoding cannot represent are substituted.
func (c *Codec) Encode(s string) []byte {
	out, err := encoding.ReplaceUnsupported(c.enc.NewEncoder()).Bytes([]byte(s))
	if err != nil {
		return []byte(s)
	}
	return out
}
