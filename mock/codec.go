package mock

import "github.com/fwojciec/wikiexport"

var _ wikiexport.Codec = (*Codec)(nil)

// Codec is a mock implementation of wikiexport.Codec.
type Codec struct {
	NameFn   func() string
	DecodeFn func(b []byte) string
	EncodeFn func(s string) []byte
}

func (c *Codec) Name() string {
	return c.NameFn()
}

func (c *Codec) Decode(b []byte) string {
	return c.DecodeFn(b)
}

func (c *Codec) Encode(s string) []byte {
	return c.EncodeFn(s)
}
