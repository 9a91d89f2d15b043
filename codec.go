package wikiexport

// Codec converts text between UTF-8 and a named character encoding.
// Implementations replace unrepresentable or malformed data instead of
// failing, so both directions are total.
type Codec interface {
	// Name returns the canonical encoding name.
	Name() string

	// Decode converts encoded bytes to a UTF-8 string.
	Decode(b []byte) string

	// Encode converts a UTF-8 string to encoded bytes.
	Encode(s string) []byte
}
