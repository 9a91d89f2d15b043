package regexp

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Unescape converts string-literal escape sequences in s to their literal
// characters: \n \t \r \b \f \" \' \\ \/ and \uXXXX, with surrogate pairs
// combined into one rune and lone surrogates replaced by U+FFFD.
// Unrecognized escapes pass through unchanged, as does a trailing
// backslash.
func Unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			i++
			continue
		}

		switch s[i+1] {
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 'b':
			b.WriteByte('\b')
			i += 2
		case 'f':
			b.WriteByte('\f')
			i += 2
		case '"', '\'', '\\', '/':
			b.WriteByte(s[i+1])
			i += 2
		case 'u':
			r, size, ok := decodeUnicodeEscape(s[i:])
			if !ok {
				b.WriteByte('\\')
				i++
				continue
			}
			b.WriteRune(r)
			i += size
		default:
			// Unrecognized escape: keep the backslash, the next byte is
			// copied literally on the following iteration.
			b.WriteByte('\\')
			i++
		}
	}
	return b.String()
}

// decodeUnicodeEscape decodes a \uXXXX escape at the start of s, pairing a
// high surrogate with an immediately following \uXXXX low surrogate.
// Returns the rune, the number of input bytes consumed, and whether the
// escape was well-formed.
func decodeUnicodeEscape(s string) (rune, int, bool) {
	r, ok := hexRune(s)
	if !ok {
		return 0, 0, false
	}
	if !utf16.IsSurrogate(r) {
		return r, 6, true
	}
	if r2, ok := hexRune(s[6:]); ok {
		if paired := utf16.DecodeRune(r, r2); paired != utf8.RuneError {
			return paired, 12, true
		}
	}
	// Lone surrogate.
	return utf8.RuneError, 6, true
}

// hexRune parses a \uXXXX escape at the start of s.
func hexRune(s string) (rune, bool) {
	if len(s) < 6 || s[0] != '\\' || s[1] != 'u' {
		return 0, false
	}
	var r rune
	for i := 2; i < 6; i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			r = r<<4 | rune(c-'0')
		case c >= 'a' && c <= 'f':
			r = r<<4 | rune(c-'a'+10)
		case c >= 'A' && c <= 'F':
			r = r<<4 | rune(c-'A'+10)
		default:
			return 0, false
		}
	}
	return r, true
}
