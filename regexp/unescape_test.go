package regexp_test

import (
	"testing"

	wikiregexp "github.com/fwojciec/wikiexport/regexp"
	"github.com/stretchr/testify/assert"
)

func TestUnescape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "no escapes here",
			want:  "no escapes here",
		},
		{
			name:  "escaped newline",
			input: `Hello\nWorld`,
			want:  "Hello\nWorld",
		},
		{
			name:  "tab and carriage return",
			input: `a\tb\rc`,
			want:  "a\tb\rc",
		},
		{
			name:  "backspace and form feed",
			input: `x\by\fz`,
			want:  "x\by\fz",
		},
		{
			name:  "escaped double quote",
			input: `say \"hi\"`,
			want:  `say "hi"`,
		},
		{
			name:  "escaped single quote",
			input: `it\'s`,
			want:  "it's",
		},
		{
			name:  "escaped backslash",
			input: `C:\\path`,
			want:  `C:\path`,
		},
		{
			name:  "escaped backslash before n stays literal",
			input: `line\\nbreak`,
			want:  `line\nbreak`,
		},
		{
			name:  "escaped forward slash",
			input: `a\/b`,
			want:  "a/b",
		},
		{
			name:  "unicode escape",
			input: `caf\u00e9`,
			want:  "café",
		},
		{
			name:  "uppercase hex digits",
			input: `\u00C9tude`,
			want:  "Étude",
		},
		{
			name:  "surrogate pair combines to one rune",
			input: `\ud83d\ude00`,
			want:  "😀",
		},
		{
			name:  "lone surrogate becomes replacement character",
			input: `\ud83d!`,
			want:  "\uFFFD!",
		},
		{
			name:  "invalid unicode escape passes through",
			input: `\uZZZZ`,
			want:  `\uZZZZ`,
		},
		{
			name:  "truncated unicode escape passes through",
			input: `end\u12`,
			want:  `end\u12`,
		},
		{
			name:  "unrecognized escape passes through",
			input: `a\qb`,
			want:  `a\qb`,
		},
		{
			name:  "trailing backslash is kept",
			input: `end\`,
			want:  `end\`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, wikiregexp.Unescape(tt.input))
		})
	}
}
