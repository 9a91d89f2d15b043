package charset_test

import (
	"testing"

	"golang.org/x/text/encoding"

	"github.com/fwojciec/wikiexport"
	"github.com/fwojciec/wikiexport/charset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	t.Run("resolves utf-8", func(t *testing.T) {
		t.Parallel()

		c, err := charset.Lookup("utf-8")

		require.NoError(t, err)
		assert.Equal(t, "utf-8", c.Name())
	})

	t.Run("empty label resolves to the default", func(t *testing.T) {
		t.Parallel()

		c, err := charset.Lookup("")

		require.NoError(t, err)
		assert.Equal(t, "utf-8", c.Name())
	})

	t.Run("labels are matched like browsers match them", func(t *testing.T) {
		t.Parallel()

		c, err := charset.Lookup("latin1")

		require.NoError(t, err)
		assert.Equal(t, "windows-1252", c.Name())
	})

	t.Run("unknown label returns EINVALID", func(t *testing.T) {
		t.Parallel()

		_, err := charset.Lookup("no-such-encoding")

		require.Error(t, err)
		assert.Equal(t, wikiexport.EINVALID, wikiexport.ErrorCode(err))
	})
}

func TestCodec_Decode(t *testing.T) {
	t.Parallel()

	t.Run("decodes windows-1252 bytes", func(t *testing.T) {
		t.Parallel()

		c, err := charset.Lookup("latin1")
		require.NoError(t, err)

		got := c.Decode([]byte{'c', 'a', 'f', 0xe9})

		assert.Equal(t, "café", got)
	})

	t.Run("malformed utf-8 is replaced, not rejected", func(t *testing.T) {
		t.Parallel()

		c, err := charset.Lookup("utf-8")
		require.NoError(t, err)

		got := c.Decode([]byte{0xff, 'a'})

		assert.Equal(t, "�a", got)
	})
}

func TestCodec_Encode(t *testing.T) {
	t.Parallel()

	t.Run("encodes to windows-1252 bytes", func(t *testing.T) {
		t.Parallel()

		c, err := charset.Lookup("latin1")
		require.NoError(t, err)

		got := c.Encode("café")

		assert.Equal(t, []byte{'c', 'a', 'f', 0xe9}, got)
	})

	t.Run("unrepresentable characters are substituted, not rejected", func(t *testing.T) {
		t.Parallel()

		c, err := charset.Lookup("latin1")
		require.NoError(t, err)

		got := c.Encode("→")

		assert.Equal(t, []byte{encoding.ASCIISub}, got)
	})

	t.Run("utf-8 round-trips unchanged", func(t *testing.T) {
		t.Parallel()

		c, err := charset.Lookup("utf-8")
		require.NoError(t, err)

		assert.Equal(t, "héllo → wörld", c.Decode(c.Encode("héllo → wörld")))
	})
}

// Compile-time verification that Codec implements wikiexport.Codec
var _ wikiexport.Codec = (*charset.Codec)(nil)
