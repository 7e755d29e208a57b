package codecs

import (
	"strings"
	"sync"
	"testing"

	"github.com/arthur-debert/snippet/pkg/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltins(t *testing.T) {
	tests := []struct {
		codec string
		in    string
		want  string
	}{
		{"b64", "test", "dGVzdA=="},
		{"b64", "", ""},
		{"b64url", "??>", "Pz8-"},
		{"hex", "test", "74657374"},
		{"url", "a b&c", "a+b%26c"},
		{"upper", "Feat", "FEAT"},
		{"lower", "Feat", "feat"},
		{"trim", "  a b c \t", "a b c"},
		{"sha256", "test", "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"},
		{"html", `<a href="x">`, "&lt;a href=&#34;x&#34;&gt;"},
		{"strip_html", "<b>hi</b> there", "hi there"},
		{"shell", "it's", `'it'"'"'s'`},
	}

	for _, tt := range tests {
		t.Run(tt.codec+"/"+tt.in, func(t *testing.T) {
			fn, err := Lookup(tt.codec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fn(tt.in))
		})
	}
}

func TestChainedB64(t *testing.T) {
	fn, err := Lookup("b64")
	require.NoError(t, err)
	assert.Equal(t, "ZEhObGRBPT0=", fn(fn("tset")))
}

func TestUUIDCodec(t *testing.T) {
	fn, err := Lookup("uuid")
	require.NoError(t, err)

	first := fn("https://example.com")
	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), parsed.Version())
	assert.Equal(t, first, fn("https://example.com"), "uuid codec must be deterministic")
	assert.NotEqual(t, first, fn("https://example.org"))
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("rot13")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownCodec))
	assert.Equal(t, "rot13", errors.GetErrorDetails(err)["name"])
}

func TestHas(t *testing.T) {
	assert.True(t, Default().Has("b64"))
	assert.False(t, Default().Has("rot13"))
	assert.False(t, NewEmptyRegistry().Has("b64"))
}

func TestDefaultIsFrozen(t *testing.T) {
	err := Default().Register("rot13", "rotate", strings.ToUpper)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.NotContains(t, List(), "rot13")
}

func TestCustomRegistry(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register("reverse", "reverse runes", func(s string) string {
		runes := []rune(s)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return string(runes)
	}))

	fn, err := r.Lookup("reverse")
	require.NoError(t, err)
	assert.Equal(t, "tset", fn("test"))

	desc, err := r.Describe("reverse")
	require.NoError(t, err)
	assert.Equal(t, "reverse runes", desc)

	t.Run("duplicate", func(t *testing.T) {
		err := r.Register("b64", "again", strings.ToLower)
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
	})

	t.Run("empty name", func(t *testing.T) {
		err := r.Register("", "nameless", strings.ToLower)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("nil transform", func(t *testing.T) {
		err := r.Register("nothing", "nil", nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestEmptyRegistry(t *testing.T) {
	r := NewEmptyRegistry()
	assert.Empty(t, r.List())
	_, err := r.Lookup("b64")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownCodec))
}

func TestList(t *testing.T) {
	names := List()
	assert.Contains(t, names, "b64")
	assert.Contains(t, names, "uuid")
	assert.IsIncreasing(t, names)
}

func TestConcurrentLookup(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn, err := Lookup("b64")
			if err != nil {
				t.Errorf("Lookup() error = %v", err)
				return
			}
			if got := fn("test"); got != "dGVzdA==" {
				t.Errorf("b64(test) = %q", got)
			}
		}()
	}
	wg.Wait()
}
