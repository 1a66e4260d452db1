package auth

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasherDeterminism(t *testing.T) {
	h := NewHasher()

	first := h.Digest("pikachu123")
	for i := 0; i < 10; i++ {
		require.Equal(t, first, h.Digest("pikachu123"))
	}

	// A fresh instance must produce the same digest: there is no per-call
	// or per-process randomness.
	other := NewHasher()
	require.Equal(t, first, other.Digest("pikachu123"))
}

func TestHasherDigestFormat(t *testing.T) {
	h := NewHasher()

	digest := h.Digest("pikachu123")
	raw, err := base64.StdEncoding.DecodeString(digest)
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	// SHA-256 of the empty string is a fixed, well-known value.
	assert.Equal(t, "47DEQpj8HBSa+/TImW+5JCeuQeRkm5NMpJWZG3hSuFU=", h.Digest(""))
}

func TestHasherMatches(t *testing.T) {
	h := NewHasher()

	digest := h.Digest("pikachu123")
	assert.True(t, h.Matches("pikachu123", digest))
	assert.False(t, h.Matches("wrong", digest))
	assert.False(t, h.Matches("pikachu123", "not-a-digest"))
}

func TestHasherDistinctInputs(t *testing.T) {
	h := NewHasher()

	assert.NotEqual(t, h.Digest("pikachu123"), h.Digest("pikachu124"))
	assert.NotEqual(t, h.Digest("a"), h.Digest("b"))
}
