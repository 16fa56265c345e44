package pii

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasher(t *testing.T) {
	h := NewHasher("audit-key")

	t.Run("is deterministic for the same key", func(t *testing.T) {
		assert.Equal(t, h.Hash("1960101123456"), NewHasher("audit-key").Hash("1960101123456"))
		assert.Len(t, h.Hash("1960101123456"), 64)
	})

	t.Run("differs across keys and values", func(t *testing.T) {
		assert.NotEqual(t, h.Hash("1960101123456"), NewHasher("other-key").Hash("1960101123456"))
		assert.NotEqual(t, h.Hash("1960101123456"), h.Hash("2960101123456"))
	})

	t.Run("never echoes the raw value", func(t *testing.T) {
		assert.NotContains(t, h.Hash("1960101123456"), "1960101123456")
	})

	t.Run("empty and nil cases", func(t *testing.T) {
		assert.Empty(t, h.Hash(""))
		var nilHasher *Hasher
		assert.Empty(t, nilHasher.Hash("x"))
	})

	t.Run("oversized key is truncated", func(t *testing.T) {
		long := NewHasher(strings.Repeat("k", 100))
		assert.NotEmpty(t, long.Hash("x"))
	})
}
