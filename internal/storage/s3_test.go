package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	t.Run("keeps lowered extension", func(t *testing.T) {
		key := ObjectKey("Campus Photo.JPG")
		assert.True(t, strings.HasPrefix(key, "images/"))
		assert.True(t, strings.HasSuffix(key, ".jpg"))
	})

	t.Run("no extension is tolerated", func(t *testing.T) {
		key := ObjectKey("logo")
		assert.True(t, strings.HasPrefix(key, "images/"))
		assert.False(t, strings.Contains(key, "."))
	})

	t.Run("keys never collide on identical names", func(t *testing.T) {
		assert.NotEqual(t, ObjectKey("a.png"), ObjectKey("a.png"))
	})
}
