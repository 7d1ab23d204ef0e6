package util

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKeyKeepsFilename(t *testing.T) {
	key := ObjectKey("photo.jpg")

	require.True(t, strings.HasSuffix(key, "-photo.jpg"))

	prefix := strings.TrimSuffix(key, "-photo.jpg")
	_, err := strconv.ParseInt(prefix, 10, 64)
	assert.NoError(t, err)
}

func TestObjectKeyStripsDirectories(t *testing.T) {
	key := ObjectKey("../../etc/passwd.jpg")

	assert.True(t, strings.HasSuffix(key, "-passwd.jpg"))
	assert.NotContains(t, key, "/")
}

func TestObjectKeyIsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		key := ObjectKey("same.jpg")
		assert.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
	}
}
