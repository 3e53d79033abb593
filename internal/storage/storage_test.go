package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisk_SaveRemoveExists(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDisk(dir)
	assert.NoError(t, err)

	assert.False(t, store.Exists("photo.png"))

	payload := []byte("fake image bytes")
	n, err := store.Save("photo.png", bytes.NewReader(payload))
	assert.NoError(t, err)
	assert.Equal(t, int64(len(payload)), n)
	assert.True(t, store.Exists("photo.png"))

	written, err := os.ReadFile(filepath.Join(dir, "photo.png"))
	assert.NoError(t, err)
	assert.Equal(t, payload, written)

	assert.NoError(t, store.Remove("photo.png"))
	assert.False(t, store.Exists("photo.png"))
	assert.Error(t, store.Remove("photo.png"))
}

func TestNewDiskCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewDisk(dir)
	assert.NoError(t, err)

	info, err := os.Stat(dir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename("image", "holiday photo.JPG")

	assert.True(t, strings.HasPrefix(name, "image-"))
	assert.True(t, strings.HasSuffix(name, ".JPG"))
	// Only the extension of the original name survives
	assert.NotContains(t, name, "holiday")

	// Names must not collide
	other := GenerateFilename("image", "holiday photo.JPG")
	assert.NotEqual(t, name, other)
}

func TestGenerateFilenameWithoutExtension(t *testing.T) {
	name := GenerateFilename("image", "noext")
	assert.Regexp(t, `^image-\d+-[0-9a-f-]+$`, name)
}
