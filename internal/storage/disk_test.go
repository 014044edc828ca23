package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	_, header, err := req.FormFile("image")
	require.NoError(t, err)
	return header
}

func TestDiskStorage_SaveGeneratesName(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStorage(dir)
	require.NoError(t, err)

	name, err := store.Save(fileHeader(t, "vacation photo.JPG", "jpeg bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(name, ".jpg"), "extension is lowercased: %s", name)
	assert.NotContains(t, name, "vacation")

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))
}

func TestDiskStorage_SaveUniqueNames(t *testing.T) {
	store, err := NewDiskStorage(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save(fileHeader(t, "a.png", "one"))
	require.NoError(t, err)
	second, err := store.Save(fileHeader(t, "a.png", "two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDiskStorage_RejectsUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStorage(dir)
	require.NoError(t, err)

	_, err = store.Save(fileHeader(t, "payload.exe", "MZ"))
	assert.ErrorIs(t, err, ErrUnsupportedFileType)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing is written for rejected uploads")
}

func TestNewDiskStorage_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store, err := NewDiskStorage(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
