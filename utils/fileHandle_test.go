package utils

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, name, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, name))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	require.NotEmpty(t, form.File["file"])
	return form.File["file"][0]
}

func TestFileDataURL(t *testing.T) {
	content := []byte("hello upload")
	file := fileHeader(t, "note.txt", "text/plain", content)

	url, err := FileDataURL(file)
	require.NoError(t, err)

	assert.Equal(t, "data:text/plain;base64,"+base64.StdEncoding.EncodeToString(content), url)
}

func TestFileDataURLDefaultsMimeType(t *testing.T) {
	file := fileHeader(t, "blob.bin", "", []byte{0x01, 0x02})
	file.Header.Del("Content-Type")

	url, err := FileDataURL(file)
	require.NoError(t, err)

	assert.Contains(t, url, "data:application/octet-stream;base64,")
}

func TestSaveUploadedFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("picture bytes")
	file := fileHeader(t, "photo.png", "image/png", content)

	saved, err := SaveUploadedFile(file, dir)
	require.NoError(t, err)

	assert.True(t, len(saved.URL) > len("/uploads/"))
	assert.Equal(t, "/uploads/", saved.URL[:len("/uploads/")])
	assert.Equal(t, "image/png", saved.MimeType)
	assert.Equal(t, int64(len(content)), saved.Size)
	assert.Equal(t, ".png", filepath.Ext(saved.URL))

	onDisk, err := os.ReadFile(filepath.Join(dir, filepath.Base(saved.URL)))
	require.NoError(t, err)
	assert.Equal(t, content, onDisk)
}
