package utils

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// SavedFile describes a stored upload.
type SavedFile struct {
	URL      string
	MimeType string
	Size     int64
}

// SaveUploadedFile stores an upload on disk under destDir and returns its
// serving URL plus size/mime metadata. The whole file is read in one pass;
// size limits are the caller's concern.
func SaveUploadedFile(file *multipart.FileHeader, destDir string) (*SavedFile, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, err
	}

	// Create a unique filename
	ext := filepath.Ext(file.Filename)
	newFilename := time.Now().Format("20060102150405") + fmt.Sprintf("_%d", time.Now().UnixNano()%10000) + ext
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		return nil, err
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	return &SavedFile{
		URL:      "/uploads/" + newFilename,
		MimeType: mimeType,
		Size:     size,
	}, nil
}

// FileDataURL reads an upload fully into memory and encodes it as a
// self-contained data URL.
func FileDataURL(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
