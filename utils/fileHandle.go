package utils

import (
	"context"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// Uploader stores document bytes and returns the URL they are served from.
type Uploader interface {
	UploadBytes(ctx context.Context, folder string, filename string, b []byte) (string, error)
}

// Blob is the configured uploader, set in main at startup.
var Blob Uploader

// DiskUploader writes blobs under a local base directory, served as static
// files by the app.
type DiskUploader struct {
	BaseDir string
}

func (u DiskUploader) UploadBytes(ctx context.Context, folder string, filename string, b []byte) (string, error) {
	destDir := filepath.Join(u.BaseDir, folder)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	filePath := filepath.Join(destDir, filename)
	if err := os.WriteFile(filePath, b, 0644); err != nil {
		return "", err
	}

	return GetFileURL(filepath.Join(folder, filename)), nil
}

// ReadUploadedFile reads a multipart upload fully into memory.
func ReadUploadedFile(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return io.ReadAll(src)
}

func GetFileURL(filePath string) string {
	if filePath == "" {
		return ""
	}
	// Adjust this based on your actual file serving setup
	return "/uploads/" + filepath.ToSlash(filePath)
}
