package utils

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskUploaderUploadBytes(t *testing.T) {
	baseDir := t.TempDir()
	uploader := DiskUploader{BaseDir: baseDir}

	url, err := uploader.UploadBytes(context.Background(), "documents/7", "scan.pdf", []byte("file-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/documents/7/scan.pdf", url)

	content, err := os.ReadFile(filepath.Join(baseDir, "documents", "7", "scan.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []byte("file-bytes"), content)
}

func TestGetFileURL(t *testing.T) {
	assert.Equal(t, "", GetFileURL(""))
	assert.Equal(t, "/uploads/documents/7/scan.pdf", GetFileURL("documents/7/scan.pdf"))
}
