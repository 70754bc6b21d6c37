package cloudinary

import (
	"bytes"
	"context"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// New builds a client from the CLOUDINARY_URL environment variable.
func New() (*cld.Cloudinary, error) {
	return cld.New()
}

// Uploader stores document scans in Cloudinary instead of local disk.
type Uploader struct {
	cld *cld.Cloudinary
}

func NewUploader(cloud *cld.Cloudinary) *Uploader {
	return &Uploader{cld: cloud}
}

func (u *Uploader) UploadBytes(ctx context.Context, folder string, filename string, b []byte) (string, error) {
	res, err := u.cld.Upload.Upload(
		ctx,
		bytes.NewReader(b),
		uploader.UploadParams{
			Folder:   folder,
			PublicID: filename,
		},
	)
	if err != nil {
		return "", err
	}

	return res.SecureURL, nil
}
