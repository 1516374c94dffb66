package upload

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Uploader sends an image source (remote URL or base64 data URI) to an
// external hosting provider and returns the hosted secure URL.
type Uploader interface {
	Upload(ctx context.Context, source string) (string, error)
}

// CloudinaryUploader uploads images to Cloudinary.
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// Ensure CloudinaryUploader implements Uploader
var _ Uploader = (*CloudinaryUploader)(nil)

// NewCloudinary builds an uploader from a cloudinary:// credential URL.
func NewCloudinary(credentialURL string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(credentialURL)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld, folder: "bunnypost"}, nil
}

// Upload pushes the source to Cloudinary and returns the secure URL.
func (u *CloudinaryUploader) Upload(ctx context.Context, source string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, source, uploader.UploadParams{Folder: u.folder})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}
