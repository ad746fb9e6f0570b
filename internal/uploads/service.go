package uploads

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	"github.com/storelinkhq/storelink-backend/pkg/config"
	pkgerrors "github.com/storelinkhq/storelink-backend/pkg/errors"
)

// Uploader is the image-host surface the service depends on. The Cloudinary
// SDK satisfies it through cloudinaryUploader; tests stub it.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader) (string, error)
}

// Service pushes image files to the hosting provider and hands back URLs.
type Service interface {
	UploadImages(ctx context.Context, files []io.Reader) ([]string, error)
}

type service struct {
	uploader Uploader
}

// NewService constructs an upload service backed by the given uploader.
func NewService(up Uploader) (Service, error) {
	if up == nil {
		return nil, fmt.Errorf("uploader required")
	}
	return &service{uploader: up}, nil
}

// NewCloudinaryUploader connects the Cloudinary SDK from the configured URL.
func NewCloudinaryUploader(cfg config.CloudinaryConfig) (Uploader, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("cloudinary url is required")
	}
	cld, err := cloudinary.NewFromURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &cloudinaryUploader{client: cld, folder: cfg.UploadFolder}, nil
}

type cloudinaryUploader struct {
	client *cloudinary.Cloudinary
	folder string
}

func (u *cloudinaryUploader) Upload(ctx context.Context, file io.Reader) (string, error) {
	result, err := u.client.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   u.folder,
		PublicID: uuid.NewString(),
	})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}

// UploadImages pushes every file to the image host in order. A single failed
// upload fails the whole request; earlier uploads are not rolled back.
func (s *service) UploadImages(ctx context.Context, files []io.Reader) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, file := range files {
		hosted, err := s.uploader.Upload(ctx, file)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "Failed to upload images")
		}
		urls = append(urls, hosted)
	}
	return urls, nil
}
