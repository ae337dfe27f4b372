// Package storage uploads listing images to Cloudinary or a gocloud.dev bucket.
package storage

import (
	"context"
	"io"
	"path"
	"strings"

	"estate/internal/domain/service"
	"estate/internal/errors"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	cldconfig "github.com/cloudinary/cloudinary-go/v2/config"
)

// Delivery transformation applied on upload.
const imageEager = "q_auto,f_auto,w_1280,c_limit"

type imageUploader interface {
	Upload(ctx context.Context, file any, uploadParams uploader.UploadParams) (*uploader.UploadResult, error)
}

type cloudinaryStore struct {
	uploader imageUploader
	folder   string
}

func NewCloudinaryStore(cloudName, apiKey, apiSecret, folder string) (service.ImageStore, error) {
	cfg, err := cldconfig.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, errors.Wrap(err, "cloudinary config")
	}

	up, err := uploader.NewWithConfiguration(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "cloudinary uploader")
	}

	return &cloudinaryStore{uploader: up, folder: folder}, nil
}

func (s *cloudinaryStore) Upload(ctx context.Context, name, _ string, body io.Reader) (string, error) {
	eagerAsync := false
	overwrite := false

	result, err := s.uploader.Upload(ctx, body, uploader.UploadParams{
		Folder:     s.folder,
		PublicID:   strings.TrimSuffix(name, path.Ext(name)),
		Overwrite:  &overwrite,
		Eager:      imageEager,
		EagerAsync: &eagerAsync,
	})
	if err != nil {
		return "", errors.Wrap(err, "cloudinary upload")
	}
	if result.Error.Message != "" {
		return "", errors.Errorf("cloudinary upload: %s", result.Error.Message)
	}
	if len(result.Eager) > 0 && result.Eager[0].SecureURL != "" {
		return result.Eager[0].SecureURL, nil
	}

	return result.SecureURL, nil
}
