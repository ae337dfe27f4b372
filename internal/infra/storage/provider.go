package storage

import (
	"context"
	"log/slog"

	"estate/config"
	"estate/internal/domain/constants"
	"estate/internal/domain/service"
	"estate/internal/errors"

	"go.uber.org/fx"
)

type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStore defaults to a local file bucket when storage is not configured.
func NewImageStore(params Params) (service.ImageStore, error) {
	cfg := params.Config.Storage
	if cfg == nil {
		cfg = &config.StorageConfig{Provider: constants.StorageBlob, BucketURL: "file:///tmp/estate-images?create_dir=true", PublicBaseURL: "/images"}
	}

	switch cfg.Provider {
	case constants.StorageCloudinary:
		params.Logger.Info("using cloudinary image storage", slog.String("cloud_name", cfg.CloudName))

		return NewCloudinaryStore(cfg.CloudName, cfg.APIKey, cfg.APISecret, cfg.Folder)

	case constants.StorageBlob, "":
		bucket, err := OpenBucket(params.Ctx, cfg.BucketURL)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return bucket.Close()
			},
		})
		params.Logger.Info("using blob image storage", slog.String("bucket", cfg.BucketURL))

		return NewBlobStore(bucket, cfg.PublicBaseURL, cfg.Folder), nil

	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}
}
