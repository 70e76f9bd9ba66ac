package storage

import (
	"context"
	"fmt"

	"github.com/sweetcrumb/menu-system/internal/core/ports"
	"github.com/sweetcrumb/menu-system/internal/infrastructure/config"
)

// New builds the image store selected by STORAGE_DRIVER.
func New(ctx context.Context, cfg config.StorageConfig) (ports.ImageStore, error) {
	switch cfg.Driver {
	case "s3":
		return NewS3Store(ctx, cfg)
	case "disk":
		return NewDiskStore(cfg.UploadDir, cfg.PublicBaseURL)
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
	}
}
