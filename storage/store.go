// Package storage persists recipe images.
package storage

import (
	"context"
	"fmt"

	"foodgram/config"
)

// ImageStore saves, removes and addresses image files by key.
type ImageStore interface {
	Save(ctx context.Context, key string, data []byte, contentType string) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// New builds the store selected by cfg.Backend.
func New(ctx context.Context, cfg config.MediaConfig) (ImageStore, error) {
	switch cfg.Backend {
	case "local":
		return NewLocalStore(cfg.Dir, cfg.BaseURL)
	case "s3":
		return NewS3Store(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported media backend %q", cfg.Backend)
	}
}
