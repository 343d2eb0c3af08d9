// Package storage keeps ticket photo files outside the database. Tickets
// only hold the returned key.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/incidentdesk/incidentdesk/internal/shared/biztime"
	"github.com/incidentdesk/incidentdesk/internal/shared/config"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

const ticketPhotoPrefix = "tickets"

// PhotoStorage stores ticket photos under opaque keys.
type PhotoStorage interface {
	Save(ctx context.Context, originalName, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, key string) error
}

// GeneratePhotoKey builds tickets/<uuid>_<unix><ext> from the uploaded file name.
func GeneratePhotoKey(originalName string) string {
	ext := strings.ToLower(path.Ext(originalName))
	return fmt.Sprintf("%s/%s_%d%s", ticketPhotoPrefix, uuid.New().String(), biztime.NowUTC().Unix(), ext)
}

// New builds the provider named by cfg.Provider. A misconfigured S3 bucket
// falls back to local storage with a warning.
func New(ctx context.Context, cfg *config.StorageConfig, log logger.Interface) PhotoStorage {
	if strings.EqualFold(cfg.Provider, "s3") {
		s3Storage, err := NewS3Storage(ctx, &cfg.S3)
		if err == nil {
			checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			err = s3Storage.Check(checkCtx)
		}
		if err == nil {
			log.Infow("photo storage ready", "provider", "s3", "bucket", cfg.S3.Bucket)
			return s3Storage
		}
		log.Warnw("s3 storage unavailable, falling back to local storage", "error", err)
	}

	log.Infow("photo storage ready", "provider", "local", "path", cfg.LocalPath)
	return NewLocalStorage(cfg.LocalPath)
}
