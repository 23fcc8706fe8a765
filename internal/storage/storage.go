package storage

import (
	"context"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dukerupert/tenancy/internal"
)

// Storage holds uploaded lease documents and receipts.
// Backends are the local filesystem and Cloudflare R2.
type Storage interface {
	// Put stores a file and returns its URL/path for retrieval.
	// Keys come from DocumentKey.
	Put(ctx context.Context, key string, content io.Reader, contentType string) (string, error)

	// Get retrieves a file by its key.
	// Returns an io.ReadCloser that must be closed by the caller.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a file by its key.
	// Returns nil if the file doesn't exist (idempotent).
	Delete(ctx context.Context, key string) error

	// URL returns the URL for a stored file: a path under LocalURL for local
	// storage, or the bucket's public URL for R2.
	URL(key string) string

	// Exists checks if a file exists at the given key.
	Exists(ctx context.Context, key string) (bool, error)
}

// NewStorage creates a Storage implementation based on configuration.
// Returns LocalStorage for "local" provider, R2Storage for "r2" provider.
func NewStorage(cfg internal.StorageConfig) (Storage, error) {
	switch cfg.Provider {
	case "local", "":
		return NewLocalStorage(cfg.LocalPath, cfg.LocalURL)
	case "r2":
		return NewR2Storage(R2Config{
			AccountID:   cfg.R2AccountID,
			AccessKeyID: cfg.R2AccessKeyID,
			SecretKey:   cfg.R2SecretKey,
			BucketName:  cfg.R2BucketName,
			PublicURL:   cfg.R2PublicURL,
			Endpoint:    cfg.R2Endpoint,
		})
	default:
		return nil, ErrUnknownProvider(cfg.Provider)
	}
}

// DocumentKey builds a collision-free key such as
// "documents/<owner>/2025/02/<uuid>-lease.pdf". Only the base name of
// filename is kept.
func DocumentKey(ownerID uuid.UUID, filename string, now time.Time) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	if strings.Trim(name, "._") == "" {
		name = "document"
	}

	return path.Join("documents", ownerID.String(), now.UTC().Format("2006/01"), uuid.NewString()+"-"+name)
}
