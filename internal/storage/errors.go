package storage

import (
	"fmt"

	"github.com/dukerupert/tenancy/internal/domain"
)

var (
	ErrR2AccountIDRequired   = domain.Errorf(domain.EINVALID, "storage.r2", "R2 account ID is required")
	ErrR2CredentialsRequired = domain.Errorf(domain.EINVALID, "storage.r2", "R2 credentials are required")
	ErrR2BucketRequired      = domain.Errorf(domain.EINVALID, "storage.r2", "R2 bucket name is required")

	// ErrInvalidKey is returned for keys that are empty or escape the
	// storage root.
	ErrInvalidKey = domain.Errorf(domain.EINVALID, "storage", "Invalid document key")
)

// ErrFileNotFound creates an error for when a file is not found.
func ErrFileNotFound(key string) error {
	return domain.NotFound("storage.get", "document", key)
}

// ErrUnknownProvider creates an error for unknown storage providers.
func ErrUnknownProvider(provider string) error {
	return domain.Errorf(domain.EINVALID, "storage", "%s", fmt.Sprintf("unknown storage provider: %s", provider))
}
