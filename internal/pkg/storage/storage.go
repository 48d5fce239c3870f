package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

type FileStorage interface {
	// Upload uploads a file and returns the file path/key
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download retrieves a file
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error

	// GetURL generates a presigned/public URL
	GetURL(ctx context.Context, path string, expiry time.Duration) (string, error)

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)
}

// ProofPhotoPath builds the storage key for an attendance proof photo,
// partitioned by day so cleanup jobs can expire old directories wholesale.
func ProofPhotoPath(staffID string, at time.Time, originalFilename string) string {
	ext := filepath.Ext(originalFilename)
	return fmt.Sprintf("attendance/%s/%s-%s%s", at.Format("2006-01-02"), staffID, uuid.NewString(), ext)
}
