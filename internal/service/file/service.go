package file

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/utiliops/fieldforce-backend-go/internal/pkg/storage"
	"github.com/utiliops/fieldforce-backend-go/internal/pkg/validator"
)

// FileService wraps the storage backend for attendance proof photos.
type FileService interface {
	// UploadProofPhoto validates and stores a proof photo, returning its
	// public URL.
	UploadProofPhoto(ctx context.Context, staffID string, file multipart.File, header *multipart.FileHeader) (string, error)
}

type FileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(fs storage.FileStorage) FileService {
	return &FileServiceImpl{storage: fs}
}

func (f *FileServiceImpl) UploadProofPhoto(ctx context.Context, staffID string, file multipart.File, header *multipart.FileHeader) (string, error) {
	if err := validator.ValidateProofPhoto(header.Filename, header.Size); err != nil {
		return "", err
	}

	path := storage.ProofPhotoPath(staffID, time.Now().UTC(), header.Filename)

	contentType := header.Header.Get("Content-Type")
	stored, err := f.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload proof photo: %w", err)
	}

	url, err := f.storage.GetURL(ctx, stored, 0)
	if err != nil {
		return "", fmt.Errorf("failed to resolve proof photo url: %w", err)
	}

	return url, nil
}
