package upload

import (
	"context"
	"errors"
	"io"
	"path"

	"contentadmin/internal/domain"
	"contentadmin/internal/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service owns the upload registry: every blob in the object store gets a
// metadata row here, and the row's is_deleted flag is the single source of
// truth for whether the blob still has a referent.
type Service struct {
	uploads UploadRepositoryInterface
	store   storage.Gateway
	log     *zap.Logger
}

func NewService(uploads UploadRepositoryInterface, store storage.Gateway, log *zap.Logger) *Service {
	return &Service{uploads: uploads, store: store, log: log}
}

// PresignUpload hands out a direct-to-storage upload target. Nothing is
// registered yet: the row appears only when the client calls CompleteUpload.
func (s *Service) PresignUpload(ctx context.Context, filename, contentType string) (*storage.PresignedUpload, error) {
	return s.store.PresignUpload(ctx, filename, contentType)
}

// CompleteUpload registers metadata for an already-uploaded object. The
// permanent URL is derived from the key, not taken from the client.
func (s *Service) CompleteUpload(ctx context.Context, req CompleteUploadRequest) (*domain.Upload, error) {
	u := &domain.Upload{
		Filename:     req.Filename,
		OriginalName: req.OriginalName,
		FileURL:      s.store.PublicURL(req.S3Key),
		S3Key:        req.S3Key,
		ContentType:  req.ContentType,
		FileSize:     req.FileSize,
	}
	if err := s.uploads.Create(ctx, u); err != nil {
		return nil, err
	}

	s.log.Info("upload registered",
		zap.Int64("upload_id", u.ID),
		zap.String("s3_key", u.S3Key))
	return u, nil
}

// DirectUpload pushes the file through the backend and registers it in one
// step. A gateway failure is fatal here: without the blob there is nothing
// to register.
func (s *Service) DirectUpload(ctx context.Context, reader io.Reader, size int64, originalName, contentType string) (*domain.Upload, error) {
	if size <= 0 {
		return nil, ErrEmptyFile
	}

	fileURL, s3Key, err := s.store.Upload(ctx, reader, size, originalName, contentType)
	if err != nil {
		return nil, err
	}

	u := &domain.Upload{
		Filename:     path.Base(s3Key),
		OriginalName: originalName,
		FileURL:      fileURL,
		S3Key:        s3Key,
		ContentType:  contentType,
		FileSize:     size,
	}
	if err := s.uploads.Create(ctx, u); err != nil {
		return nil, err
	}

	s.log.Info("direct upload completed",
		zap.Int64("upload_id", u.ID),
		zap.String("s3_key", u.S3Key),
		zap.Int64("size", size))
	return u, nil
}

// List returns non-deleted uploads, optionally filtered by content type.
func (s *Service) List(ctx context.Context, contentType string) ([]domain.Upload, error) {
	if contentType != "" {
		return s.uploads.ListByContentType(ctx, contentType)
	}
	return s.uploads.ListAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Upload, error) {
	u, err := s.uploads.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUploadNotFound
		}
		return nil, err
	}
	return u, nil
}

// SoftDelete flags the row. The blob stays in the object store — only the
// board/banner lifecycle flows remove blobs.
func (s *Service) SoftDelete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.uploads.SoftDelete(ctx, id)
}
