package banner

import (
	"context"

	"contentadmin/internal/domain"
)

type BannerRepositoryInterface interface {
	Create(ctx context.Context, b *domain.Banner) error
	GetByID(ctx context.Context, id int64) (*domain.Banner, error)
	ListAll(ctx context.Context) ([]domain.Banner, error)
	MaxDisplayOrder(ctx context.Context) (int, error)
	Update(ctx context.Context, id int64, fields map[string]any) error
	SetDesktopUpload(ctx context.Context, id, uploadID int64) error
	SetMobileUpload(ctx context.Context, id, uploadID int64) error
	UpdateDisplayOrder(ctx context.Context, id int64, displayOrder int) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type UploadRegistryInterface interface {
	FindByURL(ctx context.Context, fileURL string) (*domain.Upload, error)
	SoftDelete(ctx context.Context, ids ...int64) error
}

// blobStore is the slice of the storage gateway this module needs.
type blobStore interface {
	Delete(ctx context.Context, s3Key string) error
}
