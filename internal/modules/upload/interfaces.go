package upload

import (
	"context"

	"contentadmin/internal/domain"
)

type UploadRepositoryInterface interface {
	Create(ctx context.Context, u *domain.Upload) error
	GetByID(ctx context.Context, id int64) (*domain.Upload, error)
	ListAll(ctx context.Context) ([]domain.Upload, error)
	ListByContentType(ctx context.Context, contentType string) ([]domain.Upload, error)
	SoftDelete(ctx context.Context, ids ...int64) error
}
