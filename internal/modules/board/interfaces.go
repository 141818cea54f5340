package board

import (
	"context"

	"contentadmin/internal/domain"
)

type BoardRepositoryInterface interface {
	Create(ctx context.Context, b *domain.Board) error
	GetByID(ctx context.Context, id int64) (*domain.Board, error)
	List(ctx context.Context, offset, limit int) ([]domain.Board, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) (bool, error)
	ListImageLinks(ctx context.Context, boardID int64) ([]domain.BoardImage, error)
	CreateImageLink(ctx context.Context, boardID, uploadID int64) error
	DeleteImageLinks(ctx context.Context, boardID int64) error
}

type UploadRegistryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.Upload, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Upload, error)
	ListByBoardID(ctx context.Context, boardID int64) ([]domain.Upload, error)
	SoftDelete(ctx context.Context, ids ...int64) error
	SetBoardID(ctx context.Context, id, boardID int64) error
	SetBoardIDByKey(ctx context.Context, s3Key string, boardID int64) error
}

// blobStore is the slice of the storage gateway this module needs.
type blobStore interface {
	Delete(ctx context.Context, s3Key string) error
}
