package repository

import (
	"context"
	"time"

	"contentadmin/internal/domain"

	"gorm.io/gorm"
)

type UploadRepository struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) *UploadRepository {
	return &UploadRepository{db: db}
}

type uploadModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Filename     string    `gorm:"column:filename;size:255"`
	OriginalName string    `gorm:"column:original_name;size:255"`
	FileURL      string    `gorm:"column:file_url;size:500"`
	S3Key        string    `gorm:"column:s3_key;size:500"`
	ContentType  string    `gorm:"column:content_type;size:100"`
	FileSize     int64     `gorm:"column:file_size"`
	IsDeleted    bool      `gorm:"column:is_deleted;default:false"`
	BoardID      *int64    `gorm:"column:board_id"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (uploadModel) TableName() string { return "uploads" }

func toDomainUpload(m uploadModel) *domain.Upload {
	return &domain.Upload{
		ID:           m.ID,
		Filename:     m.Filename,
		OriginalName: m.OriginalName,
		FileURL:      m.FileURL,
		S3Key:        m.S3Key,
		ContentType:  m.ContentType,
		FileSize:     m.FileSize,
		IsDeleted:    m.IsDeleted,
		BoardID:      m.BoardID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *UploadRepository) Create(ctx context.Context, u *domain.Upload) error {
	m := uploadModel{
		Filename:     u.Filename,
		OriginalName: u.OriginalName,
		FileURL:      u.FileURL,
		S3Key:        u.S3Key,
		ContentType:  u.ContentType,
		FileSize:     u.FileSize,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	u.ID = m.ID
	u.IsDeleted = m.IsDeleted
	u.CreatedAt = m.CreatedAt
	u.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID returns the upload only while it is not soft-deleted.
func (r *UploadRepository) GetByID(ctx context.Context, id int64) (*domain.Upload, error) {
	var m uploadModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return toDomainUpload(m), nil
}

// GetByIDs returns the rows for the given ids regardless of deletion state.
// Cleanup uses it to recover s3 keys for rows that may already be flagged.
func (r *UploadRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Upload, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var models []uploadModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Upload, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainUpload(m))
	}
	return out, nil
}

func (r *UploadRepository) ListAll(ctx context.Context) ([]domain.Upload, error) {
	return r.list(ctx, map[string]any{"is_deleted": false})
}

func (r *UploadRepository) ListByContentType(ctx context.Context, contentType string) ([]domain.Upload, error) {
	return r.list(ctx, map[string]any{"is_deleted": false, "content_type": contentType})
}

func (r *UploadRepository) list(ctx context.Context, where map[string]any) ([]domain.Upload, error) {
	var models []uploadModel
	err := r.db.WithContext(ctx).
		Where(where).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Upload, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainUpload(m))
	}
	return out, nil
}

// FindByURL resolves a client-supplied URL back to its non-deleted registry
// row. No uniqueness constraint exists on file_url, so the first match wins.
func (r *UploadRepository) FindByURL(ctx context.Context, fileURL string) (*domain.Upload, error) {
	var m uploadModel
	err := r.db.WithContext(ctx).
		Where("file_url = ? AND is_deleted = ?", fileURL, false).
		Order("id").
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return toDomainUpload(m), nil
}

// ListByBoardID returns the non-deleted uploads stamped with the given board.
func (r *UploadRepository) ListByBoardID(ctx context.Context, boardID int64) ([]domain.Upload, error) {
	return r.list(ctx, map[string]any{"is_deleted": false, "board_id": boardID})
}

// SoftDelete flags the rows; the object store is not touched here.
func (r *UploadRepository) SoftDelete(ctx context.Context, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&uploadModel{}).
		Where("id IN ?", ids).
		Update("is_deleted", true).Error
}

// SetBoardID stamps the owning board on an upload for traceability.
func (r *UploadRepository) SetBoardID(ctx context.Context, id, boardID int64) error {
	return r.db.WithContext(ctx).
		Model(&uploadModel{}).
		Where("id = ?", id).
		Update("board_id", boardID).Error
}

// SetBoardIDByKey stamps the owning board on whichever row holds the key.
// Used for thumbnail/author-image URLs, which carry no upload id.
func (r *UploadRepository) SetBoardIDByKey(ctx context.Context, s3Key string, boardID int64) error {
	return r.db.WithContext(ctx).
		Model(&uploadModel{}).
		Where("s3_key = ?", s3Key).
		Update("board_id", boardID).Error
}
