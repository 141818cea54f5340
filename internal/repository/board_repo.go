package repository

import (
	"context"
	"time"

	"contentadmin/internal/domain"

	"gorm.io/gorm"
)

type BoardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

type boardModel struct {
	ID          int64             `gorm:"column:id;primaryKey"`
	Author      string            `gorm:"column:author;size:100"`
	AuthorImage *string           `gorm:"column:author_image;size:500"`
	Title       string            `gorm:"column:title;size:255"`
	Description *string           `gorm:"column:description;size:500"`
	Content     string            `gorm:"column:content;type:text"`
	Thumbnail   *string           `gorm:"column:thumbnail;size:500"`
	Images      []boardImageModel `gorm:"foreignKey:BoardID"`
	CreatedAt   time.Time         `gorm:"column:created_at"`
	UpdatedAt   time.Time         `gorm:"column:updated_at"`
}

func (boardModel) TableName() string { return "board" }

type boardImageModel struct {
	ID       int64        `gorm:"column:id;primaryKey"`
	BoardID  int64        `gorm:"column:board_id;index"`
	UploadID int64        `gorm:"column:upload_id"`
	Upload   *uploadModel `gorm:"foreignKey:UploadID"`
}

func (boardImageModel) TableName() string { return "board_images" }

func toDomainBoard(m boardModel) *domain.Board {
	b := &domain.Board{
		ID:        m.ID,
		Author:    m.Author,
		Title:     m.Title,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.AuthorImage != nil {
		b.AuthorImage = *m.AuthorImage
	}
	if m.Description != nil {
		b.Description = *m.Description
	}
	if m.Thumbnail != nil {
		b.Thumbnail = *m.Thumbnail
	}
	for _, img := range m.Images {
		link := domain.BoardImage{
			ID:       img.ID,
			BoardID:  img.BoardID,
			UploadID: img.UploadID,
		}
		if img.Upload != nil {
			link.Upload = toDomainUpload(*img.Upload)
		}
		b.Images = append(b.Images, link)
	}
	return b
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *BoardRepository) Create(ctx context.Context, b *domain.Board) error {
	m := boardModel{
		Author:      b.Author,
		AuthorImage: optional(b.AuthorImage),
		Title:       b.Title,
		Description: optional(b.Description),
		Content:     b.Content,
		Thumbnail:   optional(b.Thumbnail),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	b.ID = m.ID
	b.CreatedAt = m.CreatedAt
	b.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID loads the board with its image links and their upload rows.
func (r *BoardRepository) GetByID(ctx context.Context, id int64) (*domain.Board, error) {
	var m boardModel
	err := r.db.WithContext(ctx).
		Preload("Images.Upload").
		First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return toDomainBoard(m), nil
}

// List returns one page of boards, newest first, with relations populated.
func (r *BoardRepository) List(ctx context.Context, offset, limit int) ([]domain.Board, error) {
	var models []boardModel
	err := r.db.WithContext(ctx).
		Preload("Images.Upload").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Board, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBoard(m))
	}
	return out, nil
}

func (r *BoardRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&boardModel{}).Count(&total).Error
	return total, err
}

// Update applies the given column values to the board row.
func (r *BoardRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&boardModel{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// Delete removes the board row and reports whether it existed.
func (r *BoardRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&boardModel{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListImageLinks returns the raw join rows for a board, deleted uploads included.
func (r *BoardRepository) ListImageLinks(ctx context.Context, boardID int64) ([]domain.BoardImage, error) {
	var models []boardImageModel
	err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.BoardImage, 0, len(models))
	for _, m := range models {
		out = append(out, domain.BoardImage{ID: m.ID, BoardID: m.BoardID, UploadID: m.UploadID})
	}
	return out, nil
}

func (r *BoardRepository) CreateImageLink(ctx context.Context, boardID, uploadID int64) error {
	m := boardImageModel{BoardID: boardID, UploadID: uploadID}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *BoardRepository) DeleteImageLinks(ctx context.Context, boardID int64) error {
	return r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Delete(&boardImageModel{}).Error
}
