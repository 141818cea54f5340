package repository

import (
	"context"
	"time"

	"contentadmin/internal/domain"

	"gorm.io/gorm"
)

type BannerRepository struct {
	db *gorm.DB
}

func NewBannerRepository(db *gorm.DB) *BannerRepository {
	return &BannerRepository{db: db}
}

type bannerModel struct {
	ID                int64        `gorm:"column:id;primaryKey"`
	Title             string       `gorm:"column:title;size:255"`
	SubTitle          string       `gorm:"column:sub_title;size:500"`
	BannerImage       string       `gorm:"column:banner_image;size:500"`
	BannerMobileImage string       `gorm:"column:banner_mobile_image;size:500"`
	Link              string       `gorm:"column:link;size:500"`
	TargetBlank       bool         `gorm:"column:target_blank;default:false"`
	DisplayOrder      int          `gorm:"column:display_order;default:0"`
	DesktopUploadID   *int64       `gorm:"column:desktop_upload_id"`
	MobileUploadID    *int64       `gorm:"column:mobile_upload_id"`
	DesktopUpload     *uploadModel `gorm:"foreignKey:DesktopUploadID"`
	MobileUpload      *uploadModel `gorm:"foreignKey:MobileUploadID"`
	CreatedAt         time.Time    `gorm:"column:created_at"`
	UpdatedAt         time.Time    `gorm:"column:updated_at"`
}

func (bannerModel) TableName() string { return "banners" }

func toDomainBanner(m bannerModel) *domain.Banner {
	b := &domain.Banner{
		ID:                m.ID,
		Title:             m.Title,
		SubTitle:          m.SubTitle,
		BannerImage:       m.BannerImage,
		BannerMobileImage: m.BannerMobileImage,
		Link:              m.Link,
		TargetBlank:       m.TargetBlank,
		DisplayOrder:      m.DisplayOrder,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	if m.DesktopUpload != nil {
		b.DesktopUpload = toDomainUpload(*m.DesktopUpload)
	}
	if m.MobileUpload != nil {
		b.MobileUpload = toDomainUpload(*m.MobileUpload)
	}
	return b
}

func (r *BannerRepository) Create(ctx context.Context, b *domain.Banner) error {
	m := bannerModel{
		Title:             b.Title,
		SubTitle:          b.SubTitle,
		BannerImage:       b.BannerImage,
		BannerMobileImage: b.BannerMobileImage,
		Link:              b.Link,
		TargetBlank:       b.TargetBlank,
		DisplayOrder:      b.DisplayOrder,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	b.ID = m.ID
	b.CreatedAt = m.CreatedAt
	b.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID loads the banner with both upload relations.
func (r *BannerRepository) GetByID(ctx context.Context, id int64) (*domain.Banner, error) {
	var m bannerModel
	err := r.db.WithContext(ctx).
		Preload("DesktopUpload").
		Preload("MobileUpload").
		First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return toDomainBanner(m), nil
}

// ListAll returns every banner ordered by display order; creation time breaks
// ties so colliding orders still list deterministically.
func (r *BannerRepository) ListAll(ctx context.Context) ([]domain.Banner, error) {
	var models []bannerModel
	err := r.db.WithContext(ctx).
		Preload("DesktopUpload").
		Preload("MobileUpload").
		Order("display_order ASC, created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Banner, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBanner(m))
	}
	return out, nil
}

// MaxDisplayOrder returns the highest display order in use, 0 when the table
// is empty.
func (r *BannerRepository) MaxDisplayOrder(ctx context.Context) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).
		Model(&bannerModel{}).
		Select("MAX(display_order)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

// Update applies the given column values to the banner row.
func (r *BannerRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&bannerModel{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *BannerRepository) SetDesktopUpload(ctx context.Context, id, uploadID int64) error {
	return r.db.WithContext(ctx).
		Model(&bannerModel{}).
		Where("id = ?", id).
		Update("desktop_upload_id", uploadID).Error
}

func (r *BannerRepository) SetMobileUpload(ctx context.Context, id, uploadID int64) error {
	return r.db.WithContext(ctx).
		Model(&bannerModel{}).
		Where("id = ?", id).
		Update("mobile_upload_id", uploadID).Error
}

func (r *BannerRepository) UpdateDisplayOrder(ctx context.Context, id int64, displayOrder int) error {
	return r.db.WithContext(ctx).
		Model(&bannerModel{}).
		Where("id = ?", id).
		Update("display_order", displayOrder).Error
}

// Delete removes the banner row and reports whether it existed.
func (r *BannerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&bannerModel{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
