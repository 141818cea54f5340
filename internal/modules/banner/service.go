package banner

import (
	"context"
	"errors"

	"contentadmin/internal/domain"
	"contentadmin/internal/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service orchestrates banner CRUD and the image lifecycle around it. The
// relational state is authoritative: blob deletions are best-effort and a
// failed delete only leaves an orphaned object behind, never inconsistent
// metadata.
type Service struct {
	banners BannerRepositoryInterface
	uploads UploadRegistryInterface
	store   blobStore
	log     *zap.Logger
}

func NewService(banners BannerRepositoryInterface, uploads UploadRegistryInterface, store blobStore, log *zap.Logger) *Service {
	return &Service{banners: banners, uploads: uploads, store: store, log: log}
}

func (s *Service) List(ctx context.Context) ([]domain.Banner, error) {
	return s.banners.ListAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Banner, error) {
	b, err := s.banners.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBannerNotFound
		}
		return nil, err
	}
	return b, nil
}

// Create persists the banner, defaulting displayOrder to one past the
// current maximum, then resolves both image URLs against the upload registry
// and links whatever matches. A URL with no registry row is fine — the
// banner keeps the raw URL and simply has no linked metadata.
func (s *Service) Create(ctx context.Context, req CreateBannerRequest) (*domain.Banner, error) {
	displayOrder := 0
	if req.DisplayOrder != nil {
		displayOrder = *req.DisplayOrder
	} else {
		max, err := s.banners.MaxDisplayOrder(ctx)
		if err != nil {
			return nil, err
		}
		displayOrder = max + 1
	}

	b := &domain.Banner{
		Title:             req.Title,
		SubTitle:          req.SubTitle,
		BannerImage:       req.BannerImage,
		BannerMobileImage: req.BannerMobileImage,
		Link:              req.Link,
		TargetBlank:       req.TargetBlank,
		DisplayOrder:      displayOrder,
	}
	if err := s.banners.Create(ctx, b); err != nil {
		return nil, err
	}

	s.linkUpload(ctx, b.ID, req.BannerImage, s.banners.SetDesktopUpload)
	s.linkUpload(ctx, b.ID, req.BannerMobileImage, s.banners.SetMobileUpload)

	return s.GetByID(ctx, b.ID)
}

// Update edits banner content in place. When an image slot is replaced the
// superseded upload loses both its blob and its live registry row (soft
// delete) before the new URL is resolved and linked. displayOrder never
// changes here.
func (s *Service) Update(ctx context.Context, id int64, req UpdateBannerRequest) (*domain.Banner, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.BannerImage != nil && existing.DesktopUpload != nil && existing.BannerImage != *req.BannerImage {
		s.retireUpload(ctx, existing.DesktopUpload, "desktop")
	}
	if req.BannerMobileImage != nil && existing.MobileUpload != nil && existing.BannerMobileImage != *req.BannerMobileImage {
		s.retireUpload(ctx, existing.MobileUpload, "mobile")
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.SubTitle != nil {
		fields["sub_title"] = *req.SubTitle
	}
	if req.BannerImage != nil {
		fields["banner_image"] = *req.BannerImage
	}
	if req.BannerMobileImage != nil {
		fields["banner_mobile_image"] = *req.BannerMobileImage
	}
	if req.Link != nil {
		fields["link"] = *req.Link
	}
	if req.TargetBlank != nil {
		fields["target_blank"] = *req.TargetBlank
	}
	if err := s.banners.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	if req.BannerImage != nil {
		s.linkUpload(ctx, id, *req.BannerImage, s.banners.SetDesktopUpload)
	}
	if req.BannerMobileImage != nil {
		s.linkUpload(ctx, id, *req.BannerMobileImage, s.banners.SetMobileUpload)
	}

	return s.GetByID(ctx, id)
}

// UpdateDisplayOrders applies each (id, displayOrder) pair as its own update,
// sequentially and without a transaction: last write wins, partial input and
// duplicate target orders are accepted as-is. Returns the refreshed rows for
// exactly the banners that were updated, in request order.
func (s *Service) UpdateDisplayOrders(ctx context.Context, items []DisplayOrderItem) ([]domain.Banner, error) {
	for _, item := range items {
		if err := s.banners.UpdateDisplayOrder(ctx, item.ID, item.DisplayOrder); err != nil {
			return nil, err
		}
	}

	refreshed := make([]domain.Banner, 0, len(items))
	for _, item := range items {
		b, err := s.GetByID(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		refreshed = append(refreshed, *b)
	}
	return refreshed, nil
}

// Delete verifies the banner exists before any cleanup runs, then retires
// both linked uploads, makes a redundant best-effort pass over the raw URL
// fields (idempotent — the keys usually match the ones already deleted), and
// finally removes the row.
func (s *Service) Delete(ctx context.Context, id int64) error {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if b.DesktopUpload != nil {
		s.retireUpload(ctx, b.DesktopUpload, "desktop")
	}
	if b.MobileUpload != nil {
		s.retireUpload(ctx, b.MobileUpload, "mobile")
	}

	// Second pass straight from the stored URLs, for blobs that never got a
	// registry link. Re-deleting an already-removed key is a no-op for S3.
	s.deleteBlobByURL(ctx, b.BannerImage)
	s.deleteBlobByURL(ctx, b.BannerMobileImage)

	deleted, err := s.banners.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBannerNotFound
	}
	return nil
}

// linkUpload resolves a URL to its live registry row and writes the
// one-to-one link. A lookup miss is a warning, never an error.
func (s *Service) linkUpload(ctx context.Context, bannerID int64, fileURL string, set func(context.Context, int64, int64) error) {
	if fileURL == "" {
		return
	}

	u, err := s.uploads.FindByURL(ctx, fileURL)
	if err != nil {
		s.log.Warn("banner image url has no live upload row",
			zap.Int64("banner_id", bannerID),
			zap.String("file_url", fileURL))
		return
	}

	if err := set(ctx, bannerID, u.ID); err != nil {
		s.log.Warn("failed to link banner upload",
			zap.Int64("banner_id", bannerID),
			zap.Int64("upload_id", u.ID),
			zap.Error(err))
	}
}

// retireUpload deletes the blob (log-and-continue) and soft-deletes the
// registry row. The soft delete still runs when the blob delete fails so the
// relational state reaches its target; the blob is then an orphan.
func (s *Service) retireUpload(ctx context.Context, u *domain.Upload, slot string) {
	if err := s.store.Delete(ctx, u.S3Key); err != nil {
		s.log.Warn("blob delete failed, upload row will still be soft-deleted",
			zap.String("slot", slot),
			zap.String("s3_key", u.S3Key),
			zap.Error(err))
	}
	if err := s.uploads.SoftDelete(ctx, u.ID); err != nil {
		s.log.Error("failed to soft-delete upload row",
			zap.Int64("upload_id", u.ID),
			zap.Error(err))
	}
}

func (s *Service) deleteBlobByURL(ctx context.Context, fileURL string) {
	key := storage.KeyFromURL(fileURL)
	if key == "" {
		return
	}
	if err := s.store.Delete(ctx, key); err != nil {
		s.log.Warn("redundant blob delete failed",
			zap.String("s3_key", key),
			zap.Error(err))
	}
}
