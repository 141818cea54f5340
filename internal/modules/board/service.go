package board

import (
	"context"
	"errors"

	"contentadmin/internal/domain"
	"contentadmin/internal/pkg/sanitize"
	"contentadmin/internal/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service orchestrates board CRUD and the image lifecycle hanging off it.
// Two linking strategies coexist: thumbnail/authorImage are raw URLs resolved
// lazily by key, body images are explicit join rows keyed by upload id. The
// relational state is authoritative; blob deletions are best-effort and
// logged, never fatal.
type Service struct {
	boards  BoardRepositoryInterface
	uploads UploadRegistryInterface
	store   blobStore
	log     *zap.Logger
}

func NewService(boards BoardRepositoryInterface, uploads UploadRegistryInterface, store blobStore, log *zap.Logger) *Service {
	return &Service{boards: boards, uploads: uploads, store: store, log: log}
}

type Page struct {
	Boards      []domain.Board
	Total       int64
	Page        int
	PageSize    int
	TotalPages  int
	HasPrevious bool
	HasNext     bool
}

// List returns one page of boards, newest first.
func (s *Service) List(ctx context.Context, page, pageSize int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	total, err := s.boards.Count(ctx)
	if err != nil {
		return nil, err
	}

	boards, err := s.boards.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &Page{
		Boards:      boards,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Board, error) {
	b, err := s.boards.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, err
	}
	return b, nil
}

// Create persists the board, stamps the owning board id onto the uploads
// behind the thumbnail/authorImage URLs, and links the body images by id.
// Unknown upload ids are skipped with a warning — missing images must not
// block post creation.
func (s *Service) Create(ctx context.Context, req CreateBoardRequest) (*domain.Board, error) {
	b := &domain.Board{
		Author:      req.Author,
		AuthorImage: req.AuthorImage,
		Title:       req.Title,
		Description: req.Description,
		Content:     sanitize.HTML(req.Content),
		Thumbnail:   req.Thumbnail,
	}
	if err := s.boards.Create(ctx, b); err != nil {
		return nil, err
	}

	s.stampOwnership(ctx, b.ID, b.Thumbnail, b.AuthorImage)
	s.linkBodyImages(ctx, b.ID, req.BoardImages)

	return s.GetByID(ctx, b.ID)
}

// Update applies partial field changes and reconciles images. A replaced
// thumbnail/authorImage only has its old blob deleted — the upload row stays
// live (unlike banners, which also soft-delete; both behaviors are as
// observed in production). A supplied body-image set is diffed: removed ids
// lose blob and row, and the join rows are rebuilt for the full new set.
func (s *Service) Update(ctx context.Context, id int64, req UpdateBoardRequest) (*domain.Board, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Thumbnail != nil && existing.Thumbnail != "" && existing.Thumbnail != *req.Thumbnail {
		s.deleteBlobByURL(ctx, existing.Thumbnail, "thumbnail")
	}
	if req.AuthorImage != nil && existing.AuthorImage != "" && existing.AuthorImage != *req.AuthorImage {
		s.deleteBlobByURL(ctx, existing.AuthorImage, "author image")
	}

	fields := map[string]any{}
	if req.Author != nil {
		fields["author"] = *req.Author
	}
	if req.AuthorImage != nil {
		fields["author_image"] = *req.AuthorImage
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Content != nil {
		fields["content"] = sanitize.HTML(*req.Content)
	}
	if req.Thumbnail != nil {
		fields["thumbnail"] = *req.Thumbnail
	}
	if err := s.boards.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	updated, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.stampOwnership(ctx, id, updated.Thumbnail, updated.AuthorImage)

	if req.BoardImages != nil {
		if err := s.reconcileBodyImages(ctx, id, *req.BoardImages); err != nil {
			return nil, err
		}
	}

	return s.GetByID(ctx, id)
}

// Delete verifies existence before any cleanup, then retires every upload
// reachable from the board: join-row body images plus rows stamped with the
// owning board id (thumbnail/authorImage), deduplicated. A redundant second
// pass re-derives keys from the raw URL fields; re-deleting a gone key is a
// no-op. Finally the board row and its join rows go away.
func (s *Service) Delete(ctx context.Context, id int64) error {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	links, err := s.boards.ListImageLinks(ctx, id)
	if err != nil {
		return err
	}
	direct, err := s.uploads.ListByBoardID(ctx, id)
	if err != nil {
		return err
	}

	seen := make(map[int64]struct{})
	var allIDs []int64
	for _, link := range links {
		if _, ok := seen[link.UploadID]; !ok {
			seen[link.UploadID] = struct{}{}
			allIDs = append(allIDs, link.UploadID)
		}
	}
	for _, u := range direct {
		if _, ok := seen[u.ID]; !ok {
			seen[u.ID] = struct{}{}
			allIDs = append(allIDs, u.ID)
		}
	}

	if len(allIDs) > 0 {
		rows, err := s.uploads.GetByIDs(ctx, allIDs)
		if err != nil {
			return err
		}
		for _, u := range rows {
			if err := s.store.Delete(ctx, u.S3Key); err != nil {
				s.log.Warn("blob delete failed during board removal",
					zap.Int64("board_id", id),
					zap.String("s3_key", u.S3Key),
					zap.Error(err))
			}
		}
		if err := s.uploads.SoftDelete(ctx, allIDs...); err != nil {
			return err
		}
		if err := s.boards.DeleteImageLinks(ctx, id); err != nil {
			return err
		}
	}

	s.deleteBlobByURL(ctx, b.Thumbnail, "thumbnail")
	s.deleteBlobByURL(ctx, b.AuthorImage, "author image")

	deleted, err := s.boards.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBoardNotFound
	}
	return nil
}

// reconcileBodyImages diffs the current join rows against the new id set.
// Removed uploads lose blob and row; the join rows are then dropped and
// rebuilt for the full new set, so surviving ids get fresh rows.
func (s *Service) reconcileBodyImages(ctx context.Context, boardID int64, newIDs []int64) error {
	links, err := s.boards.ListImageLinks(ctx, boardID)
	if err != nil {
		return err
	}

	keep := make(map[int64]struct{}, len(newIDs))
	for _, id := range newIDs {
		keep[id] = struct{}{}
	}

	var removed []int64
	for _, link := range links {
		if _, ok := keep[link.UploadID]; !ok {
			removed = append(removed, link.UploadID)
		}
	}

	if len(removed) > 0 {
		rows, err := s.uploads.GetByIDs(ctx, removed)
		if err != nil {
			return err
		}
		for _, u := range rows {
			if u.IsDeleted {
				continue
			}
			if err := s.store.Delete(ctx, u.S3Key); err != nil {
				s.log.Warn("blob delete failed for removed body image",
					zap.Int64("board_id", boardID),
					zap.String("s3_key", u.S3Key),
					zap.Error(err))
			}
		}
		if err := s.uploads.SoftDelete(ctx, removed...); err != nil {
			return err
		}
		s.log.Info("removed body images soft-deleted",
			zap.Int64("board_id", boardID),
			zap.Int64s("upload_ids", removed))
	}

	if err := s.boards.DeleteImageLinks(ctx, boardID); err != nil {
		return err
	}
	s.linkBodyImages(ctx, boardID, newIDs)
	return nil
}

// linkBodyImages verifies each upload id is live, stamps the owning board
// and inserts a join row. Misses are logged and skipped.
func (s *Service) linkBodyImages(ctx context.Context, boardID int64, uploadIDs []int64) {
	for _, uploadID := range uploadIDs {
		u, err := s.uploads.GetByID(ctx, uploadID)
		if err != nil {
			s.log.Warn("body image upload not found, skipping",
				zap.Int64("board_id", boardID),
				zap.Int64("upload_id", uploadID))
			continue
		}

		if err := s.uploads.SetBoardID(ctx, u.ID, boardID); err != nil {
			s.log.Warn("failed to stamp board id on upload",
				zap.Int64("upload_id", u.ID),
				zap.Error(err))
		}
		if err := s.boards.CreateImageLink(ctx, boardID, u.ID); err != nil {
			s.log.Warn("failed to create board image link",
				zap.Int64("board_id", boardID),
				zap.Int64("upload_id", u.ID),
				zap.Error(err))
		}
	}
}

// stampOwnership marks the uploads behind the direct-URL fields with the
// owning board id so delete can find them later. Lookup misses are fine: a
// URL is not required to have a registry row.
func (s *Service) stampOwnership(ctx context.Context, boardID int64, urls ...string) {
	for _, rawURL := range urls {
		if rawURL == "" {
			continue
		}
		key := storage.KeyFromURL(rawURL)
		if key == "" {
			continue
		}
		if err := s.uploads.SetBoardIDByKey(ctx, key, boardID); err != nil {
			s.log.Warn("failed to stamp board id by key",
				zap.Int64("board_id", boardID),
				zap.String("s3_key", key),
				zap.Error(err))
		}
	}
}

func (s *Service) deleteBlobByURL(ctx context.Context, rawURL, what string) {
	key := storage.KeyFromURL(rawURL)
	if key == "" {
		return
	}
	if err := s.store.Delete(ctx, key); err != nil {
		s.log.Warn("blob delete failed",
			zap.String("what", what),
			zap.String("s3_key", key),
			zap.Error(err))
	}
}
