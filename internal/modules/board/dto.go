package board

import "contentadmin/internal/domain"

type CreateBoardRequest struct {
	Author      string `json:"author" validate:"required,max=100"`
	AuthorImage string `json:"authorImage" validate:"omitempty,max=500"`
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Content     string `json:"content" validate:"required"`
	Thumbnail   string `json:"thumbnail" validate:"omitempty,max=500"`
	// BoardImages carries the upload ids of the body images the rich-text
	// editor inserted.
	BoardImages []int64 `json:"boardImages"`
}

// UpdateBoardRequest is a partial update; nil fields are left untouched.
// A non-nil BoardImages replaces the whole body-image set — the current set
// is diffed against it and dropped ids are cleaned up.
type UpdateBoardRequest struct {
	Author      *string  `json:"author" validate:"omitempty,max=100"`
	AuthorImage *string  `json:"authorImage" validate:"omitempty,max=500"`
	Title       *string  `json:"title" validate:"omitempty,max=255"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Content     *string  `json:"content"`
	Thumbnail   *string  `json:"thumbnail" validate:"omitempty,max=500"`
	BoardImages *[]int64 `json:"boardImages"`
}

type BoardImageRef struct {
	ID      int64  `json:"id"`
	FileURL string `json:"fileUrl"`
}

type BoardResponse struct {
	ID          int64           `json:"id"`
	Author      string          `json:"author"`
	AuthorImage string          `json:"authorImage"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Content     string          `json:"content"`
	Thumbnail   string          `json:"thumbnail"`
	BoardImages []BoardImageRef `json:"boardImages"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

type PaginatedBoardsResponse struct {
	Boards      []BoardResponse `json:"boards"`
	Total       int64           `json:"total"`
	Page        int             `json:"page"`
	PageSize    int             `json:"pageSize"`
	TotalPages  int             `json:"totalPages"`
	HasPrevious bool            `json:"hasPrevious"`
	HasNext     bool            `json:"hasNext"`
}

// toBoardResponse filters out body images whose upload was soft-deleted.
// The raw thumbnail/authorImage URLs are returned verbatim either way —
// direct-URL fields carry no deletion state.
func toBoardResponse(b *domain.Board) BoardResponse {
	images := make([]BoardImageRef, 0, len(b.Images))
	for _, img := range b.Images {
		if img.Upload == nil || img.Upload.IsDeleted {
			continue
		}
		images = append(images, BoardImageRef{ID: img.UploadID, FileURL: img.Upload.FileURL})
	}

	return BoardResponse{
		ID:          b.ID,
		Author:      b.Author,
		AuthorImage: b.AuthorImage,
		Title:       b.Title,
		Description: b.Description,
		Content:     b.Content,
		Thumbnail:   b.Thumbnail,
		BoardImages: images,
		CreatedAt:   b.CreatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
		UpdatedAt:   b.UpdatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
	}
}
