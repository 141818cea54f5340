package domain

import "time"

// Board is a blog-style post. Thumbnail and AuthorImage hold raw URLs, not
// upload ids — the link back to an Upload row is reconstructed lazily by key
// lookup, and a URL with no matching row is valid.
type Board struct {
	ID          int64
	Author      string
	AuthorImage string
	Title       string
	Description string
	Content     string
	Thumbnail   string
	Images      []BoardImage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BoardImage links a board to one body-image upload. Upload is populated on
// reads; rows whose upload is soft-deleted are filtered out of responses but
// kept in the table.
type BoardImage struct {
	ID       int64
	BoardID  int64
	UploadID int64
	Upload   *Upload
}
