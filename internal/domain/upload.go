package domain

import "time"

// Upload is the metadata row for one object stored in the blob store.
// Rows are never physically removed by normal flows: cleanup sets IsDeleted
// and leaves the row for auditability. A non-deleted row's S3Key is expected
// to name an object that still exists in the store (best-effort — a failed
// blob delete can leave an orphaned object, never the other way around).
type Upload struct {
	ID           int64
	Filename     string
	OriginalName string
	FileURL      string
	S3Key        string
	ContentType  string
	FileSize     int64
	IsDeleted    bool
	// BoardID is set when the upload is attached to a board (thumbnail,
	// author image or body image). Traceability only, not a foreign key.
	BoardID   *int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
