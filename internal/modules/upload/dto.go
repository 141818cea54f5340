package upload

import "contentadmin/internal/domain"

// CompleteUploadRequest registers metadata for an object the client already
// pushed through a presigned URL. The permanent URL is recomputed from the
// key server-side, so a stale or tampered fileUrl cannot poison the registry.
type CompleteUploadRequest struct {
	Filename     string `json:"filename" validate:"required,max=255"`
	OriginalName string `json:"originalName" validate:"required,max=255"`
	FileURL      string `json:"fileUrl" validate:"omitempty,max=500"`
	S3Key        string `json:"s3Key" validate:"required,max=500"`
	ContentType  string `json:"contentType" validate:"required,max=100"`
	FileSize     int64  `json:"fileSize" validate:"required,gt=0"`
}

type UploadResponse struct {
	ID           int64  `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	FileURL      string `json:"fileUrl"`
	S3Key        string `json:"s3Key"`
	ContentType  string `json:"contentType"`
	FileSize     int64  `json:"fileSize"`
	IsDeleted    bool   `json:"isDeleted"`
	BoardID      *int64 `json:"boardId,omitempty"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

func toUploadResponse(u *domain.Upload) UploadResponse {
	return UploadResponse{
		ID:           u.ID,
		Filename:     u.Filename,
		OriginalName: u.OriginalName,
		FileURL:      u.FileURL,
		S3Key:        u.S3Key,
		ContentType:  u.ContentType,
		FileSize:     u.FileSize,
		IsDeleted:    u.IsDeleted,
		BoardID:      u.BoardID,
		CreatedAt:    u.CreatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
		UpdatedAt:    u.UpdatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
	}
}
