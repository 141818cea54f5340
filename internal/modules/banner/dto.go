package banner

import "contentadmin/internal/domain"

type CreateBannerRequest struct {
	Title             string `json:"title" validate:"required,max=255"`
	SubTitle          string `json:"subTitle" validate:"required,max=500"`
	BannerImage       string `json:"bannerImage" validate:"required,max=500"`
	BannerMobileImage string `json:"bannerMobileImage" validate:"required,max=500"`
	Link              string `json:"link" validate:"required,max=500"`
	TargetBlank       bool   `json:"targetBlank"`
	// DisplayOrder defaults to one past the current maximum when omitted.
	DisplayOrder *int `json:"displayOrder" validate:"omitempty,gte=0"`
}

// UpdateBannerRequest is a partial update; nil fields are left untouched.
// DisplayOrder is deliberately absent — reordering goes through the bulk
// display-orders endpoint only.
type UpdateBannerRequest struct {
	Title             *string `json:"title" validate:"omitempty,max=255"`
	SubTitle          *string `json:"subTitle" validate:"omitempty,max=500"`
	BannerImage       *string `json:"bannerImage" validate:"omitempty,max=500"`
	BannerMobileImage *string `json:"bannerMobileImage" validate:"omitempty,max=500"`
	Link              *string `json:"link" validate:"omitempty,max=500"`
	TargetBlank       *bool   `json:"targetBlank"`
}

type DisplayOrderItem struct {
	ID           int64 `json:"id" validate:"required"`
	DisplayOrder int   `json:"displayOrder" validate:"gte=0"`
}

type UpdateDisplayOrdersRequest struct {
	DisplayOrders []DisplayOrderItem `json:"displayOrders" validate:"required,min=1,dive"`
}

type UploadRef struct {
	ID      int64  `json:"id"`
	FileURL string `json:"fileUrl"`
	S3Key   string `json:"s3Key"`
}

type BannerResponse struct {
	ID                int64      `json:"id"`
	Title             string     `json:"title"`
	SubTitle          string     `json:"subTitle"`
	BannerImage       string     `json:"bannerImage"`
	BannerMobileImage string     `json:"bannerMobileImage"`
	Link              string     `json:"link"`
	TargetBlank       bool       `json:"targetBlank"`
	DisplayOrder      int        `json:"displayOrder"`
	DesktopUpload     *UploadRef `json:"desktopUpload"`
	MobileUpload      *UploadRef `json:"mobileUpload"`
	CreatedAt         string     `json:"createdAt"`
	UpdatedAt         string     `json:"updatedAt"`
}

func toBannerResponse(b *domain.Banner) BannerResponse {
	resp := BannerResponse{
		ID:                b.ID,
		Title:             b.Title,
		SubTitle:          b.SubTitle,
		BannerImage:       b.BannerImage,
		BannerMobileImage: b.BannerMobileImage,
		Link:              b.Link,
		TargetBlank:       b.TargetBlank,
		DisplayOrder:      b.DisplayOrder,
		CreatedAt:         b.CreatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
		UpdatedAt:         b.UpdatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
	}
	if b.DesktopUpload != nil {
		resp.DesktopUpload = &UploadRef{ID: b.DesktopUpload.ID, FileURL: b.DesktopUpload.FileURL, S3Key: b.DesktopUpload.S3Key}
	}
	if b.MobileUpload != nil {
		resp.MobileUpload = &UploadRef{ID: b.MobileUpload.ID, FileURL: b.MobileUpload.FileURL, S3Key: b.MobileUpload.S3Key}
	}
	return resp
}
