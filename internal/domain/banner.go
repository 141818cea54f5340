package domain

import "time"

// Banner is a promotional unit shown in display order. The raw image URL
// fields are what clients send; DesktopUpload/MobileUpload are the resolved
// one-to-one links into the upload registry, populated on reads.
//
// DisplayOrder is presentation only: values need not be unique or contiguous,
// and listing sorts by (display_order asc, created_at asc) so collisions
// still produce a stable order.
type Banner struct {
	ID                int64
	Title             string
	SubTitle          string
	BannerImage       string
	BannerMobileImage string
	Link              string
	TargetBlank       bool
	DisplayOrder      int
	DesktopUpload     *Upload
	MobileUpload      *Upload
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
