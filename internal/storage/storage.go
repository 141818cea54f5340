// Package storage is the gateway to the object store. The MinIO client works
// against any S3-compatible provider; production points it at AWS S3.
package storage

import (
	"context"
	"io"
	"net/url"
	"strings"
	"time"
)

// PresignedUpload is what a client needs to push one object directly to the
// store: a time-limited PUT URL plus the key and the permanent URL the object
// will have once uploaded.
type PresignedUpload struct {
	UploadURL string `json:"uploadUrl"`
	FileURL   string `json:"fileUrl"`
	S3Key     string `json:"s3Key"`
}

// Gateway issues presigned upload URLs, performs server-side uploads and
// deletes objects by key. Implementations must keep PublicURL and KeyFromURL
// exact inverses of each other — cleanup derives keys by parsing stored URLs.
type Gateway interface {
	PresignUpload(ctx context.Context, filename, contentType string) (*PresignedUpload, error)
	Upload(ctx context.Context, reader io.Reader, size int64, filename, contentType string) (fileURL, s3Key string, err error)
	Delete(ctx context.Context, s3Key string) error
	PublicURL(s3Key string) string
	Expiry() time.Duration
}

// KeyFromURL recovers the storage key from a public object URL by taking the
// URL path and stripping the leading slash. Returns "" when the input cannot
// be parsed, is not an absolute URL, or has no path — a stray non-URL value
// in an image field must not turn into a delete of a bogus key.
func KeyFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.TrimPrefix(u.Path, "/")
}
