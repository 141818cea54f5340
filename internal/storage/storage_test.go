package storage

import (
	"context"
	"testing"
	"time"

	"contentadmin/internal/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestKeyFromURL(t *testing.T) {
	tests := []struct {
		name   string
		rawURL string
		want   string
	}{
		{
			name:   "standard object url",
			rawURL: "https://bucket.s3.us-east-1.amazonaws.com/images/abc-photo.jpg",
			want:   "images/abc-photo.jpg",
		},
		{
			name:   "nested key",
			rawURL: "https://bucket.s3.us-east-1.amazonaws.com/images/2024/01/pic.png",
			want:   "images/2024/01/pic.png",
		},
		{
			name:   "empty url",
			rawURL: "",
			want:   "",
		},
		{
			name:   "host only",
			rawURL: "https://bucket.s3.us-east-1.amazonaws.com",
			want:   "",
		},
		{
			name:   "unparseable",
			rawURL: "://not a url",
			want:   "",
		},
		{
			name:   "bare word",
			rawURL: "foo",
			want:   "",
		},
		{
			name:   "relative path",
			rawURL: "images/a.jpg",
			want:   "",
		},
		{
			name:   "rooted path without host",
			rawURL: "/images/a.jpg",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyFromURL(tt.rawURL))
		})
	}
}

func TestPublicURLAndKeyFromURLAreInverses(t *testing.T) {
	g, err := NewS3Gateway(config.S3Config{
		Bucket:       "media-bucket",
		Region:       "ap-northeast-2",
		UploadExpiry: 30 * time.Minute,
	}, zap.NewNop())
	assert.NoError(t, err)

	keys := []string{
		"images/550e8400-e29b-41d4-a716-446655440000-photo.jpg",
		"images/uuid-name with space.png",
		"images/deep/nested/key.webp",
	}
	for _, key := range keys {
		assert.Equal(t, key, KeyFromURL(g.PublicURL(key)))
	}
}

func TestGatewayWithoutCredentialsReturnsErrNotConfigured(t *testing.T) {
	g, err := NewS3Gateway(config.S3Config{Region: "us-east-1"}, zap.NewNop())
	assert.NoError(t, err)

	_, perr := g.PresignUpload(context.Background(), "photo.jpg", "image/jpeg")
	assert.ErrorIs(t, perr, ErrNotConfigured)

	assert.ErrorIs(t, g.Delete(context.Background(), "images/x.jpg"), ErrNotConfigured)

	// PublicURL still works so stored rows can be rendered without creds
	assert.Equal(t, "https://.s3.us-east-1.amazonaws.com/images/x.jpg", g.PublicURL("images/x.jpg"))
}

func TestExpiryComesFromConfig(t *testing.T) {
	g, err := NewS3Gateway(config.S3Config{UploadExpiry: 1800 * time.Second}, zap.NewNop())
	assert.NoError(t, err)
	assert.Equal(t, 30*time.Minute, g.Expiry())
}
