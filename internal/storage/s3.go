package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"contentadmin/internal/config"
)

// ErrNotConfigured is returned when S3 credentials or the bucket name are
// missing. Checked per call so the process can start without object storage.
var ErrNotConfigured = fmt.Errorf("storage: S3 credentials or bucket not configured")

// S3Gateway talks to AWS S3 (or any S3-compatible endpoint) with the
// credentials injected at construction time.
type S3Gateway struct {
	client *minio.Client
	bucket string
	region string
	expiry time.Duration
	log    *zap.Logger
}

// NewS3Gateway builds the gateway from explicit configuration. A missing
// bucket or key pair is not fatal here — calls will fail with
// ErrNotConfigured instead, keeping local development possible.
func NewS3Gateway(cfg config.S3Config, log *zap.Logger) (*S3Gateway, error) {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("s3.%s.amazonaws.com", cfg.Region)
	}

	g := &S3Gateway{
		bucket: cfg.Bucket,
		region: cfg.Region,
		expiry: cfg.UploadExpiry,
		log:    log,
	}

	if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" || cfg.Bucket == "" {
		return g, nil
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: true,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create s3 client: %w", err)
	}
	g.client = client
	return g, nil
}

// PresignUpload generates a fresh key under images/ and a time-limited PUT
// URL for it. The returned FileURL is where the object will live once the
// client completes the upload.
func (g *S3Gateway) PresignUpload(ctx context.Context, filename, contentType string) (*PresignedUpload, error) {
	if g.client == nil {
		return nil, ErrNotConfigured
	}

	key := g.newKey(filename)
	uploadURL, err := g.client.PresignedPutObject(ctx, g.bucket, key, g.expiry)
	if err != nil {
		return nil, fmt.Errorf("presign put %q: %w", key, err)
	}

	g.log.Info("presigned upload url issued",
		zap.String("s3_key", key),
		zap.Duration("expires_in", g.expiry))

	return &PresignedUpload{
		UploadURL: uploadURL.String(),
		FileURL:   g.PublicURL(key),
		S3Key:     key,
	}, nil
}

// Upload pushes the object through the backend. Used for small synchronous
// uploads (banner images); the editor flow uses presigned URLs instead.
func (g *S3Gateway) Upload(ctx context.Context, reader io.Reader, size int64, filename, contentType string) (string, string, error) {
	if g.client == nil {
		return "", "", ErrNotConfigured
	}

	key := g.newKey(filename)
	if _, err := g.client.PutObject(ctx, g.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	}); err != nil {
		return "", "", fmt.Errorf("put object %q: %w", key, err)
	}

	g.log.Info("object uploaded", zap.String("s3_key", key), zap.Int64("size", size))
	return g.PublicURL(key), key, nil
}

// Delete removes the object at key. Deleting a key that no longer exists is a
// no-op for S3, so repeated deletes of the same key succeed.
func (g *S3Gateway) Delete(ctx context.Context, s3Key string) error {
	if g.client == nil {
		return ErrNotConfigured
	}

	if err := g.client.RemoveObject(ctx, g.bucket, s3Key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %q: %w", s3Key, err)
	}
	return nil
}

// PublicURL builds the permanent virtual-hosted URL for key. KeyFromURL must
// stay its exact inverse.
func (g *S3Gateway) PublicURL(s3Key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", g.bucket, g.region, s3Key)
}

func (g *S3Gateway) Expiry() time.Duration { return g.expiry }

// newKey prefixes the original filename with a random token so two uploads of
// the same file never collide.
func (g *S3Gateway) newKey(filename string) string {
	return fmt.Sprintf("images/%s-%s", uuid.NewString(), filename)
}
