// Package storage uploads profile pictures to an S3-compatible bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/readynurse/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MaxAvatarBytes caps the size of an uploaded picture.
const MaxAvatarBytes = 5 << 20

// ErrUnsupportedImage is returned for files that are not png, jpeg, gif or webp.
var ErrUnsupportedImage = errors.New("unsupported image type")

// ErrTooLarge is returned for files over MaxAvatarBytes.
var ErrTooLarge = errors.New("image is too large")

type S3Client struct {
	client *minio.Client
	cfg    config.Storage
	now    func() time.Time
}

func NewS3Client(cfg config.Storage) (*S3Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}
	return &S3Client{client: client, cfg: cfg, now: time.Now}, nil
}

// EnsureBucket creates the avatar bucket if it does not exist.
func (c *S3Client) EnsureBucket(ctx context.Context) error {
	exists, err := c.client.BucketExists(ctx, c.cfg.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := c.client.MakeBucket(ctx, c.cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// UploadAvatar stores a picture for userID and returns the URL it is served
// from. Each upload gets a fresh object name so clients never see a stale
// cached image.
func (c *S3Client) UploadAvatar(ctx context.Context, userID, filename string, r io.Reader, size int64) (string, error) {
	contentType, err := ContentType(filename)
	if err != nil {
		return "", err
	}
	if size > MaxAvatarBytes {
		return "", fmt.Errorf("%w: %d bytes (max %d)", ErrTooLarge, size, MaxAvatarBytes)
	}

	object := ObjectName(userID, filename, c.now())
	_, err = c.client.PutObject(ctx, c.cfg.Bucket, object, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}
	return PublicURL(c.cfg, object), nil
}

// DeleteAvatar removes the object behind a URL returned by UploadAvatar.
// URLs that do not point into this bucket are left alone.
func (c *S3Client) DeleteAvatar(ctx context.Context, url string) error {
	object, ok := ObjectFromURL(c.cfg, url)
	if !ok {
		return nil
	}
	if err := c.client.RemoveObject(ctx, c.cfg.Bucket, object, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete avatar: %w", err)
	}
	return nil
}

// ObjectName is the bucket key for an avatar upload.
func ObjectName(userID, filename string, at time.Time) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return path.Join("avatars", userID, fmt.Sprintf("%d%s", at.UnixMilli(), ext))
}

// PublicURL joins the object onto the configured public base URL, falling
// back to the endpoint itself.
func PublicURL(cfg config.Storage, object string) string {
	base := strings.TrimRight(cfg.PublicURL, "/")
	if base == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		base = scheme + "://" + cfg.Endpoint + "/" + cfg.Bucket
	}
	return base + "/" + object
}

// ObjectFromURL reverses PublicURL.
func ObjectFromURL(cfg config.Storage, url string) (string, bool) {
	object, ok := strings.CutPrefix(url, PublicURL(cfg, ""))
	if !ok || object == "" {
		return "", false
	}
	return object, true
}

// ContentType maps an image file name to its MIME type.
func ContentType(filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg", nil
	case ".png":
		return "image/png", nil
	case ".gif":
		return "image/gif", nil
	case ".webp":
		return "image/webp", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedImage, filepath.Base(filename))
}
