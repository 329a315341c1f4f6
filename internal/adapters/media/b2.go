package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/kurin/blazer/b2"
)

// B2Uploader stores images in a Backblaze B2 bucket.
type B2Uploader struct {
	bucket *b2.Bucket
}

// NewB2Uploader authorizes against B2 and opens the named bucket.
// PRE: keyID and appKey are valid B2 application credentials
// POST: Returns an uploader bound to bucketName
func NewB2Uploader(ctx context.Context, keyID, appKey, bucketName string) (*B2Uploader, error) {
	client, err := b2.NewClient(ctx, keyID, appKey)
	if err != nil {
		return nil, fmt.Errorf("create b2 client: %w", err)
	}
	bucket, err := client.Bucket(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("open b2 bucket %s: %w", bucketName, err)
	}
	return &B2Uploader{bucket: bucket}, nil
}

// Upload writes r to key and returns the object's download URL.
func (u *B2Uploader) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	obj := u.bucket.Object(key)
	w := obj.NewWriter(ctx).WithAttrs(&b2.Attrs{ContentType: contentType})
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write b2 object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close b2 object %s: %w", key, err)
	}
	slog.Info("media_uploaded", "store", "b2", "key", key)
	return obj.URL(), nil
}
