package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Uploader stores images in an S3 bucket.
type S3Uploader struct {
	uploader   *manager.Uploader
	bucket     string
	publicBase string
}

// NewS3Uploader loads the default AWS configuration (env, shared config, instance role).
// publicBase, when set, replaces the S3 location in returned URLs (e.g. a CDN origin).
func NewS3Uploader(ctx context.Context, bucket, publicBase string) (*S3Uploader, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &S3Uploader{
		uploader:   manager.NewUploader(s3.NewFromConfig(cfg)),
		bucket:     bucket,
		publicBase: strings.TrimRight(publicBase, "/"),
	}, nil
}

// Upload writes r to key and returns its public URL.
func (u *S3Uploader) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	out, err := u.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s to s3: %w", key, err)
	}
	slog.Info("media_uploaded", "store", "s3", "key", key)
	if u.publicBase != "" {
		return u.publicBase + "/" + key, nil
	}
	return out.Location, nil
}
