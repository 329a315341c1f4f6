package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"clubadmin/internal/adapters/media"
)

// ErrNoMediaStore is returned when an image is uploaded but no store is configured.
var ErrNoMediaStore = errors.New("image uploads are not configured; paste an image URL instead")

// UploadImageInput carries one uploaded form file.
type UploadImageInput struct {
	Prefix   string // e.g. "sponsors"
	Filename string
	Size     int64
	Body     io.Reader
	Actor    Actor
}

// UploadImageDeps holds dependencies for UploadImage.
type UploadImageDeps struct {
	Uploader media.Uploader
	MaxBytes int64
}

// ExecuteUploadImage stores a form image and returns its public URL.
// PRE: Filename has an image extension; Size within MaxBytes
// POST: Returned URL replaces the form's URL field
func ExecuteUploadImage(ctx context.Context, input UploadImageInput, deps UploadImageDeps) (string, error) {
	if deps.Uploader == nil {
		return "", ErrNoMediaStore
	}
	if deps.MaxBytes > 0 && input.Size > deps.MaxBytes {
		return "", fmt.Errorf("image is larger than %d MB", deps.MaxBytes>>20)
	}
	key, err := media.ObjectKey(input.Prefix, input.Filename)
	if err != nil {
		return "", err
	}
	url, err := deps.Uploader.Upload(ctx, key, media.ContentType(input.Filename), input.Body)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	slog.Info("media_event", "event", "image_uploaded", "key", key, "size", input.Size, "actor", input.Actor.Username)
	return url, nil
}
