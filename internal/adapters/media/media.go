// Package media uploads images picked in the admin forms to object storage
// and returns the public URL that replaces the form's URL field.
package media

import (
	"context"
	"errors"
	"io"
	"mime"
	"path"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// ErrUnsupportedType is returned for files that are not web images.
var ErrUnsupportedType = errors.New("only png, jpeg, gif, webp and svg images can be uploaded")

// Uploader stores one object and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)
}

var allowedTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
}

var unsafeChars = regexp.MustCompile(`[^a-z0-9._-]+`)

// ObjectKey builds a collision-free key such as "sponsors/3f2c…-acme-logo.png".
// PRE: filename has an image extension
// POST: Key is lowercase and free of path separators
func ObjectKey(prefix, filename string) (string, error) {
	base := strings.ToLower(path.Base(strings.ReplaceAll(filename, `\`, "/")))
	ext := path.Ext(base)
	if _, ok := allowedTypes[ext]; !ok {
		return "", ErrUnsupportedType
	}
	stem := strings.Trim(unsafeChars.ReplaceAllString(strings.TrimSuffix(base, ext), "-"), "-.")
	if stem == "" {
		stem = "image"
	}
	return strings.Trim(prefix, "/") + "/" + uuid.NewString() + "-" + stem + ext, nil
}

// ContentType returns the MIME type for an allowed image filename.
func ContentType(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if t, ok := allowedTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}
