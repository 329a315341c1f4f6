package web

import (
	"errors"
	"net/http"
	"strings"

	"clubadmin/internal/application/orchestrators"
)

// parseForm parses urlencoded and multipart bodies alike.
func parseForm(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return r.ParseMultipartForm(cfg.MaxUploadBytes)
	}
	return r.ParseForm()
}

// field returns the trimmed posted value.
func field(r *http.Request, name string) string {
	return strings.TrimSpace(r.PostFormValue(name))
}

// imageField returns the public URL of a freshly uploaded <name>_file when
// one was picked, otherwise the URL typed into <name>.
// POST: On a failed upload the typed URL is returned with the error
func imageField(r *http.Request, name, prefix string) (string, error) {
	typed := field(r, name)
	if r.MultipartForm == nil {
		return typed, nil
	}
	file, header, err := r.FormFile(name + "_file")
	if errors.Is(err, http.ErrMissingFile) {
		return typed, nil
	}
	if err != nil {
		return typed, err
	}
	defer file.Close()
	if header.Size == 0 {
		return typed, nil
	}
	url, err := orchestrators.ExecuteUploadImage(r.Context(), orchestrators.UploadImageInput{
		Prefix:   prefix,
		Filename: header.Filename,
		Size:     header.Size,
		Body:     file,
		Actor:    actorFrom(r),
	}, orchestrators.UploadImageDeps{
		Uploader: imageUploader,
		MaxBytes: cfg.MaxUploadBytes,
	})
	if err != nil {
		return typed, err
	}
	return url, nil
}
