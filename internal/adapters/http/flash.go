package web

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
)

const flashSessionName = "rcsc_flash"

// Toast kinds
const (
	toastSuccess = "success"
	toastError   = "error"
	toastInfo    = "info"
)

// toast is one transient notification shown at the top of a page.
type toast struct {
	Kind    string
	Message string
}

// flashStore carries toasts across a redirect in a signed, encrypted cookie.
type flashStore struct {
	store *sessions.CookieStore
}

func newFlashStore(hashKey, blockKey []byte, secure bool) *flashStore {
	store := sessions.NewCookieStore(hashKey, blockKey)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &flashStore{store: store}
}

// Flash queues a toast for the next rendered page.
// It must run before the response header is written.
func (f *flashStore) Flash(w http.ResponseWriter, r *http.Request, kind, message string) {
	sess, err := f.store.Get(r, flashSessionName)
	if err != nil {
		// A cookie signed with an old key decodes as an error; start fresh.
		slog.Debug("flash_cookie_reset", "error", err)
	}
	sess.AddFlash(kind + "|" + message)
	if err := sess.Save(r, w); err != nil {
		slog.Warn("flash_save_failed", "error", err)
	}
}

// Pop returns and clears the queued toasts.
func (f *flashStore) Pop(w http.ResponseWriter, r *http.Request) []toast {
	if _, err := r.Cookie(flashSessionName); err != nil {
		return nil
	}
	sess, err := f.store.Get(r, flashSessionName)
	if err != nil {
		return nil
	}
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(r, w); err != nil {
		slog.Warn("flash_save_failed", "error", err)
	}
	toasts := make([]toast, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			continue
		}
		kind, msg, found := strings.Cut(s, "|")
		if !found {
			kind, msg = toastInfo, s
		}
		toasts = append(toasts, toast{Kind: kind, Message: msg})
	}
	return toasts
}

// redirectWithFlash queues a toast and sends the browser elsewhere with 303.
func redirectWithFlash(w http.ResponseWriter, r *http.Request, url, kind, message string) {
	flashes.Flash(w, r, kind, message)
	http.Redirect(w, r, url, http.StatusSeeOther)
}
