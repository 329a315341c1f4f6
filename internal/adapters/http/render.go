package web

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"clubadmin/internal/adapters/backend"
	"clubadmin/internal/adapters/http/middleware"
	"clubadmin/internal/application/listutil"
	"clubadmin/internal/application/orchestrators"
	"clubadmin/internal/domain/blog"
)

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// redirect is a fixed-delay client-side navigation rendered as <meta refresh>.
type redirect struct {
	URL     string
	Seconds string
}

func after(url string, d time.Duration) redirect {
	return redirect{URL: url, Seconds: strconv.FormatFloat(d.Seconds(), 'f', -1, 64)}
}

// internalError logs the real error and returns a generic message to the client.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// backendError logs a failed backend call and returns the toast text for it.
func backendError(r *http.Request, resource, op string, err error, fallback string) string {
	slog.Error("backend_error",
		"resource", resource,
		"op", op,
		"path", r.URL.Path,
		"request_id", middleware.RequestID(r.Context()),
		"error", err,
	)
	return failureText(err, fallback)
}

// failureText is the toast for an already-logged backend failure.
func failureText(err error, fallback string) string {
	if errors.Is(err, backend.ErrTransport) {
		return "Server is not responding"
	}
	return backend.Message(err, fallback)
}

// actorFrom describes the admin behind r for the audit trail.
func actorFrom(r *http.Request) orchestrators.Actor {
	sess, _ := middleware.GetSessionFromContext(r.Context())
	return orchestrators.Actor{
		Username:  sess.User.Username,
		IP:        middleware.ClientIP(r),
		UserAgent: r.UserAgent(),
	}
}

// addToast appends a toast to the page data.
func addToast(data map[string]any, kind, message string) {
	toasts, _ := data["Toasts"].([]toast)
	data["Toasts"] = append(toasts, toast{Kind: kind, Message: message})
}

func funcMap(r *http.Request) template.FuncMap {
	return template.FuncMap{
		"csrfField":     func() template.HTML { return csrf.TemplateField(r) },
		"csrfToken":     func() string { return csrf.Token(r) },
		"formatDate":    listutil.FormatDate,
		"inputDate":     listutil.InputDate,
		"truncate":      listutil.TruncateChars,
		"truncateWords": listutil.TruncateWords,
		"joinTags":      blog.JoinTags,
		"deleteEmail":   clubMemberDeleteURL,
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
		"ms":  func(v float64) string { return fmt.Sprintf("%.1f", v) },
		"add": func(a, b int) int { return a + b },
	}
}

// renderPage renders a page template inside the layout with the given status.
// The session, queued flash toasts and page toasts are merged into data.
func renderPage(w http.ResponseWriter, r *http.Request, status int, name string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	sess, _ := middleware.GetSessionFromContext(r.Context())
	data["Session"] = sess
	data["Uploads"] = imageUploader != nil
	if flashes != nil {
		queued := flashes.Pop(w, r)
		if len(queued) > 0 {
			page, _ := data["Toasts"].([]toast)
			data["Toasts"] = append(queued, page...)
		}
	}

	tpl, err := template.New("layout.html").Funcs(funcMap(r)).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
	if err != nil {
		internalError(w, fmt.Errorf("parse %s: %w", name, err))
		return
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		internalError(w, fmt.Errorf("render %s: %w", name, err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// handleNotFound renders the catch-all page.
func handleNotFound(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, http.StatusNotFound, "not_found.html", map[string]any{"Title": "Page not found"})
}
