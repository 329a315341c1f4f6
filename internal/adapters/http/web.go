package web

import (
	"context"
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"clubadmin/internal/adapters/backend"
	"clubadmin/internal/adapters/email"
	"clubadmin/internal/adapters/http/middleware"
	"clubadmin/internal/adapters/http/perf"
	"clubadmin/internal/adapters/media"
	auditStore "clubadmin/internal/adapters/storage/audit"
	"clubadmin/internal/config"
	"clubadmin/internal/domain/admin"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Options holds everything NewMux wires into the handlers.
type Options struct {
	Config     config.Config
	AuditStore auditStore.Store
	Collector  *perf.Collector
	Mailer     email.Sender   // nil: contact replies go through the backend mailer
	Uploader   media.Uploader // nil: image fields accept URLs only
	HTTPClient *http.Client   // backend transport; nil uses a default client
}

// Global configuration (set by NewMux)
var cfg config.Config

// Global audit store instance (set by NewMux)
var auditEvents auditStore.Store

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// Global email sender; nil when Resend is not configured
var emailSender email.Sender

// Global image uploader; nil when no media store is configured
var imageUploader media.Uploader

// Global backend transport
var backendHTTP *http.Client

// Global flash store (set by NewMux)
var flashes *flashStore

// RateLimitPerMinute controls the per-IP limit on form submissions. Tests can increase this.
var RateLimitPerMinute = 60

// NewMux wires HTTP handlers for the panel.
func NewMux(opts Options) http.Handler {
	configure(opts)
	router := newRouter()

	limiter := middleware.NewRateLimiter(RateLimitPerMinute, time.Minute)
	checker := middleware.UserCheckerFunc(func(ctx context.Context, token string) (admin.User, error) {
		return builder().WithToken(token).Build().CurrentUser(ctx)
	})

	// Apply middleware: Timing -> SecurityHeaders -> RateLimit -> CSRF -> Auth -> Router
	return middleware.Chain(router,
		middleware.Auth(checker, cfg.BackendURL),
		middleware.CSRF(cfg.CSRFKey(), cfg.IsProduction(), trustedOrigins(cfg)),
		middleware.RateLimit(limiter),
		middleware.SecurityHeaders,
		middleware.Timing(perfCollector),
	)
}

// configure sets the package globals from opts.
func configure(opts Options) {
	cfg = opts.Config
	auditEvents = opts.AuditStore
	perfCollector = opts.Collector
	emailSender = opts.Mailer
	imageUploader = opts.Uploader
	backendHTTP = opts.HTTPClient
	if backendHTTP == nil {
		backendHTTP = &http.Client{}
	}
	hashKey, blockKey := cfg.FlashKeys()
	flashes = newFlashStore(hashKey, blockKey, cfg.IsProduction())
}

// newRouter builds the gorilla/mux router without the outer middleware chain.
// Public routes are registered before the guarded subrouter so they match first.
func newRouter() *mux.Router {
	r := mux.NewRouter()
	static, _ := fs.Sub(staticFS, "static")
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	r.HandleFunc("/login", handleLogin).Methods(http.MethodGet, http.MethodPost)

	protected := r.NewRoute().Subrouter()
	protected.Use(middleware.RequireAuth(flashes))
	registerRoutes(protected)

	r.NotFoundHandler = http.HandlerFunc(handleNotFound)
	return r
}

// builder returns a backend client builder with the panel's transport and collector.
func builder() backend.Builder {
	return backend.NewBuilder(cfg.BackendURL).
		WithHTTPClient(backendHTTP).
		WithCollector(perfCollector)
}

// backendFor returns a backend client bound to the request's admin token.
func backendFor(r *http.Request) *backend.Client {
	sess, _ := middleware.GetSessionFromContext(r.Context())
	return builder().WithToken(sess.Token).Build()
}

// trustedOrigins lists the hosts gorilla/csrf accepts as same-origin besides the request host.
func trustedOrigins(c config.Config) []string {
	if c.IsProduction() {
		return nil
	}
	return []string{"localhost:8080", "127.0.0.1:8080"}
}
