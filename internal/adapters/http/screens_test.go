package web

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	_ "modernc.org/sqlite"

	"clubadmin/internal/adapters/email"
	"clubadmin/internal/adapters/http/middleware"
	"clubadmin/internal/adapters/storage"
	auditStore "clubadmin/internal/adapters/storage/audit"
	"clubadmin/internal/config"
	"clubadmin/internal/domain/admin"
	"clubadmin/internal/domain/audit"
)

// --- Fake REST backend ---

type backendCall struct {
	Method string
	Path   string
	Token  string // token cookie
	Auth   string // Authorization header
	Body   string
}

type fakeRESTBackend struct {
	mu     sync.Mutex
	calls  []backendCall
	routes map[string]http.HandlerFunc
	srv    *httptest.Server
}

func newFakeRESTBackend(t *testing.T, routes map[string]http.HandlerFunc) *fakeRESTBackend {
	t.Helper()
	f := &fakeRESTBackend{routes: routes}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		call := backendCall{Method: r.Method, Path: r.URL.Path, Auth: r.Header.Get("Authorization"), Body: string(body)}
		if ck, err := r.Cookie("token"); err == nil {
			call.Token = ck.Value
		}
		f.mu.Lock()
		f.calls = append(f.calls, call)
		f.mu.Unlock()

		if h, ok := f.routes[r.Method+" "+r.URL.Path]; ok {
			h(w, r)
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"success":false,"message":"no such route"}`)
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeRESTBackend) Calls() []backendCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]backendCall(nil), f.calls...)
}

func (f *fakeRESTBackend) count(method, path string) int {
	n := 0
	for _, c := range f.Calls() {
		if c.Method == method && c.Path == path {
			n++
		}
	}
	return n
}

func jsonReply(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

// setupPanel points the package globals at a fake backend and returns the bare router.
func setupPanel(t *testing.T, routes map[string]http.HandlerFunc, store auditStore.Store) (http.Handler, *fakeRESTBackend) {
	t.Helper()
	fake := newFakeRESTBackend(t, routes)
	env := map[string]string{
		"RCSC_BACKEND_URL":       fake.srv.URL,
		"RCSC_REDIRECT_DELAY_MS": "1000",
		"RCSC_LOGIN_DELAY_MS":    "1500",
	}
	c, err := config.FromEnv(func(k string) string { return env[k] })
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	configure(Options{Config: c, AuditStore: store, HTTPClient: fake.srv.Client()})
	return newRouter(), fake
}

// asAdmin attaches an authorized session, as the Auth middleware would.
func asAdmin(r *http.Request) *http.Request {
	sess := middleware.Session{
		Authorized: true,
		User:       admin.User{Username: "admin"},
		Token:      "tok",
	}
	return r.WithContext(middleware.ContextWithSession(r.Context(), sess))
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// --- Route guard ---

// TestGuard_RedirectsBeforeAnyBackendCall verifies protected screens redirect to /login
// without issuing a data request.
func TestGuard_RedirectsBeforeAnyBackendCall(t *testing.T) {
	paths := []string{"/", "/blog", "/blog/b1", "/member", "/activities", "/contact/m1", "/about_us", "/all-club-members", "/admin/audit"}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			router, fake := setupPanel(t, nil, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			if rec.Code != http.StatusSeeOther {
				t.Fatalf("expected 303, got %d", rec.Code)
			}
			if loc := rec.Header().Get("Location"); loc != "/login" {
				t.Errorf("expected redirect to /login, got %q", loc)
			}
			if n := len(fake.Calls()); n != 0 {
				t.Errorf("expected no backend calls, got %d", n)
			}
		})
	}
}

// TestNotFound verifies unknown paths render the not-found page.
func TestNotFound(t *testing.T) {
	router, _ := setupPanel(t, nil, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, asAdmin(httptest.NewRequest(http.MethodGet, "/no/such/page", nil)))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Page not found") {
		t.Error("expected not-found page")
	}
}

// --- Fetch screens ---

// TestHome_RendersAnnouncementWithDisplayDate verifies the date display and that a
// failing sponsor fetch leaves announcements rendered.
func TestHome_RendersAnnouncementWithDisplayDate(t *testing.T) {
	router, _ := setupPanel(t, map[string]http.HandlerFunc{
		"GET /api/announcement": jsonReply(http.StatusOK, `{"announcements":[{"_id":"1","title":"T","description":"D","date":"2024-01-01"}]}`),
		"GET /api/sponsors":     jsonReply(http.StatusInternalServerError, `{}`),
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, asAdmin(httptest.NewRequest(http.MethodGet, "/", nil)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"<h3>T</h3>", "Jan 1, 2024", "/edit_announcement/1", "Failed to fetch sponsors", "No sponsors yet."} {
		if !strings.Contains(body, want) {
			t.Errorf("expected body to contain %q", want)
		}
	}
}

// TestList_MalformedPayloadRendersEmpty verifies odd envelopes never crash a list screen.
func TestList_MalformedPayloadRendersEmpty(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"object without list", `{"success":true,"oops":1}`},
		{"null", `null`},
		{"not json", `<html>`},
		{"wrong field type", `{"blogs":"nope"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := setupPanel(t, map[string]http.HandlerFunc{
				"GET /api/blogs/get_blogs": jsonReply(http.StatusOK, tt.payload),
			}, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, asAdmin(httptest.NewRequest(http.MethodGet, "/blog", nil)))

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), "No blog posts yet.") {
				t.Error("expected empty blog list")
			}
		})
	}
}

// TestBackendRequests_CarryTokenCookieAndBearer verifies both credentials travel on every call.
func TestBackendRequests_CarryTokenCookieAndBearer(t *testing.T) {
	router, fake := setupPanel(t, map[string]http.HandlerFunc{
		"GET /api/achievements": jsonReply(http.StatusOK, `[]`),
		"GET /api/dev_team":     jsonReply(http.StatusOK, `{"devTeam":[]}`),
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, asAdmin(httptest.NewRequest(http.MethodGet, "/about_us", nil)))

	calls := fake.Calls()
	if len(calls) != 2 {
		t.Fatalf("expected 2 backend calls, got %d", len(calls))
	}
	for _, c := range calls {
		if c.Token != "tok" {
			t.Errorf("%s %s: expected token cookie, got %q", c.Method, c.Path, c.Token)
		}
		if c.Auth != "Bearer tok" {
			t.Errorf("%s %s: expected bearer header, got %q", c.Method, c.Path, c.Auth)
		}
	}
}

// --- Mutation screens ---

// TestCreate_ResetsFormAndNavigates verifies a successful create re-renders an empty
// form with a toast and a delayed redirect to the list.
func TestCreate_ResetsFormAndNavigates(t *testing.T) {
	router, fake := setupPanel(t, map[string]http.HandlerFunc{
		"POST /api/sponsors": jsonReply(http.StatusCreated, `{"success":true,"message":"Sponsor added"}`),
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, asAdmin(postForm("/create_sponsor", url.Values{
		"name":     {"Acme"},
		"logo_url": {"https://example.com/acme.png"},
	})))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `content="1;url=/"`) {
		t.Error("expected a 1s refresh to the list")
	}
	if !strings.Contains(body, "Sponsor added") {
		t.Error("expected backend message as toast")
	}
	if strings.Contains(body, `value="Acme"`) {
		t.Error("expected the form to be reset")
	}
	if n := fake.count(http.MethodPost, "/api/sponsors"); n != 1 {
		t.Errorf("expected 1 create call, got %d", n)
	}
}

// TestCreate_ValidationFailureSkipsBackend verifies a blank required field keeps the form.
func TestCreate_ValidationFailureSkipsBackend(t *testing.T) {
	router, fake := setupPanel(t, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, asAdmin(postForm("/create_achievement", url.Values{"title": {"CTF win"}})))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `value="CTF win"`) {
		t.Error("expected the form to stay populated")
	}
	if n := len(fake.Calls()); n != 0 {
		t.Errorf("expected no backend calls, got %d", n)
	}
}

// TestCreate_FailedUploadKeepsTypedURL verifies a rejected upload leaves the typed image URL in the form.
func TestCreate_FailedUploadKeepsTypedURL(t *testing.T) {
	router, fake := setupPanel(t, nil, nil)
	imageUploader = nil

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	_ = mw.WriteField("title", "CTF night")
	_ = mw.WriteField("description", "Bring a laptop")
	_ = mw.WriteField("image", "https://cdn.example/banner.png")
	part, err := mw.CreateFormFile("image_file", "banner.png")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	_, _ = part.Write([]byte("\x89PNG"))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/create_announcement", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, asAdmin(req))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `value="https://cdn.example/banner.png"`) {
		t.Error("expected the typed image URL to survive the failed upload")
	}
	if n := len(fake.Calls()); n != 0 {
		t.Errorf("expected no backend calls, got %d", n)
	}
}

// TestEdit_FailingUpdateKeepsForm verifies a failed update shows the error, keeps the
// typed values and does not navigate.
func TestEdit_FailingUpdateKeepsForm(t *testing.T) {
	router, _ := setupPanel(t, map[string]http.HandlerFunc{
		"PUT /api/sponsors/1": jsonReply(http.StatusInternalServerError, `{"success":false,"message":"Sponsor update exploded"}`),
	}, nil)

	req := postForm("/edit_sponsor/1", url.Values{
		"name":     {"Acme"},
		"logo_url": {"https://acme.example/logo.png"},
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, asAdmin(req))

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Sponsor update exploded") {
		t.Error("expected backend message as error toast")
	}
	if !strings.Contains(body, `value="Acme"`) {
		t.Error("expected the form to stay populated")
	}
	if strings.Contains(body, "http-equiv=\"refresh\"") {
		t.Error("expected no navigation after a failure")
	}
}

// TestEdit_MissingBlogLeavesForList verifies a failed blog fetch flashes and returns to /blog.
func TestEdit_MissingBlogLeavesForList(t *testing.T) {
	router, _ := setupPanel(t, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, asAdmin(httptest.NewRequest(http.MethodGet, "/blog/gone", nil)))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/blog" {
		t.Errorf("expected redirect to /blog, got %q", loc)
	}
}

// TestDelete_RequiresConfirmation verifies the backend is only called for confirm=yes.
func TestDelete_RequiresConfirmation(t *testing.T) {
	tests := []struct {
		name      string
		form      url.Values
		wantCalls int
		wantLoc   string
	}{
		{"no confirmation", url.Values{}, 0, "/edit_sponsor/1"},
		{"declined", url.Values{"confirm": {"no"}}, 0, "/edit_sponsor/1"},
		{"confirmed", url.Values{"confirm": {"yes"}}, 1, "/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, fake := setupPanel(t, map[string]http.HandlerFunc{
				"DELETE /api/sponsors/1": jsonReply(http.StatusOK, `{"success":true}`),
			}, nil)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, asAdmin(postForm("/edit_sponsor/1/delete", tt.form)))

			if rec.Code != http.StatusSeeOther {
				t.Fatalf("expected 303, got %d", rec.Code)
			}
			if loc := rec.Header().Get("Location"); loc != tt.wantLoc {
				t.Errorf("expected redirect to %q, got %q", tt.wantLoc, loc)
			}
			if n := fake.count(http.MethodDelete, "/api/sponsors/1"); n != tt.wantCalls {
				t.Errorf("expected %d delete calls, got %d", tt.wantCalls, n)
			}
		})
	}
}

// TestBlogLikes_UsesSetLikeEndpoint verifies likes are written through their own endpoint.
func TestBlogLikes_UsesSetLikeEndpoint(t *testing.T) {
	router, fake := setupPanel(t, map[string]http.HandlerFunc{
		"PUT /api/blogs/set-like/b7": jsonReply(http.StatusOK, `{"success":true}`),
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, asAdmin(postForm("/blog/b7/likes", url.Values{"likes": {"5"}})))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/blog/b7" {
		t.Errorf("expected redirect to /blog/b7, got %q", loc)
	}
	calls := fake.Calls()
	if len(calls) != 1 || calls[0].Path != "/api/blogs/set-like/b7" {
		t.Fatalf("expected one set-like call, got %+v", calls)
	}
	var payload map[string]int
	if err := json.Unmarshal([]byte(calls[0].Body), &payload); err != nil || payload["likes"] != 5 {
		t.Errorf("expected likes=5 payload, got %s", calls[0].Body)
	}
	if n := fake.count(http.MethodPut, "/api/blogs/update_blog/b7"); n != 0 {
		t.Error("expected no full blog update")
	}
}

// TestContactReply verifies replies go through the backend mailer and blank replies are refused.
func TestContactReply(t *testing.T) {
	routes := map[string]http.HandlerFunc{
		"GET /api/contact/get_messages/m1": jsonReply(http.StatusOK, `{"message":{"_id":"m1","username":"Rafi","email":"rafi@example.com","message":"Hello"}}`),
		"POST /api/contact/reply":          jsonReply(http.StatusOK, `{"success":true}`),
	}

	tests := []struct {
		name       string
		reply      string
		wantStatus int
		wantToast  string
		wantSends  int
	}{
		{"sent", "Thanks for writing", http.StatusOK, "Reply sent successfully!", 1},
		{"blank", "   ", http.StatusUnprocessableEntity, "Reply message cannot be empty", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, fake := setupPanel(t, routes, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, asAdmin(postForm("/contact/m1/reply", url.Values{"reply": {tt.reply}})))

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tt.wantToast) {
				t.Errorf("expected toast %q", tt.wantToast)
			}
			if n := fake.count(http.MethodPost, "/api/contact/reply"); n != tt.wantSends {
				t.Errorf("expected %d reply calls, got %d", tt.wantSends, n)
			}
			if n := fake.count(http.MethodGet, "/api/contact/get_messages/m1"); n != 1 {
				t.Errorf("expected the message to be fetched once, got %d", n)
			}
			if !strings.Contains(rec.Body.String(), "Hello") {
				t.Error("expected the original message on the page")
			}
		})
	}
}

// TestContactReply_ThroughConfiguredMailer verifies a configured sender replaces the backend mailer.
func TestContactReply_ThroughConfiguredMailer(t *testing.T) {
	router, fake := setupPanel(t, map[string]http.HandlerFunc{
		"GET /api/contact/get_messages/m1": jsonReply(http.StatusOK, `{"_id":"m1","username":"Rafi","email":"rafi@example.com","message":"Hello"}`),
	}, nil)
	sender := email.NewNoopSender()
	emailSender = sender

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, asAdmin(postForm("/contact/m1/reply", url.Values{"reply": {"See you Friday"}})))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	sent := sender.Sent()
	if len(sent) != 1 || len(sent[0].To) != 1 || sent[0].To[0] != "rafi@example.com" {
		t.Fatalf("expected one mail to rafi@example.com, got %+v", sent)
	}
	if !strings.Contains(sent[0].Text, "See you Friday") {
		t.Error("expected the reply in the mail body")
	}
	if n := fake.count(http.MethodPost, "/api/contact/reply"); n != 0 {
		t.Errorf("expected no backend reply call, got %d", n)
	}
}

// --- Login / logout ---

// TestConfigure_DefaultBackendClientHasNoTimeout verifies the panel adds no deadline of its own.
func TestConfigure_DefaultBackendClientHasNoTimeout(t *testing.T) {
	c, err := config.FromEnv(func(string) string { return "" })
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	configure(Options{Config: c})

	if backendHTTP == nil {
		t.Fatal("expected a default backend client")
	}
	if backendHTTP.Timeout != 0 {
		t.Errorf("Timeout = %v, want none", backendHTTP.Timeout)
	}
}

// TestNewMux_ChecksSessionOncePerPageLoad verifies assets loaded by a page do not
// repeat the getuser check.
func TestNewMux_ChecksSessionOncePerPageLoad(t *testing.T) {
	fake := newFakeRESTBackend(t, map[string]http.HandlerFunc{
		"GET /api/admin/getuser": jsonReply(http.StatusOK, `{"success":true,"user":{"username":"admin"}}`),
		"GET /api/announcement":  jsonReply(http.StatusOK, `{"announcements":[]}`),
		"GET /api/sponsors":      jsonReply(http.StatusOK, `{"sponsors":[]}`),
	})
	env := map[string]string{"RCSC_BACKEND_URL": fake.srv.URL}
	c, err := config.FromEnv(func(k string) string { return env[k] })
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	handler := NewMux(Options{Config: c, HTTPClient: fake.srv.Client()})

	for _, path := range []string{"/", "/static/style.css", "/static/rcsc_logo.svg"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: "tok"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, rec.Code)
		}
	}

	if n := fake.count(http.MethodGet, "/api/admin/getuser"); n != 1 {
		t.Errorf("expected one getuser call for the page and its assets, got %d", n)
	}
}

// TestLogin_StoresBackendToken verifies the backend-issued token becomes the panel cookie.
func TestLogin_StoresBackendToken(t *testing.T) {
	router, _ := setupPanel(t, map[string]http.HandlerFunc{
		"POST /api/admin/login": func(w http.ResponseWriter, r *http.Request) {
			http.SetCookie(w, &http.Cookie{Name: "token", Value: "issued", Path: "/"})
			jsonReply(http.StatusOK, `{"success":true,"message":"Welcome"}`)(w, r)
		},
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, postForm("/login", url.Values{
		"username":  {"admin"},
		"password":  {"pw"},
		"secretKey": {"s3cret"},
	}))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var token string
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.TokenCookie {
			token = ck.Value
		}
	}
	if token != "issued" {
		t.Errorf("expected token cookie %q, got %q", "issued", token)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Login Successful! Redirecting...") {
		t.Error("expected success toast")
	}
	if !strings.Contains(body, `content="1.5;url=/"`) {
		t.Error("expected a 1.5s refresh to home")
	}
}

// TestLogin_Rejected verifies a refused login shows the backend message and sets no token.
func TestLogin_Rejected(t *testing.T) {
	router, _ := setupPanel(t, map[string]http.HandlerFunc{
		"POST /api/admin/login": jsonReply(http.StatusUnauthorized, `{"success":false,"message":"Invalid secret key"}`),
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, postForm("/login", url.Values{
		"username":  {"admin"},
		"password":  {"pw"},
		"secretKey": {"wrong"},
	}))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid secret key") {
		t.Error("expected backend message")
	}
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.TokenCookie && ck.Value != "" {
			t.Errorf("expected no token, got %q", ck.Value)
		}
	}
}

// TestLogout_ClearsTokenAndRedirects verifies logout expires the cookie even when the backend fails.
func TestLogout_ClearsTokenAndRedirects(t *testing.T) {
	router, fake := setupPanel(t, map[string]http.HandlerFunc{
		"GET /api/admin/logout": jsonReply(http.StatusInternalServerError, `{}`),
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, asAdmin(postForm("/logout", url.Values{})))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("expected redirect to /login, got %q", loc)
	}
	cleared := false
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.TokenCookie && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected the token cookie to be expired")
	}
	if n := fake.count(http.MethodGet, "/api/admin/logout"); n != 1 {
		t.Errorf("expected 1 logout call, got %d", n)
	}
}

// --- Audit trail ---

// TestAuditLog_RecordsMutations verifies a mutation issued through the panel shows up on /admin/audit.
func TestAuditLog_RecordsMutations(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	if err := storage.MigrateDB(db, ":memory:"); err != nil {
		t.Fatalf("MigrateDB: %v", err)
	}
	store := auditStore.NewSQLiteStore(storage.NewTimedDB(db, nil))

	router, _ := setupPanel(t, map[string]http.HandlerFunc{
		"DELETE /api/activities/a1": jsonReply(http.StatusOK, `{"success":true}`),
	}, store)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, asAdmin(postForm("/edit_activity/a1/delete", url.Values{"confirm": {"yes"}})))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("delete: expected 303, got %d", rec.Code)
	}

	events, err := store.List(context.Background(), auditStore.Filter{}, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 || events[0].Category != audit.CategoryActivity || events[0].Actor != "admin" {
		t.Fatalf("expected one activity event by admin, got %+v", events)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, asAdmin(httptest.NewRequest(http.MethodGet, "/admin/audit?category=activity", nil)))
	if rec.Code != http.StatusOK {
		t.Fatalf("audit: expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "a1") {
		t.Error("expected the deleted activity on the audit page")
	}
}
