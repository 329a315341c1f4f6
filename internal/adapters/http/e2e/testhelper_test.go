package e2e_test

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"

	_ "modernc.org/sqlite"

	web "clubadmin/internal/adapters/http"
	"clubadmin/internal/adapters/http/perf"
	"clubadmin/internal/adapters/storage"
	auditStore "clubadmin/internal/adapters/storage/audit"
	"clubadmin/internal/config"
	"clubadmin/internal/domain/sponsor"
)

const e2eToken = "e2e-token"

// fakeClubBackend is an in-memory stand-in for the club REST API.
type fakeClubBackend struct {
	mu       sync.Mutex
	sponsors []sponsor.Sponsor
	nextID   int
}

func (f *fakeClubBackend) handler() http.Handler {
	m := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
	authorized := func(r *http.Request) bool {
		return r.Header.Get("Authorization") == "Bearer "+e2eToken
	}

	m.HandleFunc("POST /api/admin/login", func(w http.ResponseWriter, r *http.Request) {
		var creds struct {
			Username  string `json:"username"`
			Password  string `json:"password"`
			SecretKey string `json:"secretKey"`
		}
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Username != "admin" || creds.Password != "TestPass123!" || creds.SecretKey != "rcsc" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid username or password"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "token", Value: e2eToken, Path: "/", HttpOnly: true})
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Login successful"})
	})
	m.HandleFunc("GET /api/admin/getuser", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "user": map[string]string{"_id": "u1", "username": "admin"}})
	})
	m.HandleFunc("GET /api/admin/logout", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	})
	m.HandleFunc("GET /api/announcement", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"announcements": []map[string]string{
			{"_id": "a1", "title": "Welcome Session", "description": "Orientation for new members", "date": "2024-01-01"},
		}})
	})
	m.HandleFunc("GET /api/sponsors", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"sponsors": f.sponsors})
	})
	m.HandleFunc("POST /api/sponsors", func(w http.ResponseWriter, r *http.Request) {
		var s sponsor.Sponsor
		_ = json.NewDecoder(r.Body).Decode(&s)
		f.mu.Lock()
		f.nextID++
		s.ID = "s" + strconv.Itoa(f.nextID)
		f.sponsors = append(f.sponsors, s)
		f.mu.Unlock()
		writeJSON(w, http.StatusCreated, map[string]any{"success": true, "message": "Sponsor added"})
	})
	m.HandleFunc("GET /api/blogs/get_blogs", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []any{})
	})
	return m
}

// testApp holds the running panel, its fake backend and Playwright handles.
type testApp struct {
	BaseURL string
	Backend *fakeClubBackend
	DB      *sql.DB
	Audit   auditStore.Store
	PW      *playwright.Playwright
	Browser playwright.Browser
}

// newTestApp wires the panel against a fake backend and starts it on a free port.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	fake := &fakeClubBackend{}
	backendSrv := httptest.NewServer(fake.handler())
	t.Cleanup(backendSrv.Close)

	dbPath := filepath.Join(t.TempDir(), "audit.db")
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		t.Fatalf("failed to open test DB: %v", err)
	}
	if err := storage.MigrateDB(db, dbPath); err != nil {
		t.Fatalf("failed to migrate test DB: %v", err)
	}
	collector := perf.NewCollector(1000)
	audit := auditStore.NewSQLiteStore(storage.NewTimedDB(db, collector))

	env := map[string]string{
		"RCSC_BACKEND_URL":       backendSrv.URL,
		"RCSC_REDIRECT_DELAY_MS": "1000",
		"RCSC_LOGIN_DELAY_MS":    "200",
	}
	cfg, err := config.FromEnv(func(k string) string { return env[k] })
	if err != nil {
		t.Fatalf("config: %v", err)
	}

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to find free port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()

	handler := web.NewMux(web.Options{
		Config:     cfg,
		AuditStore: audit,
		Collector:  collector,
	})
	srv := &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%d", port),
		Handler: handler,
	}
	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("test server error: %v", err)
		}
	}()

	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	for i := 0; i < 50; i++ {
		resp, err := http.Get(baseURL + "/login")
		if err == nil {
			resp.Body.Close()
			break
		}
		time.Sleep(100 * time.Millisecond)
	}

	pw, err := playwright.Run()
	if err != nil {
		t.Fatalf("failed to start Playwright: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Fatalf("failed to launch browser: %v", err)
	}

	t.Cleanup(func() {
		browser.Close()
		pw.Stop()
		srv.Close()
		db.Close()
	})

	return &testApp{
		BaseURL: baseURL,
		Backend: fake,
		DB:      db,
		Audit:   audit,
		PW:      pw,
		Browser: browser,
	}
}

// newPage creates a new browser page (tab).
func (a *testApp) newPage(t *testing.T) playwright.Page {
	t.Helper()
	page, err := a.Browser.NewPage()
	if err != nil {
		t.Fatalf("failed to create page: %v", err)
	}
	t.Cleanup(func() { page.Close() })
	return page
}

// login signs in through the form and waits for the delayed move to home.
func (a *testApp) login(t *testing.T, page playwright.Page) {
	t.Helper()
	if _, err := page.Goto(a.BaseURL + "/login"); err != nil {
		t.Fatalf("failed to navigate to login: %v", err)
	}
	fill := map[string]string{"username": "admin", "password": "TestPass123!", "secretKey": "rcsc"}
	for name, value := range fill {
		if err := page.Locator("input[name=" + name + "]").Fill(value); err != nil {
			t.Fatalf("failed to fill %s: %v", name, err)
		}
	}
	if err := page.Locator("button[type=submit]").Click(); err != nil {
		t.Fatalf("failed to click login: %v", err)
	}
	if err := page.WaitForURL(a.BaseURL+"/", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		t.Fatalf("login did not move to home: %v", err)
	}
}
