package web

import (
	"errors"
	"net/http"

	"clubadmin/internal/adapters/backend"
	"clubadmin/internal/adapters/http/middleware"
	"clubadmin/internal/application/orchestrators"
	"clubadmin/internal/domain/admin"
)

// handleLogin serves the login form (GET/POST /login).
// POST: On success the token cookie is set and the page moves to / after the login delay
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		if middleware.IsAuthorized(r.Context()) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		renderPage(w, r, http.StatusOK, "login.html", map[string]any{"Title": "Admin Login"})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	creds := admin.Credentials{
		Username:  field(r, "username"),
		Password:  r.PostFormValue("password"),
		SecretKey: field(r, "secretKey"),
	}
	data := map[string]any{"Title": "Admin Login", "Username": creds.Username}

	res, err := orchestrators.ExecuteLogin(r.Context(), orchestrators.LoginInput{
		Credentials: creds,
		Actor:       actorFrom(r),
	}, orchestrators.LoginDeps{Backend: builder().Build(), Audit: auditEvents})
	if err != nil {
		middleware.ClearTokenCookie(w, cfg.IsProduction())
		addToast(data, toastError, loginError(err))
		renderPage(w, r, loginStatus(err), "login.html", data)
		return
	}

	middleware.SetTokenCookie(w, res.Token, cfg.IsProduction())
	addToast(data, toastSuccess, "Login Successful! Redirecting...")
	data["Redirect"] = after("/", cfg.LoginDelay)
	renderPage(w, r, http.StatusOK, "login.html", data)
}

func loginError(err error) string {
	switch {
	case !isBackendError(err) && !errors.Is(err, backend.ErrNoToken):
		return err.Error()
	case errors.Is(err, backend.ErrTransport):
		return "Server is not responding"
	case errors.Is(err, backend.ErrUnsuccessful):
		return backend.Message(err, "Invalid credentials. Please try again.")
	default:
		return backend.Message(err, "Something went wrong. Please try again.")
	}
}

func loginStatus(err error) int {
	if isBackendError(err) {
		return http.StatusUnauthorized
	}
	return http.StatusUnprocessableEntity
}

// handleLogout ends the session (POST /logout).
// POST: Token cookie cleared, redirected to /login with a flash
func handleLogout(w http.ResponseWriter, r *http.Request) {
	orchestrators.ExecuteLogout(r.Context(), actorFrom(r), orchestrators.LogoutDeps{
		Backend: backendFor(r),
		Audit:   auditEvents,
	})
	middleware.ClearTokenCookie(w, cfg.IsProduction())
	redirectWithFlash(w, r, "/login", toastSuccess, "Logged Out Successfully!")
}
