package orchestrators

import (
	"context"
	"log/slog"

	"clubadmin/internal/domain/admin"
	"clubadmin/internal/domain/audit"
)

// LoginBackend is the part of the backend client Login needs.
type LoginBackend interface {
	Login(ctx context.Context, creds admin.Credentials) (token, message string, err error)
}

// LogoutBackend is the part of the backend client Logout needs.
type LogoutBackend interface {
	Logout(ctx context.Context) error
}

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	Credentials admin.Credentials
	Actor       Actor
}

// LoginResult carries the result of a successful login.
type LoginResult struct {
	Token   string
	Message string
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	Backend LoginBackend
	Audit   AuditRecorder
}

// ExecuteLogin exchanges credentials for a backend token.
// PRE: Username, password and secret key provided
// POST: Returns the token on success; the failure is audited at warning severity
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (LoginResult, error) {
	creds := input.Credentials
	if err := creds.Validate(); err != nil {
		return LoginResult{}, err
	}
	actor := input.Actor
	actor.Username = creds.Username

	token, msg, err := deps.Backend.Login(ctx, creds)
	if err != nil {
		slog.Info("auth_event", "event", "login_failed", "username", creds.Username, "error", err)
		if deps.Audit != nil {
			e := audit.NewEvent(creds.Username, audit.CategorySecurity, audit.ActionLogin).
				WithSeverity(audit.SeverityWarning).
				WithDescription("login failed").
				WithRequest(actor.IP, actor.UserAgent)
			if saveErr := deps.Audit.Save(ctx, e); saveErr != nil {
				slog.Warn("audit_record_failed", "error", saveErr)
			}
		}
		return LoginResult{}, err
	}

	slog.Info("auth_event", "event", "login_succeeded", "username", creds.Username)
	recordAudit(ctx, deps.Audit, actor, change{
		category:     audit.CategorySecurity,
		action:       audit.ActionLogin,
		resourceType: "admin",
		resourceID:   creds.Username,
		description:  "login succeeded",
	})
	return LoginResult{Token: token, Message: msg}, nil
}

// LogoutDeps holds dependencies for Logout.
type LogoutDeps struct {
	Backend LogoutBackend
	Audit   AuditRecorder
}

// ExecuteLogout ends the backend session. A backend failure is logged; the
// panel still forgets the token.
// POST: Always succeeds from the caller's point of view
func ExecuteLogout(ctx context.Context, actor Actor, deps LogoutDeps) {
	if err := deps.Backend.Logout(ctx); err != nil {
		slog.Warn("auth_event", "event", "logout_backend_failed", "username", actor.Username, "error", err)
	}
	slog.Info("auth_event", "event", "logout", "username", actor.Username)
	recordAudit(ctx, deps.Audit, actor, change{
		category:     audit.CategorySecurity,
		action:       audit.ActionLogout,
		resourceType: "admin",
		resourceID:   actor.Username,
	})
}
