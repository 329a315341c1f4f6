package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"clubadmin/internal/domain/audit"
)

// ErrNotConfirmed is returned when a delete arrives without the confirmation flag.
var ErrNotConfirmed = errors.New("deletion was not confirmed")

// Actor identifies the admin and request behind a mutation.
type Actor struct {
	Username  string
	IP        string
	UserAgent string
}

// AuditRecorder persists audit events. Satisfied by the SQLite audit store.
type AuditRecorder interface {
	Save(ctx context.Context, event audit.Event) error
}

// DeleteInput carries the target of a delete and its confirmation.
type DeleteInput struct {
	ID        string
	Confirmed bool
	Actor     Actor
}

// change describes one mutation for the audit trail.
type change struct {
	category     audit.Category
	action       audit.Action
	resourceType string
	resourceID   string
	description  string
}

// recordAudit saves an audit event. Failures are logged and never surfaced.
func recordAudit(ctx context.Context, rec AuditRecorder, actor Actor, c change) {
	if rec == nil {
		return
	}
	actorName := actor.Username
	if actorName == "" {
		actorName = "unknown"
	}
	event := audit.NewEvent(actorName, c.category, c.action).
		WithResource(c.resourceType, c.resourceID).
		WithDescription(c.description).
		WithRequest(actor.IP, actor.UserAgent)
	if c.action == audit.ActionDelete {
		event = event.WithSeverity(audit.SeverityWarning)
	}
	if err := rec.Save(ctx, event); err != nil {
		slog.Warn("audit_record_failed", "error", err, "category", c.category, "action", c.action, "resource_id", c.resourceID)
	}
}

// mutate runs one backend call and, on success, logs and audits it.
func mutate(ctx context.Context, rec AuditRecorder, actor Actor, c change, call func() (string, error)) (string, error) {
	msg, err := call()
	if err != nil {
		return "", err
	}
	slog.Info(string(c.category)+"_event",
		"event", string(c.category)+"_"+string(c.action),
		"resource_id", c.resourceID,
		"actor", actor.Username,
	)
	recordAudit(ctx, rec, actor, c)
	return msg, nil
}

// confirmDelete guards every delete: no confirmation, no backend call.
func confirmDelete(input DeleteInput) error {
	if !input.Confirmed {
		return ErrNotConfirmed
	}
	if input.ID == "" {
		return errors.New("nothing selected to delete")
	}
	return nil
}
