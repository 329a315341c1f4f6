package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	emailAdapter "clubadmin/internal/adapters/email"
	"clubadmin/internal/domain/audit"
	"clubadmin/internal/domain/contact"
)

// ContactBackend defines the backend calls needed by contact orchestrators.
type ContactBackend interface {
	GetMessage(ctx context.Context, id string) (contact.Message, error)
	ReplyToMessage(ctx context.Context, r contact.Reply) (string, error)
	DeleteMessage(ctx context.Context, id string) (string, error)
}

// ContactDeps holds dependencies for contact orchestrators.
// Mailer is optional; when nil replies go through the backend mailer.
type ContactDeps struct {
	Backend ContactBackend
	Mailer  emailAdapter.Sender
	From    string
	Audit   AuditRecorder
}

// --- Reply To Contact ---

// ReplyInput carries input for the reply orchestrator.
type ReplyInput struct {
	MessageID string
	Response  string
	Actor     Actor
}

// ReplyResult carries the message replied to, so the caller can re-render it
// without fetching it again.
type ReplyResult struct {
	Original contact.Message
	Loaded   bool   // Original was fetched from the backend
	Notice   string // backend confirmation text, if any
}

// ExecuteReplyToContact composes a reply quoting the original message and delivers it.
// PRE: MessageID names an existing message with an email; Response non-blank
// POST: Reply delivered through Resend when configured, else through the backend
// POST: result.Loaded reports whether the original was fetched, even on failure
func ExecuteReplyToContact(ctx context.Context, input ReplyInput, deps ContactDeps) (ReplyResult, error) {
	var result ReplyResult
	if strings.TrimSpace(input.Response) == "" {
		return result, contact.ErrEmptyReply
	}
	msg, err := deps.Backend.GetMessage(ctx, input.MessageID)
	if err != nil {
		return result, fmt.Errorf("load contact message: %w", err)
	}
	result.Original, result.Loaded = msg, true

	reply, err := contact.ComposeReply(msg, input.Response)
	if err != nil {
		return result, err
	}

	result.Notice, err = mutate(ctx, deps.Audit, input.Actor, change{
		category:     audit.CategoryContact,
		action:       audit.ActionReply,
		resourceType: "contact_message",
		resourceID:   input.MessageID,
		description:  "reply to " + reply.To,
	}, func() (string, error) {
		if deps.Mailer == nil {
			return deps.Backend.ReplyToMessage(ctx, reply)
		}
		res, err := deps.Mailer.Send(ctx, emailAdapter.SendRequest{
			To:      []string{reply.To},
			From:    deps.From,
			Subject: reply.Subject,
			Text:    reply.Text,
		})
		if err != nil {
			return "", fmt.Errorf("send reply: %w", err)
		}
		slog.Info("email_event", "event", "reply_sent", "message_id", res.MessageID, "to", reply.To)
		return "", nil
	})
	return result, err
}

// --- Delete Contact Message ---

// ExecuteDeleteContactMessage removes a contact message once confirmed.
func ExecuteDeleteContactMessage(ctx context.Context, input DeleteInput, deps ContactDeps) (string, error) {
	if err := confirmDelete(input); err != nil {
		return "", err
	}
	return mutate(ctx, deps.Audit, input.Actor, change{
		category:     audit.CategoryContact,
		action:       audit.ActionDelete,
		resourceType: "contact_message",
		resourceID:   input.ID,
	}, func() (string, error) {
		return deps.Backend.DeleteMessage(ctx, input.ID)
	})
}
