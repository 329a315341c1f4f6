package orchestrators

import (
	"context"
	"errors"
	"strings"

	"clubadmin/internal/domain/audit"
	"clubadmin/internal/domain/clubmember"
)

// ClubMemberBackend defines the backend calls needed by club member orchestrators.
type ClubMemberBackend interface {
	AddClubMember(ctx context.Context, m clubmember.ClubMember) (string, error)
	DeleteClubMember(ctx context.Context, email string) (string, error)
	SendMailToAll(ctx context.Context, subject, text string) (string, error)
}

// ClubMemberDeps holds dependencies for club member orchestrators.
type ClubMemberDeps struct {
	Backend ClubMemberBackend
	Audit   AuditRecorder
}

// --- Add Club Member ---

// AddClubMemberInput carries input for the add club member orchestrator.
type AddClubMemberInput struct {
	Member clubmember.ClubMember
	Actor  Actor
}

// ExecuteAddClubMember registers a general club member.
// PRE: Every field filled in; email looks like an address
// POST: Backend holds the member; returns the backend's message
func ExecuteAddClubMember(ctx context.Context, input AddClubMemberInput, deps ClubMemberDeps) (string, error) {
	m := input.Member
	m.Email = strings.TrimSpace(m.Email)
	if err := m.Validate(); err != nil {
		return "", err
	}
	return mutate(ctx, deps.Audit, input.Actor, change{
		category:     audit.CategoryClubMember,
		action:       audit.ActionCreate,
		resourceType: "club_member",
		resourceID:   m.Email,
		description:  m.Name,
	}, func() (string, error) {
		return deps.Backend.AddClubMember(ctx, m)
	})
}

// --- Delete Club Member ---

// ExecuteDeleteClubMember removes a club member by email once confirmed.
// The DeleteInput ID carries the email address.
func ExecuteDeleteClubMember(ctx context.Context, input DeleteInput, deps ClubMemberDeps) (string, error) {
	input.ID = strings.TrimSpace(input.ID)
	if err := confirmDelete(input); err != nil {
		return "", err
	}
	if err := clubmember.ValidateEmail(input.ID); err != nil {
		return "", err
	}
	return mutate(ctx, deps.Audit, input.Actor, change{
		category:     audit.CategoryClubMember,
		action:       audit.ActionDelete,
		resourceType: "club_member",
		resourceID:   input.ID,
	}, func() (string, error) {
		return deps.Backend.DeleteClubMember(ctx, input.ID)
	})
}

// --- Send Mail To All ---

// ErrMailIncomplete is returned when subject or body is blank.
var ErrMailIncomplete = errors.New("subject and body are required")

// SendMailInput carries input for the mail-to-all orchestrator.
type SendMailInput struct {
	Subject string
	Body    string
	Actor   Actor
}

// WrapMailBody adds the club greeting and signature around a broadcast body.
func WrapMailBody(body string) string {
	return "Hi,\n\n" + body + "\n\nBest regards,\nRUET Cyber Security Club"
}

// ExecuteSendMailToAll mails every registered club member.
// PRE: Subject and body non-blank
// POST: Backend has queued the broadcast with the wrapped body
func ExecuteSendMailToAll(ctx context.Context, input SendMailInput, deps ClubMemberDeps) (string, error) {
	if strings.TrimSpace(input.Subject) == "" || strings.TrimSpace(input.Body) == "" {
		return "", ErrMailIncomplete
	}
	return mutate(ctx, deps.Audit, input.Actor, change{
		category:     audit.CategoryMail,
		action:       audit.ActionSend,
		resourceType: "broadcast",
		description:  input.Subject,
	}, func() (string, error) {
		return deps.Backend.SendMailToAll(ctx, input.Subject, WrapMailBody(input.Body))
	})
}
