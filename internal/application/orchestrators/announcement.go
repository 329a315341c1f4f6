package orchestrators

import (
	"context"

	"clubadmin/internal/domain/announcement"
	"clubadmin/internal/domain/audit"
)

// AnnouncementBackend defines the backend calls needed by announcement orchestrators.
type AnnouncementBackend interface {
	CreateAnnouncement(ctx context.Context, a announcement.Announcement) (string, error)
	UpdateAnnouncement(ctx context.Context, id string, a announcement.Announcement) (string, error)
	DeleteAnnouncement(ctx context.Context, id string) (string, error)
}

// AnnouncementDeps holds dependencies for announcement orchestrators.
type AnnouncementDeps struct {
	Backend AnnouncementBackend
	Audit   AuditRecorder
}

// SaveAnnouncementInput carries input for create and update.
// ID is ignored on create.
type SaveAnnouncementInput struct {
	ID           string
	Announcement announcement.Announcement
	Actor        Actor
}

// --- Create Announcement ---

// ExecuteCreateAnnouncement posts a new announcement.
// PRE: Title and description non-empty
// POST: Backend holds the announcement; returns the backend's message
func ExecuteCreateAnnouncement(ctx context.Context, input SaveAnnouncementInput, deps AnnouncementDeps) (string, error) {
	a := input.Announcement
	if err := a.Validate(); err != nil {
		return "", err
	}
	return mutate(ctx, deps.Audit, input.Actor, change{
		category:     audit.CategoryAnnouncement,
		action:       audit.ActionCreate,
		resourceType: "announcement",
		description:  a.Title,
	}, func() (string, error) {
		return deps.Backend.CreateAnnouncement(ctx, a)
	})
}

// --- Update Announcement ---

// ExecuteUpdateAnnouncement replaces an existing announcement.
// PRE: ID non-empty; title and description non-empty
func ExecuteUpdateAnnouncement(ctx context.Context, input SaveAnnouncementInput, deps AnnouncementDeps) (string, error) {
	a := input.Announcement
	if err := a.Validate(); err != nil {
		return "", err
	}
	return mutate(ctx, deps.Audit, input.Actor, change{
		category:     audit.CategoryAnnouncement,
		action:       audit.ActionUpdate,
		resourceType: "announcement",
		resourceID:   input.ID,
		description:  a.Title,
	}, func() (string, error) {
		return deps.Backend.UpdateAnnouncement(ctx, input.ID, a)
	})
}

// --- Delete Announcement ---

// ExecuteDeleteAnnouncement removes an announcement once confirmed.
// POST: No backend call unless input.Confirmed
func ExecuteDeleteAnnouncement(ctx context.Context, input DeleteInput, deps AnnouncementDeps) (string, error) {
	if err := confirmDelete(input); err != nil {
		return "", err
	}
	return mutate(ctx, deps.Audit, input.Actor, change{
		category:     audit.CategoryAnnouncement,
		action:       audit.ActionDelete,
		resourceType: "announcement",
		resourceID:   input.ID,
	}, func() (string, error) {
		return deps.Backend.DeleteAnnouncement(ctx, input.ID)
	})
}
