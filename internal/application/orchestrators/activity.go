package orchestrators

import (
	"context"

	"clubadmin/internal/domain/activity"
	"clubadmin/internal/domain/audit"
)

// ActivityBackend defines the backend calls needed by activity orchestrators.
type ActivityBackend interface {
	CreateActivity(ctx context.Context, a activity.Activity) (string, error)
	UpdateActivity(ctx context.Context, id string, a activity.Activity) (string, error)
	DeleteActivity(ctx context.Context, id string) (string, error)
}

// ActivityDeps holds dependencies for activity orchestrators.
type ActivityDeps struct {
	Backend ActivityBackend
	Audit   AuditRecorder
}

// SaveActivityInput carries input for create and update.
type SaveActivityInput struct {
	ID       string
	Activity activity.Activity
	Actor    Actor
}

// ExecuteCreateActivity posts a new activity.
// PRE: Title, description, valid event type and main image
func ExecuteCreateActivity(ctx context.Context, input SaveActivityInput, deps ActivityDeps) (string, error) {
	a := input.Activity
	if err := a.ValidateForCreate(); err != nil {
		return "", err
	}
	return mutate(ctx, deps.Audit, input.Actor, change{
		category:     audit.CategoryActivity,
		action:       audit.ActionCreate,
		resourceType: a.EventType,
		description:  a.Title,
	}, func() (string, error) {
		return deps.Backend.CreateActivity(ctx, a)
	})
}

// ExecuteUpdateActivity replaces an existing activity. The main image may be blank.
func ExecuteUpdateActivity(ctx context.Context, input SaveActivityInput, deps ActivityDeps) (string, error) {
	a := input.Activity
	if err := a.Validate(); err != nil {
		return "", err
	}
	return mutate(ctx, deps.Audit, input.Actor, change{
		category:     audit.CategoryActivity,
		action:       audit.ActionUpdate,
		resourceType: a.EventType,
		resourceID:   input.ID,
		description:  a.Title,
	}, func() (string, error) {
		return deps.Backend.UpdateActivity(ctx, input.ID, a)
	})
}

// ExecuteDeleteActivity removes an activity once confirmed.
func ExecuteDeleteActivity(ctx context.Context, input DeleteInput, deps ActivityDeps) (string, error) {
	if err := confirmDelete(input); err != nil {
		return "", err
	}
	return mutate(ctx, deps.Audit, input.Actor, change{
		category:     audit.CategoryActivity,
		action:       audit.ActionDelete,
		resourceType: "activity",
		resourceID:   input.ID,
	}, func() (string, error) {
		return deps.Backend.DeleteActivity(ctx, input.ID)
	})
}
