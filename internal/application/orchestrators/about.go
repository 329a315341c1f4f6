package orchestrators

import (
	"context"

	"clubadmin/internal/domain/achievement"
	"clubadmin/internal/domain/audit"
	"clubadmin/internal/domain/developer"
)

// AboutBackend defines the backend calls needed by achievement and developer orchestrators.
type AboutBackend interface {
	CreateAchievement(ctx context.Context, a achievement.Achievement) (string, error)
	UpdateAchievement(ctx context.Context, id string, a achievement.Achievement) (string, error)
	DeleteAchievement(ctx context.Context, id string) (string, error)
	CreateDeveloper(ctx context.Context, d developer.Developer) (string, error)
	UpdateDeveloper(ctx context.Context, id string, d developer.Developer) (string, error)
	DeleteDeveloper(ctx context.Context, id string) (string, error)
}

// AboutDeps holds dependencies for about-page orchestrators.
type AboutDeps struct {
	Backend AboutBackend
	Audit   AuditRecorder
}

// --- Achievements ---

// SaveAchievementInput carries input for create and update.
type SaveAchievementInput struct {
	ID          string
	Achievement achievement.Achievement
	Actor       Actor
}

// ExecuteCreateAchievement posts a new achievement.
func ExecuteCreateAchievement(ctx context.Context, input SaveAchievementInput, deps AboutDeps) (string, error) {
	a := input.Achievement
	if err := a.Validate(); err != nil {
		return "", err
	}
	return mutate(ctx, deps.Audit, input.Actor, change{
		category:     audit.CategoryAchievement,
		action:       audit.ActionCreate,
		resourceType: "achievement",
		description:  a.Title,
	}, func() (string, error) {
		return deps.Backend.CreateAchievement(ctx, a)
	})
}

// ExecuteUpdateAchievement replaces an achievement.
func ExecuteUpdateAchievement(ctx context.Context, input SaveAchievementInput, deps AboutDeps) (string, error) {
	a := input.Achievement
	if err := a.Validate(); err != nil {
		return "", err
	}
	return mutate(ctx, deps.Audit, input.Actor, change{
		category:     audit.CategoryAchievement,
		action:       audit.ActionUpdate,
		resourceType: "achievement",
		resourceID:   input.ID,
		description:  a.Title,
	}, func() (string, error) {
		return deps.Backend.UpdateAchievement(ctx, input.ID, a)
	})
}

// ExecuteDeleteAchievement removes an achievement once confirmed.
func ExecuteDeleteAchievement(ctx context.Context, input DeleteInput, deps AboutDeps) (string, error) {
	if err := confirmDelete(input); err != nil {
		return "", err
	}
	return mutate(ctx, deps.Audit, input.Actor, change{
		category:     audit.CategoryAchievement,
		action:       audit.ActionDelete,
		resourceType: "achievement",
		resourceID:   input.ID,
	}, func() (string, error) {
		return deps.Backend.DeleteAchievement(ctx, input.ID)
	})
}

// --- Developers ---

// SaveDeveloperInput carries input for create and update.
type SaveDeveloperInput struct {
	ID        string
	Developer developer.Developer
	Actor     Actor
}

// ExecuteCreateDeveloper adds a developer to the team page.
func ExecuteCreateDeveloper(ctx context.Context, input SaveDeveloperInput, deps AboutDeps) (string, error) {
	d := input.Developer
	if err := d.Validate(); err != nil {
		return "", err
	}
	return mutate(ctx, deps.Audit, input.Actor, change{
		category:     audit.CategoryDeveloper,
		action:       audit.ActionCreate,
		resourceType: "developer",
		description:  d.Name,
	}, func() (string, error) {
		return deps.Backend.CreateDeveloper(ctx, d)
	})
}

// ExecuteUpdateDeveloper replaces a developer.
func ExecuteUpdateDeveloper(ctx context.Context, input SaveDeveloperInput, deps AboutDeps) (string, error) {
	d := input.Developer
	if err := d.Validate(); err != nil {
		return "", err
	}
	return mutate(ctx, deps.Audit, input.Actor, change{
		category:     audit.CategoryDeveloper,
		action:       audit.ActionUpdate,
		resourceType: "developer",
		resourceID:   input.ID,
		description:  d.Name,
	}, func() (string, error) {
		return deps.Backend.UpdateDeveloper(ctx, input.ID, d)
	})
}

// ExecuteDeleteDeveloper removes a developer once confirmed.
func ExecuteDeleteDeveloper(ctx context.Context, input DeleteInput, deps AboutDeps) (string, error) {
	if err := confirmDelete(input); err != nil {
		return "", err
	}
	return mutate(ctx, deps.Audit, input.Actor, change{
		category:     audit.CategoryDeveloper,
		action:       audit.ActionDelete,
		resourceType: "developer",
		resourceID:   input.ID,
	}, func() (string, error) {
		return deps.Backend.DeleteDeveloper(ctx, input.ID)
	})
}
