package orchestrators

import (
	"context"

	"clubadmin/internal/domain/audit"
	"clubadmin/internal/domain/sponsor"
)

// SponsorBackend defines the backend calls needed by sponsor orchestrators.
type SponsorBackend interface {
	CreateSponsor(ctx context.Context, s sponsor.Sponsor) (string, error)
	UpdateSponsor(ctx context.Context, id string, s sponsor.Sponsor) (string, error)
	DeleteSponsor(ctx context.Context, id string) (string, error)
}

// SponsorDeps holds dependencies for sponsor orchestrators.
type SponsorDeps struct {
	Backend SponsorBackend
	Audit   AuditRecorder
}

// SaveSponsorInput carries input for create and update.
type SaveSponsorInput struct {
	ID      string
	Sponsor sponsor.Sponsor
	Actor   Actor
}

// ExecuteCreateSponsor posts a new sponsor.
// PRE: Name and logo URL non-empty
func ExecuteCreateSponsor(ctx context.Context, input SaveSponsorInput, deps SponsorDeps) (string, error) {
	s := input.Sponsor
	if err := s.Validate(); err != nil {
		return "", err
	}
	return mutate(ctx, deps.Audit, input.Actor, change{
		category:     audit.CategorySponsor,
		action:       audit.ActionCreate,
		resourceType: "sponsor",
		description:  s.Name,
	}, func() (string, error) {
		return deps.Backend.CreateSponsor(ctx, s)
	})
}

// ExecuteUpdateSponsor replaces an existing sponsor.
func ExecuteUpdateSponsor(ctx context.Context, input SaveSponsorInput, deps SponsorDeps) (string, error) {
	s := input.Sponsor
	if err := s.Validate(); err != nil {
		return "", err
	}
	return mutate(ctx, deps.Audit, input.Actor, change{
		category:     audit.CategorySponsor,
		action:       audit.ActionUpdate,
		resourceType: "sponsor",
		resourceID:   input.ID,
		description:  s.Name,
	}, func() (string, error) {
		return deps.Backend.UpdateSponsor(ctx, input.ID, s)
	})
}

// ExecuteDeleteSponsor removes a sponsor once confirmed.
func ExecuteDeleteSponsor(ctx context.Context, input DeleteInput, deps SponsorDeps) (string, error) {
	if err := confirmDelete(input); err != nil {
		return "", err
	}
	return mutate(ctx, deps.Audit, input.Actor, change{
		category:     audit.CategorySponsor,
		action:       audit.ActionDelete,
		resourceType: "sponsor",
		resourceID:   input.ID,
	}, func() (string, error) {
		return deps.Backend.DeleteSponsor(ctx, input.ID)
	})
}
