package orchestrators

import (
	"context"

	"clubadmin/internal/domain/audit"
	"clubadmin/internal/domain/member"
)

// MemberBackend defines the backend calls needed by committee member orchestrators.
type MemberBackend interface {
	AddMember(ctx context.Context, m member.Member) (string, error)
	UpdateMember(ctx context.Context, id string, m member.Member) (string, error)
	DeleteMember(ctx context.Context, id string) (string, error)
}

// MemberDeps holds dependencies for committee member orchestrators.
type MemberDeps struct {
	Backend MemberBackend
	Audit   AuditRecorder
}

// SaveMemberInput carries input for add and update.
type SaveMemberInput struct {
	ID     string
	Member member.Member
	Actor  Actor
}

// ExecuteAddMember posts a new committee member.
// PRE: Every profile field filled in; committee defaults to "new"
func ExecuteAddMember(ctx context.Context, input SaveMemberInput, deps MemberDeps) (string, error) {
	m := input.Member
	if err := m.Validate(); err != nil {
		return "", err
	}
	return mutate(ctx, deps.Audit, input.Actor, change{
		category:     audit.CategoryMember,
		action:       audit.ActionCreate,
		resourceType: "member",
		description:  m.Name + " (" + m.Post + ")",
	}, func() (string, error) {
		return deps.Backend.AddMember(ctx, m)
	})
}

// ExecuteUpdateMember replaces a committee member.
func ExecuteUpdateMember(ctx context.Context, input SaveMemberInput, deps MemberDeps) (string, error) {
	m := input.Member
	if err := m.Validate(); err != nil {
		return "", err
	}
	return mutate(ctx, deps.Audit, input.Actor, change{
		category:     audit.CategoryMember,
		action:       audit.ActionUpdate,
		resourceType: "member",
		resourceID:   input.ID,
		description:  m.Name,
	}, func() (string, error) {
		return deps.Backend.UpdateMember(ctx, input.ID, m)
	})
}

// ExecuteDeleteMember removes a committee member once confirmed.
func ExecuteDeleteMember(ctx context.Context, input DeleteInput, deps MemberDeps) (string, error) {
	if err := confirmDelete(input); err != nil {
		return "", err
	}
	return mutate(ctx, deps.Audit, input.Actor, change{
		category:     audit.CategoryMember,
		action:       audit.ActionDelete,
		resourceType: "member",
		resourceID:   input.ID,
	}, func() (string, error) {
		return deps.Backend.DeleteMember(ctx, input.ID)
	})
}
