package projections

import (
	"context"
	"log/slog"
	"strings"

	"clubadmin/internal/domain/clubmember"
)

// ClubMemberBackend defines the backend calls needed by the club member projection.
type ClubMemberBackend interface {
	ListClubMembers(ctx context.Context) ([]clubmember.ClubMember, error)
	FindClubMember(ctx context.Context, email string) (clubmember.ClubMember, error)
}

// GetClubMembersQuery carries input for the club member projection.
type GetClubMembersQuery struct {
	Email string // optional lookup
}

// GetClubMembersDeps holds dependencies for the club member projection.
type GetClubMembersDeps struct {
	Backend ClubMemberBackend
}

// GetClubMembersResult carries the member list and, when asked for, one looked-up member.
type GetClubMembersResult struct {
	Members  Listing[clubmember.ClubMember]
	Lookup   *clubmember.ClubMember
	LookupOf string
	Err      error // lookup failure
}

// QueryGetClubMembers lists club members and optionally looks one up by email.
// POST: Members is always populated; Lookup is set only on a successful lookup
func QueryGetClubMembers(ctx context.Context, query GetClubMembersQuery, deps GetClubMembersDeps) GetClubMembersResult {
	res := GetClubMembersResult{
		Members: QueryList(ctx, "club_member", deps.Backend.ListClubMembers),
	}
	email := strings.TrimSpace(query.Email)
	if email == "" {
		return res
	}
	res.LookupOf = email
	m, err := deps.Backend.FindClubMember(ctx, email)
	if err != nil {
		slog.Error("backend_error", "resource", "club_member", "op", "lookup", "error", err)
		res.Err = err
		return res
	}
	res.Lookup = &m
	return res
}
