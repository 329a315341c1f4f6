package web

import (
	"context"
	"net/http"

	"clubadmin/internal/adapters/backend"
	"clubadmin/internal/application/orchestrators"
	"clubadmin/internal/application/projections"
	"clubadmin/internal/domain/member"
)

// handleMemberList renders the committee, new committee first (GET /member).
func handleMemberList(w http.ResponseWriter, r *http.Request) {
	list := projections.QueryList(r.Context(), "member", backendFor(r).ListMembers)

	current, former := []member.Member{}, []member.Member{}
	for _, m := range list.Items {
		if m.Committee == member.CommitteeOld {
			former = append(former, m)
		} else {
			current = append(current, m)
		}
	}
	data := map[string]any{
		"Title":   "Committee Members",
		"Current": current,
		"Former":  former,
	}
	if list.Err != nil {
		addToast(data, toastError, failureText(list.Err, "Failed to fetch members"))
	}
	renderPage(w, r, http.StatusOK, "members.html", data)
}

func bindMember(r *http.Request, _ bool) (member.Member, error) {
	if err := parseForm(r); err != nil {
		return member.Member{}, err
	}
	m := member.Member{
		Name:       field(r, "name"),
		Post:       field(r, "post"),
		Roll:       field(r, "roll"),
		Department: field(r, "department"),
		Contact:    field(r, "contact"),
		Series:     field(r, "series"),
		Committee:  field(r, "committee"),
	}
	image, err := imageField(r, "image_url", "members")
	m.ImageURL = image
	return m, err
}

var members = &resource[member.Member]{
	name:         "member",
	title:        "Member",
	form:         "member_form.html",
	listURL:      "/member",
	editURL:      func(id string) string { return "/member/" + id },
	extra:        map[string]any{"Committees": []string{member.CommitteeNew, member.CommitteeOld}},
	created:      "Member added successfully!",
	updated:      "Member updated successfully!",
	deleted:      "Member deleted successfully!",
	fetchFailed:  "Failed to fetch member",
	createFailed: "Failed to add member",
	updateFailed: "Update failed!",
	deleteFailed: "Delete failed!",
	bind:         bindMember,
	fetch: func(ctx context.Context, c *backend.Client, id string) (member.Member, error) {
		return c.GetMember(ctx, id)
	},
	create: func(ctx context.Context, c *backend.Client, m member.Member, actor orchestrators.Actor) (string, error) {
		return orchestrators.ExecuteAddMember(ctx, orchestrators.SaveMemberInput{Member: m, Actor: actor},
			orchestrators.MemberDeps{Backend: c, Audit: auditEvents})
	},
	update: func(ctx context.Context, c *backend.Client, id string, m member.Member, actor orchestrators.Actor) (string, error) {
		return orchestrators.ExecuteUpdateMember(ctx, orchestrators.SaveMemberInput{ID: id, Member: m, Actor: actor},
			orchestrators.MemberDeps{Backend: c, Audit: auditEvents})
	},
	remove: func(ctx context.Context, c *backend.Client, in orchestrators.DeleteInput) (string, error) {
		return orchestrators.ExecuteDeleteMember(ctx, in, orchestrators.MemberDeps{Backend: c, Audit: auditEvents})
	},
	label: func(m member.Member) string { return m.Name + " (" + m.Post + ")" },
}
