package web

import (
	"errors"
	"net/http"
	"net/url"

	"clubadmin/internal/application/orchestrators"
	"clubadmin/internal/application/projections"
	"clubadmin/internal/domain/clubmember"
)

const clubMembersURL = "/all-club-members"

// clubMembersPage fetches the member list (and the optional lookup) into data.
func clubMembersPage(r *http.Request, email string, data map[string]any) {
	res := projections.QueryGetClubMembers(r.Context(),
		projections.GetClubMembersQuery{Email: email},
		projections.GetClubMembersDeps{Backend: backendFor(r)})

	data["Title"] = "Manage Club Members"
	data["Members"] = res.Members.Items
	data["SearchEmail"] = res.LookupOf
	data["Found"] = res.Lookup
	if res.Members.Err != nil {
		addToast(data, toastError, failureText(res.Members.Err, "Failed to fetch members"))
	}
	if res.Err != nil {
		addToast(data, toastError, failureText(res.Err, "Search failed"))
	}
}

// handleClubMembers lists club members and adds one (GET/POST /all-club-members).
func handleClubMembers(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"New": clubmember.ClubMember{}}

	if r.Method == http.MethodGet {
		clubMembersPage(r, r.URL.Query().Get("email"), data)
		renderPage(w, r, http.StatusOK, "club_members.html", data)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	m := clubmember.ClubMember{
		Name:   field(r, "name"),
		Email:  field(r, "email"),
		Series: field(r, "series"),
		Phone:  field(r, "phone"),
		Dept:   field(r, "dept"),
	}
	msg, err := orchestrators.ExecuteAddClubMember(r.Context(), orchestrators.AddClubMemberInput{
		Member: m,
		Actor:  actorFrom(r),
	}, orchestrators.ClubMemberDeps{Backend: backendFor(r), Audit: auditEvents})
	if err != nil {
		data["New"] = m
		toastText := mutationError(r, "club_member", "create", err, "Add failed")
		clubMembersPage(r, "", data)
		addToast(data, toastError, toastText)
		renderPage(w, r, statusFor(err), "club_members.html", data)
		return
	}
	redirectWithFlash(w, r, clubMembersURL, toastSuccess, orDefault(msg, "Club member added"))
}

// handleDeleteClubMember confirms and deletes a club member by email
// (GET/POST /all-club-members/delete).
func handleDeleteClubMember(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	email := r.Form.Get("email")
	data := map[string]any{
		"Title":     "Delete Club Member",
		"Label":     email,
		"Action":    clubMembersURL + "/delete",
		"CancelURL": clubMembersURL,
		"Hidden":    map[string]string{"email": email},
	}

	if r.Method == http.MethodGet {
		renderPage(w, r, http.StatusOK, "confirm_delete.html", data)
		return
	}

	msg, err := orchestrators.ExecuteDeleteClubMember(r.Context(), orchestrators.DeleteInput{
		ID:        email,
		Confirmed: r.PostFormValue("confirm") == "yes",
		Actor:     actorFrom(r),
	}, orchestrators.ClubMemberDeps{Backend: backendFor(r), Audit: auditEvents})
	if errors.Is(err, orchestrators.ErrNotConfirmed) {
		http.Redirect(w, r, clubMembersURL, http.StatusSeeOther)
		return
	}
	if err != nil {
		addToast(data, toastError, mutationError(r, "club_member", "delete", err, "Delete failed"))
		renderPage(w, r, statusFor(err), "confirm_delete.html", data)
		return
	}
	redirectWithFlash(w, r, clubMembersURL, toastSuccess, orDefault(msg, "Club member deleted"))
}

// clubMemberDeleteURL links a table row to its confirmation page.
func clubMemberDeleteURL(email string) string {
	return clubMembersURL + "/delete?email=" + url.QueryEscape(email)
}
