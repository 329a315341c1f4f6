package web

import (
	"net/http"

	"github.com/gorilla/mux"
)

// registerRoutes wires every guarded screen onto r.
// PRE: r is the protected subrouter
func registerRoutes(r *mux.Router) {
	get := []string{http.MethodGet}
	form := []string{http.MethodGet, http.MethodPost}

	// Home
	r.HandleFunc("/", handleHome).Methods(get...)
	r.HandleFunc("/send-mail", handleSendMail).Methods(form...)
	r.HandleFunc("/create_announcement", announcements.handleCreate("/create_announcement")).Methods(form...)
	r.HandleFunc("/edit_announcement/{id}", announcements.handleEdit).Methods(form...)
	r.HandleFunc("/edit_announcement/{id}/delete", announcements.handleDelete).Methods(form...)
	r.HandleFunc("/create_sponsor", sponsors.handleCreate("/create_sponsor")).Methods(form...)
	r.HandleFunc("/edit_sponsor/{id}", sponsors.handleEdit).Methods(form...)
	r.HandleFunc("/edit_sponsor/{id}/delete", sponsors.handleDelete).Methods(form...)
	r.HandleFunc(clubMembersURL, handleClubMembers).Methods(form...)
	r.HandleFunc(clubMembersURL+"/delete", handleDeleteClubMember).Methods(form...)

	// About
	r.HandleFunc("/about_us", handleAbout).Methods(get...)
	r.HandleFunc("/create_achievement", achievements.handleCreate("/create_achievement")).Methods(form...)
	r.HandleFunc("/edit_achievement/{id}", achievements.handleEdit).Methods(form...)
	r.HandleFunc("/edit_achievement/{id}/delete", achievements.handleDelete).Methods(form...)
	r.HandleFunc("/create_developer", developers.handleCreate("/create_developer")).Methods(form...)
	r.HandleFunc("/edit_developer/{id}", developers.handleEdit).Methods(form...)
	r.HandleFunc("/edit_developer/{id}/delete", developers.handleDelete).Methods(form...)

	// Blog
	r.HandleFunc("/blog", handleBlogList).Methods(get...)
	r.HandleFunc("/post_blog", blogs.handleCreate("/post_blog")).Methods(form...)
	r.HandleFunc("/blog/{id}", blogs.handleEdit).Methods(form...)
	r.HandleFunc("/blog/{id}/likes", handleBlogLikes).Methods(http.MethodPost)
	r.HandleFunc("/blog/{id}/delete", blogs.handleDelete).Methods(form...)

	// Members
	r.HandleFunc("/member", handleMemberList).Methods(get...)
	r.HandleFunc("/addmember", members.handleCreate("/addmember")).Methods(form...)
	r.HandleFunc("/member/{id}", members.handleEdit).Methods(form...)
	r.HandleFunc("/member/{id}/delete", members.handleDelete).Methods(form...)

	// Activities
	r.HandleFunc("/activities", handleActivityList).Methods(get...)
	r.HandleFunc("/create_activities", activities.handleCreate("/create_activities")).Methods(form...)
	r.HandleFunc("/edit_activity/{id}", activities.handleEdit).Methods(form...)
	r.HandleFunc("/edit_activity/{id}/delete", activities.handleDelete).Methods(form...)

	// Contact
	r.HandleFunc(contactURL, handleContactList).Methods(get...)
	r.HandleFunc(contactURL+"/{id}", handleContactDetail).Methods(get...)
	r.HandleFunc(contactURL+"/{id}/reply", handleContactReply).Methods(http.MethodPost)
	r.HandleFunc(contactURL+"/{id}/delete", handleContactDelete).Methods(form...)

	r.HandleFunc("/logout", handleLogout).Methods(http.MethodPost)

	// Admin
	r.HandleFunc("/admin/audit", handleAuditLog).Methods(get...)
	r.HandleFunc("/admin/perf", handlePerf).Methods(get...)
}
