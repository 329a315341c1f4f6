package web

import (
	"context"
	"errors"
	"net/http"

	"clubadmin/internal/adapters/backend"
	"clubadmin/internal/application/orchestrators"
	"clubadmin/internal/application/projections"
	"clubadmin/internal/domain/announcement"
	"clubadmin/internal/domain/sponsor"
)

// handleHome renders announcements and sponsors (GET /).
// POST: Each list renders independently; a failed fetch shows a toast and an empty list
func handleHome(w http.ResponseWriter, r *http.Request) {
	res := projections.QueryGetHome(r.Context(), projections.GetHomeDeps{Backend: backendFor(r)})

	data := map[string]any{
		"Title":         "Home",
		"Announcements": res.Announcements.Items,
		"Sponsors":      res.Sponsors.Items,
	}
	if res.Announcements.Err != nil {
		addToast(data, toastError, failureText(res.Announcements.Err, "Failed to fetch announcements"))
	}
	if res.Sponsors.Err != nil {
		addToast(data, toastError, failureText(res.Sponsors.Err, "Failed to fetch sponsors"))
	}
	renderPage(w, r, http.StatusOK, "home.html", data)
}

// handleSendMail serves the broadcast form (GET/POST /send-mail).
func handleSendMail(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"Title": "Send mail to all members"}
	if r.Method == http.MethodGet {
		renderPage(w, r, http.StatusOK, "send_mail.html", data)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.SendMailInput{
		Subject: field(r, "subject"),
		Body:    r.PostFormValue("body"),
		Actor:   actorFrom(r),
	}
	data["Subject"], data["Body"] = input.Subject, input.Body

	msg, err := orchestrators.ExecuteSendMailToAll(r.Context(), input, orchestrators.ClubMemberDeps{
		Backend: backendFor(r),
		Audit:   auditEvents,
	})
	if errors.Is(err, orchestrators.ErrMailIncomplete) {
		addToast(data, toastError, "Subject and body are required.")
		renderPage(w, r, http.StatusUnprocessableEntity, "send_mail.html", data)
		return
	}
	if err != nil {
		addToast(data, toastError, backendError(r, "mail", "send", err, "Failed to send emails."))
		renderPage(w, r, statusFor(err), "send_mail.html", data)
		return
	}

	data["Subject"], data["Body"] = "", ""
	addToast(data, toastSuccess, orDefault(msg, "Emails sent successfully."))
	renderPage(w, r, http.StatusOK, "send_mail.html", data)
}

func bindAnnouncement(r *http.Request, _ bool) (announcement.Announcement, error) {
	if err := parseForm(r); err != nil {
		return announcement.Announcement{}, err
	}
	a := announcement.Announcement{
		Title:       field(r, "title"),
		Description: r.PostFormValue("description"),
		PostURL:     field(r, "post_url"),
	}
	image, err := imageField(r, "image", "announcements")
	a.Image = image
	return a, err
}

var announcements = &resource[announcement.Announcement]{
	name:         "announcement",
	title:        "Announcement",
	form:         "announcement_form.html",
	listURL:      "/",
	editURL:      func(id string) string { return "/edit_announcement/" + id },
	created:      "Announcement created successfully",
	updated:      "Announcement updated successfully",
	deleted:      "Announcement deleted successfully",
	fetchFailed:  "Failed to fetch announcement",
	createFailed: "Failed to create announcement",
	updateFailed: "Failed to update announcement",
	deleteFailed: "Failed to delete announcement",
	bind:         bindAnnouncement,
	fetch: func(ctx context.Context, c *backend.Client, id string) (announcement.Announcement, error) {
		return c.GetAnnouncement(ctx, id)
	},
	create: func(ctx context.Context, c *backend.Client, a announcement.Announcement, actor orchestrators.Actor) (string, error) {
		return orchestrators.ExecuteCreateAnnouncement(ctx, orchestrators.SaveAnnouncementInput{Announcement: a, Actor: actor},
			orchestrators.AnnouncementDeps{Backend: c, Audit: auditEvents})
	},
	update: func(ctx context.Context, c *backend.Client, id string, a announcement.Announcement, actor orchestrators.Actor) (string, error) {
		return orchestrators.ExecuteUpdateAnnouncement(ctx, orchestrators.SaveAnnouncementInput{ID: id, Announcement: a, Actor: actor},
			orchestrators.AnnouncementDeps{Backend: c, Audit: auditEvents})
	},
	remove: func(ctx context.Context, c *backend.Client, in orchestrators.DeleteInput) (string, error) {
		return orchestrators.ExecuteDeleteAnnouncement(ctx, in, orchestrators.AnnouncementDeps{Backend: c, Audit: auditEvents})
	},
	label: func(a announcement.Announcement) string { return a.Title },
}

func bindSponsor(r *http.Request, _ bool) (sponsor.Sponsor, error) {
	if err := parseForm(r); err != nil {
		return sponsor.Sponsor{}, err
	}
	s := sponsor.Sponsor{Name: field(r, "name")}
	logo, err := imageField(r, "logo_url", "sponsors")
	s.LogoURL = logo
	return s, err
}

var sponsors = &resource[sponsor.Sponsor]{
	name:         "sponsor",
	title:        "Sponsor",
	form:         "sponsor_form.html",
	listURL:      "/",
	editURL:      func(id string) string { return "/edit_sponsor/" + id },
	created:      "Sponsor created successfully",
	updated:      "Sponsor updated successfully",
	deleted:      "Sponsor deleted successfully",
	fetchFailed:  "Failed to fetch sponsor",
	createFailed: "Failed to create sponsor",
	updateFailed: "Failed to update sponsor",
	deleteFailed: "Failed to delete sponsor",
	bind:         bindSponsor,
	fetch: func(ctx context.Context, c *backend.Client, id string) (sponsor.Sponsor, error) {
		return c.GetSponsor(ctx, id)
	},
	create: func(ctx context.Context, c *backend.Client, s sponsor.Sponsor, actor orchestrators.Actor) (string, error) {
		return orchestrators.ExecuteCreateSponsor(ctx, orchestrators.SaveSponsorInput{Sponsor: s, Actor: actor},
			orchestrators.SponsorDeps{Backend: c, Audit: auditEvents})
	},
	update: func(ctx context.Context, c *backend.Client, id string, s sponsor.Sponsor, actor orchestrators.Actor) (string, error) {
		return orchestrators.ExecuteUpdateSponsor(ctx, orchestrators.SaveSponsorInput{ID: id, Sponsor: s, Actor: actor},
			orchestrators.SponsorDeps{Backend: c, Audit: auditEvents})
	},
	remove: func(ctx context.Context, c *backend.Client, in orchestrators.DeleteInput) (string, error) {
		return orchestrators.ExecuteDeleteSponsor(ctx, in, orchestrators.SponsorDeps{Backend: c, Audit: auditEvents})
	},
	label: func(s sponsor.Sponsor) string { return s.Name },
}
