package web

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"clubadmin/internal/application/orchestrators"
	"clubadmin/internal/application/projections"
	"clubadmin/internal/domain/contact"
)

const contactURL = "/contact"

func contactDeps(r *http.Request) orchestrators.ContactDeps {
	return orchestrators.ContactDeps{
		Backend: backendFor(r),
		Mailer:  emailSender,
		From:    cfg.MailFrom,
		Audit:   auditEvents,
	}
}

// handleContactList renders the contact inbox (GET /contact).
func handleContactList(w http.ResponseWriter, r *http.Request) {
	list := projections.QueryList(r.Context(), "contact", backendFor(r).ListMessages)
	data := map[string]any{
		"Title":    "Contact Messages",
		"Messages": list.Items,
	}
	if list.Err != nil {
		addToast(data, toastError, failureText(list.Err, "Failed to fetch messages"))
	}
	renderPage(w, r, http.StatusOK, "contact_list.html", data)
}

// contactDetail loads one message into data; it reports whether the message was found.
func contactDetail(r *http.Request, id string, data map[string]any) bool {
	detail := projections.QueryDetail(r.Context(), "contact", id, backendFor(r).GetMessage)
	data["Message"] = detail.Item
	data["ID"] = id
	if detail.Err != nil {
		data["Missing"] = true
		addToast(data, toastError, failureText(detail.Err, "Failed to fetch message"))
		return false
	}
	return true
}

// handleContactDetail shows one message with the reply form (GET /contact/{id}).
func handleContactDetail(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	data := map[string]any{"Title": "Contact Message"}
	contactDetail(r, id, data)
	renderPage(w, r, http.StatusOK, "contact_detail.html", data)
}

// handleContactReply sends a reply to the message author (POST /contact/{id}/reply).
// POST: Success clears the reply box; failure keeps the typed reply
func handleContactReply(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	response := r.PostFormValue("reply")

	data := map[string]any{"Title": "Contact Message", "Reply": response}
	result, err := orchestrators.ExecuteReplyToContact(r.Context(), orchestrators.ReplyInput{
		MessageID: id,
		Response:  response,
		Actor:     actorFrom(r),
	}, contactDeps(r))

	// The orchestrator already fetched the message unless the reply was blank.
	data["ID"] = id
	switch {
	case result.Loaded:
		data["Message"] = result.Original
	case errors.Is(err, contact.ErrEmptyReply):
		contactDetail(r, id, data)
	default:
		data["Message"] = result.Original
		data["Missing"] = true
	}

	switch {
	case errors.Is(err, contact.ErrEmptyReply):
		addToast(data, toastError, "Reply message cannot be empty")
		renderPage(w, r, http.StatusUnprocessableEntity, "contact_detail.html", data)
	case err != nil:
		addToast(data, toastError, mutationError(r, "contact", "reply", err, "Failed to send reply"))
		renderPage(w, r, statusFor(err), "contact_detail.html", data)
	default:
		data["Reply"] = ""
		addToast(data, toastSuccess, orDefault(result.Notice, "Reply sent successfully!"))
		renderPage(w, r, http.StatusOK, "contact_detail.html", data)
	}
}

// handleContactDelete confirms and deletes a message (GET/POST /contact/{id}/delete).
func handleContactDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	detailURL := contactURL + "/" + id
	data := map[string]any{
		"Title":     "Delete Message",
		"Label":     id,
		"Action":    detailURL + "/delete",
		"CancelURL": detailURL,
	}

	if r.Method == http.MethodGet {
		if m, err := backendFor(r).GetMessage(r.Context(), id); err == nil {
			data["Label"] = "Message from " + m.Username
		}
		renderPage(w, r, http.StatusOK, "confirm_delete.html", data)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	msg, err := orchestrators.ExecuteDeleteContactMessage(r.Context(), orchestrators.DeleteInput{
		ID:        id,
		Confirmed: r.PostFormValue("confirm") == "yes",
		Actor:     actorFrom(r),
	}, contactDeps(r))
	if errors.Is(err, orchestrators.ErrNotConfirmed) {
		http.Redirect(w, r, detailURL, http.StatusSeeOther)
		return
	}
	if err != nil {
		addToast(data, toastError, mutationError(r, "contact", "delete", err, "Failed to delete message"))
		renderPage(w, r, statusFor(err), "confirm_delete.html", data)
		return
	}
	redirectWithFlash(w, r, contactURL, toastSuccess, orDefault(msg, "Message deleted successfully"))
}
