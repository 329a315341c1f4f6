package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"clubadmin/internal/adapters/backend"
	"clubadmin/internal/application/orchestrators"
)

// resource describes one backend collection edited through create, edit and
// delete screens. Every screen follows the same rules: success shows a toast
// and navigates to listURL after the redirect delay, failure keeps the form
// populated with an error toast and does not navigate.
type resource[T any] struct {
	name    string // log label, e.g. "sponsor"
	title   string // human label, e.g. "Sponsor"
	form    string // form template
	listURL string
	editURL func(id string) string
	extra   map[string]any // static form data, e.g. select options

	created, updated, deleted  string // success toast when the backend sends no message
	notFound, fetchFailed      string
	createFailed               string
	updateFailed, deleteFailed string
	leaveOnFetchError          bool          // flash and redirect to listURL when the record cannot be loaded
	createDelay                time.Duration // overrides the redirect delay after a create

	bind   func(r *http.Request, editing bool) (T, error)
	fetch  func(ctx context.Context, c *backend.Client, id string) (T, error)
	create func(ctx context.Context, c *backend.Client, item T, actor orchestrators.Actor) (string, error)
	update func(ctx context.Context, c *backend.Client, id string, item T, actor orchestrators.Actor) (string, error)
	remove func(ctx context.Context, c *backend.Client, in orchestrators.DeleteInput) (string, error)
	label  func(T) string
}

func (res *resource[T]) formData(item T, id string, editing bool) map[string]any {
	action := res.listURL
	if editing {
		action = res.editURL(id)
	}
	data := map[string]any{
		"Title":   res.title,
		"Item":    item,
		"ID":      id,
		"Editing": editing,
		"Action":  action,
		"ListURL": res.listURL,
	}
	for k, v := range res.extra {
		data[k] = v
	}
	return data
}

// handleCreate serves GET (empty form) and POST (create) for a create screen.
// PRE: createURL is the path the form posts back to
func (res *resource[T]) handleCreate(createURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var blank T
		data := res.formData(blank, "", false)
		data["Action"] = createURL

		if r.Method == http.MethodGet {
			renderPage(w, r, http.StatusOK, res.form, data)
			return
		}

		item, err := res.bind(r, false)
		if err != nil {
			data["Item"] = item
			addToast(data, toastError, err.Error())
			renderPage(w, r, http.StatusUnprocessableEntity, res.form, data)
			return
		}
		msg, err := res.create(r.Context(), backendFor(r), item, actorFrom(r))
		if err != nil {
			data["Item"] = item
			addToast(data, toastError, mutationError(r, res.name, "create", err, res.createFailed))
			renderPage(w, r, statusFor(err), res.form, data)
			return
		}

		// Form resets to empty; the page moves on to the list after the delay.
		addToast(data, toastSuccess, orDefault(msg, res.created))
		delay := cfg.RedirectDelay
		if res.createDelay > 0 {
			delay = res.createDelay
		}
		data["Redirect"] = after(res.listURL, delay)
		renderPage(w, r, http.StatusOK, res.form, data)
	}
}

// handleEdit serves GET (prefilled form) and POST (update) for an edit screen.
func (res *resource[T]) handleEdit(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	client := backendFor(r)

	if r.Method == http.MethodGet {
		item, err := res.fetch(r.Context(), client, id)
		if err != nil {
			msg := backendError(r, res.name, "get", err, res.fetchFailed)
			if errors.Is(err, backend.ErrNotFound) && res.notFound != "" {
				msg = res.notFound
			}
			if res.leaveOnFetchError {
				redirectWithFlash(w, r, res.listURL, toastError, msg)
				return
			}
			var blank T
			data := res.formData(blank, id, true)
			data["Missing"] = true
			addToast(data, toastError, msg)
			renderPage(w, r, statusFor(err), res.form, data)
			return
		}
		renderPage(w, r, http.StatusOK, res.form, res.formData(item, id, true))
		return
	}

	item, err := res.bind(r, true)
	data := res.formData(item, id, true)
	if err != nil {
		addToast(data, toastError, err.Error())
		renderPage(w, r, http.StatusUnprocessableEntity, res.form, data)
		return
	}
	msg, err := res.update(r.Context(), client, id, item, actorFrom(r))
	if err != nil {
		addToast(data, toastError, mutationError(r, res.name, "update", err, res.updateFailed))
		renderPage(w, r, statusFor(err), res.form, data)
		return
	}
	addToast(data, toastSuccess, orDefault(msg, res.updated))
	data["Redirect"] = after(res.listURL, cfg.RedirectDelay)
	renderPage(w, r, http.StatusOK, res.form, data)
}

// handleDelete serves GET (confirmation page) and POST (delete when confirm=yes).
func (res *resource[T]) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	client := backendFor(r)
	data := map[string]any{
		"Title":     "Delete " + res.title,
		"Label":     id,
		"Action":    res.editURL(id) + "/delete",
		"CancelURL": res.editURL(id),
	}

	if r.Method == http.MethodGet {
		if item, err := res.fetch(r.Context(), client, id); err == nil {
			data["Label"] = res.label(item)
		}
		renderPage(w, r, http.StatusOK, "confirm_delete.html", data)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	msg, err := res.remove(r.Context(), client, orchestrators.DeleteInput{
		ID:        id,
		Confirmed: r.PostFormValue("confirm") == "yes",
		Actor:     actorFrom(r),
	})
	if errors.Is(err, orchestrators.ErrNotConfirmed) {
		http.Redirect(w, r, res.editURL(id), http.StatusSeeOther)
		return
	}
	if err != nil {
		addToast(data, toastError, mutationError(r, res.name, "delete", err, res.deleteFailed))
		renderPage(w, r, statusFor(err), "confirm_delete.html", data)
		return
	}
	redirectWithFlash(w, r, res.listURL, toastSuccess, orDefault(msg, res.deleted))
}

// mutationError turns a failed create/update/delete into toast text.
// Validation errors are shown as-is; backend errors are logged first.
func mutationError(r *http.Request, resource, op string, err error, fallback string) string {
	if !isBackendError(err) {
		return err.Error()
	}
	return backendError(r, resource, op, err, fallback)
}

func isBackendError(err error) bool {
	var apiErr *backend.APIError
	return errors.As(err, &apiErr) || errors.Is(err, backend.ErrTransport) || errors.Is(err, backend.ErrNotFound)
}

// statusFor picks the response status for a failed screen.
func statusFor(err error) int {
	switch {
	case errors.Is(err, backend.ErrNotFound):
		return http.StatusNotFound
	case isBackendError(err):
		return http.StatusBadGateway
	default:
		return http.StatusUnprocessableEntity
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
