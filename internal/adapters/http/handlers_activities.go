package web

import (
	"context"
	"net/http"
	"time"

	"clubadmin/internal/adapters/backend"
	"clubadmin/internal/application/orchestrators"
	"clubadmin/internal/application/projections"
	"clubadmin/internal/domain/activity"
)

// handleActivityList renders activities grouped by event type (GET /activities).
func handleActivityList(w http.ResponseWriter, r *http.Request) {
	list := projections.QueryList(r.Context(), "activity", backendFor(r).ListActivities)

	type group struct {
		Type  string
		Items []activity.Activity
	}
	groups := make([]group, 0, len(activity.ValidTypes))
	for _, t := range activity.ValidTypes {
		g := group{Type: t, Items: []activity.Activity{}}
		for _, a := range list.Items {
			if a.EventType == t {
				g.Items = append(g.Items, a)
			}
		}
		groups = append(groups, g)
	}

	data := map[string]any{
		"Title":      "Activities",
		"Activities": list.Items,
		"Groups":     groups,
	}
	if list.Err != nil {
		addToast(data, toastError, failureText(list.Err, "Failed to fetch activities"))
	}
	renderPage(w, r, http.StatusOK, "activities.html", data)
}

func bindActivity(r *http.Request, _ bool) (activity.Activity, error) {
	if err := parseForm(r); err != nil {
		return activity.Activity{}, err
	}
	a := activity.Activity{
		Title:       field(r, "title"),
		Description: r.PostFormValue("description"),
		EventType:   field(r, "event_type"),
		Gallery:     activity.ParseGallery(r.PostFormValue("gallery")),
	}
	image, err := imageField(r, "image", "activities")
	a.Image = image
	return a, err
}

var activities = &resource[activity.Activity]{
	name:              "activity",
	title:             "Activity",
	form:              "activity_form.html",
	listURL:           "/activities",
	editURL:           func(id string) string { return "/edit_activity/" + id },
	extra:             map[string]any{"EventTypes": activity.ValidTypes},
	created:           "Activity created successfully!",
	updated:           "Activity updated successfully!",
	deleted:           "Activity deleted successfully",
	notFound:          "Activity not found",
	fetchFailed:       "Failed to fetch activity",
	createFailed:      "Failed to create activity",
	updateFailed:      "Failed to update activity",
	deleteFailed:      "Failed to delete activity",
	leaveOnFetchError: true,
	createDelay:       1500 * time.Millisecond,
	bind:              bindActivity,
	fetch: func(ctx context.Context, c *backend.Client, id string) (activity.Activity, error) {
		return c.GetActivity(ctx, id)
	},
	create: func(ctx context.Context, c *backend.Client, a activity.Activity, actor orchestrators.Actor) (string, error) {
		return orchestrators.ExecuteCreateActivity(ctx, orchestrators.SaveActivityInput{Activity: a, Actor: actor},
			orchestrators.ActivityDeps{Backend: c, Audit: auditEvents})
	},
	update: func(ctx context.Context, c *backend.Client, id string, a activity.Activity, actor orchestrators.Actor) (string, error) {
		return orchestrators.ExecuteUpdateActivity(ctx, orchestrators.SaveActivityInput{ID: id, Activity: a, Actor: actor},
			orchestrators.ActivityDeps{Backend: c, Audit: auditEvents})
	},
	remove: func(ctx context.Context, c *backend.Client, in orchestrators.DeleteInput) (string, error) {
		return orchestrators.ExecuteDeleteActivity(ctx, in, orchestrators.ActivityDeps{Backend: c, Audit: auditEvents})
	},
	label: func(a activity.Activity) string { return a.Title },
}
