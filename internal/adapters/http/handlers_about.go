package web

import (
	"context"
	"net/http"

	"clubadmin/internal/adapters/backend"
	"clubadmin/internal/application/orchestrators"
	"clubadmin/internal/application/projections"
	"clubadmin/internal/domain/achievement"
	"clubadmin/internal/domain/developer"
)

// handleAbout renders achievements and the developer team (GET /about_us).
func handleAbout(w http.ResponseWriter, r *http.Request) {
	res := projections.QueryGetAbout(r.Context(), projections.GetAboutDeps{Backend: backendFor(r)})

	data := map[string]any{
		"Title":        "About Us",
		"Achievements": res.Achievements.Items,
		"Developers":   res.Developers.Items,
	}
	if res.Achievements.Err != nil {
		addToast(data, toastError, failureText(res.Achievements.Err, "Failed to fetch achievements"))
	}
	if res.Developers.Err != nil {
		addToast(data, toastError, failureText(res.Developers.Err, "Failed to fetch developers"))
	}
	renderPage(w, r, http.StatusOK, "about.html", data)
}

func bindAchievement(r *http.Request, _ bool) (achievement.Achievement, error) {
	if err := parseForm(r); err != nil {
		return achievement.Achievement{}, err
	}
	return achievement.Achievement{
		Title:       field(r, "title"),
		Description: r.PostFormValue("description"),
	}, nil
}

var achievements = &resource[achievement.Achievement]{
	name:         "achievement",
	title:        "Achievement",
	form:         "achievement_form.html",
	listURL:      "/about_us",
	editURL:      func(id string) string { return "/edit_achievement/" + id },
	created:      "Achievement created successfully!",
	updated:      "Achievement updated successfully!",
	deleted:      "Achievement deleted successfully",
	fetchFailed:  "Failed to fetch achievement",
	createFailed: "Failed to create achievement",
	updateFailed: "Failed to update achievement",
	deleteFailed: "Failed to delete achievement",
	bind:         bindAchievement,
	fetch: func(ctx context.Context, c *backend.Client, id string) (achievement.Achievement, error) {
		return c.GetAchievement(ctx, id)
	},
	create: func(ctx context.Context, c *backend.Client, a achievement.Achievement, actor orchestrators.Actor) (string, error) {
		return orchestrators.ExecuteCreateAchievement(ctx, orchestrators.SaveAchievementInput{Achievement: a, Actor: actor},
			orchestrators.AboutDeps{Backend: c, Audit: auditEvents})
	},
	update: func(ctx context.Context, c *backend.Client, id string, a achievement.Achievement, actor orchestrators.Actor) (string, error) {
		return orchestrators.ExecuteUpdateAchievement(ctx, orchestrators.SaveAchievementInput{ID: id, Achievement: a, Actor: actor},
			orchestrators.AboutDeps{Backend: c, Audit: auditEvents})
	},
	remove: func(ctx context.Context, c *backend.Client, in orchestrators.DeleteInput) (string, error) {
		return orchestrators.ExecuteDeleteAchievement(ctx, in, orchestrators.AboutDeps{Backend: c, Audit: auditEvents})
	},
	label: func(a achievement.Achievement) string { return a.Title },
}

func bindDeveloper(r *http.Request, _ bool) (developer.Developer, error) {
	if err := parseForm(r); err != nil {
		return developer.Developer{}, err
	}
	d := developer.Developer{
		Name: field(r, "name"),
		Roll: field(r, "roll"),
		Dept: field(r, "dept"),
	}
	image, err := imageField(r, "image", "developers")
	d.Image = image
	return d, err
}

var developers = &resource[developer.Developer]{
	name:         "developer",
	title:        "Developer",
	form:         "developer_form.html",
	listURL:      "/about_us",
	editURL:      func(id string) string { return "/edit_developer/" + id },
	created:      "Developer created successfully!",
	updated:      "Developer updated successfully!",
	deleted:      "Developer deleted successfully",
	fetchFailed:  "Failed to fetch developer",
	createFailed: "Failed to create developer",
	updateFailed: "Failed to update developer",
	deleteFailed: "Failed to delete developer",
	bind:         bindDeveloper,
	fetch: func(ctx context.Context, c *backend.Client, id string) (developer.Developer, error) {
		return c.GetDeveloper(ctx, id)
	},
	create: func(ctx context.Context, c *backend.Client, d developer.Developer, actor orchestrators.Actor) (string, error) {
		return orchestrators.ExecuteCreateDeveloper(ctx, orchestrators.SaveDeveloperInput{Developer: d, Actor: actor},
			orchestrators.AboutDeps{Backend: c, Audit: auditEvents})
	},
	update: func(ctx context.Context, c *backend.Client, id string, d developer.Developer, actor orchestrators.Actor) (string, error) {
		return orchestrators.ExecuteUpdateDeveloper(ctx, orchestrators.SaveDeveloperInput{ID: id, Developer: d, Actor: actor},
			orchestrators.AboutDeps{Backend: c, Audit: auditEvents})
	},
	remove: func(ctx context.Context, c *backend.Client, in orchestrators.DeleteInput) (string, error) {
		return orchestrators.ExecuteDeleteDeveloper(ctx, in, orchestrators.AboutDeps{Backend: c, Audit: auditEvents})
	},
	label: func(d developer.Developer) string { return d.Name },
}
