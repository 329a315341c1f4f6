package web

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"clubadmin/internal/adapters/backend"
	"clubadmin/internal/application/orchestrators"
	"clubadmin/internal/application/projections"
	"clubadmin/internal/domain/blog"
)

// handleBlogList renders every blog post (GET /blog).
func handleBlogList(w http.ResponseWriter, r *http.Request) {
	list := projections.QueryList(r.Context(), "blog", backendFor(r).ListBlogs)
	data := map[string]any{
		"Title": "Blogs",
		"Blogs": list.Items,
	}
	if list.Err != nil {
		addToast(data, toastError, "Failed to fetch blogs")
	}
	renderPage(w, r, http.StatusOK, "blogs.html", data)
}

func bindBlog(r *http.Request, editing bool) (blog.Blog, error) {
	if err := parseForm(r); err != nil {
		return blog.Blog{}, err
	}
	b := blog.Blog{
		Title:       field(r, "title"),
		Description: r.PostFormValue("description"),
		Author:      field(r, "author"),
		Tags:        blog.ParseTags(r.PostFormValue("tags")),
		Date:        field(r, "date"),
	}
	if editing {
		b.Likes, _ = strconv.Atoi(field(r, "likes"))
	}
	image, err := imageField(r, "image", "blogs")
	b.Image = image
	return b, err
}

var blogs = &resource[blog.Blog]{
	name:              "blog",
	title:             "Blog",
	form:              "blog_form.html",
	listURL:           "/blog",
	editURL:           func(id string) string { return "/blog/" + id },
	created:           "Blog post created successfully!",
	updated:           "Blog updated successfully!",
	deleted:           "Blog deleted successfully!",
	fetchFailed:       "Failed to fetch blog",
	createFailed:      "Failed to create blog post",
	updateFailed:      "Failed to update blog",
	deleteFailed:      "Failed to delete blog",
	leaveOnFetchError: true,
	createDelay:       1500 * time.Millisecond,
	bind:              bindBlog,
	fetch: func(ctx context.Context, c *backend.Client, id string) (blog.Blog, error) {
		return c.GetBlog(ctx, id)
	},
	create: func(ctx context.Context, c *backend.Client, b blog.Blog, actor orchestrators.Actor) (string, error) {
		return orchestrators.ExecuteCreateBlog(ctx, orchestrators.SaveBlogInput{Blog: b, Actor: actor},
			orchestrators.BlogDeps{Backend: c, Audit: auditEvents})
	},
	update: func(ctx context.Context, c *backend.Client, id string, b blog.Blog, actor orchestrators.Actor) (string, error) {
		return orchestrators.ExecuteUpdateBlog(ctx, orchestrators.SaveBlogInput{ID: id, Blog: b, Actor: actor},
			orchestrators.BlogDeps{Backend: c, Audit: auditEvents})
	},
	remove: func(ctx context.Context, c *backend.Client, in orchestrators.DeleteInput) (string, error) {
		return orchestrators.ExecuteDeleteBlog(ctx, in, orchestrators.BlogDeps{Backend: c, Audit: auditEvents})
	},
	label: func(b blog.Blog) string { return b.Title },
}

// handleBlogLikes overwrites a post's like counter (POST /blog/{id}/likes).
// POST: Redirects back to the edit screen with a toast either way
func handleBlogLikes(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	likes, err := strconv.Atoi(field(r, "likes"))
	if err != nil {
		likes = 0
	}

	_, err = orchestrators.ExecuteSetBlogLikes(r.Context(), orchestrators.SetBlogLikesInput{
		ID:    id,
		Likes: likes,
		Actor: actorFrom(r),
	}, orchestrators.BlogDeps{Backend: backendFor(r), Audit: auditEvents})
	if err != nil {
		redirectWithFlash(w, r, blogs.editURL(id), toastError, mutationError(r, "blog", "like", err, "Failed to update likes"))
		return
	}
	redirectWithFlash(w, r, blogs.editURL(id), toastSuccess, "Like count updated!")
}
