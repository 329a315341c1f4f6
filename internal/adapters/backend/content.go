package backend

import (
	"context"
	"net/http"

	"clubadmin/internal/domain/activity"
	"clubadmin/internal/domain/blog"
)

// ListBlogs returns every blog post.
func (c *Client) ListBlogs(ctx context.Context) ([]blog.Blog, error) {
	return list[blog.Blog](ctx, c, "/api/blogs/get_blogs", "blogs")
}

// GetBlog returns one blog post.
func (c *Client) GetBlog(ctx context.Context, id string) (blog.Blog, error) {
	b, err := get[blog.Blog](ctx, c, "/api/blogs/get_blogs/"+escape(id), "blog")
	if err == nil && b.Tags == nil {
		b.Tags = []string{}
	}
	return b, err
}

// CreateBlog posts a new blog with zero likes and no comments.
func (c *Client) CreateBlog(ctx context.Context, b blog.Blog) (string, error) {
	b.ID = ""
	b.Likes = 0
	payload := struct {
		blog.Blog
		Comments []any `json:"comments"`
	}{Blog: b, Comments: []any{}}
	return send(ctx, c, http.MethodPost, "/api/blogs/post_blog", payload)
}

// UpdateBlog replaces the blog post with the given id.
func (c *Client) UpdateBlog(ctx context.Context, id string, b blog.Blog) (string, error) {
	b.ID = ""
	return send(ctx, c, http.MethodPut, "/api/blogs/update_blog/"+escape(id), b)
}

// SetBlogLikes overwrites the like counter of one blog post.
func (c *Client) SetBlogLikes(ctx context.Context, id string, likes int) (string, error) {
	return send(ctx, c, http.MethodPut, "/api/blogs/set-like/"+escape(id), map[string]int{"likes": likes})
}

// DeleteBlog removes one blog post.
func (c *Client) DeleteBlog(ctx context.Context, id string) (string, error) {
	return send(ctx, c, http.MethodDelete, "/api/blogs/delete_blog/"+escape(id), nil)
}

// ListActivities returns every activity.
func (c *Client) ListActivities(ctx context.Context) ([]activity.Activity, error) {
	return list[activity.Activity](ctx, c, "/api/activities", "activities")
}

// GetActivity returns one activity.
func (c *Client) GetActivity(ctx context.Context, id string) (activity.Activity, error) {
	return get[activity.Activity](ctx, c, "/api/activities/"+escape(id), "activity")
}

// CreateActivity posts a new activity; the gallery travels as a JSON array.
func (c *Client) CreateActivity(ctx context.Context, a activity.Activity) (string, error) {
	a.ID = ""
	if a.Gallery == nil {
		a.Gallery = activity.Gallery{}
	}
	return send(ctx, c, http.MethodPost, "/api/activities", a)
}

// UpdateActivity replaces one activity; the gallery travels comma-joined.
func (c *Client) UpdateActivity(ctx context.Context, id string, a activity.Activity) (string, error) {
	payload := struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		EventType   string `json:"event_type"`
		Image       string `json:"image"`
		Gallery     string `json:"gallery"`
	}{a.Title, a.Description, a.EventType, a.Image, a.Gallery.Joined()}
	return send(ctx, c, http.MethodPut, "/api/activities/"+escape(id), payload)
}

// DeleteActivity removes one activity.
func (c *Client) DeleteActivity(ctx context.Context, id string) (string, error) {
	return send(ctx, c, http.MethodDelete, "/api/activities/"+escape(id), nil)
}
