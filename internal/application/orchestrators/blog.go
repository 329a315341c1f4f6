package orchestrators

import (
	"context"
	"strconv"

	"clubadmin/internal/domain/audit"
	"clubadmin/internal/domain/blog"
)

// UpdateDateLayout is the ISO form blog updates send their date in.
const UpdateDateLayout = "2006-01-02T15:04:05.000Z07:00"

// BlogBackend defines the backend calls needed by blog orchestrators.
type BlogBackend interface {
	CreateBlog(ctx context.Context, b blog.Blog) (string, error)
	UpdateBlog(ctx context.Context, id string, b blog.Blog) (string, error)
	SetBlogLikes(ctx context.Context, id string, likes int) (string, error)
	DeleteBlog(ctx context.Context, id string) (string, error)
}

// BlogDeps holds dependencies for blog orchestrators.
type BlogDeps struct {
	Backend BlogBackend
	Audit   AuditRecorder
}

// SaveBlogInput carries input for create and update.
// Date is the form value (YYYY-MM-DD) or whatever the backend last returned.
type SaveBlogInput struct {
	ID    string
	Blog  blog.Blog
	Actor Actor
}

// --- Create Blog ---

// ExecuteCreateBlog posts a new blog with zero likes.
// PRE: Title, description, author and date non-empty
// POST: Date sent as "Jan 2, 2006"
func ExecuteCreateBlog(ctx context.Context, input SaveBlogInput, deps BlogDeps) (string, error) {
	b := input.Blog
	b.Likes = 0
	if err := b.Validate(); err != nil {
		return "", err
	}
	b.Date = blog.NormalizeDate(b.Date, blog.CreateDateLayout)
	if b.Tags == nil {
		b.Tags = []string{}
	}
	return mutate(ctx, deps.Audit, input.Actor, change{
		category:     audit.CategoryBlog,
		action:       audit.ActionCreate,
		resourceType: "blog",
		description:  b.Title,
	}, func() (string, error) {
		return deps.Backend.CreateBlog(ctx, b)
	})
}

// --- Update Blog ---

// ExecuteUpdateBlog replaces the editable fields of a blog.
// POST: Date sent in ISO form; likes sent unchanged
func ExecuteUpdateBlog(ctx context.Context, input SaveBlogInput, deps BlogDeps) (string, error) {
	b := input.Blog
	if err := b.Validate(); err != nil {
		return "", err
	}
	b.Date = blog.NormalizeDate(b.Date, UpdateDateLayout)
	if b.Tags == nil {
		b.Tags = []string{}
	}
	return mutate(ctx, deps.Audit, input.Actor, change{
		category:     audit.CategoryBlog,
		action:       audit.ActionUpdate,
		resourceType: "blog",
		resourceID:   input.ID,
		description:  b.Title,
	}, func() (string, error) {
		return deps.Backend.UpdateBlog(ctx, input.ID, b)
	})
}

// --- Set Blog Likes ---

// SetBlogLikesInput carries input for the set likes orchestrator.
type SetBlogLikesInput struct {
	ID    string
	Likes int
	Actor Actor
}

// ExecuteSetBlogLikes overwrites a blog's like counter.
// PRE: Likes >= 0
func ExecuteSetBlogLikes(ctx context.Context, input SetBlogLikesInput, deps BlogDeps) (string, error) {
	if err := blog.ValidateLikes(input.Likes); err != nil {
		return "", err
	}
	return mutate(ctx, deps.Audit, input.Actor, change{
		category:     audit.CategoryBlog,
		action:       audit.ActionLike,
		resourceType: "blog",
		resourceID:   input.ID,
		description:  "likes set to " + strconv.Itoa(input.Likes),
	}, func() (string, error) {
		return deps.Backend.SetBlogLikes(ctx, input.ID, input.Likes)
	})
}

// --- Delete Blog ---

// ExecuteDeleteBlog removes a blog once confirmed.
func ExecuteDeleteBlog(ctx context.Context, input DeleteInput, deps BlogDeps) (string, error) {
	if err := confirmDelete(input); err != nil {
		return "", err
	}
	return mutate(ctx, deps.Audit, input.Actor, change{
		category:     audit.CategoryBlog,
		action:       audit.ActionDelete,
		resourceType: "blog",
		resourceID:   input.ID,
	}, func() (string, error) {
		return deps.Backend.DeleteBlog(ctx, input.ID)
	})
}
