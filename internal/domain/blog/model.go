package blog

import (
	"errors"
	"strings"
	"time"
)

// CreateDateLayout is the date format the backend expects when a post is created.
const CreateDateLayout = "Jan 2, 2006"

// Domain errors
var (
	ErrEmptyTitle       = errors.New("blog title cannot be empty")
	ErrEmptyDescription = errors.New("blog description cannot be empty")
	ErrEmptyAuthor      = errors.New("blog author cannot be empty")
	ErrEmptyDate        = errors.New("please select a date")
	ErrNegativeLikes    = errors.New("likes cannot be negative")
)

// Blog is a blog post. Tags keep the order the editor typed them in.
type Blog struct {
	ID          string   `json:"_id,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Author      string   `json:"author"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	Likes       int      `json:"likes"`
	Date        string   `json:"date"`
}

// Validate checks required blog fields.
// PRE: Blog struct is populated
// POST: Returns nil if valid, error otherwise
func (b *Blog) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(b.Description) == "" {
		return ErrEmptyDescription
	}
	if strings.TrimSpace(b.Author) == "" {
		return ErrEmptyAuthor
	}
	if strings.TrimSpace(b.Date) == "" {
		return ErrEmptyDate
	}
	return ValidateLikes(b.Likes)
}

// ValidateLikes rejects negative like counts.
func ValidateLikes(likes int) error {
	if likes < 0 {
		return ErrNegativeLikes
	}
	return nil
}

// ParseTags splits a comma-separated tag input, trimming blanks and dropping empties.
// POST: Returns a non-nil slice in input order
func ParseTags(input string) []string {
	tags := []string{}
	for _, t := range strings.Split(input, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// JoinTags renders tags back into the editor's comma-separated form.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// NormalizeDate converts a form date (YYYY-MM-DD) to the layout given.
// Values that are not form dates are returned unchanged.
func NormalizeDate(value, layout string) string {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(value))
	if err != nil {
		return value
	}
	return t.Format(layout)
}
