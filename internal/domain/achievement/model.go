package achievement

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyTitle       = errors.New("achievement title cannot be empty")
	ErrEmptyDescription = errors.New("achievement description cannot be empty")
)

// Achievement is a club achievement listed on the about page.
type Achievement struct {
	ID          string `json:"_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate checks required achievement fields.
func (a *Achievement) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(a.Description) == "" {
		return ErrEmptyDescription
	}
	return nil
}
