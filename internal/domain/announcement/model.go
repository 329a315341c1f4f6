package announcement

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyTitle       = errors.New("announcement title cannot be empty")
	ErrEmptyDescription = errors.New("announcement description cannot be empty")
)

// Announcement is a club announcement as served by the backend.
// Date is kept verbatim; the backend decides its format.
type Announcement struct {
	ID          string `json:"_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	PostURL     string `json:"post_url"`
	Date        string `json:"date,omitempty"`
}

// Validate checks the fields the create and edit forms mark as required.
// PRE: Announcement struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Announcement) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(a.Description) == "" {
		return ErrEmptyDescription
	}
	return nil
}
