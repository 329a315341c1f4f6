package sponsor

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyName    = errors.New("sponsor name cannot be empty")
	ErrEmptyLogoURL = errors.New("sponsor logo URL cannot be empty")
)

// Sponsor is a club sponsor.
type Sponsor struct {
	ID      string `json:"_id,omitempty"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url"`
}

// Validate checks required sponsor fields.
// PRE: Sponsor struct is populated
// POST: Returns nil if valid, error otherwise
func (s *Sponsor) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(s.LogoURL) == "" {
		return ErrEmptyLogoURL
	}
	return nil
}
