package developer

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyName  = errors.New("developer name cannot be empty")
	ErrEmptyImage = errors.New("developer image cannot be empty")
	ErrEmptyRoll  = errors.New("developer roll cannot be empty")
	ErrEmptyDept  = errors.New("developer dept cannot be empty")
)

// Developer is a member of the website's developer team.
type Developer struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name"`
	Roll  string `json:"roll"`
	Dept  string `json:"dept"`
	Image string `json:"image"`
}

// Validate checks required developer fields.
// PRE: Developer struct is populated
// POST: Returns nil if valid, error otherwise
func (d *Developer) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(d.Image) == "" {
		return ErrEmptyImage
	}
	if strings.TrimSpace(d.Roll) == "" {
		return ErrEmptyRoll
	}
	if strings.TrimSpace(d.Dept) == "" {
		return ErrEmptyDept
	}
	return nil
}
