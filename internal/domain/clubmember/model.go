package clubmember

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyName    = errors.New("club member name cannot be empty")
	ErrInvalidEmail = errors.New("club member email must be valid")
	ErrEmptySeries  = errors.New("club member series cannot be empty")
	ErrEmptyPhone   = errors.New("club member phone cannot be empty")
	ErrEmptyDept    = errors.New("club member dept cannot be empty")
)

// ClubMember is a registered general member of the club. The backend keys
// club members by email rather than by a generated identifier.
type ClubMember struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Series string `json:"series"`
	Phone  string `json:"phone"`
	Dept   string `json:"dept"`
}

// Validate checks that every field of the add form is filled in.
// PRE: ClubMember struct is populated
// POST: Returns nil if valid, error otherwise
func (c *ClubMember) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if err := ValidateEmail(c.Email); err != nil {
		return err
	}
	if strings.TrimSpace(c.Series) == "" {
		return ErrEmptySeries
	}
	if strings.TrimSpace(c.Phone) == "" {
		return ErrEmptyPhone
	}
	if strings.TrimSpace(c.Dept) == "" {
		return ErrEmptyDept
	}
	return nil
}

// ValidateEmail applies the same check as an HTML email input.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ErrInvalidEmail
	}
	return nil
}
