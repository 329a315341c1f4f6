package member

import (
	"errors"
	"strings"
)

// Committee values
const (
	CommitteeNew = "new"
	CommitteeOld = "old"
)

// Domain errors
var (
	ErrEmptyName        = errors.New("member name cannot be empty")
	ErrEmptyImageURL    = errors.New("member image URL cannot be empty")
	ErrEmptyPost        = errors.New("member post cannot be empty")
	ErrEmptyRoll        = errors.New("member roll cannot be empty")
	ErrEmptyDepartment  = errors.New("member department cannot be empty")
	ErrEmptyContact     = errors.New("member contact cannot be empty")
	ErrEmptySeries      = errors.New("member series cannot be empty")
	ErrInvalidCommittee = errors.New("committee must be 'new' or 'old'")
)

// Member is a committee member shown on the public site.
type Member struct {
	ID         string `json:"_id,omitempty"`
	Name       string `json:"name"`
	ImageURL   string `json:"image_url"`
	Post       string `json:"post"`
	Roll       string `json:"roll"`
	Department string `json:"department"`
	Contact    string `json:"contact"`
	Series     string `json:"series"`
	Committee  string `json:"committee"`
}

// Validate checks if the Member has valid data.
// An empty committee defaults to the current one.
// PRE: Member struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (m *Member) Validate() error {
	required := []struct {
		value string
		err   error
	}{
		{m.Name, ErrEmptyName},
		{m.ImageURL, ErrEmptyImageURL},
		{m.Post, ErrEmptyPost},
		{m.Roll, ErrEmptyRoll},
		{m.Department, ErrEmptyDepartment},
		{m.Contact, ErrEmptyContact},
		{m.Series, ErrEmptySeries},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return f.err
		}
	}
	if m.Committee == "" {
		m.Committee = CommitteeNew
	}
	if m.Committee != CommitteeNew && m.Committee != CommitteeOld {
		return ErrInvalidCommittee
	}
	return nil
}
