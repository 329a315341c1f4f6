package activity

import (
	"encoding/json"
	"errors"
	"strings"
)

// Event types
const (
	TypeEvents    = "events"
	TypeProjects  = "projects"
	TypeUpcoming  = "upcoming"
	TypeWorkshops = "workshops"
)

// ValidTypes lists the accepted event types in display order.
var ValidTypes = []string{TypeEvents, TypeProjects, TypeUpcoming, TypeWorkshops}

// Domain errors
var (
	ErrEmptyTitle       = errors.New("activity title cannot be empty")
	ErrEmptyDescription = errors.New("activity description cannot be empty")
	ErrInvalidType      = errors.New("event type must be one of: events, projects, upcoming, workshops")
	ErrEmptyImage       = errors.New("please provide a main image URL")
)

// Gallery is an ordered list of image URLs. The backend has served it both as a
// JSON array and as a comma-separated string; both decode to the same slice.
type Gallery []string

// UnmarshalJSON accepts either an array of strings or a comma-separated string.
func (g *Gallery) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*g = ParseGallery(strings.Join(list, ","))
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*g = ParseGallery(s)
		return nil
	}
	*g = Gallery{}
	return nil
}

// Joined returns the comma-joined wire form used by updates.
func (g Gallery) Joined() string {
	return strings.Join(g, ",")
}

// ParseGallery splits a comma-separated URL list, dropping blanks.
func ParseGallery(input string) Gallery {
	urls := Gallery{}
	for _, u := range strings.Split(input, ",") {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// Activity is a club event, project, workshop, or upcoming item.
type Activity struct {
	ID          string  `json:"_id,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	EventType   string  `json:"event_type"`
	Image       string  `json:"image"`
	Gallery     Gallery `json:"gallery"`
}

// UnmarshalJSON falls back to main_image when image is absent.
func (a *Activity) UnmarshalJSON(data []byte) error {
	type plain Activity
	var raw struct {
		plain
		MainImage string `json:"main_image"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*a = Activity(raw.plain)
	if a.Image == "" {
		a.Image = raw.MainImage
	}
	if a.Gallery == nil {
		a.Gallery = Gallery{}
	}
	return nil
}

// Validate checks required activity fields.
// PRE: Activity struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Activity) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(a.Description) == "" {
		return ErrEmptyDescription
	}
	if !IsValidType(a.EventType) {
		return ErrInvalidType
	}
	return nil
}

// ValidateForCreate adds the main image requirement that only applies to new activities.
func (a *Activity) ValidateForCreate() error {
	if err := a.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(a.Image) == "" {
		return ErrEmptyImage
	}
	return nil
}

// IsValidType reports whether t is one of the accepted event types.
func IsValidType(t string) bool {
	for _, v := range ValidTypes {
		if v == t {
			return true
		}
	}
	return false
}
