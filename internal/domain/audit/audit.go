package audit

import (
	"time"

	"github.com/google/uuid"
)

// Category groups audit events by the resource they touch.
type Category string

const (
	CategoryAnnouncement Category = "announcement"
	CategorySponsor      Category = "sponsor"
	CategoryBlog         Category = "blog"
	CategoryActivity     Category = "activity"
	CategoryMember       Category = "member"
	CategoryClubMember   Category = "club_member"
	CategoryContact      Category = "contact"
	CategoryAchievement  Category = "achievement"
	CategoryDeveloper    Category = "developer"
	CategorySecurity     Category = "security"
	CategoryMail         Category = "mail"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryAnnouncement, CategorySponsor, CategoryBlog, CategoryActivity, CategoryMember,
	CategoryClubMember, CategoryContact, CategoryAchievement, CategoryDeveloper,
	CategorySecurity, CategoryMail,
}

// Action represents the action that occurred.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionLogin  Action = "login"
	ActionLogout Action = "logout"
	ActionSend   Action = "send"
	ActionReply  Action = "reply"
	ActionLike   Action = "like"
)

// Severity represents the severity level of an audit event.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Event is one mutation issued through the admin panel.
type Event struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Category     Category  `json:"category"`
	Action       Action    `json:"action"`
	Severity     Severity  `json:"severity"`
	Actor        string    `json:"actor"`
	ResourceID   string    `json:"resource_id"`
	ResourceType string    `json:"resource_type"`
	Description  string    `json:"description"`
	IPAddress    string    `json:"ip_address"`
	UserAgent    string    `json:"user_agent"`
}

// NewEvent creates a new audit event stamped with the current time.
// PRE: actor and action are non-empty
// POST: Returns an Event with a fresh ID and info severity
func NewEvent(actor string, category Category, action Action) Event {
	return Event{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Category:  category,
		Action:    action,
		Severity:  SeverityInfo,
		Actor:     actor,
	}
}

// WithSeverity sets the severity level.
func (e Event) WithSeverity(s Severity) Event {
	e.Severity = s
	return e
}

// WithResource sets resource information.
// PRE: resourceType is non-empty
// POST: Event resource fields are populated
func (e Event) WithResource(resourceType, resourceID string) Event {
	e.ResourceType = resourceType
	e.ResourceID = resourceID
	return e
}

// WithDescription sets the event description.
func (e Event) WithDescription(desc string) Event {
	e.Description = desc
	return e
}

// WithRequest sets IP address and user agent from the originating request.
func (e Event) WithRequest(ipAddress, userAgent string) Event {
	e.IPAddress = ipAddress
	e.UserAgent = userAgent
	return e
}
