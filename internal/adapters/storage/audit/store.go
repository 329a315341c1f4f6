package audit

import (
	"context"

	domain "clubadmin/internal/domain/audit"
)

// Store defines the interface for audit event persistence.
type Store interface {
	// Save persists an audit event.
	// PRE: event has an ID
	// POST: Event is persisted
	Save(ctx context.Context, event domain.Event) error

	// List returns audit events with optional filtering.
	// PRE: limit > 0
	// POST: Returns events ordered by timestamp desc
	List(ctx context.Context, filter Filter, limit int) ([]domain.Event, error)

	// GetByID retrieves a specific audit event.
	GetByID(ctx context.Context, id string) (domain.Event, error)
}

// Filter narrows List. Nil fields do not filter.
type Filter struct {
	Category   *domain.Category
	Action     *domain.Action
	Actor      *string
	ResourceID *string
	Since      *string
}

var _ Store = (*SQLiteStore)(nil)
