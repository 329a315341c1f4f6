package projections

import (
	"context"

	storeAudit "clubadmin/internal/adapters/storage/audit"
	"clubadmin/internal/domain/audit"
)

// DefaultAuditLimit caps the audit screen when no limit is asked for.
const DefaultAuditLimit = 200

// AuditLogStore defines the store interface needed by the audit projection.
type AuditLogStore interface {
	List(ctx context.Context, filter storeAudit.Filter, limit int) ([]audit.Event, error)
}

// GetAuditLogQuery carries input for the audit projection. Blank fields do not filter.
type GetAuditLogQuery struct {
	Category string
	Actor    string
	Limit    int
}

// GetAuditLogDeps holds dependencies for the audit projection.
type GetAuditLogDeps struct {
	Store AuditLogStore
}

// QueryGetAuditLog lists recent audit events, newest first.
// PRE: Category, when set, is a known category
func QueryGetAuditLog(ctx context.Context, query GetAuditLogQuery, deps GetAuditLogDeps) ([]audit.Event, error) {
	var filter storeAudit.Filter
	if query.Category != "" {
		c := audit.Category(query.Category)
		filter.Category = &c
	}
	if query.Actor != "" {
		a := query.Actor
		filter.Actor = &a
	}
	limit := query.Limit
	if limit <= 0 || limit > DefaultAuditLimit {
		limit = DefaultAuditLimit
	}
	return deps.Store.List(ctx, filter, limit)
}
