package projections

import (
	"context"
	"log/slog"
)

// Listing is one fetched collection. Err is set when the fetch failed;
// Items is never nil so screens can range over it unconditionally.
type Listing[T any] struct {
	Items []T
	Err   error
}

// Detail is one fetched record.
type Detail[T any] struct {
	Item  T
	Found bool
	Err   error
}

// QueryList runs one list fetch and folds its failure into the result.
// POST: Items is non-nil; a failure is logged as backend_error
func QueryList[T any](ctx context.Context, resource string, fetch func(context.Context) ([]T, error)) Listing[T] {
	items, err := fetch(ctx)
	if err != nil {
		slog.Error("backend_error", "resource", resource, "op", "list", "error", err)
		return Listing[T]{Items: []T{}, Err: err}
	}
	if items == nil {
		items = []T{}
	}
	return Listing[T]{Items: items}
}

// QueryDetail runs one record fetch.
// POST: Found is true only when the fetch succeeded
func QueryDetail[T any](ctx context.Context, resource, id string, fetch func(context.Context, string) (T, error)) Detail[T] {
	item, err := fetch(ctx, id)
	if err != nil {
		slog.Error("backend_error", "resource", resource, "op", "get", "id", id, "error", err)
		return Detail[T]{Err: err}
	}
	return Detail[T]{Item: item, Found: true}
}
