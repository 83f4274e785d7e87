package repository

import (
	"context"
	"errors"
	"sort"
)

var (
	// ErrNotFound is returned by entity repositories when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a unique constraint of the store.
	ErrDuplicate = errors.New("duplicate key value violates unique constraint")
	// ErrEmptyFilter is returned when an update or delete is issued without a filter.
	ErrEmptyFilter = errors.New("refusing to modify rows without a filter")
)

// Filter selects rows whose columns equal the given values. Keys are column names.
type Filter map[string]interface{}

// Patch holds column assignments for UpdateWhere. Keys are column names.
type Patch map[string]interface{}

// Columns returns the filter keys in a stable order.
func (f Filter) Columns() []string {
	cols := make([]string, 0, len(f))
	for k := range f {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}

// Table is the data access layer over one named table. Rows come back ordered by id.
type Table[T any] interface {
	Name() string
	QueryAll(ctx context.Context) ([]T, error)
	FindWhere(ctx context.Context, filter Filter) ([]T, error)
	// Insert writes one row and refreshes it with the stored representation.
	Insert(ctx context.Context, row *T) error
	UpdateWhere(ctx context.Context, patch Patch, filter Filter) ([]T, error)
	// DeleteWhere removes the matching rows. Deleting nothing is not an error.
	DeleteWhere(ctx context.Context, filter Filter) ([]T, error)
	// Upsert inserts the row or, when a row with the same conflict columns
	// exists, overwrites it in a single store call.
	Upsert(ctx context.Context, row *T, conflictColumns ...string) error
	Ping(ctx context.Context) error
}
