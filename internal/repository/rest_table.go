package repository

import (
	"context"
	"errors"
	"fmt"

	apperrors "fourdx-backend/internal/errors"
	"fourdx-backend/internal/supabase"
)

// RestTable implements Table over the Supabase PostgREST API.
type RestTable[T any] struct {
	client *supabase.Client
	name   string
}

// NewRestTable creates a PostgREST-backed table
func NewRestTable[T any](client *supabase.Client, name string) *RestTable[T] {
	return &RestTable[T]{client: client, name: name}
}

func (t *RestTable[T]) Name() string {
	return t.name
}

func (t *RestTable[T]) QueryAll(ctx context.Context) ([]T, error) {
	return t.FindWhere(ctx, nil)
}

func (t *RestTable[T]) FindWhere(ctx context.Context, filter Filter) ([]T, error) {
	q := t.filtered(filter).Select("*").Order("id", true)
	resp, err := q.Execute(ctx)
	return t.rows("select", resp, err)
}

func (t *RestTable[T]) Insert(ctx context.Context, row *T) error {
	resp, err := t.client.From(t.name).ExecuteInsert(ctx, row)
	return t.refresh("insert", row, resp, err)
}

func (t *RestTable[T]) UpdateWhere(ctx context.Context, patch Patch, filter Filter) ([]T, error) {
	if len(filter) == 0 {
		return nil, ErrEmptyFilter
	}
	resp, err := t.filtered(filter).ExecuteUpdate(ctx, patch)
	return t.rows("update", resp, err)
}

func (t *RestTable[T]) DeleteWhere(ctx context.Context, filter Filter) ([]T, error) {
	if len(filter) == 0 {
		return nil, ErrEmptyFilter
	}
	resp, err := t.filtered(filter).ExecuteDelete(ctx)
	return t.rows("delete", resp, err)
}

func (t *RestTable[T]) Upsert(ctx context.Context, row *T, conflictColumns ...string) error {
	if len(conflictColumns) == 0 {
		return fmt.Errorf("upsert on %s: no conflict columns", t.name)
	}
	resp, err := t.client.From(t.name).OnConflict(conflictColumns...).ExecuteInsert(ctx, row)
	return t.refresh("upsert", row, resp, err)
}

func (t *RestTable[T]) Ping(ctx context.Context) error {
	if err := t.client.Ping(ctx); err != nil {
		return apperrors.NewStoreError("ping", t.name, err)
	}
	return nil
}

func (t *RestTable[T]) filtered(filter Filter) *supabase.QueryBuilder {
	q := t.client.From(t.name)
	for _, col := range filter.Columns() {
		q = q.Eq(col, filter[col])
	}
	return q
}

func (t *RestTable[T]) rows(op string, resp *supabase.Response, err error) ([]T, error) {
	if err := t.check(op, resp, err); err != nil {
		return nil, err
	}
	rows := []T{}
	if err := resp.JSON(&rows); err != nil {
		return nil, apperrors.NewStoreError(op, t.name, fmt.Errorf("decode response: %w", err))
	}
	return rows, nil
}

func (t *RestTable[T]) refresh(op string, row *T, resp *supabase.Response, err error) error {
	rows, err := t.rows(op, resp, err)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return apperrors.NewStoreError(op, t.name, errors.New("empty representation returned"))
	}
	*row = rows[0]
	return nil
}

func (t *RestTable[T]) check(op string, resp *supabase.Response, err error) error {
	if err != nil {
		return apperrors.NewStoreError(op, t.name, err)
	}
	if err := resp.Err(); err != nil {
		var apiErr *supabase.APIError
		if errors.As(err, &apiErr) && apiErr.IsUniqueViolation() {
			return ErrDuplicate
		}
		return apperrors.NewStoreError(op, t.name, err)
	}
	return nil
}
