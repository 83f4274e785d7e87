package repository

import (
	"context"
	"errors"
	"fmt"

	apperrors "fourdx-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTable implements Table on a Postgres database through GORM.
// The *gorm.DB must be opened with TranslateError so unique violations
// surface as gorm.ErrDuplicatedKey.
type GormTable[T any] struct {
	db   *gorm.DB
	name string
}

// NewGormTable creates a GORM-backed table
func NewGormTable[T any](db *gorm.DB, name string) *GormTable[T] {
	return &GormTable[T]{db: db, name: name}
}

func (t *GormTable[T]) Name() string {
	return t.name
}

func (t *GormTable[T]) query(ctx context.Context) *gorm.DB {
	return t.db.WithContext(ctx).Table(t.name)
}

func (t *GormTable[T]) QueryAll(ctx context.Context) ([]T, error) {
	var rows []T
	if err := t.query(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, t.wrap("select", err)
	}
	return rows, nil
}

func (t *GormTable[T]) FindWhere(ctx context.Context, filter Filter) ([]T, error) {
	var rows []T
	if err := t.query(ctx).Where(map[string]interface{}(filter)).Order("id").Find(&rows).Error; err != nil {
		return nil, t.wrap("select", err)
	}
	return rows, nil
}

func (t *GormTable[T]) Insert(ctx context.Context, row *T) error {
	if err := t.query(ctx).Create(row).Error; err != nil {
		return t.wrap("insert", err)
	}
	return nil
}

func (t *GormTable[T]) UpdateWhere(ctx context.Context, patch Patch, filter Filter) ([]T, error) {
	if len(filter) == 0 {
		return nil, ErrEmptyFilter
	}
	var rows []T
	err := t.query(ctx).
		Model(&rows).
		Clauses(clause.Returning{}).
		Where(map[string]interface{}(filter)).
		Updates(map[string]interface{}(patch)).Error
	if err != nil {
		return nil, t.wrap("update", err)
	}
	return rows, nil
}

func (t *GormTable[T]) DeleteWhere(ctx context.Context, filter Filter) ([]T, error) {
	if len(filter) == 0 {
		return nil, ErrEmptyFilter
	}
	var rows []T
	err := t.query(ctx).
		Clauses(clause.Returning{}).
		Where(map[string]interface{}(filter)).
		Delete(&rows).Error
	if err != nil {
		return nil, t.wrap("delete", err)
	}
	return rows, nil
}

func (t *GormTable[T]) Upsert(ctx context.Context, row *T, conflictColumns ...string) error {
	if len(conflictColumns) == 0 {
		return fmt.Errorf("upsert on %s: no conflict columns", t.name)
	}
	columns := make([]clause.Column, 0, len(conflictColumns))
	for _, c := range conflictColumns {
		columns = append(columns, clause.Column{Name: c})
	}
	err := t.query(ctx).
		Clauses(clause.OnConflict{Columns: columns, UpdateAll: true}).
		Create(row).Error
	if err != nil {
		return t.wrap("upsert", err)
	}
	return nil
}

func (t *GormTable[T]) Ping(ctx context.Context) error {
	sqlDB, err := t.db.DB()
	if err != nil {
		return t.wrap("ping", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return t.wrap("ping", err)
	}
	return nil
}

func (t *GormTable[T]) wrap(op string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return apperrors.NewStoreError(op, t.name, err)
}
