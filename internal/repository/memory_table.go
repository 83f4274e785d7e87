package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

type record map[string]interface{}

// MemoryTable implements Table in process memory. Rows are addressed by their
// JSON field names, which match the store column names. It backs local runs
// with STORE_DRIVER=memory and the service tests.
type MemoryTable[T any] struct {
	mu     sync.RWMutex
	name   string
	unique []string
	rows   []record
	nextID int64
}

// NewMemoryTable creates an empty table enforcing uniqueness on the given columns
func NewMemoryTable[T any](name string, uniqueColumns ...string) *MemoryTable[T] {
	return &MemoryTable[T]{name: name, unique: uniqueColumns, nextID: 1}
}

func (t *MemoryTable[T]) Name() string {
	return t.name
}

func (t *MemoryTable[T]) QueryAll(_ context.Context) ([]T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.decodeAll(t.rows)
}

func (t *MemoryTable[T]) FindWhere(_ context.Context, filter Filter) ([]T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.decodeAll(t.match(filter))
}

func (t *MemoryTable[T]) Insert(_ context.Context, row *T) error {
	rec, err := encode(row)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conflicts(rec, nil) {
		return ErrDuplicate
	}
	rec["id"] = t.nextID
	t.nextID++
	t.rows = append(t.rows, rec)
	return decode(rec, row)
}

func (t *MemoryTable[T]) UpdateWhere(_ context.Context, patch Patch, filter Filter) ([]T, error) {
	if len(filter) == 0 {
		return nil, ErrEmptyFilter
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	matched := t.match(filter)
	if len(matched) > 1 && t.touchesUnique(patch) {
		return nil, ErrDuplicate
	}
	updated := make([]record, 0, len(matched))
	for _, rec := range matched {
		next := rec.clone()
		for col, v := range patch {
			if col == "id" {
				continue
			}
			next[col] = v
		}
		if t.conflicts(next, rec) {
			return nil, ErrDuplicate
		}
		updated = append(updated, next)
	}
	for i, rec := range matched {
		for col := range patch {
			if col != "id" {
				rec[col] = updated[i][col]
			}
		}
	}
	return t.decodeAll(matched)
}

func (t *MemoryTable[T]) DeleteWhere(_ context.Context, filter Filter) ([]T, error) {
	if len(filter) == 0 {
		return nil, ErrEmptyFilter
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	var removed []record
	kept := t.rows[:0]
	for _, rec := range t.rows {
		if rec.matches(filter) {
			removed = append(removed, rec)
			continue
		}
		kept = append(kept, rec)
	}
	t.rows = kept
	return t.decodeAll(removed)
}

func (t *MemoryTable[T]) Upsert(_ context.Context, row *T, conflictColumns ...string) error {
	if len(conflictColumns) == 0 {
		return fmt.Errorf("upsert on %s: no conflict columns", t.name)
	}
	rec, err := encode(row)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	key := Filter{}
	for _, col := range conflictColumns {
		key[col] = rec[col]
	}
	existing := t.match(key)
	if len(existing) == 0 {
		if t.conflicts(rec, nil) {
			return ErrDuplicate
		}
		rec["id"] = t.nextID
		t.nextID++
		t.rows = append(t.rows, rec)
		return decode(rec, row)
	}

	target := existing[0]
	rec["id"] = target["id"]
	if t.conflicts(rec, target) {
		return ErrDuplicate
	}
	for col := range target {
		delete(target, col)
	}
	for col, v := range rec {
		target[col] = v
	}
	return decode(target, row)
}

func (t *MemoryTable[T]) Ping(_ context.Context) error {
	return nil
}

func (t *MemoryTable[T]) match(filter Filter) []record {
	var out []record
	for _, rec := range t.rows {
		if rec.matches(filter) {
			out = append(out, rec)
		}
	}
	return out
}

// conflicts reports whether rec collides on a unique column with any row other than self.
func (t *MemoryTable[T]) conflicts(rec, self record) bool {
	for _, col := range t.unique {
		v, ok := rec[col]
		if !ok {
			continue
		}
		for _, other := range t.rows {
			if self != nil && sameRecord(other, self) {
				continue
			}
			if equalValues(other[col], v) {
				return true
			}
		}
	}
	return false
}

func (t *MemoryTable[T]) touchesUnique(patch Patch) bool {
	for _, col := range t.unique {
		if _, ok := patch[col]; ok {
			return true
		}
	}
	return false
}

func (t *MemoryTable[T]) decodeAll(recs []record) ([]T, error) {
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		var row T
		if err := decode(rec, &row); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}

func (r record) matches(filter Filter) bool {
	for col, want := range filter {
		if !equalValues(r[col], want) {
			return false
		}
	}
	return true
}

func (r record) clone() record {
	c := make(record, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

func sameRecord(a, b record) bool {
	return equalValues(a["id"], b["id"])
}

func equalValues(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}

func encode(v interface{}) (record, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode row: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var rec record
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("encode row: %w", err)
	}
	return rec, nil
}

func decode(rec record, v interface{}) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("decode row: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode row: %w", err)
	}
	return nil
}
