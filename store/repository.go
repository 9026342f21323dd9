// SPDX-License-Identifier: MIT
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Repository is a keyed collection of exercise records.
type Repository interface {
	// Get returns the record stored under no, or ErrNotFound.
	Get(ctx context.Context, no int) (Record, error)

	// Put replaces the record stored under no. It never creates one:
	// a missing key yields ErrNotFound. The stored record's No is set to no.
	Put(ctx context.Context, no int, rec Record) error

	// Insert adds rec under rec.No, or fails with ErrExists.
	Insert(ctx context.Context, rec Record) error

	// List returns all records ordered by No.
	List(ctx context.Context) ([]Record, error)
}

// Memory is an in-process Repository. The zero value is not usable; call NewMemory.
type Memory struct {
	mu      sync.RWMutex // guards records
	records map[int]Record
}

var _ Repository = (*Memory)(nil)

// NewMemory returns a Memory preloaded with recs. Duplicate or non-positive
// keys are rejected.
func NewMemory(recs ...Record) (*Memory, error) {
	m := &Memory{records: make(map[int]Record, len(recs))}
	for _, rec := range recs {
		if err := m.insert(rec); err != nil {
			return nil, storeErrorf("NewMemory", err)
		}
	}

	return m, nil
}

// Get implements Repository.
func (m *Memory) Get(ctx context.Context, no int) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	m.mu.RLock()
	rec, ok := m.records[no]
	m.mu.RUnlock()
	if !ok {
		return Record{}, fmt.Errorf("Get %d: %w", no, ErrNotFound)
	}

	return rec, nil
}

// Put implements Repository.
func (m *Memory) Put(ctx context.Context, no int, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[no]; !ok {
		return fmt.Errorf("Put %d: %w", no, ErrNotFound)
	}
	rec.No = no
	m.records[no] = rec

	return nil
}

// Insert implements Repository.
func (m *Memory) Insert(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.insert(rec)
}

// insert assumes mu is held for writing (or m is not yet shared).
func (m *Memory) insert(rec Record) error {
	if rec.No <= 0 {
		return fmt.Errorf("Insert %d: %w", rec.No, ErrInvalidKey)
	}
	if _, ok := m.records[rec.No]; ok {
		return fmt.Errorf("Insert %d: %w", rec.No, ErrExists)
	}
	m.records[rec.No] = rec

	return nil
}

// set stores rec under rec.No unconditionally.
func (m *Memory) set(rec Record) {
	m.mu.Lock()
	m.records[rec.No] = rec
	m.mu.Unlock()
}

// remove deletes the record under no, if any.
func (m *Memory) remove(no int) {
	m.mu.Lock()
	delete(m.records, no)
	m.mu.Unlock()
}

// List implements Repository.
func (m *Memory) List(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	out := make([]Record, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, rec)
	}
	m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].No < out[j].No })

	return out, nil
}
