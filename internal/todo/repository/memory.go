package repository

import (
	"context"
	"sync"

	"github.com/gogotex/todo/internal/todo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is an in-memory repository used by unit tests and when no
// document store is configured. Items are kept in insertion order, which
// stands in for the store's natural order.
type MemoryRepo struct {
	mu    sync.RWMutex
	items []*todo.Todo
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) Insert(_ context.Context, thing string) (*todo.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &todo.Todo{ID: primitive.NewObjectID(), Thing: thing, Completed: false}
	m.items = append(m.items, t)
	cp := *t
	return &cp, nil
}

// List returns copies so callers can't mutate stored items.
func (m *MemoryRepo) List(_ context.Context) ([]*todo.Todo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*todo.Todo, 0, len(m.items))
	for _, t := range m.items {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MemoryRepo) CountIncomplete(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var n int64
	for _, t := range m.items {
		if !t.Completed {
			n++
		}
	}
	return n, nil
}

func (m *MemoryRepo) SetCompleted(_ context.Context, thing string, completed bool) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.items) - 1; i >= 0; i-- {
		if m.items[i].Thing == thing {
			m.items[i].Completed = completed
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryRepo) DeleteOne(_ context.Context, thing string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, t := range m.items {
		if t.Thing == thing {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryRepo) Ping(_ context.Context) error {
	return nil
}
