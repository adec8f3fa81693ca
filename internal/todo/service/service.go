package service

import (
	"context"

	"github.com/gogotex/todo/internal/todo"
	"github.com/gogotex/todo/internal/todo/repository"
	"github.com/gogotex/todo/pkg/metrics"
)

// Operation names, used as metric labels.
const (
	OpList           = "list"
	OpAdd            = "add"
	OpMarkComplete   = "mark_complete"
	OpMarkIncomplete = "mark_incomplete"
	OpDelete         = "delete"
)

// Overview is what the list view renders: every item plus how many are still open.
type Overview struct {
	Items []*todo.Todo
	Left  int64
}

// Service holds the todo operations used by the handler layer.
type Service struct {
	repo repository.Repository
}

func NewService(r repository.Repository) *Service {
	return &Service{repo: r}
}

// NewMemoryService returns a Service backed by the in-memory repository.
func NewMemoryService() *Service {
	return NewService(repository.NewMemoryRepo())
}

// Overview reads the full list and the incomplete count. The two reads are
// independent, so a concurrent write may land between them.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	ov, err := s.overview(ctx)
	metrics.ObserveOperation(OpList, err)
	return ov, err
}

func (s *Service) overview(ctx context.Context) (*Overview, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	left, err := s.repo.CountIncomplete(ctx)
	if err != nil {
		return nil, err
	}
	return &Overview{Items: items, Left: left}, nil
}

func (s *Service) Add(ctx context.Context, thing string) (*todo.Todo, error) {
	t, err := s.repo.Insert(ctx, thing)
	metrics.ObserveOperation(OpAdd, err)
	return t, err
}

// MarkComplete reports whether an item matched; callers are free to ignore it.
func (s *Service) MarkComplete(ctx context.Context, thing string) (bool, error) {
	matched, err := s.repo.SetCompleted(ctx, thing, true)
	metrics.ObserveOperation(OpMarkComplete, err)
	return matched, err
}

func (s *Service) MarkIncomplete(ctx context.Context, thing string) (bool, error) {
	matched, err := s.repo.SetCompleted(ctx, thing, false)
	metrics.ObserveOperation(OpMarkIncomplete, err)
	return matched, err
}

func (s *Service) Delete(ctx context.Context, thing string) (bool, error) {
	deleted, err := s.repo.DeleteOne(ctx, thing)
	metrics.ObserveOperation(OpDelete, err)
	return deleted, err
}

// Ping checks that the backing store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
