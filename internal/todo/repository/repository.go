package repository

import (
	"context"

	"github.com/gogotex/todo/internal/todo"
)

// Repository defines persistence operations for todo items.
//
// Items are addressed by their text. SetCompleted picks the most recently
// inserted match; DeleteOne picks the first match in the store's natural
// order. Neither treats "no match" as an error.
type Repository interface {
	Insert(ctx context.Context, thing string) (*todo.Todo, error)
	List(ctx context.Context) ([]*todo.Todo, error)
	CountIncomplete(ctx context.Context) (int64, error)
	SetCompleted(ctx context.Context, thing string, completed bool) (bool, error)
	DeleteOne(ctx context.Context, thing string) (bool, error)
	Ping(ctx context.Context) error
}
