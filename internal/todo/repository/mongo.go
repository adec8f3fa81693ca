package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogotex/todo/internal/todo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo implements Repository on a MongoDB collection ("todos" by default).
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

// EnsureIndexes creates a non-unique index on "thing". Duplicate texts are allowed.
func (m *MongoRepo) EnsureIndexes(ctx context.Context) error {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "thing", Value: 1}}}
	if _, err := m.col.Indexes().CreateOne(ctx, idx); err != nil {
		return fmt.Errorf("create thing index: %w", err)
	}
	return nil
}

func (m *MongoRepo) Insert(ctx context.Context, thing string) (*todo.Todo, error) {
	t := &todo.Todo{Thing: thing, Completed: false}
	res, err := m.col.InsertOne(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		t.ID = oid
	}
	return t, nil
}

func (m *MongoRepo) List(ctx context.Context) ([]*todo.Todo, error) {
	cur, err := m.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find todos: %w", err)
	}
	defer cur.Close(ctx)
	out := []*todo.Todo{}
	for cur.Next(ctx) {
		var t todo.Todo
		if err := cur.Decode(&t); err != nil {
			return nil, fmt.Errorf("decode todo: %w", err)
		}
		out = append(out, &t)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate todos: %w", err)
	}
	return out, nil
}

func (m *MongoRepo) CountIncomplete(ctx context.Context) (int64, error) {
	n, err := m.col.CountDocuments(ctx, bson.M{"completed": false})
	if err != nil {
		return 0, fmt.Errorf("count incomplete todos: %w", err)
	}
	return n, nil
}

// SetCompleted updates the newest document whose thing matches. It uses
// findAndModify so the _id sort and the update happen in one command.
func (m *MongoRepo) SetCompleted(ctx context.Context, thing string, completed bool) (bool, error) {
	opts := options.FindOneAndUpdate().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetUpsert(false)
	err := m.col.FindOneAndUpdate(ctx, bson.M{"thing": thing}, bson.M{"$set": bson.M{"completed": completed}}, opts).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("update todo: %w", err)
	}
	return true, nil
}

func (m *MongoRepo) DeleteOne(ctx context.Context, thing string) (bool, error) {
	res, err := m.col.DeleteOne(ctx, bson.M{"thing": thing})
	if err != nil {
		return false, fmt.Errorf("delete todo: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (m *MongoRepo) Ping(ctx context.Context) error {
	return m.col.Database().Client().Ping(ctx, nil)
}
