package todo

import "go.mongodb.org/mongo-driver/bson/primitive"

// Todo is a single item of the todo list. Thing is both the item's text and
// the key mutations look it up by; ID is assigned by the store on insert and
// only used for ordering.
type Todo struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Thing     string             `json:"thing" bson:"thing"`
	Completed bool               `json:"completed" bson:"completed"`
}
