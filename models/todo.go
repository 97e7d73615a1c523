package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Todo struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	Title     string             `json:"title" bson:"title"`
	Completed bool               `json:"completed" bson:"completed"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
}

// CreateTodoRequest is the body accepted by POST /todos.
type CreateTodoRequest struct {
	Title string `json:"title"`
}

// UpdateTodoRequest is the body accepted by PUT /todos/:id.
// Nil fields are left unchanged.
type UpdateTodoRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}
