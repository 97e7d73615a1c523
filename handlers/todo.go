package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jfmadeira/todoapp/models"
)

// @Summary List all todos.
// @Description fetch every todo, newest first.
// @Tags todos
// @Produce json
// @Success 200 {object} []models.Todo
// @Router /todos [get]
func ListTodos(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		todos := make([]models.Todo, 0)
		opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
		cursor, err := h.Db.Find(h.C, bson.M{}, opts)
		if err != nil {
			h.L.Errorf("[TodoDB] failed to fetch todos: %v", err)
			return ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch todos")
		}
		if err = cursor.All(h.C, &todos); err != nil {
			h.L.Errorf("[TodoDB] failed to decode todos: %v", err)
			return ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch todos")
		}
		return c.Status(fiber.StatusOK).JSON(todos)
	}
}

// @Summary Get a single todo.
// @Description fetch a single todo by id.
// @Tags todos
// @Param id path string true "Todo ID"
// @Produce json
// @Success 200 {object} models.Todo
// @Router /todos/{id} [get]
func GetOneTodo(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		// A malformed id can never name a record, so it reads as not found.
		id, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return ErrorResponse(c, fiber.StatusNotFound, "Todo not found")
		}

		var todo models.Todo
		if err = h.Db.FindOne(h.C, bson.M{"_id": id}).Decode(&todo); err != nil {
			if err == mongo.ErrNoDocuments {
				return ErrorResponse(c, fiber.StatusNotFound, "Todo not found")
			}
			h.L.Errorf("[TodoDB] failed to fetch todo %s: %v", id.Hex(), err)
			return ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch todo")
		}
		return c.Status(fiber.StatusOK).JSON(todo)
	}
}

// @Summary Create a todo.
// @Description create a single todo with the given title.
// @Tags todos
// @Accept json
// @Param todo body models.CreateTodoRequest true "Todo to create"
// @Produce json
// @Success 201 {object} models.Todo
// @Router /todos [post]
func CreateTodo(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		req := new(models.CreateTodoRequest)
		if err := c.BodyParser(req); err != nil {
			return ErrorResponse(c, fiber.StatusBadRequest, "request body malformed")
		}
		if strings.TrimSpace(req.Title) == "" {
			return ErrorResponse(c, fiber.StatusBadRequest, "Title is required")
		}

		todo := models.Todo{
			ID:        primitive.NewObjectID(),
			Title:     req.Title,
			Completed: false,
			CreatedAt: time.Now().UTC(),
		}
		if _, err := h.Db.InsertOne(h.C, todo); err != nil {
			h.L.Errorf("[TodoDB] failed to create todo: %v", err)
			return ErrorResponse(c, fiber.StatusBadRequest, "Failed to create todo")
		}
		return c.Status(fiber.StatusCreated).JSON(todo)
	}
}

// @Summary Update a todo.
// @Description update the title and/or completed flag of a todo.
// @Tags todos
// @Accept json
// @Param id path string true "Todo ID"
// @Param todo body models.UpdateTodoRequest true "Fields to update"
// @Produce json
// @Success 200 {object} models.Todo
// @Router /todos/{id} [put]
func UpdateTodo(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return ErrorResponse(c, fiber.StatusNotFound, "Todo not found")
		}

		req := new(models.UpdateTodoRequest)
		if err = c.BodyParser(req); err != nil {
			return ErrorResponse(c, fiber.StatusBadRequest, "request body malformed")
		}

		set := bson.M{}
		if req.Title != nil {
			if strings.TrimSpace(*req.Title) == "" {
				return ErrorResponse(c, fiber.StatusBadRequest, "Title is required")
			}
			set["title"] = *req.Title
		}
		if req.Completed != nil {
			set["completed"] = *req.Completed
		}

		var todo models.Todo
		if len(set) == 0 {
			// Nothing to change; an empty $set is a Mongo error, so read instead.
			if err = h.Db.FindOne(h.C, bson.M{"_id": id}).Decode(&todo); err != nil {
				if err == mongo.ErrNoDocuments {
					return ErrorResponse(c, fiber.StatusNotFound, "Todo not found")
				}
				h.L.Errorf("[TodoDB] failed to fetch todo %s: %v", id.Hex(), err)
				return ErrorResponse(c, fiber.StatusBadRequest, "Failed to update todo")
			}
			return c.Status(fiber.StatusOK).JSON(todo)
		}

		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err = h.Db.FindOneAndUpdate(h.C, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&todo)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return ErrorResponse(c, fiber.StatusNotFound, "Todo not found")
			}
			h.L.Errorf("[TodoDB] failed to update todo %s: %v", id.Hex(), err)
			return ErrorResponse(c, fiber.StatusBadRequest, "Failed to update todo")
		}
		return c.Status(fiber.StatusOK).JSON(todo)
	}
}

// @Summary Delete a todo.
// @Description delete a single todo by id.
// @Tags todos
// @Param id path string true "Todo ID"
// @Produce json
// @Success 200 {object} map[string]string
// @Router /todos/{id} [delete]
func DeleteTodo(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return ErrorResponse(c, fiber.StatusNotFound, "Todo not found")
		}

		res, err := h.Db.DeleteOne(h.C, bson.M{"_id": id})
		if err != nil {
			h.L.Errorf("[TodoDB] failed to delete todo %s: %v", id.Hex(), err)
			return ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete todo")
		}
		if res.DeletedCount == 0 {
			return ErrorResponse(c, fiber.StatusNotFound, "Todo not found")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Todo deleted"})
	}
}
