package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jfmadeira/todoapp/database"
)

type Handler struct {
	Db *mongo.Collection
	L  *logrus.Logger
	C  context.Context
}

func NewHandler(collectionName string, l *logrus.Logger) *Handler {
	return &Handler{
		Db: database.GetCollection(collectionName),
		L:  l,
		C:  context.Background(),
	}
}

func ErrorResponse(c *fiber.Ctx, httpStatus int, message string) error {
	return c.Status(httpStatus).JSON(fiber.Map{"message": message})
}
