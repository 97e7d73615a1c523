package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/jfmadeira/todoapp/config"
	"github.com/jfmadeira/todoapp/handlers"
)

// Create a new instance of the logger.
var l = logrus.New()

func SetupRoutes(app *fiber.App) {
	todoHandler := handlers.NewHandler(config.GetEnv("TODO_COLLECTION", "todos"), l)

	app.Get("/", handlers.HandleRoot)
	app.Get("/health", handlers.HandleHealthCheck)

	// setup the todos group
	todos := app.Group("/todos")
	todos.Get("/", handlers.ListTodos(todoHandler))
	todos.Post("/", handlers.CreateTodo(todoHandler))
	todos.Get("/:id", handlers.GetOneTodo(todoHandler))
	todos.Put("/:id", handlers.UpdateTodo(todoHandler))
	todos.Delete("/:id", handlers.DeleteTodo(todoHandler))
}
