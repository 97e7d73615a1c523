package main

import (
	"github.com/sirupsen/logrus"

	"github.com/jfmadeira/todoapp/app"
	"github.com/jfmadeira/todoapp/config"
	_ "github.com/jfmadeira/todoapp/docs"
)

// @title Todo API
// @version 0.1
// @description Minimal todo-list CRUD API backed by MongoDB.
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	config.LoadENV()

	port := ":" + config.GetEnv("PORT", "8080")

	if err := app.SetupAndRunApp(port); err != nil {
		logrus.Fatal(err)
	}
}
