package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// @Summary Show the status of server.
// @Description get the status of server.
// @Tags health
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HandleHealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// @Summary Show that the API is up.
// @Description fixed informational payload for the root path.
// @Tags health
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Todo API is running"})
}
