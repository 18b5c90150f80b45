package main

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/essence/internal/config"
	"github.com/example/essence/internal/database"
	"github.com/example/essence/internal/routes"
	"github.com/example/essence/internal/services"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	sessions := services.NewSessionStore(cfg)
	storage := services.NewStorageService(cfg)
	events := services.NewEventPublisher(cfg.AMQPURL)

	app := fiber.New(fiber.Config{
		AppName:      "Essence Backend",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, db, cfg, sessions, storage, events)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}

// errorHandler maps expected errors to their status and hides
// everything else behind a generic envelope so persistence errors
// never leak to clients.
func errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"success": false,
			"error":   fiberErr.Message,
		})
	}

	log.Printf("%s %s failed: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   "internal error",
	})
}
