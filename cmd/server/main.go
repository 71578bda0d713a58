// Package main is the entry point for the debit-card service.
// It initializes all dependencies, sets up the HTTP server,
// and starts the application.
package main

import (
	"strings"
	"time"

	"debitcard/internal/config"
	"debitcard/internal/repositories"
	"debitcard/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	config.LoadEnv()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if config.IsProduction() {
		log.SetLevel(logrus.InfoLevel)
	} else {
		log.SetLevel(logrus.DebugLevel)
	}

	// Initialize databases (PostgreSQL + Redis)
	if err := repositories.InitDB(); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	sqlDB, err := repositories.DB.DB()
	if err != nil {
		log.Fatalf("failed to get database instance: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}
	log.Info("connected to database")

	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Warnf("failed to close database connection: %v", err)
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Warnf("failed to close redis connection: %v", err)
			}
		}
	}()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Use("/api/v1/debit-cards", issuanceLimiter(config.GetIntEnv("CREATE_RATE_LIMIT", 30)))

	routes.SetupRoutes(app, repositories.DB, log)

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}

// issuanceLimiter caps card-creation bursts per client IP. Only the
// collection POST issues cards; subresource POSTs and reads pass through.
func issuanceLimiter(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		Next: func(c *fiber.Ctx) bool {
			if c.Method() != fiber.MethodPost {
				return true
			}
			return strings.TrimRight(c.Path(), "/") != "/api/v1/debit-cards"
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "too many requests, please try again later",
			})
		},
	})
}
