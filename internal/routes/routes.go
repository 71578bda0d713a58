// Package routes defines the API routing configuration.
// It wires repositories, outbound clients, and the card service into the
// HTTP surface, and applies the per-operation circuit breakers.
package routes

import (
	"net/http"

	"debitcard/internal/clients"
	"debitcard/internal/config"
	"debitcard/internal/handlers"
	"debitcard/internal/middleware"
	"debitcard/internal/repositories"
	"debitcard/internal/repositories/cache"
	"debitcard/internal/services/card"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB, log *logrus.Logger) {
	cardRepo := repositories.NewDebitCardRepository(db)

	httpClient := &http.Client{
		Timeout: config.GetDurationEnv("UPSTREAM_TIMEOUT", clients.DefaultTimeout),
	}
	customerClient := clients.NewCustomerClient(
		config.GetEnv("CUSTOMER_SERVICE_URL", "http://customer-ms/api/v1"), httpClient)
	accountClient := clients.NewAccountClient(
		config.GetEnv("ACCOUNT_SERVICE_URL", "http://account-ms/api/v1"), httpClient)
	creditClient := clients.NewCreditClient(
		config.GetEnv("CREDIT_SERVICE_URL", "http://credit-ms/api/v1"), httpClient)

	cardService := card.NewService(
		cardRepo,
		cardCacheOrNil(repositories.CacheService),
		customerClient,
		accountClient,
		creditClient,
		card.NewDigitsProvider(),
		log,
		&card.NoopMetricsCollector{},
	)
	cardHandler := handlers.NewCardHandler(cardService)

	breakerCfg := middleware.BreakerConfig{
		ConsecutiveFailures: uint32(config.GetIntEnv("BREAKER_FAILURE_THRESHOLD", 5)),
		OpenTimeout:         config.GetDurationEnv("BREAKER_OPEN_TIMEOUT", middleware.DefaultBreakerConfig.OpenTimeout),
	}

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api/v1")
	cards := api.Group("/debit-cards")

	cards.Get("/",
		middleware.NewBreaker("getDebitCardsByCustomer", breakerCfg),
		cardHandler.GetCardsByCustomer)
	cards.Post("/",
		middleware.NewBreaker("createDebitCard", breakerCfg),
		cardHandler.CreateCard)
	cards.Get("/:cardId", cardHandler.GetCard)
	cards.Post("/:cardId/accounts",
		middleware.NewBreaker("associateAccount", breakerCfg),
		cardHandler.AssociateAccount)
	cards.Get("/:cardId/balance",
		middleware.NewBreaker("getPrimaryAccountBalance", breakerCfg),
		cardHandler.GetPrimaryAccountBalance)
	cards.Put("/:cardId/primary-account",
		middleware.NewBreaker("updatePrimaryAccount", breakerCfg),
		cardHandler.UpdatePrimaryAccount)
}

// cardCacheOrNil keeps a nil *cache.CacheService from reaching the service as
// a non-nil interface, which would defeat its nil-cache checks.
func cardCacheOrNil(c *cache.CacheService) card.CardCache {
	if c == nil {
		return nil
	}
	return c
}
