// Package middleware contains HTTP-boundary policies applied around the
// card handlers.
package middleware

import (
	"errors"
	"time"

	"debitcard/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sony/gobreaker"
)

// fallbackMessage is the fixed degraded-service response once a breaker opens.
const fallbackMessage = "we are experiencing some errors, please try again later"

// errOperationFailed marks a handler run that produced a server error so the
// breaker counts it as a failure. The response is already written.
var errOperationFailed = errors.New("operation failed")

// BreakerConfig tunes a per-operation circuit breaker.
type BreakerConfig struct {
	// ConsecutiveFailures opens the breaker once this many handler runs in a
	// row end in a server error.
	ConsecutiveFailures uint32
	// OpenTimeout is how long the breaker stays open before probing again.
	OpenTimeout time.Duration
}

// DefaultBreakerConfig mirrors the thresholds used across operations.
var DefaultBreakerConfig = BreakerConfig{
	ConsecutiveFailures: 5,
	OpenTimeout:         30 * time.Second,
}

// NewBreaker wraps an operation in a named circuit breaker. While the breaker
// is open every request short-circuits to a fixed 503 fallback, independent
// of the underlying cause.
func NewBreaker(name string, cfg BreakerConfig) fiber.Handler {
	if cfg.ConsecutiveFailures == 0 {
		cfg.ConsecutiveFailures = DefaultBreakerConfig.ConsecutiveFailures
	}
	if cfg.OpenTimeout == 0 {
		cfg.OpenTimeout = DefaultBreakerConfig.OpenTimeout
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.ConsecutiveFailures
		},
	})

	return func(c *fiber.Ctx) error {
		_, err := cb.Execute(func() (interface{}, error) {
			if err := c.Next(); err != nil {
				return nil, err
			}
			if c.Response().StatusCode() >= fiber.StatusInternalServerError {
				return nil, errOperationFailed
			}
			return nil, nil
		})

		switch {
		case err == nil:
			return nil
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			return utils.ServiceUnavailable(c, fallbackMessage)
		case errors.Is(err, errOperationFailed):
			// Handler already wrote its error envelope.
			return nil
		default:
			return err
		}
	}
}
