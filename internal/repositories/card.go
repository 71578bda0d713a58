package repositories

import (
	"context"
	"errors"

	"debitcard/internal/models"
)

// ErrCardNotFound is returned when a card id has no persisted record.
var ErrCardNotFound = errors.New("debit card not found")

// DebitCardRepository is the persistence boundary for card records.
// Save inserts a new record or replaces an existing one, keyed by id.
type DebitCardRepository interface {
	FindByID(ctx context.Context, id string) (*models.DebitCard, error)
	FindAllByCustomer(ctx context.Context, customerID string) ([]*models.DebitCard, error)
	Save(ctx context.Context, card *models.DebitCard) (*models.DebitCard, error)
}
