package repositories

import (
	"context"
	"errors"
	"fmt"

	"debitcard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type debitCardRepository struct {
	db *gorm.DB
}

// NewDebitCardRepository creates a card repository backed by the given database.
func NewDebitCardRepository(db *gorm.DB) DebitCardRepository {
	return &debitCardRepository{db: db}
}

func (r *debitCardRepository) FindByID(ctx context.Context, id string) (*models.DebitCard, error) {
	var card models.DebitCard
	if err := r.db.WithContext(ctx).First(&card, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get debit card: %w", err)
	}
	return &card, nil
}

func (r *debitCardRepository) FindAllByCustomer(ctx context.Context, customerID string) ([]*models.DebitCard, error) {
	var cards []*models.DebitCard
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to get customer cards: %w", err)
	}
	return cards, nil
}

func (r *debitCardRepository) Save(ctx context.Context, card *models.DebitCard) (*models.DebitCard, error) {
	if card.ID == "" {
		card.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Save(card).Error; err != nil {
		return nil, fmt.Errorf("failed to save debit card: %w", err)
	}
	return card, nil
}
