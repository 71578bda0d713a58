package card

import (
	"context"

	"debitcard/internal/models"
)

// Service defines the debit-card orchestration operations.
type Service interface {
	// Lookups
	GetCard(ctx context.Context, cardID string) (*models.DebitCardResponse, error)
	GetCardsByCustomer(ctx context.Context, customerID string) ([]*models.DebitCardResponse, error)

	// Issuance
	CreateCard(ctx context.Context, req *models.CreateCardRequest) (*models.DebitCardResponse, error)

	// Account management
	AssociateAccount(ctx context.Context, cardID string, req *models.AccountAssociationRequest) (*models.DebitCardResponse, error)
	UpdatePrimaryAccount(ctx context.Context, cardID string, req *models.PrimaryAccountRequest) (*models.DebitCardResponse, error)
	GetPrimaryAccountBalance(ctx context.Context, cardID string) (*models.BalanceResponse, error)
}

// CustomerGateway fetches customer records from the customer service.
type CustomerGateway interface {
	GetCustomer(ctx context.Context, customerID string) (*models.Customer, error)
}

// AccountGateway fetches account records and balances from the account service.
type AccountGateway interface {
	GetAccount(ctx context.Context, accountID string) (*models.Account, error)
	GetBalance(ctx context.Context, accountID string) (*models.BalanceResponse, error)
}

// CreditGateway runs the overdue-debt checks against the credit service.
type CreditGateway interface {
	HasOverdueCreditDebt(ctx context.Context, customerID string) (bool, error)
	HasOverdueCardDebt(ctx context.Context, customerID string) (bool, error)
}

// CardCache is the read-through cache for card records. Cache failures are
// never fatal; callers fall back to the repository.
type CardCache interface {
	GetCard(ctx context.Context, cardID string) (*models.DebitCard, error)
	SetCard(ctx context.Context, card *models.DebitCard) error
	InvalidateCard(ctx context.Context, cardID string) error
}
