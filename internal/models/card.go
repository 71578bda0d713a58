package models

import (
	"time"

	"github.com/lib/pq"
)

// CardStatus is the lifecycle status of a debit card.
type CardStatus string

const (
	CardStatusActive    CardStatus = "ACTIVE"
	CardStatusBlocked   CardStatus = "BLOCKED"
	CardStatusCancelled CardStatus = "CANCELLED"
)

// DebitCard is the persisted debit-card record. Generated fields
// (card number, PIN, CCV, expiration) are assigned once at creation
// and never regenerated.
type DebitCard struct {
	ID                   string         `gorm:"primaryKey"`
	CardNumber           string         `gorm:"not null"`
	CustomerID           string         `gorm:"not null;index"`
	PrimaryAccountID     string
	AssociatedAccountIDs pq.StringArray `gorm:"type:text[]"`
	ExpirationDate       string         `gorm:"not null"`
	CcvCode              string         `gorm:"not null"`
	CardPin              string         `gorm:"not null"`
	CreationDate         time.Time
	Status               CardStatus `gorm:"not null;default:'ACTIVE'"`
}

// HasAssociatedAccount reports whether accountID is already linked to the card.
func (c *DebitCard) HasAssociatedAccount(accountID string) bool {
	for _, id := range c.AssociatedAccountIDs {
		if id == accountID {
			return true
		}
	}
	return false
}

// CreateCardRequest is the card-creation payload.
type CreateCardRequest struct {
	CustomerID       string `json:"customerId" validate:"required"`
	PrimaryAccountID string `json:"primaryAccountId" validate:"required"`
}

// AccountAssociationRequest links an additional account to a card.
type AccountAssociationRequest struct {
	AccountID string `json:"accountId" validate:"required"`
}

// PrimaryAccountRequest replaces the card's settlement account.
type PrimaryAccountRequest struct {
	AccountID string `json:"accountId" validate:"required"`
}

// DebitCardResponse is the wire representation of a card. The creation
// timestamp is normalized to UTC on the way out.
type DebitCardResponse struct {
	ID                   string     `json:"id"`
	CardNumber           string     `json:"cardNumber"`
	CustomerID           string     `json:"customerId"`
	PrimaryAccountID     string     `json:"primaryAccountId"`
	AssociatedAccountIDs []string   `json:"associatedAccountIds"`
	ExpirationDate       string     `json:"expirationDate"`
	CcvCode              string     `json:"ccvCode"`
	CardPin              string     `json:"cardPin"`
	CreationDate         time.Time  `json:"creationDate"`
	Status               CardStatus `json:"status"`
}
