/*
Package card implements the debit-card orchestration layer.

The service sequences the multi-step flows around the card repository and the
sibling customer, account, and credit services:

  - Card issuance: validate the owning customer and primary account, check
    overdue debts, generate the card identifiers, persist.
  - Account association: fetch the external account, append it to the card's
    associated accounts (idempotent), persist.
  - Primary-account update: fetch the external account, replace the card's
    settlement account, persist.
  - Balance lookup: resolve the card's primary account and pass the account
    service's balance payload through unchanged.

Usage:

	svc := card.NewService(repo, cache, customers, accounts, credits,
		card.NewDigitsProvider(), logger, nil)

	created, err := svc.CreateCard(ctx, &models.CreateCardRequest{
		CustomerID:       "C1",
		PrimaryAccountID: "A1",
	})

Error Handling:

Operations return *DomainError values carrying a symbolic code and the HTTP
status the boundary maps it to:

  - DEBIT_CARD_NOT_FOUND: unknown card id
  - ACCOUNT_NOT_FOUND: account to associate does not exist
  - RESOURCE_NOT_FOUND: customer/account validation failed, or no balance
  - BUSINESS_RULE_VIOLATION: overdue debts, missing association payload
  - SERVICE_EXCEPTION: an upstream call failed in transit
  - BAD_REQUEST: missing creation payload

No error is retried or recovered internally; every failure surfaces to the
API boundary.

Randomness:

Card number, PIN, and CCV generation draw from an injected DigitsProvider so
tests can assert exact values with a seeded source.
*/
package card
