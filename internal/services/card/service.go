package card

import (
	"context"
	"errors"
	"fmt"
	"time"

	"debitcard/internal/clients"
	"debitcard/internal/models"
	"debitcard/internal/repositories"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type service struct {
	repo      repositories.DebitCardRepository
	cache     CardCache
	customers CustomerGateway
	accounts  AccountGateway
	credits   CreditGateway
	digits    DigitsProvider
	log       *logrus.Logger
	metrics   MetricsCollector
}

// NewService creates a new debit-card service.
func NewService(
	repo repositories.DebitCardRepository,
	cache CardCache,
	customers CustomerGateway,
	accounts AccountGateway,
	credits CreditGateway,
	digits DigitsProvider,
	log *logrus.Logger,
	metrics MetricsCollector,
) Service {
	if repo == nil {
		panic("repo is required")
	}
	if customers == nil || accounts == nil || credits == nil {
		panic("upstream gateways are required")
	}
	if digits == nil {
		digits = NewDigitsProvider()
	}
	if log == nil {
		log = logrus.New()
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	return &service{
		repo:      repo,
		cache:     cache,
		customers: customers,
		accounts:  accounts,
		credits:   credits,
		digits:    digits,
		log:       log,
		metrics:   metrics,
	}
}

func (s *service) GetCard(ctx context.Context, cardID string) (resp *models.DebitCardResponse, err error) {
	defer s.track("get_card", time.Now(), &err)

	card, err := s.findCard(ctx, cardID, "debit card not found with id: "+cardID)
	if err != nil {
		return nil, err
	}

	s.log.WithField("card_id", cardID).Info("retrieved debit card")
	return CardToResponse(card), nil
}

func (s *service) GetCardsByCustomer(ctx context.Context, customerID string) (resp []*models.DebitCardResponse, err error) {
	defer s.track("get_cards_by_customer", time.Now(), &err)

	cards, err := s.repo.FindAllByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer cards: %w", err)
	}
	return CardsToResponses(cards), nil
}

func (s *service) CreateCard(ctx context.Context, req *models.CreateCardRequest) (resp *models.DebitCardResponse, err error) {
	defer s.track("create_card", time.Now(), &err)

	if req == nil {
		return nil, InvalidRequestError("customer ID is required")
	}

	// Validation must short-circuit before the debt checks gate creation.
	if err := s.validateCustomerAndAccount(ctx, req); err != nil {
		return nil, err
	}
	hasDebts, err := s.checkCustomerDebts(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if hasDebts {
		return nil, BusinessRuleError("customer has overdue debts")
	}

	now := time.Now()
	card := RequestToCard(req)
	card.CardNumber = generateCardNumber(s.digits)
	card.CardPin = generateCardPin(s.digits)
	card.CcvCode = generateCcvCode(s.digits)
	card.CreationDate = now
	card.ExpirationDate = expirationYearMonth(now)
	card.Status = models.CardStatusActive

	saved, err := s.repo.Save(ctx, card)
	if err != nil {
		return nil, fmt.Errorf("failed to create debit card: %w", err)
	}
	s.cacheCard(ctx, saved)

	s.log.WithFields(logrus.Fields{
		"card_id":     saved.ID,
		"customer_id": saved.CustomerID,
	}).Info("debit card created")
	return CardToResponse(saved), nil
}

func (s *service) AssociateAccount(ctx context.Context, cardID string, req *models.AccountAssociationRequest) (resp *models.DebitCardResponse, err error) {
	defer s.track("associate_account", time.Now(), &err)

	card, err := s.findCard(ctx, cardID, "debit card not found")
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, BusinessRuleError("account association request is required")
	}

	return s.applyAccountMutation(ctx, card, req.AccountID, func(card *models.DebitCard, account *models.Account) bool {
		if card.HasAssociatedAccount(account.ID) {
			return false
		}
		card.AssociatedAccountIDs = append(card.AssociatedAccountIDs, account.ID)
		return true
	})
}

func (s *service) UpdatePrimaryAccount(ctx context.Context, cardID string, req *models.PrimaryAccountRequest) (resp *models.DebitCardResponse, err error) {
	defer s.track("update_primary_account", time.Now(), &err)

	card, err := s.findCard(ctx, cardID, "debit card not found")
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, BusinessRuleError("primary account request is required")
	}

	return s.applyAccountMutation(ctx, card, req.AccountID, func(card *models.DebitCard, account *models.Account) bool {
		// Use the id returned by the lookup, not the requested one.
		card.PrimaryAccountID = account.ID
		return true
	})
}

func (s *service) GetPrimaryAccountBalance(ctx context.Context, cardID string) (resp *models.BalanceResponse, err error) {
	defer s.track("get_primary_account_balance", time.Now(), &err)

	card, err := s.findCard(ctx, cardID, "debit card not found")
	if err != nil {
		return nil, err
	}

	balance, err := s.accounts.GetBalance(ctx, card.PrimaryAccountID)
	if err != nil {
		if errors.Is(err, clients.ErrNotFound) {
			return nil, ResourceNotFoundError("balance not found for account: " + card.PrimaryAccountID)
		}
		s.log.WithError(err).Error("account service balance call failed")
		return nil, ServiceUnavailableError("account service unavailable")
	}
	return balance, nil
}

// findCard reads through the cache to the repository. Cache errors only
// degrade to a repository read.
func (s *service) findCard(ctx context.Context, cardID, notFoundMsg string) (*models.DebitCard, error) {
	if s.cache != nil {
		if card, err := s.cache.GetCard(ctx, cardID); err == nil {
			return card, nil
		}
	}

	card, err := s.repo.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return nil, CardNotFoundError(notFoundMsg)
		}
		return nil, fmt.Errorf("failed to get debit card: %w", err)
	}
	s.cacheCard(ctx, card)
	return card, nil
}

// validateCustomerAndAccount checks that the owning customer and the
// requested primary account both exist. The two calls run concurrently and
// both are awaited before creation proceeds.
func (s *service) validateCustomerAndAccount(ctx context.Context, req *models.CreateCardRequest) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if _, err := s.customers.GetCustomer(ctx, req.CustomerID); err != nil {
			if errors.Is(err, clients.ErrNotFound) {
				return ResourceNotFoundError("customer not found with id: " + req.CustomerID)
			}
			s.log.WithError(err).Error("customer service call failed")
			return ServiceUnavailableError("customer service unavailable")
		}
		return nil
	})

	g.Go(func() error {
		if _, err := s.accounts.GetAccount(ctx, req.PrimaryAccountID); err != nil {
			if errors.Is(err, clients.ErrNotFound) {
				return ResourceNotFoundError("account not found with id: " + req.PrimaryAccountID)
			}
			s.log.WithError(err).Error("account service call failed")
			return ServiceUnavailableError("account service unavailable")
		}
		return nil
	})

	return g.Wait()
}

// checkCustomerDebts runs the two independent overdue-debt checks
// concurrently and reports whether either came back true.
func (s *service) checkCustomerDebts(ctx context.Context, customerID string) (bool, error) {
	var creditDebts, cardDebts bool

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		has, err := s.credits.HasOverdueCreditDebt(ctx, customerID)
		if err != nil {
			s.log.WithError(err).Error("credit service debts call failed")
			return ServiceUnavailableError("credit service unavailable")
		}
		creditDebts = has
		return nil
	})

	g.Go(func() error {
		has, err := s.credits.HasOverdueCardDebt(ctx, customerID)
		if err != nil {
			s.log.WithError(err).Error("credit service card debts call failed")
			return ServiceUnavailableError("credit service unavailable")
		}
		cardDebts = has
		return nil
	})

	if err := g.Wait(); err != nil {
		return false, err
	}
	return creditDebts || cardDebts, nil
}

// applyAccountMutation fetches the external account then applies mutate to
// the card. When mutate reports no change the card is returned as-is and the
// repository is not touched.
func (s *service) applyAccountMutation(
	ctx context.Context,
	card *models.DebitCard,
	accountID string,
	mutate func(card *models.DebitCard, account *models.Account) bool,
) (*models.DebitCardResponse, error) {
	account, err := s.accounts.GetAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, clients.ErrNotFound) {
			return nil, AccountNotFoundError("account to associate not found")
		}
		s.log.WithError(err).Error("account service call failed")
		return nil, ServiceUnavailableError("account service unavailable")
	}

	if !mutate(card, account) {
		return CardToResponse(card), nil
	}

	saved, err := s.repo.Save(ctx, card)
	if err != nil {
		return nil, fmt.Errorf("failed to update debit card: %w", err)
	}
	s.invalidateCard(ctx, saved.ID)
	return CardToResponse(saved), nil
}

func (s *service) cacheCard(ctx context.Context, card *models.DebitCard) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetCard(ctx, card); err != nil {
		s.log.WithError(err).Warn("failed to cache debit card")
	}
}

func (s *service) invalidateCard(ctx context.Context, cardID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateCard(ctx, cardID); err != nil {
		s.log.WithError(err).Warn("failed to invalidate cached debit card")
	}
}

func (s *service) track(operation string, start time.Time, err *error) {
	s.metrics.RecordOperationDuration(operation, time.Since(start))
	result := "success"
	if *err != nil {
		result = "error"
	}
	s.metrics.RecordOperationResult(operation, result)
}
