// Package handlers adapts HTTP requests onto the card service and translates
// service errors into the uniform error envelope.
package handlers

import (
	"errors"

	"debitcard/internal/models"
	"debitcard/internal/services/card"
	"debitcard/internal/utils"
	"debitcard/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type CardHandler struct {
	service card.Service
}

func NewCardHandler(service card.Service) *CardHandler {
	return &CardHandler{service: service}
}

// GetCard handles GET /debit-cards/:cardId.
func (h *CardHandler) GetCard(c *fiber.Ctx) error {
	resp, err := h.service.GetCard(c.Context(), c.Params("cardId"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, resp)
}

// GetCardsByCustomer handles GET /debit-cards?customerId=...
// An empty result is a valid 200 with an empty sequence.
func (h *CardHandler) GetCardsByCustomer(c *fiber.Ctx) error {
	customerID := c.Query("customerId")
	if customerID == "" {
		return utils.BadRequest(c, "customerId query parameter is required")
	}

	resp, err := h.service.GetCardsByCustomer(c.Context(), customerID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, resp)
}

// CreateCard handles POST /debit-cards.
func (h *CardHandler) CreateCard(c *fiber.Ctx) error {
	var req models.CreateCardRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	resp, err := h.service.CreateCard(c.Context(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, resp)
}

// AssociateAccount handles POST /debit-cards/:cardId/accounts. A missing or
// invalid body is passed through as an absent request so the service can
// report the business-rule violation after the card lookup.
func (h *CardHandler) AssociateAccount(c *fiber.Ctx) error {
	var req *models.AccountAssociationRequest
	var body models.AccountAssociationRequest
	if err := c.BodyParser(&body); err == nil && validation.Struct(&body) == nil {
		req = &body
	}

	resp, err := h.service.AssociateAccount(c.Context(), c.Params("cardId"), req)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, resp)
}

// GetPrimaryAccountBalance handles GET /debit-cards/:cardId/balance.
func (h *CardHandler) GetPrimaryAccountBalance(c *fiber.Ctx) error {
	resp, err := h.service.GetPrimaryAccountBalance(c.Context(), c.Params("cardId"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, resp)
}

// UpdatePrimaryAccount handles PUT /debit-cards/:cardId/primary-account.
func (h *CardHandler) UpdatePrimaryAccount(c *fiber.Ctx) error {
	var req *models.PrimaryAccountRequest
	var body models.PrimaryAccountRequest
	if err := c.BodyParser(&body); err == nil && validation.Struct(&body) == nil {
		req = &body
	}

	resp, err := h.service.UpdatePrimaryAccount(c.Context(), c.Params("cardId"), req)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, resp)
}

func respondError(c *fiber.Ctx, err error) error {
	var de *card.DomainError
	if errors.As(err, &de) {
		return utils.Error(c, de.Status, de.Code, de.Message)
	}
	return utils.InternalError(c, "unexpected service error")
}
