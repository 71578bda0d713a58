package card

import "debitcard/internal/models"

// RequestToCard builds a card record from a creation request. Only the
// customer id and requested primary account id carry over; the orchestrator
// fills the generated fields.
func RequestToCard(req *models.CreateCardRequest) *models.DebitCard {
	return &models.DebitCard{
		CustomerID:       req.CustomerID,
		PrimaryAccountID: req.PrimaryAccountID,
	}
}

// CardToResponse copies all persisted fields onto the wire shape. The
// creation timestamp is normalized to UTC; the store's timestamp has no
// embedded zone, so the conversion is total.
func CardToResponse(card *models.DebitCard) *models.DebitCardResponse {
	associated := make([]string, len(card.AssociatedAccountIDs))
	copy(associated, card.AssociatedAccountIDs)

	return &models.DebitCardResponse{
		ID:                   card.ID,
		CardNumber:           card.CardNumber,
		CustomerID:           card.CustomerID,
		PrimaryAccountID:     card.PrimaryAccountID,
		AssociatedAccountIDs: associated,
		ExpirationDate:       card.ExpirationDate,
		CcvCode:              card.CcvCode,
		CardPin:              card.CardPin,
		CreationDate:         card.CreationDate.UTC(),
		Status:               card.Status,
	}
}

// CardsToResponses maps a sequence of records; an empty input yields an
// empty, non-nil sequence.
func CardsToResponses(cards []*models.DebitCard) []*models.DebitCardResponse {
	responses := make([]*models.DebitCardResponse, 0, len(cards))
	for _, c := range cards {
		responses = append(responses, CardToResponse(c))
	}
	return responses
}
