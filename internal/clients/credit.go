package clients

import (
	"context"
	"fmt"
	"net/http"
)

// CreditClient calls the credit service for overdue-debt checks.
// Both endpoints return a bare JSON boolean.
type CreditClient struct {
	baseURL string
	client  *http.Client
}

func NewCreditClient(baseURL string, client *http.Client) *CreditClient {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &CreditClient{baseURL: baseURL, client: client}
}

func (c *CreditClient) HasOverdueCreditDebt(ctx context.Context, customerID string) (bool, error) {
	var hasDebts bool
	url := fmt.Sprintf("%s/credits/customer/%s/debts", c.baseURL, customerID)
	if err := getJSON(ctx, c.client, url, &hasDebts); err != nil {
		return false, err
	}
	return hasDebts, nil
}

func (c *CreditClient) HasOverdueCardDebt(ctx context.Context, customerID string) (bool, error) {
	var hasDebts bool
	url := fmt.Sprintf("%s/credit-cards/customer/%s/debts", c.baseURL, customerID)
	if err := getJSON(ctx, c.client, url, &hasDebts); err != nil {
		return false, err
	}
	return hasDebts, nil
}
