package clients

import (
	"context"
	"fmt"
	"net/http"

	"debitcard/internal/models"
)

// AccountClient calls the account service.
type AccountClient struct {
	baseURL string
	client  *http.Client
}

func NewAccountClient(baseURL string, client *http.Client) *AccountClient {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &AccountClient{baseURL: baseURL, client: client}
}

func (c *AccountClient) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	var account models.Account
	url := fmt.Sprintf("%s/accounts/%s", c.baseURL, accountID)
	if err := getJSON(ctx, c.client, url, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *AccountClient) GetBalance(ctx context.Context, accountID string) (*models.BalanceResponse, error) {
	var balance models.BalanceResponse
	url := fmt.Sprintf("%s/accounts/%s/balance", c.baseURL, accountID)
	if err := getJSON(ctx, c.client, url, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}
