package clients

import (
	"context"
	"fmt"
	"net/http"

	"debitcard/internal/models"
)

// CustomerClient calls the customer service.
type CustomerClient struct {
	baseURL string
	client  *http.Client
}

func NewCustomerClient(baseURL string, client *http.Client) *CustomerClient {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &CustomerClient{baseURL: baseURL, client: client}
}

func (c *CustomerClient) GetCustomer(ctx context.Context, customerID string) (*models.Customer, error) {
	var customer models.Customer
	url := fmt.Sprintf("%s/customers/%s", c.baseURL, customerID)
	if err := getJSON(ctx, c.client, url, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}
