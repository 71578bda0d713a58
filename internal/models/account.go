package models

// Customer is the subset of the customer-service record this service reads.
type Customer struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CustomerType string `json:"customerType"`
}

// Account is the subset of the account-service record this service reads.
type Account struct {
	ID            string  `json:"id"`
	CustomerID    string  `json:"customerId"`
	AccountType   string  `json:"accountType"`
	AccountNumber string  `json:"accountNumber"`
	Balance       float64 `json:"balance"`
}

// BalanceResponse is the account service's balance payload, passed through
// to the caller without card-specific remapping.
type BalanceResponse struct {
	AccountID     string  `json:"accountId"`
	AccountNumber string  `json:"accountNumber"`
	Balance       float64 `json:"balance"`
	Currency      string  `json:"currency"`
}
