package card

import "net/http"

// Symbolic error codes surfaced in the API error envelope.
const (
	CodeCardNotFound     = "DEBIT_CARD_NOT_FOUND"
	CodeAccountNotFound  = "ACCOUNT_NOT_FOUND"
	CodeResourceNotFound = "RESOURCE_NOT_FOUND"
	CodeBusinessRule     = "BUSINESS_RULE_VIOLATION"
	CodeServiceException = "SERVICE_EXCEPTION"
	CodeBadRequest       = "BAD_REQUEST"
)

// DomainError is a service error carrying the symbolic code and HTTP status
// the boundary layer maps it to.
type DomainError struct {
	Code    string
	Status  int
	Message string
}

func (e *DomainError) Error() string { return e.Message }

// Is matches DomainErrors by code so sentinel comparisons work with errors.Is.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

func CardNotFoundError(message string) *DomainError {
	return &DomainError{Code: CodeCardNotFound, Status: http.StatusNotFound, Message: message}
}

func AccountNotFoundError(message string) *DomainError {
	return &DomainError{Code: CodeAccountNotFound, Status: http.StatusNotFound, Message: message}
}

func ResourceNotFoundError(message string) *DomainError {
	return &DomainError{Code: CodeResourceNotFound, Status: http.StatusNotFound, Message: message}
}

func BusinessRuleError(message string) *DomainError {
	return &DomainError{Code: CodeBusinessRule, Status: http.StatusUnprocessableEntity, Message: message}
}

func InvalidRequestError(message string) *DomainError {
	return &DomainError{Code: CodeBadRequest, Status: http.StatusBadRequest, Message: message}
}

func ServiceUnavailableError(message string) *DomainError {
	return &DomainError{Code: CodeServiceException, Status: http.StatusServiceUnavailable, Message: message}
}
