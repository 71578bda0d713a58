// Package clients contains typed HTTP clients for the sibling services this
// service depends on: customers, accounts, and credits. Each call is a single
// request/response with no retry; callers distinguish a missing resource from
// an unavailable upstream via the sentinel errors below.
package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrNotFound means the remote service answered 404 for the resource.
	ErrNotFound = errors.New("resource not found")
	// ErrServiceUnavailable covers every other failure: timeouts, 5xx,
	// connection errors.
	ErrServiceUnavailable = errors.New("service unavailable")
)

// DefaultTimeout bounds a single outbound call.
const DefaultTimeout = 10 * time.Second

func getJSON(ctx context.Context, client *http.Client, url string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: unexpected status code %d", ErrServiceUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrServiceUnavailable, err)
	}
	return nil
}
