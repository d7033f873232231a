package currency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrStatusNotOK is returned when the rates endpoint responds with status different than 200 OK.
	ErrStatusNotOK = errors.New("response status is not 200 OK")
	// ErrUnknownCurrency is returned when the rates endpoint has no ratio for requested currency.
	ErrUnknownCurrency = errors.New("no exchange ratio for currency")
)

// HTTPSource fetches exchange ratios from a rates endpoint.
type HTTPSource struct {
	client *http.Client
	url    string
}

// NewHTTPSource returns new HTTPSource fetching ratios from provided url.
func NewHTTPSource(client *http.Client, url string) *HTTPSource {
	return &HTTPSource{
		client: client,
		url:    url,
	}
}

// Ratio fetches the current exchange ratio from the default currency to provided currency.
func (s *HTTPSource) Ratio(ctx context.Context, currency string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return 0, fmt.Errorf("can't build http request: %w", err)
	}

	req.Header.Add("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("can't get http response: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, ErrStatusNotOK
	}

	rates := struct {
		Rates map[string]float64 `json:"rates"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(&rates); err != nil {
		return 0, fmt.Errorf("can't decode rates response: %w", err)
	}

	ratio, ok := rates.Rates[currency]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCurrency, currency)
	}

	return ratio, nil
}
