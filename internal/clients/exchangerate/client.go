// Package exchangerate fetches EUR-based exchange rates from an
// exchangerate-api.com style endpoint.
package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/casavera/fx_backend/internal/core/domain"
)

// Client calls the external rate provider. It implements the RateSource port.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client against the given base URL, e.g.
// "https://api.exchangerate-api.com/v4/latest".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// ratesResponse is the provider's wire shape. Unknown keys are ignored.
type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
	Date  string             `json:"date"`
}

// FetchRates requests the latest EUR-based table. Only supported,
// strictly-positive entries are returned; missing keys are simply absent so
// the rate store keeps its previous per-key values.
func (c *Client) FetchRates(ctx context.Context) (map[domain.CurrencyCode]float64, error) {
	url := c.baseURL + "/EUR"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rate request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate provider returned status %d", resp.StatusCode)
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to parse rate response: %w", err)
	}

	out := make(map[domain.CurrencyCode]float64)
	for raw, rate := range body.Rates {
		code, ok := domain.ParseCurrencyCode(raw)
		if !ok || code == domain.CurrencyEUR || rate <= 0 {
			continue
		}
		out[code] = rate
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("rate response held no usable rates")
	}
	return out, nil
}
