// Package fx resolves currency exchange rates for the stocks view.
//
// The primary source is the free exchangerate-api.com endpoint. Rates are
// fetched anew on every conversion: the stocks view re-converts every
// symbol on every poll tick, and caching a rate here would silently stretch
// its staleness across ticks.
package fx

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the free tier of exchangerate-api.com.
const DefaultBaseURL = "https://api.exchangerate-api.com/v4/latest"

// Client fetches exchange rates. It implements tradex.RateSource.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a rate client for the given endpoint, or the public
// exchangerate-api.com one when baseURL is empty.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Rate returns the rate that converts one unit of from into to.
//
// When the primary source is unreachable and the pair is USD/INR, the
// ls-tc.de intraday chart is tried as a last resort before giving up; every
// other failure is terminal for this single conversion and the caller's
// next tick retries naturally.
func (c *Client) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	addr := fmt.Sprintf("%s/%s", c.BaseURL, from)
	var payload struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := jwget(ctx, c.HTTP, addr, &payload); err != nil {
		if from == "USD" && to == "INR" {
			if rate, lerr := lstcLatestINRPerUSD(ctx, c.HTTP); lerr == nil {
				return rate, nil
			}
		}
		return decimal.Zero, fmt.Errorf("cannot fetch rates for %s: %w", from, err)
	}

	rate, ok := payload.Rates[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("no rate found for %s->%s", from, to)
	}
	return decimal.NewFromFloat(rate), nil
}
