// Package api is the gateway to the remote TradeX backend.
//
// Each function issues exactly one HTTP request and returns the parsed JSON
// body. There is no retry, no batching beyond the one batch-quote call, and
// no caching: a transport failure or a non-2xx status is returned to the
// caller as an error and will be naturally retried only by the next poll
// tick or the next user action.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/laplace0-0/tradex"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the deployed TradeX backend.
const DefaultBaseURL = "https://backend-laplace0-0-laplace0-0s-projects.vercel.app"

// ErrInvalidCredentials is returned by Login when the backend rejects the
// email/password pair with an {error} body.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Client talks to one TradeX backend.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a client for the given backend, or the deployed one when
// baseURL is empty.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Login exchanges credentials for a session token. A backend {error} body
// comes back as ErrInvalidCredentials so the caller can tell bad
// credentials from a transport failure.
func (c *Client) Login(ctx context.Context, email, password string) (token string, err error) {
	var out struct {
		Token string `json:"token"`
		Error string `json:"error"`
	}
	err = c.jpost(ctx, "/api/login", map[string]any{
		"email":    email,
		"password": password,
	}, &out)
	if out.Error != "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidCredentials, out.Error)
	}
	if err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", fmt.Errorf("login succeeded but no token received")
	}
	return out.Token, nil
}

// GetUser resolves a session token to the user profile.
func (c *Client) GetUser(ctx context.Context, token string) (*tradex.User, error) {
	var user tradex.User
	if err := c.jget(ctx, "/api/getuser/"+url.PathEscape(token), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Stocks lists the user's held positions.
func (c *Client) Stocks(ctx context.Context, userID int64) ([]tradex.Order, error) {
	var orders []tradex.Order
	if err := c.jpost(ctx, "/api/user-stocks", map[string]any{"id": userID}, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Watchlist lists the symbols the user watches.
func (c *Client) Watchlist(ctx context.Context, userID int64) ([]string, error) {
	var symbols []string
	if err := c.jpost(ctx, "/api/user-watchlist", map[string]any{"id": userID}, &symbols); err != nil {
		return nil, err
	}
	return symbols, nil
}

// AddWatch adds a symbol to the user's watchlist.
func (c *Client) AddWatch(ctx context.Context, userID int64, symbol string) error {
	return c.jpost(ctx, "/api/add", map[string]any{"id": userID, "symbol": symbol}, nil)
}

// RemoveWatch removes a symbol from the user's watchlist.
func (c *Client) RemoveWatch(ctx context.Context, userID int64, symbol string) error {
	return c.jpost(ctx, "/api/remove", map[string]any{"id": userID, "symbol": symbol}, nil)
}

// Transactions lists the user's account history.
func (c *Client) Transactions(ctx context.Context, userID int64) ([]tradex.Transaction, error) {
	var txs []tradex.Transaction
	if err := c.jpost(ctx, "/api/transactions", map[string]any{"id": userID}, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// Buy places a buy order. The backend revalidates against balance.
func (c *Client) Buy(ctx context.Context, userID int64, symbol, stockName string, quantity int64, price, balance decimal.Decimal) error {
	return c.jpost(ctx, "/api/buy", map[string]any{
		"id":         userID,
		"symbol":     symbol,
		"stock_name": stockName,
		"quantity":   quantity,
		"price":      jnum(price),
		"balance":    jnum(balance),
	}, nil)
}

// Sell places a sell (short) order.
func (c *Client) Sell(ctx context.Context, userID int64, symbol string, quantity int64, price, balance decimal.Decimal) error {
	return c.jpost(ctx, "/api/sell", map[string]any{
		"id":       userID,
		"symbol":   symbol,
		"quantity": quantity,
		"price":    jnum(price),
		"balance":  jnum(balance),
	}, nil)
}

// Close closes an open position at the given close price.
func (c *Client) Close(ctx context.Context, userID int64, symbol, stockName string, side tradex.Side, quantity int64, price, closePrice, balance decimal.Decimal) error {
	return c.jpost(ctx, "/api/close", map[string]any{
		"id":          userID,
		"symbol":      symbol,
		"balance":     jnum(balance),
		"stock_name":  stockName,
		"quantity":    quantity,
		"price":       jnum(price),
		"close_price": jnum(closePrice),
		"type":        side,
	}, nil)
}

// jnum renders a decimal as a bare JSON number. The backend does arithmetic
// on these fields, so they must never be sent as quoted strings.
func jnum(d decimal.Decimal) json.Number { return json.Number(d.String()) }

// Quotes fetches current market prices for all symbols in one batch call.
//
// The backend keys the response either by symbol or by position in the
// request list depending on its quote provider; both are normalized here to
// a symbol-keyed book so nothing downstream ever correlates by index.
func (c *Client) Quotes(ctx context.Context, symbols []string) (map[string]Quote, error) {
	var raw map[string]Quote
	err := c.jpost(ctx, "/api/mquotes", map[string]any{"symbols": symbols}, &raw)
	if err != nil {
		return nil, err
	}
	book := make(map[string]Quote, len(raw))
	for key, q := range raw {
		if i, err := strconv.Atoi(key); err == nil && i >= 0 && i < len(symbols) {
			key = symbols[i]
		}
		book[key] = q
	}
	return book, nil
}

// Quote is re-exported so callers of the gateway need not also import the
// root package for the wire shape.
type Quote = tradex.Quote

// jget performs an HTTP GET and unmarshals the JSON response body into data.
func (c *Client) jget(ctx context.Context, path string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("cannot create http request %q: %w", path, err)
	}
	return c.do(req, data)
}

// jpost performs an HTTP POST with a JSON body and unmarshals the JSON
// response into data. A nil data discards the response body (ack-only
// calls).
func (c *Client) jpost(ctx context.Context, path string, body, data any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("cannot encode request body for %q: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("cannot create http request %q: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, data)
}

func (c *Client) do(req *http.Request, data any) error {
	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("cannot execute http request: %w", err)
	}
	defer resp.Body.Close()

	// reading in a buffer so the error bodies can be decoded too
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return fmt.Errorf("cannot read http body: %w", err)
	}
	if resp.StatusCode >= 300 {
		// error bodies are still decoded for the caller (login relies on
		// the {error} shape), but the status is the failure.
		if data != nil {
			json.Unmarshal(buf.Bytes(), data)
		}
		return fmt.Errorf("cannot %s %v%v: %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	}
	if data == nil {
		return nil
	}
	if err := json.Unmarshal(buf.Bytes(), data); err != nil {
		return fmt.Errorf("cannot decode response of %v: %w", req.URL.Path, err)
	}
	return nil
}
