package tradex

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Side is the direction of an order, as the backend spells it.
type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// ParseSide validates a user supplied order side.
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case Buy, Sell:
		return Side(s), nil
	}
	return "", fmt.Errorf("invalid order side %q: must be BUY or SELL", s)
}

// Order is a held position as returned by the backend. Orders are immutable
// once fetched; the set of orders is refreshed only when the identity
// changes, never polled.
type Order struct {
	ID        int64           `json:"id"`
	Symbol    string          `json:"stock_name"`
	Price     decimal.Decimal `json:"stock_price"` // entry price, in the display currency
	Quantity  int64           `json:"quantity"`    // always a positive integer, no fractional shares
	Side      Side            `json:"type"`
	CreatedAt time.Time       `json:"created_at"`
}

// Cost is the entry price times the quantity, regardless of side.
func (o Order) Cost() decimal.Decimal {
	return o.Price.Mul(decimal.NewFromInt(o.Quantity))
}

// Symbols returns the distinct symbols of the given orders, in first-seen
// order, skipping empty names.
func Symbols(orders []Order) []string {
	seen := make(map[string]bool, len(orders))
	var symbols []string
	for _, o := range orders {
		if o.Symbol == "" || seen[o.Symbol] {
			continue
		}
		seen[o.Symbol] = true
		symbols = append(symbols, o.Symbol)
	}
	return symbols
}

// User is the profile resolved from a session token. It is fetched fresh on
// every use and read-only from the client's perspective.
type User struct {
	ID     int64           `json:"id"`
	Email  string          `json:"email"`
	Wallet decimal.Decimal `json:"wallet"`
}

// Transaction is one line of the account history.
type Transaction struct {
	ID        int64           `json:"id"`
	Symbol    string          `json:"stock_name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
	Side      Side            `json:"type"`
	CreatedAt time.Time       `json:"created_at"`
}

// Quote is a market data snapshot for one symbol, in its native currency.
// The whole quote set is replaced on every poll tick and never persisted.
type Quote struct {
	Price    decimal.Decimal `json:"regularMarketPrice"`
	Currency string          `json:"currency"` // ISO code
}
