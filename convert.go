package tradex

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
)

// RateSource resolves the exchange rate from one ISO currency to another.
// The fx package provides the remote implementation.
type RateSource interface {
	Rate(ctx context.Context, from, to string) (decimal.Decimal, error)
}

// Converted holds quote prices translated into the display currency, keyed
// by order id. Keying by identity instead of array position is deliberate:
// a converted price can never be applied to a different order than the one
// it was computed for, even if the order set changed meanwhile.
//
// The map is derived state: it is recomputed and replaced in full whenever
// the quote book or the order set changes, never patched entry by entry.
type Converted map[int64]Money

// Price returns the converted price for an order and whether one is
// available. A symbol whose conversion failed has no entry.
func (c Converted) Price(orderID int64) (Money, bool) {
	m, ok := c[orderID]
	return m, ok
}

// Normalizer converts each quote's native-currency price into the display
// currency. Conversions are independent per symbol: one failing symbol is
// recorded as unavailable and the others proceed. Rates are resolved anew
// on every call, there is no caching across ticks.
type Normalizer struct {
	Rates    RateSource
	Currency string // display currency, e.g. "INR"
}

// Normalize builds the converted price map for the given orders out of the
// current quote book. Orders without a quote, and orders whose currency
// conversion fails, are left out; they will be excluded from aggregates
// until a later tick succeeds.
func (n *Normalizer) Normalize(ctx context.Context, orders []Order, quotes map[string]Quote) Converted {
	converted := make(Converted, len(orders))
	for _, o := range orders {
		q, ok := quotes[o.Symbol]
		if !ok {
			continue
		}
		rate, err := n.Rates.Rate(ctx, q.Currency, n.Currency)
		if err != nil {
			log.Printf("cannot convert %s %s to %s: %v", o.Symbol, q.Currency, n.Currency, err)
			continue
		}
		converted[o.ID] = M(q.Price.Mul(rate), n.Currency)
	}
	return converted
}
