package tradex

import (
	"time"

	"github.com/shopspring/decimal"
)

// INR is a helper for test to create rupee money from const
func INR(v float64) Money { return M(v, "INR") }

// USD is a helper for test to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// order is a helper for test to build a position with the usual defaults.
func order(id int64, symbol string, side Side, quantity int64, price float64) Order {
	return Order{
		ID:        id,
		Symbol:    symbol,
		Price:     decimal.NewFromFloat(price),
		Quantity:  quantity,
		Side:      side,
		CreatedAt: time.Date(2025, time.June, 1, 10, 30, 0, 0, time.UTC),
	}
}
