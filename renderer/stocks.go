// Package renderer turns the client's reports into markdown, the only
// presentation format the command-line views consume.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/laplace0-0/tradex"
)

// boughtOnLayout matches the "Bought on" column of the stocks view.
const boughtOnLayout = "January 2, 2006 3:04 PM"

// StocksMarkdown renders the stat cards and the portfolio table of the
// stocks view. user may be nil (anonymous view).
func StocksMarkdown(user *tradex.User, v *tradex.Valuation) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Stocks\n\n")

	if user != nil {
		fmt.Fprintf(&b, "**Wallet**: %s  \n", tradex.M(user.Wallet, v.Currency))
	}
	fmt.Fprintf(&b, "**Equity Investment**: %s  \n", v.Spend)
	fmt.Fprintf(&b, "**P&L**: %s%s (%s)\n\n", plSign(!v.PL.IsNegative()), v.PL.Abs(), v.PLPercent)

	fmt.Fprint(&b, "## Portfolio\n\n")

	ConditionalBlock(&b, func(w io.Writer) bool {
		if len(v.Positions) == 0 {
			return false
		}
		fmt.Fprintln(w, "| # | Stock Name | Bought on | Type | Quantity | Price | P&L |")
		fmt.Fprintln(w, "|---:|:---|:---|:---|---:|---:|---:|")
		for i, p := range v.Positions {
			fmt.Fprintf(w, "| %d | %s | %s | %s | %d | %s | %s |\n",
				i+1,
				p.Order.Symbol,
				p.Order.CreatedAt.Format(boughtOnLayout),
				p.Order.Side,
				p.Order.Quantity,
				tradex.M(p.Order.Price, v.Currency),
				positionPL(p),
			)
		}
		return true
	}, func(w io.Writer) {
		fmt.Fprintln(w, "No Stocks found.")
	})

	return b.String()
}

// positionPL formats one P&L cell: sign, magnitude and percentage, or a
// placeholder while the converted price is unavailable.
func positionPL(p tradex.PositionValue) string {
	if !p.Available {
		return "…"
	}
	return fmt.Sprintf("%s%s (%s)", plSign(p.Gain), p.Magnitude, p.PLPercent)
}

func plSign(gain bool) string {
	if gain {
		return "+"
	}
	return "-"
}

// WatchlistMarkdown renders the user's watchlist.
func WatchlistMarkdown(symbols []string) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Watchlist\n\n")
	if len(symbols) == 0 {
		fmt.Fprintln(&b, "No stocks watched.")
		return b.String()
	}
	for _, s := range symbols {
		fmt.Fprintf(&b, "- %s\n", s)
	}
	return b.String()
}

// TransactionsMarkdown renders the account history table.
func TransactionsMarkdown(currency string, txs []tradex.Transaction) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Transactions\n\n")
	if len(txs) == 0 {
		fmt.Fprintln(&b, "No transactions found.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Date | Type | Stock Name | Quantity | Price |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|")
	for _, tx := range txs {
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %s |\n",
			tx.CreatedAt.Format(boughtOnLayout),
			tx.Side,
			tx.Symbol,
			tx.Quantity,
			tradex.M(tx.Price, currency),
		)
	}
	return b.String()
}
