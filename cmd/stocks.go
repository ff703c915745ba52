package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/subcommands"
	"github.com/laplace0-0/tradex"
	"github.com/laplace0-0/tradex/renderer"
)

type stocksCmd struct {
	watch bool
}

func (*stocksCmd) Name() string     { return "stocks" }
func (*stocksCmd) Synopsis() string { return "show the portfolio with live prices and P&L" }
func (*stocksCmd) Usage() string {
	return `tradex stocks [-watch]

  Lists the held positions with their current converted price and unrealized
  profit & loss, plus the wallet, equity investment and total P&L cards.
  With -watch, refreshes every 5 seconds until interrupted.
`
}

func (c *stocksCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.watch, "watch", false, "keep refreshing the view every 5 seconds")
}

func (c *stocksCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client := newClient()
	user, err := resolveUser(ctx, client)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	orders, err := client.Stocks(ctx, user.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching orders: %v\n", err)
		return subcommands.ExitFailure
	}

	normalizer := &tradex.Normalizer{Rates: newRates(), Currency: displayCurrency}
	refresher := &tradex.Refresher{Service: client}
	refresher.Track(orders)

	render := func(v *tradex.Valuation) {
		if c.watch {
			fmt.Print("\033[2J\033[H") // clear the terminal between refreshes
		}
		printMarkdown(renderer.StocksMarkdown(user, v))
	}

	if !c.watch {
		// one shot: positions still render, with placeholders, when the
		// quote fetch or a conversion fails.
		valuation := tradex.Valuate(orders, nil, displayCurrency)
		refresher.Tick(ctx, func(quotes map[string]tradex.Quote) {
			converted := normalizer.Normalize(ctx, orders, quotes)
			valuation = tradex.Valuate(orders, converted, displayCurrency)
		})
		render(valuation)
		return subcommands.ExitSuccess
	}

	// watch mode: poll until interrupted.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	render(tradex.Valuate(orders, nil, displayCurrency))
	refresher.Run(ctx, func(quotes map[string]tradex.Quote) {
		converted := normalizer.Normalize(ctx, orders, quotes)
		render(tradex.Valuate(orders, converted, displayCurrency))
	})
	return subcommands.ExitSuccess
}
