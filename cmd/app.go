// Package cmd implements the CLI application of the TradeX client.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/laplace0-0/tradex"
	"github.com/laplace0-0/tradex/api"
	"github.com/laplace0-0/tradex/fx"
	"github.com/laplace0-0/tradex/renderer"
	"github.com/laplace0-0/tradex/session"
)

// displayCurrency is the single currency every valuation is normalized to
// for presentation.
const displayCurrency = "INR"

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var apiURL = flag.String("api-url", "", "TradeX backend base URL (defaults to $TRADEX_API_URL or the deployed backend)")
var fxURL = flag.String("fx-url", "", "exchange rate service base URL (defaults to $EXCHANGE_RATE_API_URL or exchangerate-api.com)")

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute()
// on the user-selected one.
func Register(c *subcommands.Commander) {
	// .env is optional; real environment variables win.
	if err := godotenv.Load(); err == nil {
		log.Println("loaded configuration from .env")
	}

	c.Register(&loginCmd{}, "session")
	c.Register(&logoutCmd{}, "session")

	c.Register(&stocksCmd{}, "portfolio")
	c.Register(&watchCmd{}, "portfolio")
	c.Register(&txCmd{}, "portfolio")

	c.Register(&buyCmd{}, "trading")
	c.Register(&sellCmd{}, "trading")
	c.Register(&closeCmd{}, "trading")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// newClient is the central constructor of the backend gateway.
func newClient() *api.Client {
	base := *apiURL
	if base == "" {
		base = os.Getenv("TRADEX_API_URL")
	}
	return api.New(base)
}

// newRates is the central constructor of the exchange rate source.
func newRates() *fx.Client {
	base := *fxURL
	if base == "" {
		base = os.Getenv("EXCHANGE_RATE_API_URL")
	}
	return fx.New(base)
}

// resolveUser resolves the stored session, failing the command with a
// helpful message when there is none.
func resolveUser(ctx context.Context, c *api.Client) (*tradex.User, error) {
	user := session.Resolve(ctx, c)
	if user == nil {
		return nil, fmt.Errorf("not logged in. Please run 'tradex login' first")
	}
	return user, nil
}

// valuate runs the whole pipeline once for the given user: orders, one
// batch of quotes, conversion, aggregation.
func valuate(ctx context.Context, c *api.Client, user *tradex.User) (*tradex.Valuation, error) {
	orders, err := c.Stocks(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch orders: %w", err)
	}
	normalizer := &tradex.Normalizer{Rates: newRates(), Currency: displayCurrency}

	valuation := tradex.Valuate(orders, nil, displayCurrency)
	refresher := &tradex.Refresher{Service: c}
	refresher.Track(orders)
	refresher.Tick(ctx, func(quotes map[string]tradex.Quote) {
		converted := normalizer.Normalize(ctx, orders, quotes)
		valuation = tradex.Valuate(orders, converted, displayCurrency)
	})
	return valuation, nil
}

// account adapts the gateway to the agent's view of the user's data.
type account struct {
	client *api.Client
}

func (a account) Portfolio(ctx context.Context) (string, error) {
	user, err := resolveUser(ctx, a.client)
	if err != nil {
		return "", err
	}
	valuation, err := valuate(ctx, a.client, user)
	if err != nil {
		return "", err
	}
	return renderer.StocksMarkdown(user, valuation), nil
}

func (a account) Watchlist(ctx context.Context) (string, error) {
	user, err := resolveUser(ctx, a.client)
	if err != nil {
		return "", err
	}
	symbols, err := a.client.Watchlist(ctx, user.ID)
	if err != nil {
		return "", err
	}
	return renderer.WatchlistMarkdown(symbols), nil
}

func (a account) Transactions(ctx context.Context) (string, error) {
	user, err := resolveUser(ctx, a.client)
	if err != nil {
		return "", err
	}
	txs, err := a.client.Transactions(ctx, user.ID)
	if err != nil {
		return "", err
	}
	return renderer.TransactionsMarkdown(displayCurrency, txs), nil
}
