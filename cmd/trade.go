package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/laplace0-0/tradex"
	"github.com/shopspring/decimal"
)

// The trading commands all follow the same shape: resolve the session,
// send one order to the backend with the current wallet balance, report.
// The backend is the only judge of balances and order validity.

type buyCmd struct {
	symbol   string
	name     string
	quantity int64
	price    string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy a stock" }
func (*buyCmd) Usage() string {
	return `tradex buy -symbol <symbol> [-name <stock name>] -quantity <n> -price <price>

  Places a buy order at the given price, debiting the simulated wallet.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "market symbol")
	f.StringVar(&c.name, "name", "", "stock name (defaults to the symbol)")
	f.Int64Var(&c.quantity, "quantity", 0, "number of shares, a positive integer")
	f.StringVar(&c.price, "price", "", "price per share")
}

func (c *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	price, status := checkOrderFlags(c.symbol, c.quantity, c.price)
	if status != subcommands.ExitSuccess {
		return status
	}
	if c.name == "" {
		c.name = c.symbol
	}

	client := newClient()
	user, err := resolveUser(ctx, client)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := client.Buy(ctx, user.ID, c.symbol, c.name, c.quantity, price, user.Wallet); err != nil {
		fmt.Fprintf(os.Stderr, "Error placing buy order: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("✅ Bought %d %s at %s.\n", c.quantity, c.symbol, tradex.M(price, displayCurrency))
	return subcommands.ExitSuccess
}

type sellCmd struct {
	symbol   string
	quantity int64
	price    string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell a stock short" }
func (*sellCmd) Usage() string {
	return `tradex sell -symbol <symbol> -quantity <n> -price <price>

  Opens a short position at the given price. A short gains when the price
  falls.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "market symbol")
	f.Int64Var(&c.quantity, "quantity", 0, "number of shares, a positive integer")
	f.StringVar(&c.price, "price", "", "price per share")
}

func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	price, status := checkOrderFlags(c.symbol, c.quantity, c.price)
	if status != subcommands.ExitSuccess {
		return status
	}

	client := newClient()
	user, err := resolveUser(ctx, client)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := client.Sell(ctx, user.ID, c.symbol, c.quantity, price, user.Wallet); err != nil {
		fmt.Fprintf(os.Stderr, "Error placing sell order: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("✅ Sold %d %s at %s.\n", c.quantity, c.symbol, tradex.M(price, displayCurrency))
	return subcommands.ExitSuccess
}

type closeCmd struct {
	symbol     string
	name       string
	quantity   int64
	price      string
	closePrice string
	side       string
}

func (*closeCmd) Name() string     { return "close" }
func (*closeCmd) Synopsis() string { return "close an open position" }
func (*closeCmd) Usage() string {
	return `tradex close -symbol <symbol> [-name <stock name>] -quantity <n> -price <entry price> -close-price <price> -type <BUY|SELL>

  Settles an open position at the close price; the backend credits or
  debits the wallet with the realized difference.
`
}

func (c *closeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "market symbol")
	f.StringVar(&c.name, "name", "", "stock name (defaults to the symbol)")
	f.Int64Var(&c.quantity, "quantity", 0, "number of shares, a positive integer")
	f.StringVar(&c.price, "price", "", "entry price per share")
	f.StringVar(&c.closePrice, "close-price", "", "close price per share")
	f.StringVar(&c.side, "type", string(tradex.Buy), "side of the position being closed: BUY or SELL")
}

func (c *closeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	price, status := checkOrderFlags(c.symbol, c.quantity, c.price)
	if status != subcommands.ExitSuccess {
		return status
	}
	closePrice, err := decimal.NewFromString(c.closePrice)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -close-price %q: %v\n", c.closePrice, err)
		return subcommands.ExitUsageError
	}
	side, err := tradex.ParseSide(c.side)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if c.name == "" {
		c.name = c.symbol
	}

	client := newClient()
	user, err := resolveUser(ctx, client)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := client.Close(ctx, user.ID, c.symbol, c.name, side, c.quantity, price, closePrice, user.Wallet); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing position: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("✅ Closed %d %s at %s.\n", c.quantity, c.symbol, tradex.M(closePrice, displayCurrency))
	return subcommands.ExitSuccess
}

// checkOrderFlags validates the flags shared by the trading commands and
// parses the price.
func checkOrderFlags(symbol string, quantity int64, price string) (decimal.Decimal, subcommands.ExitStatus) {
	if symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: -symbol is required.")
		return decimal.Zero, subcommands.ExitUsageError
	}
	if quantity <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -quantity must be a positive integer.")
		return decimal.Zero, subcommands.ExitUsageError
	}
	p, err := decimal.NewFromString(price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -price %q: %v\n", price, err)
		return decimal.Zero, subcommands.ExitUsageError
	}
	if !p.IsPositive() {
		fmt.Fprintln(os.Stderr, "Error: -price must be positive.")
		return decimal.Zero, subcommands.ExitUsageError
	}
	return p, subcommands.ExitSuccess
}
