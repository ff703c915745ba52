package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/laplace0-0/tradex/renderer"
)

type txCmd struct{}

func (*txCmd) Name() string           { return "tx" }
func (*txCmd) Synopsis() string       { return "show the account transaction history" }
func (*txCmd) Usage() string          { return "tradex tx\n" }
func (*txCmd) SetFlags(*flag.FlagSet) {}

func (c *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client := newClient()
	user, err := resolveUser(ctx, client)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	txs, err := client.Transactions(ctx, user.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching transactions: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TransactionsMarkdown(displayCurrency, txs))
	return subcommands.ExitSuccess
}
