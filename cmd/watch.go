package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/laplace0-0/tradex/renderer"
)

// watchCmd is the top-level command for watchlist operations.
type watchCmd struct{}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "manage the watchlist" }
func (*watchCmd) Usage() string {
	return `tradex watch <subcommand> <options>

Manage the watchlist: list, add or remove symbols.
`
}
func (c *watchCmd) SetFlags(f *flag.FlagSet) {}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	commander := subcommands.NewCommander(f, "watch")
	commander.Register(&watchListCmd{}, "")
	commander.Register(&watchAddCmd{}, "")
	commander.Register(&watchRemoveCmd{}, "")
	return commander.Execute(ctx, args...)
}

type watchListCmd struct{}

func (*watchListCmd) Name() string           { return "list" }
func (*watchListCmd) Synopsis() string       { return "list the watched symbols" }
func (*watchListCmd) Usage() string          { return "tradex watch list\n" }
func (*watchListCmd) SetFlags(*flag.FlagSet) {}

func (c *watchListCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client := newClient()
	user, err := resolveUser(ctx, client)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	symbols, err := client.Watchlist(ctx, user.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching watchlist: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.WatchlistMarkdown(symbols))
	return subcommands.ExitSuccess
}

type watchAddCmd struct {
	symbol string
}

func (*watchAddCmd) Name() string     { return "add" }
func (*watchAddCmd) Synopsis() string { return "add a symbol to the watchlist" }
func (*watchAddCmd) Usage() string    { return "tradex watch add -symbol <symbol>\n" }
func (c *watchAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "market symbol to watch")
}

func (c *watchAddCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: -symbol is required.")
		return subcommands.ExitUsageError
	}
	client := newClient()
	user, err := resolveUser(ctx, client)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := client.AddWatch(ctx, user.ID, c.symbol); err != nil {
		fmt.Fprintf(os.Stderr, "Error adding %s to watchlist: %v\n", c.symbol, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("✅ %s added to watchlist.\n", c.symbol)
	return subcommands.ExitSuccess
}

type watchRemoveCmd struct {
	symbol string
}

func (*watchRemoveCmd) Name() string     { return "remove" }
func (*watchRemoveCmd) Synopsis() string { return "remove a symbol from the watchlist" }
func (*watchRemoveCmd) Usage() string    { return "tradex watch remove -symbol <symbol>\n" }
func (c *watchRemoveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "market symbol to stop watching")
}

func (c *watchRemoveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: -symbol is required.")
		return subcommands.ExitUsageError
	}
	client := newClient()
	user, err := resolveUser(ctx, client)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := client.RemoveWatch(ctx, user.ID, c.symbol); err != nil {
		fmt.Fprintf(os.Stderr, "Error removing %s from watchlist: %v\n", c.symbol, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("✅ %s removed from watchlist.\n", c.symbol)
	return subcommands.ExitSuccess
}
