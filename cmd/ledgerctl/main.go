// Command ledgerctl inspects a ledger from the command line without the API server.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path"

	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	register(commander)

	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	os.Exit(int(commander.Execute(ctx)))
}

func register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "reports")
	c.Register(&accountsCmd{}, "reports")
	c.Register(&transactionsCmd{}, "reports")
	c.Register(&exportCmd{}, "maintenance")
}
