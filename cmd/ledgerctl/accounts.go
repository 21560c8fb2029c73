package main

import (
	"context"
	"flag"
	"strings"

	"github.com/google/subcommands"

	"github.com/carson-networks/budget-tracker/internal/report"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list accounts with their balances" }
func (*accountsCmd) Usage() string {
	return `ledgerctl accounts

  Lists every account in creation order with its derived balance.
`
}

func (*accountsCmd) SetFlags(*flag.FlagSet) {}

func (*accountsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	defer s.close()

	accounts := s.store.Accounts()
	lines := make([]report.AccountLine, len(accounts))
	for i, a := range accounts {
		lines[i] = report.AccountLine{
			Account:      a,
			Balance:      s.store.AccountBalance(a.ID),
			Transactions: s.store.AccountTransactionCount(a.ID),
		}
	}

	var md strings.Builder
	if err := s.formatter.RenderAccounts(&md, lines); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	if err := printMarkdown(md.String()); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
