package main

import (
	"context"
	"flag"
	"strings"

	"github.com/google/subcommands"

	"github.com/carson-networks/budget-tracker/internal/report"
)

type summaryCmd struct {
	recent int
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show totals and the most recent transactions" }
func (*summaryCmd) Usage() string {
	return `ledgerctl summary [-recent <n>]

  Prints the total balance, income and expenses across all accounts.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.recent, "recent", 5, "Number of recent transactions to list.")
}

func (c *summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	defer s.close()

	view := report.SummaryView{
		Summary: s.store.Summary(),
		Recent:  report.TransactionLines(s.store.RecentTransactions(c.recent), s.store.Accounts()),
	}

	var md strings.Builder
	if err := s.formatter.RenderSummary(&md, view); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	if err := printMarkdown(md.String()); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
