package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/report"
)

type transactionsCmd struct {
	account  string
	txType   string
	category string
	head     int
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "list transactions, newest first" }
func (*transactionsCmd) Usage() string {
	return `ledgerctl transactions [-account <id>] [-type income|expense] [-category <name>] [-head <n>]

  Lists transactions matching every given filter, newest date first.
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Only transactions of this account id.")
	f.StringVar(&c.txType, "type", "", "Only income or expense transactions.")
	f.StringVar(&c.category, "category", "", "Only transactions in this category.")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
}

func (c *transactionsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter := ledger.TransactionFilter{
		AccountID: c.account,
		Category:  c.category,
	}
	if c.txType != "" {
		filter.Type = ledger.TransactionType(c.txType)
		if !filter.Type.Valid() {
			fmt.Fprintf(stderr, "Error: -type must be income or expense, got %q\n", c.txType)
			return subcommands.ExitUsageError
		}
	}

	s, err := openSession(ctx)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	defer s.close()

	transactions := s.store.FilterTransactions(filter)
	if c.head > 0 && len(transactions) > c.head {
		transactions = transactions[:c.head]
	}

	var md strings.Builder
	if err := s.formatter.RenderTransactions(&md, report.TransactionLines(transactions, s.store.Accounts())); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	if err := printMarkdown(md.String()); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
