package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/ledger"
)

const defaultRecent = 5

// Summary is the dashboard view: totals plus the most recent transactions.
type Summary struct {
	TotalBalance  decimal.Decimal
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	AccountCount  int
	IncomeCount   int
	ExpenseCount  int
	Recent        []Transaction
}

// Categories pairs the suggested category list with what is actually in use.
type Categories struct {
	Suggested []string
	Used      []string
}

type SummaryService struct {
	reader LedgerReader
}

func NewSummaryService(reader LedgerReader) *SummaryService {
	return &SummaryService{reader: reader}
}

// GetSummary computes the totals. recent <= 0 uses the default of five.
func (s *SummaryService) GetSummary(_ context.Context, recent int) (*Summary, error) {
	if recent <= 0 {
		recent = defaultRecent
	}

	totals := s.reader.Summary()
	return &Summary{
		TotalBalance:  totals.TotalBalance,
		TotalIncome:   totals.TotalIncome,
		TotalExpenses: totals.TotalExpenses,
		AccountCount:  totals.AccountCount,
		IncomeCount:   totals.IncomeCount,
		ExpenseCount:  totals.ExpenseCount,
		Recent:        transactionsFromLedger(s.reader.RecentTransactions(recent)),
	}, nil
}

func (s *SummaryService) GetCategories(_ context.Context) (*Categories, error) {
	return &Categories{
		Suggested: append([]string(nil), ledger.SuggestedCategories...),
		Used:      s.reader.UsedCategories(),
	}, nil
}
