package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-tracker/internal/storage/memory"
)

func addDated(t *testing.T, s *Store, accountID string, tt TransactionType, amount, category, date string) Transaction {
	t.Helper()
	transaction, err := s.AddTransaction(context.Background(), TransactionInput{
		AccountID:   accountID,
		Type:        tt,
		Amount:      amount,
		Description: "item",
		Category:    category,
		Date:        date,
	})
	require.NoError(t, err)
	return transaction
}

func ids(transactions []Transaction) []string {
	out := make([]string, 0, len(transactions))
	for _, transaction := range transactions {
		out = append(out, transaction.ID)
	}
	return out
}

func TestFilterTransactions(t *testing.T) {
	s := newTestStore(t, memory.NewStore())
	a := mustAddAccount(t, s, "A", "0")
	b := mustAddAccount(t, s, "B", "0")

	t1 := addDated(t, s, a.ID, TransactionTypeExpense, "1", "Shopping", "2025-01-10")
	t2 := addDated(t, s, a.ID, TransactionTypeIncome, "2", "Salary", "2025-01-12")
	t3 := addDated(t, s, b.ID, TransactionTypeExpense, "3", "Shopping", "2025-01-10")
	t4 := addDated(t, s, a.ID, TransactionTypeExpense, "4", "", "2025-01-11")

	tests := []struct {
		name   string
		filter TransactionFilter
		want   []string
	}{
		{"all newest date first", TransactionFilter{}, []string{t2.ID, t4.ID, t3.ID, t1.ID}},
		{"by account", TransactionFilter{AccountID: a.ID}, []string{t2.ID, t4.ID, t1.ID}},
		{"by type", TransactionFilter{Type: TransactionTypeExpense}, []string{t4.ID, t3.ID, t1.ID}},
		{"by category", TransactionFilter{Category: "Shopping"}, []string{t3.ID, t1.ID}},
		{"combined", TransactionFilter{AccountID: b.ID, Category: "Shopping"}, []string{t3.ID}},
		{"no match", TransactionFilter{AccountID: "nope"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(s.FilterTransactions(tt.filter)))
		})
	}
}

func TestAccountTransactions_InsertionOrder(t *testing.T) {
	s := newTestStore(t, memory.NewStore())
	a := mustAddAccount(t, s, "A", "0")
	b := mustAddAccount(t, s, "B", "0")

	t1 := addDated(t, s, a.ID, TransactionTypeExpense, "1", "", "2025-01-10")
	addDated(t, s, b.ID, TransactionTypeExpense, "1", "", "2025-01-10")
	t3 := addDated(t, s, a.ID, TransactionTypeExpense, "1", "", "2024-01-10")

	assert.Equal(t, []string{t1.ID, t3.ID}, ids(s.AccountTransactions(a.ID)))
	assert.Equal(t, 2, s.AccountTransactionCount(a.ID))
	assert.Equal(t, 0, s.AccountTransactionCount("nope"))
}

func TestRecentTransactions(t *testing.T) {
	s := newTestStore(t, memory.NewStore())
	a := mustAddAccount(t, s, "A", "0")

	var created []string
	for range 7 {
		created = append(created, mustAddTransaction(t, s, a.ID, TransactionTypeIncome, "1").ID)
	}

	assert.Equal(t, []string{created[6], created[5], created[4], created[3], created[2]}, ids(s.RecentTransactions(5)))
	assert.Len(t, s.RecentTransactions(100), 7)
	assert.Empty(t, s.RecentTransactions(0))
}

func TestUsedCategories(t *testing.T) {
	s := newTestStore(t, memory.NewStore())
	a := mustAddAccount(t, s, "A", "0")

	addDated(t, s, a.ID, TransactionTypeExpense, "1", "Travel", "2025-01-01")
	addDated(t, s, a.ID, TransactionTypeExpense, "1", "", "2025-01-01")
	addDated(t, s, a.ID, TransactionTypeExpense, "1", "Gift", "2025-01-01")
	addDated(t, s, a.ID, TransactionTypeExpense, "1", "Travel", "2025-01-01")

	assert.Equal(t, []string{"Travel", "Gift"}, s.UsedCategories())
}

func TestSummary(t *testing.T) {
	s := newTestStore(t, memory.NewStore())
	a := mustAddAccount(t, s, "A", "100")
	b := mustAddAccount(t, s, "B", "50")
	mustAddTransaction(t, s, a.ID, TransactionTypeIncome, "25")
	mustAddTransaction(t, s, a.ID, TransactionTypeExpense, "10")
	mustAddTransaction(t, s, b.ID, TransactionTypeExpense, "5")

	summary := s.Summary()
	assert.True(t, summary.TotalBalance.Equal(dec("160")))
	assert.True(t, summary.TotalIncome.Equal(dec("25")))
	assert.True(t, summary.TotalExpenses.Equal(dec("15")))
	assert.Equal(t, 2, summary.AccountCount)
	assert.Equal(t, 1, summary.IncomeCount)
	assert.Equal(t, 2, summary.ExpenseCount)
}

func TestNormalizeAccountType(t *testing.T) {
	tests := map[AccountType]AccountType{
		"":            AccountTypeChecking,
		"credit card": AccountTypeCreditCard,
		" CASH ":      AccountTypeCash,
		"Piggy Bank":  AccountTypeOther,
	}
	for input, want := range tests {
		assert.Equal(t, want, NormalizeAccountType(input), string(input))
	}
}

func TestParseAmount(t *testing.T) {
	assert.True(t, ParseAmount(" 12.30 ").Equal(dec("12.3")))
	assert.True(t, ParseAmount("-4").Equal(dec("-4")))
	assert.True(t, ParseAmount("1e2").Equal(dec("100")))
	assert.True(t, ParseAmount("twelve").IsZero())
}
