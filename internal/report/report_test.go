package report

import (
	"bytes"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-tracker/internal/ledger"
)

func newUSD(t *testing.T) *Formatter {
	t.Helper()
	f, err := NewFormatter("usd")
	require.NoError(t, err)
	return f
}

func TestNewFormatter_UnknownCurrency(t *testing.T) {
	_, err := NewFormatter("XXQ")
	assert.ErrorContains(t, err, `unknown currency "XXQ"`)
}

func TestMoney(t *testing.T) {
	f := newUSD(t)

	assert.Equal(t, "$1,234.50", f.Money(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "$0.00", f.Money(decimal.Zero))
	assert.Equal(t, "$0.13", f.Money(decimal.RequireFromString("0.125")))
	assert.Equal(t, "-$20.00", f.Money(decimal.RequireFromString("-20")))
}

func TestSigned(t *testing.T) {
	f := newUSD(t)

	income := ledger.Transaction{Type: ledger.TransactionTypeIncome, Amount: decimal.RequireFromString("50")}
	expense := ledger.Transaction{Type: ledger.TransactionTypeExpense, Amount: decimal.RequireFromString("30")}
	assert.Equal(t, "+$50.00", f.Signed(income))
	assert.Equal(t, "-$30.00", f.Signed(expense))
}

func TestTransactionLines(t *testing.T) {
	accounts := []ledger.Account{{ID: "a", Name: "Checking"}}
	transactions := []ledger.Transaction{{ID: "t1", AccountID: "a"}, {ID: "t2", AccountID: "gone"}}

	lines := TransactionLines(transactions, accounts)
	require.Len(t, lines, 2)
	assert.Equal(t, "Checking", lines[0].AccountName)
	assert.Equal(t, "gone", lines[1].AccountName)
}

func TestRenderAccounts(t *testing.T) {
	f := newUSD(t)

	var buf bytes.Buffer
	require.NoError(t, f.RenderAccounts(&buf, []AccountLine{{
		Account: ledger.Account{
			Name:           "Joint | Home",
			Type:           ledger.AccountTypeSavings,
			InitialBalance: decimal.RequireFromString("100"),
		},
		Balance:      decimal.RequireFromString("120"),
		Transactions: 2,
	}}))

	assert.Contains(t, buf.String(), `| Joint \| Home | Savings | $100.00 | $120.00 | 2 |`)

	buf.Reset()
	require.NoError(t, f.RenderAccounts(&buf, nil))
	assert.Contains(t, buf.String(), "_No accounts yet._")
}

func TestRenderTransactions(t *testing.T) {
	f := newUSD(t)

	var buf bytes.Buffer
	require.NoError(t, f.RenderTransactions(&buf, []TransactionLine{{
		AccountName: "Main",
		Transaction: ledger.Transaction{
			Type:        ledger.TransactionTypeExpense,
			Amount:      decimal.RequireFromString("30"),
			Description: "Groceries\nweekly",
			Category:    "Food & Dining",
			Date:        civil.Date{Year: 2025, Month: time.February, Day: 14},
		},
	}}))

	assert.Contains(t, buf.String(), "| 2025-02-14 | Main | Groceries weekly | Food & Dining | -$30.00 |")

	buf.Reset()
	require.NoError(t, f.RenderTransactions(&buf, nil))
	assert.Contains(t, buf.String(), "_No matching transactions._")
}

func TestRenderSummary(t *testing.T) {
	f := newUSD(t)

	var buf bytes.Buffer
	require.NoError(t, f.RenderSummary(&buf, SummaryView{
		Summary: ledger.Summary{
			TotalBalance:  decimal.RequireFromString("180"),
			TotalIncome:   decimal.RequireFromString("200"),
			TotalExpenses: decimal.RequireFromString("20"),
			AccountCount:  1,
			IncomeCount:   1,
			ExpenseCount:  1,
		},
	}))

	out := buf.String()
	assert.Contains(t, out, "| Total balance | $180.00 |")
	assert.Contains(t, out, "| Income (1) | $200.00 |")
	assert.Contains(t, out, "| Expenses (1) | $20.00 |")
	assert.Contains(t, out, "_No transactions yet._")
	assert.NotContains(t, out, "Recent transactions")
}
