// Package report renders ledger views as markdown for the command line.
package report

import (
	"embed"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/ledger"
)

//go:embed templates/*.md
var templateFS embed.FS

// Formatter renders amounts in one display currency. It never converts.
type Formatter struct {
	currency *money.Currency
	tmpl     *template.Template
}

func NewFormatter(code string) (*Formatter, error) {
	currency := money.GetCurrency(strings.ToUpper(code))
	if currency == nil {
		return nil, fmt.Errorf("report: unknown currency %q", code)
	}

	f := &Formatter{currency: currency}
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"money":  f.Money,
		"signed": f.Signed,
		"cell":   cell,
	}).ParseFS(templateFS, "templates/*.md")
	if err != nil {
		return nil, err
	}
	f.tmpl = tmpl
	return f, nil
}

// Money formats d with the currency's symbol, separators and fraction digits.
func (f *Formatter) Money(d decimal.Decimal) string {
	minor := d.Shift(int32(f.currency.Fraction)).Round(0).IntPart()
	return f.currency.Formatter().Format(minor)
}

// Signed formats a transaction amount with its sign made explicit.
func (f *Formatter) Signed(t ledger.Transaction) string {
	if t.Type == ledger.TransactionTypeIncome {
		return "+" + f.Money(t.Amount)
	}
	return f.Money(t.Amount.Neg())
}

// cell keeps free text from breaking a markdown table row.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

type AccountLine struct {
	Account      ledger.Account
	Balance      decimal.Decimal
	Transactions int
}

type TransactionLine struct {
	Transaction ledger.Transaction
	AccountName string
}

type SummaryView struct {
	Summary ledger.Summary
	Recent  []TransactionLine
}

func (f *Formatter) RenderSummary(w io.Writer, view SummaryView) error {
	return f.tmpl.ExecuteTemplate(w, "summary.md", view)
}

func (f *Formatter) RenderAccounts(w io.Writer, lines []AccountLine) error {
	return f.tmpl.ExecuteTemplate(w, "accounts.md", lines)
}

func (f *Formatter) RenderTransactions(w io.Writer, lines []TransactionLine) error {
	return f.tmpl.ExecuteTemplate(w, "transactions.md", lines)
}

// TransactionLines attaches account names, falling back to the raw id.
func TransactionLines(transactions []ledger.Transaction, accounts []ledger.Account) []TransactionLine {
	names := make(map[string]string, len(accounts))
	for _, a := range accounts {
		names[a.ID] = a.Name
	}

	lines := make([]TransactionLine, len(transactions))
	for i, t := range transactions {
		name, ok := names[t.AccountID]
		if !ok {
			name = t.AccountID
		}
		lines[i] = TransactionLine{Transaction: t, AccountName: name}
	}
	return lines
}
