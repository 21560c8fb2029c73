package ledger

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
)

// AccountType is the kind of money-holding entity an account represents.
type AccountType string

const (
	AccountTypeChecking   AccountType = "Checking"
	AccountTypeSavings    AccountType = "Savings"
	AccountTypeCreditCard AccountType = "Credit Card"
	AccountTypeCash       AccountType = "Cash"
	AccountTypeInvestment AccountType = "Investment"
	AccountTypeOther      AccountType = "Other"
)

// AccountTypes lists every account type in display order.
var AccountTypes = []AccountType{
	AccountTypeChecking,
	AccountTypeSavings,
	AccountTypeCreditCard,
	AccountTypeCash,
	AccountTypeInvestment,
	AccountTypeOther,
}

func (t AccountType) Valid() bool {
	for _, known := range AccountTypes {
		if t == known {
			return true
		}
	}
	return false
}

// NormalizeAccountType matches t case-insensitively against the known types.
// Empty input becomes Checking and anything unrecognised becomes Other.
func NormalizeAccountType(t AccountType) AccountType {
	trimmed := strings.TrimSpace(string(t))
	if trimmed == "" {
		return AccountTypeChecking
	}
	for _, known := range AccountTypes {
		if strings.EqualFold(trimmed, string(known)) {
			return known
		}
	}
	return AccountTypeOther
}

// TransactionType gives the sign of a transaction amount.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// NormalizeTransactionType defaults anything but income to expense.
func NormalizeTransactionType(t TransactionType) TransactionType {
	if strings.EqualFold(strings.TrimSpace(string(t)), string(TransactionTypeIncome)) {
		return TransactionTypeIncome
	}
	return TransactionTypeExpense
}

// SuggestedCategories are offered to users; categories remain free text.
var SuggestedCategories = []string{
	"Food & Dining",
	"Transportation",
	"Shopping",
	"Entertainment",
	"Bills & Utilities",
	"Healthcare",
	"Education",
	"Travel",
	"Salary",
	"Investment",
	"Gift",
	"Other",
}

// Account is a named money-holding entity with a starting balance.
type Account struct {
	ID             string          `json:"id" validate:"required"`
	Name           string          `json:"name" validate:"required"`
	Type           AccountType     `json:"type" validate:"account_type"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	Description    string          `json:"description"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// Transaction is a single income or expense event tied to one account.
// Amount is always a magnitude; Type carries the sign.
type Transaction struct {
	ID          string          `json:"id" validate:"required"`
	AccountID   string          `json:"accountId" validate:"required"`
	Type        TransactionType `json:"type" validate:"oneof=income expense"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" validate:"required"`
	Category    string          `json:"category,omitempty"`
	Date        civil.Date      `json:"date"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Signed returns the amount with the sign implied by the transaction type.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TransactionTypeIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}

// AccountInput holds caller-supplied fields for a new account.
// InitialBalance is decimal text; anything unparsable counts as zero.
type AccountInput struct {
	Name           string
	Type           AccountType
	InitialBalance string
	Description    string
}

// AccountUpdate replaces only the fields that are set.
type AccountUpdate struct {
	Name           omit.Val[string]
	Type           omit.Val[AccountType]
	InitialBalance omit.Val[string]
	Description    omit.Val[string]
}

// TransactionInput holds caller-supplied fields for a new transaction.
// Amount is decimal text and Date is YYYY-MM-DD; bad values fall back to
// zero and today respectively.
type TransactionInput struct {
	AccountID   string
	Type        TransactionType
	Amount      string
	Description string
	Category    string
	Date        string
	Notes       string
}

// TransactionUpdate replaces only the fields that are set.
type TransactionUpdate struct {
	AccountID   omit.Val[string]
	Type        omit.Val[TransactionType]
	Amount      omit.Val[string]
	Description omit.Val[string]
	Category    omit.Val[string]
	Date        omit.Val[string]
	Notes       omit.Val[string]
}

// TransactionFilter narrows a transaction listing. Zero fields match everything.
type TransactionFilter struct {
	AccountID string
	Type      TransactionType
	Category  string
}

func (f TransactionFilter) matches(t Transaction) bool {
	if f.AccountID != "" && t.AccountID != f.AccountID {
		return false
	}
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	return true
}

// Summary is the dashboard view of the ledger.
type Summary struct {
	TotalBalance  decimal.Decimal
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	AccountCount  int
	IncomeCount   int
	ExpenseCount  int
}
