package ledger

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Accounts returns a copy of all accounts in insertion order.
func (s *Store) Accounts() []Account {
	defer s.rlock()()
	return slices.Clone(s.accounts)
}

// Transactions returns a copy of all transactions in insertion order.
func (s *Store) Transactions() []Transaction {
	defer s.rlock()()
	return slices.Clone(s.transactions)
}

func (s *Store) AccountCount() int {
	defer s.rlock()()
	return len(s.accounts)
}

func (s *Store) Account(id string) (Account, bool) {
	defer s.rlock()()
	i := s.accountIndex(id)
	if i < 0 {
		return Account{}, false
	}
	return s.accounts[i], true
}

func (s *Store) Transaction(id string) (Transaction, bool) {
	defer s.rlock()()
	i := s.transactionIndex(id)
	if i < 0 {
		return Transaction{}, false
	}
	return s.transactions[i], true
}

// AccountBalance is the initial balance plus the signed sum of the account's
// transactions, or zero when the account does not exist.
func (s *Store) AccountBalance(accountID string) decimal.Decimal {
	defer s.rlock()()
	return s.accountBalance(accountID)
}

func (s *Store) accountBalance(accountID string) decimal.Decimal {
	i := s.accountIndex(accountID)
	if i < 0 {
		return decimal.Zero
	}

	balance := s.accounts[i].InitialBalance
	for _, t := range s.transactions {
		if t.AccountID == accountID {
			balance = balance.Add(t.Signed())
		}
	}
	return balance
}

// TotalBalance sums AccountBalance over every account.
func (s *Store) TotalBalance() decimal.Decimal {
	defer s.rlock()()
	return s.totalBalance()
}

func (s *Store) totalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, a := range s.accounts {
		total = total.Add(s.accountBalance(a.ID))
	}
	return total
}

func (s *Store) TotalIncome() decimal.Decimal {
	defer s.rlock()()
	return s.totalOf(TransactionTypeIncome)
}

func (s *Store) TotalExpenses() decimal.Decimal {
	defer s.rlock()()
	return s.totalOf(TransactionTypeExpense)
}

func (s *Store) totalOf(transactionType TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, t := range s.transactions {
		if t.Type == transactionType {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// AccountTransactions returns the account's transactions in insertion order.
func (s *Store) AccountTransactions(accountID string) []Transaction {
	defer s.rlock()()
	return s.filter(TransactionFilter{AccountID: accountID})
}

func (s *Store) AccountTransactionCount(accountID string) int {
	defer s.rlock()()
	count := 0
	for _, t := range s.transactions {
		if t.AccountID == accountID {
			count++
		}
	}
	return count
}

func (s *Store) filter(f TransactionFilter) []Transaction {
	matched := []Transaction{}
	for _, t := range s.transactions {
		if f.matches(t) {
			matched = append(matched, t)
		}
	}
	return matched
}

// FilterTransactions returns the matching transactions, newest date first.
// Same-day transactions are ordered by creation time, newest first.
func (s *Store) FilterTransactions(f TransactionFilter) []Transaction {
	defer s.rlock()()

	matched := s.filter(f)
	slices.SortStableFunc(matched, func(a, b Transaction) int {
		switch {
		case a.Date.After(b.Date):
			return -1
		case a.Date.Before(b.Date):
			return 1
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return matched
}

// RecentTransactions returns up to n transactions, most recently created first.
func (s *Store) RecentTransactions(n int) []Transaction {
	defer s.rlock()()

	if n <= 0 {
		return []Transaction{}
	}
	recent := slices.Clone(s.transactions)
	slices.SortStableFunc(recent, func(a, b Transaction) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return recent[:min(n, len(recent))]
}

// UsedCategories lists the distinct non-empty categories in first-seen order.
func (s *Store) UsedCategories() []string {
	defer s.rlock()()

	seen := make(map[string]struct{})
	categories := []string{}
	for _, t := range s.transactions {
		if t.Category == "" {
			continue
		}
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		categories = append(categories, t.Category)
	}
	return categories
}

// Summary computes every dashboard figure from one consistent snapshot.
func (s *Store) Summary() Summary {
	defer s.rlock()()

	summary := Summary{
		TotalBalance:  s.totalBalance(),
		TotalIncome:   s.totalOf(TransactionTypeIncome),
		TotalExpenses: s.totalOf(TransactionTypeExpense),
		AccountCount:  len(s.accounts),
	}
	for _, t := range s.transactions {
		switch t.Type {
		case TransactionTypeIncome:
			summary.IncomeCount++
		case TransactionTypeExpense:
			summary.ExpenseCount++
		}
	}
	return summary
}
