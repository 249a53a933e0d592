package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the persistence representation of an expense row.
type Expense struct {
	ExpenseID   string          `db:"expense_id"`
	Amount      decimal.Decimal `db:"amount"`
	AccountType string          `db:"account_type"`
	ExpenseType string          `db:"expense_type"`
	Category    string          `db:"category"`
	Description string          `db:"description"`
	Author      *string         `db:"author_id"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}
