package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/expense_tracker_api/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Amounts are stored as NUMERIC(19,4): at most four fractional digits and an
// absolute value below 10^15.
const MaxAmountScale = 4

var maxAmountMagnitude = decimal.New(1, 15)

// ValidateAmount rejects amounts the store cannot hold exactly.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.Equal(amount.Truncate(MaxAmountScale)) {
		return fmt.Errorf("%w: amount must have at most %d decimal places", apperrors.ErrValidation, MaxAmountScale)
	}
	if amount.Abs().GreaterThanOrEqual(maxAmountMagnitude) {
		return fmt.Errorf("%w: amount must be less than %s in magnitude", apperrors.ErrValidation, maxAmountMagnitude)
	}
	return nil
}

// Expense is a single persisted monetary transaction.
type Expense struct {
	ExpenseID   string          `json:"id"` // Primary Key (UUID)
	Amount      decimal.Decimal `json:"amount"`
	AccountType string          `json:"accountType"`
	ExpenseType string          `json:"expenseType"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Author      *string         `json:"author,omitempty"` // UserID reference, not enforced
	Timestamps
}

// Validate checks the creation invariant: amount, account type, expense type
// and category must all be present. A zero amount counts as missing; the sign
// of the amount is not restricted.
func (e *Expense) Validate() error {
	var missing []string
	if e.Amount.IsZero() {
		missing = append(missing, "amount")
	}
	if e.AccountType == "" {
		missing = append(missing, "accountType")
	}
	if e.ExpenseType == "" {
		missing = append(missing, "expenseType")
	}
	if e.Category == "" {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", apperrors.ErrValidation, strings.Join(missing, ", "))
	}
	return ValidateAmount(e.Amount)
}

// ReplaceMutableFields overwrites the four user-editable fields wholesale.
// Fields absent from the update are reset to their zero value, not merged.
func (e *Expense) ReplaceMutableFields(amount decimal.Decimal, accountType, expenseType, category string) {
	e.Amount = amount
	e.AccountType = accountType
	e.ExpenseType = expenseType
	e.Category = category
}
