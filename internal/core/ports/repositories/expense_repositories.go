package repositories

import (
	"context"

	"github.com/SscSPs/expense_tracker_api/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves a single expense. Returns apperrors.ErrNotFound when absent.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// FindExpenses returns the sorted, windowed slice of expenses matching the query filter.
	FindExpenses(ctx context.Context, query domain.ExpenseQuery) ([]domain.Expense, error)

	// CountExpenses counts every expense matching the filter, ignoring pagination.
	CountExpenses(ctx context.Context, filter domain.ExpenseFilter) (int64, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpense persists a new expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// UpdateExpense overwrites the mutable fields and UpdatedAt of an existing expense.
	// Returns apperrors.ErrNotFound when no row matched.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an expense. Returns apperrors.ErrNotFound when no row matched.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
