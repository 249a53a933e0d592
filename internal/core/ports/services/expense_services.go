package services

import (
	"context"

	"github.com/SscSPs/expense_tracker_api/internal/core/domain"
	"github.com/SscSPs/expense_tracker_api/internal/dto"
)

// ExpenseReaderSvc defines read operations for expenses
type ExpenseReaderSvc interface {
	// GetExpenseByID retrieves one expense.
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses resolves the raw list parameters and returns one page of results.
	ListExpenses(ctx context.Context, params dto.ListExpensesParams) (*domain.ExpensePage, error)
}

// ExpenseWriterSvc defines write operations for expenses
type ExpenseWriterSvc interface {
	// CreateExpense validates and persists a new expense authored by authorID.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, authorID string) (*domain.Expense, error)

	// UpdateExpense replaces the four mutable fields of an expense.
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error)

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
