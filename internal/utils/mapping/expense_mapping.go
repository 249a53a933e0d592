package mapping

import (
	"github.com/SscSPs/expense_tracker_api/internal/core/domain"
	"github.com/SscSPs/expense_tracker_api/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:   d.ExpenseID,
		Amount:      d.Amount,
		AccountType: d.AccountType,
		ExpenseType: d.ExpenseType,
		Category:    d.Category,
		Description: d.Description,
		Author:      d.Author,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   m.ExpenseID,
		Amount:      m.Amount,
		AccountType: m.AccountType,
		ExpenseType: m.ExpenseType,
		Category:    m.Category,
		Description: m.Description,
		Author:      m.Author,
		Timestamps:  ToDomainTimestamps(m.CreatedAt, m.UpdatedAt),
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to a slice of domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
