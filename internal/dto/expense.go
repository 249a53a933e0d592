package dto

import (
	"time"

	"github.com/SscSPs/expense_tracker_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to create a new expense.
// Amount is a pointer so an omitted amount fails "required".
type CreateExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number"`
	AccountType string           `json:"accountType" binding:"required"`
	ExpenseType string           `json:"expenseType" binding:"required"`
	Category    string           `json:"category" binding:"required"`
	Description string           `json:"description"` // Optional
}

// UpdateExpenseRequest carries the full replacement for an expense's mutable fields.
// Omitted fields are written as their zero value; there is no merge.
type UpdateExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount" swaggertype:"number"`
	AccountType string           `json:"accountType"`
	ExpenseType string           `json:"expenseType"`
	Category    string           `json:"category"`
}

// ListExpensesParams defines query parameters for listing expenses.
// Everything is bound as a string so that malformed values degrade to
// defaults instead of failing the request.
type ListExpensesParams struct {
	Search    string `form:"search"`
	Filter    string `form:"filter"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Sort      string `form:"sort"`
	Page      string `form:"page"`
	Limit     string `form:"limit"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"number"`
	AccountType string          `json:"accountType"`
	ExpenseType string          `json:"expenseType"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Author      *string         `json:"author,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ExpenseEnvelope wraps a single expense with a status message.
type ExpenseEnvelope struct {
	Expense ExpenseResponse `json:"expense"`
	Message string          `json:"message"`
}

// ListExpensesResponse is one page of expenses plus pagination metadata.
type ListExpensesResponse struct {
	Data          []ExpenseResponse `json:"data"`
	TotalPages    int               `json:"totalPages"`
	Page          int               `json:"page"`
	TotalElements int64             `json:"totalElements"`
	Message       string            `json:"message"`
}

// DeleteExpenseResponse confirms a deletion.
type DeleteExpenseResponse struct {
	Deleted bool   `json:"deleted"`
	Message string `json:"message"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ExpenseID,
		Amount:      e.Amount,
		AccountType: e.AccountType,
		ExpenseType: e.ExpenseType,
		Category:    e.Category,
		Description: e.Description,
		Author:      e.Author,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToListExpensesResponse converts a domain.ExpensePage to the list response.
func ToListExpensesResponse(p *domain.ExpensePage) ListExpensesResponse {
	data := make([]ExpenseResponse, len(p.Expenses))
	for i := range p.Expenses {
		data[i] = ToExpenseResponse(&p.Expenses[i])
	}
	return ListExpensesResponse{
		Data:          data,
		TotalPages:    p.TotalPages,
		Page:          p.Page,
		TotalElements: p.TotalElements,
		Message:       "Expenses fetched successfully",
	}
}
