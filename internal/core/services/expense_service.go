package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/expense_tracker_api/internal/apperrors"
	"github.com/SscSPs/expense_tracker_api/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker_api/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_api/internal/dto"
	"github.com/SscSPs/expense_tracker_api/internal/utils/expensequery"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// expenseService implements the ExpenseSvcFacade interface
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
	now         func() time.Time
}

// ExpenseServiceOption is a functional option for configuring the expense service
type ExpenseServiceOption func(*expenseService)

// WithClock overrides the time source used for timestamps and relative date filters.
func WithClock(now func() time.Time) ExpenseServiceOption {
	return func(s *expenseService) {
		s.now = now
	}
}

// NewExpenseService creates a new expense service with the provided options
func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade, options ...ExpenseServiceOption) portssvc.ExpenseSvcFacade {
	svc := &expenseService{
		expenseRepo: repo,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, authorID string) (*domain.Expense, error) {
	if err := s.ValidateRequest(req); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		Amount:      amountOrZero(req.Amount),
		AccountType: req.AccountType,
		ExpenseType: req.ExpenseType,
		Category:    req.Category,
		Description: req.Description,
		Timestamps:  domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if authorID != "" {
		expense.Author = &authorID
	}
	if err := expense.Validate(); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("expense_id", expense.ExpenseID))
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.LogInfo(ctx, "Expense created", slog.String("expense_id", expense.ExpenseID))
	return &expense, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	if err := requireID(expenseID, "expense id"); err != nil {
		return nil, err
	}
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get expense", slog.String("expense_id", expenseID))
		}
		return nil, err
	}
	return expense, nil
}

// ListExpenses resolves params into a query, then runs the bounded fetch and
// the unbounded count. The two reads are not in one transaction, so the total
// may drift from the page under concurrent writes.
func (s *expenseService) ListExpenses(ctx context.Context, params dto.ListExpensesParams) (*domain.ExpensePage, error) {
	query, err := expensequery.Resolve(expensequery.Params{
		Search:    params.Search,
		Filter:    params.Filter,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		Sort:      params.Sort,
		Page:      params.Page,
		Limit:     params.Limit,
	}, s.now())
	if err != nil {
		return nil, err
	}
	s.LogDebug(ctx, "Resolved expense query",
		slog.String("search", query.Filter.Search),
		slog.String("sort", string(query.Sort.Field)+" "+string(query.Sort.Direction)),
		slog.Int("page", query.Window.Page),
		slog.Int("limit", query.Window.Limit))

	expenses, err := s.expenseRepo.FindExpenses(ctx, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses")
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	total, err := s.expenseRepo.CountExpenses(ctx, query.Filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to count expenses")
		return nil, fmt.Errorf("failed to count expenses: %w", err)
	}

	return &domain.ExpensePage{
		Expenses:      expenses,
		TotalElements: total,
		TotalPages:    domain.TotalPagesFor(total, query.Window.Limit),
		Page:          query.Window.Page,
	}, nil
}

// UpdateExpense overwrites all four mutable fields. Fields missing from req
// are stored as their zero value.
func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	if err := requireID(expenseID, "expense id"); err != nil {
		return nil, err
	}
	amount := amountOrZero(req.Amount)
	if err := domain.ValidateAmount(amount); err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	expense.ReplaceMutableFields(amount, req.AccountType, req.ExpenseType, req.Category)
	expense.UpdatedAt = s.now().UTC()

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Expense updated", slog.String("expense_id", expenseID))
	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	if err := requireID(expenseID, "expense id"); err != nil {
		return err
	}
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		}
		return err
	}
	s.LogInfo(ctx, "Expense deleted", slog.String("expense_id", expenseID))
	return nil
}

func amountOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
