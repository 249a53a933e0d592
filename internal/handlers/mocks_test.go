package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/expense_tracker_api/internal/core/domain"
	"github.com/SscSPs/expense_tracker_api/internal/dto"
	"github.com/stretchr/testify/mock"
)

type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if e := args.Get(0); e != nil {
		return e.(*domain.Expense), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExpenseService) ListExpenses(ctx context.Context, params dto.ListExpensesParams) (*domain.ExpensePage, error) {
	args := m.Called(ctx, params)
	if p := args.Get(0); p != nil {
		return p.(*domain.ExpensePage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExpenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, authorID string) (*domain.Expense, error) {
	args := m.Called(ctx, req, authorID)
	if e := args.Get(0); e != nil {
		return e.(*domain.Expense), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExpenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID, req)
	if e := args.Get(0); e != nil {
		return e.(*domain.Expense), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExpenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	return m.Called(ctx, expenseID).Error(0)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

type stubHealth struct {
	err error
}

func (s stubHealth) Ping(context.Context) error { return s.err }
