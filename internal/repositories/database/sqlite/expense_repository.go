package sqlite

import (
	"context"
	"fmt"

	"github.com/SscSPs/expense_tracker_api/internal/apperrors"
	"github.com/SscSPs/expense_tracker_api/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_api/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker_api/internal/models"
	"github.com/SscSPs/expense_tracker_api/internal/repositories/database/querybuilder"
	"github.com/SscSPs/expense_tracker_api/internal/utils/mapping"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// expenseRow mirrors the expenses table; timestamps are unix milliseconds.
type expenseRow struct {
	ExpenseID   string          `db:"expense_id"`
	Amount      decimal.Decimal `db:"amount"`
	AccountType string          `db:"account_type"`
	ExpenseType string          `db:"expense_type"`
	Category    string          `db:"category"`
	Description string          `db:"description"`
	Author      *string         `db:"author_id"`
	CreatedAt   int64           `db:"created_at"`
	UpdatedAt   int64           `db:"updated_at"`
}

func (r expenseRow) toModel() models.Expense {
	return models.Expense{
		ExpenseID:   r.ExpenseID,
		Amount:      r.Amount,
		AccountType: r.AccountType,
		ExpenseType: r.ExpenseType,
		Category:    r.Category,
		Description: r.Description,
		Author:      r.Author,
		CreatedAt:   fromMillis(r.CreatedAt),
		UpdatedAt:   fromMillis(r.UpdatedAt),
	}
}

type SQLiteExpenseRepository struct {
	BaseRepository
}

func newSQLiteExpenseRepository(db *sqlx.DB) portsrepo.ExpenseRepositoryFacade {
	return &SQLiteExpenseRepository{BaseRepository{DB: db}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*SQLiteExpenseRepository)(nil)

func (r *SQLiteExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO expenses (`+querybuilder.ExpenseColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ExpenseID, m.Amount.String(), m.AccountType, m.ExpenseType, m.Category,
		m.Description, m.Author, toMillis(m.CreatedAt), toMillis(m.UpdatedAt),
	)
	if err != nil {
		return mapWriteError(err, "failed to save expense")
	}
	return nil
}

func (r *SQLiteExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	var row expenseRow
	err := r.DB.GetContext(ctx, &row,
		`SELECT `+querybuilder.ExpenseColumns+` FROM expenses WHERE expense_id = ?`, expenseID)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", expenseID, err)
	}
	d := mapping.ToDomainExpense(row.toModel())
	return &d, nil
}

func (r *SQLiteExpenseRepository) FindExpenses(ctx context.Context, q domain.ExpenseQuery) ([]domain.Expense, error) {
	query, args := querybuilder.SQLite.SelectExpenses(q)
	var rows []expenseRow
	if err := r.DB.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	ms := make([]models.Expense, len(rows))
	for i, row := range rows {
		ms[i] = row.toModel()
	}
	return mapping.ToDomainExpenseSlice(ms), nil
}

func (r *SQLiteExpenseRepository) CountExpenses(ctx context.Context, f domain.ExpenseFilter) (int64, error) {
	query, args := querybuilder.SQLite.CountExpenses(f)
	var total int64
	if err := r.DB.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count expenses: %w", err)
	}
	return total, nil
}

func (r *SQLiteExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	res, err := r.DB.ExecContext(ctx,
		`UPDATE expenses SET amount = ?, account_type = ?, expense_type = ?, category = ?, updated_at = ? WHERE expense_id = ?`,
		m.Amount.String(), m.AccountType, m.ExpenseType, m.Category, toMillis(m.UpdatedAt), m.ExpenseID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update expense query: %w", err)
	}
	return requireAffected(res, expense.ExpenseID)
}

func (r *SQLiteExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM expenses WHERE expense_id = ?`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return requireAffected(res, expenseID)
}

type rowsAffecter interface {
	RowsAffected() (int64, error)
}

func requireAffected(res rowsAffecter, expenseID string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("expense %s: %w", expenseID, apperrors.ErrNotFound)
	}
	return nil
}
