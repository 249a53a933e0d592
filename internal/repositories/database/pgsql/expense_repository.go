package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/expense_tracker_api/internal/apperrors"
	"github.com/SscSPs/expense_tracker_api/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_api/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker_api/internal/models"
	"github.com/SscSPs/expense_tracker_api/internal/repositories/database/querybuilder"
	"github.com/SscSPs/expense_tracker_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(db *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
        INSERT INTO expenses (expense_id, amount, account_type, expense_type, category, description, author_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.ExpenseID, m.Amount, m.AccountType, m.ExpenseType, m.Category,
		m.Description, m.Author, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "failed to save expense")
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	if !isRowID(expenseID) {
		return nil, apperrors.ErrNotFound
	}
	query := `SELECT ` + querybuilder.ExpenseColumns + ` FROM expenses WHERE expense_id = $1;`
	m, err := scanExpense(r.Pool.QueryRow(ctx, query, expenseID))
	if err != nil {
		return nil, mapLookupError(err, "failed to find expense by ID "+expenseID)
	}
	d := mapping.ToDomainExpense(m)
	return &d, nil
}

func (r *PgxExpenseRepository) FindExpenses(ctx context.Context, q domain.ExpenseQuery) ([]domain.Expense, error) {
	query, args := querybuilder.Postgres.SelectExpenses(q)
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	modelExpenses := []models.Expense{}
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		modelExpenses = append(modelExpenses, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", rows.Err())
	}
	return mapping.ToDomainExpenseSlice(modelExpenses), nil
}

func (r *PgxExpenseRepository) CountExpenses(ctx context.Context, f domain.ExpenseFilter) (int64, error) {
	query, args := querybuilder.Postgres.CountExpenses(f)
	var total int64
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count expenses: %w", err)
	}
	return total, nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	if !isRowID(expense.ExpenseID) {
		return fmt.Errorf("expense %s: %w", expense.ExpenseID, apperrors.ErrNotFound)
	}
	m := mapping.ToModelExpense(expense)
	query := `
        UPDATE expenses
        SET amount = $1, account_type = $2, expense_type = $3, category = $4, updated_at = $5
        WHERE expense_id = $6;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Amount, m.AccountType, m.ExpenseType, m.Category, m.UpdatedAt, m.ExpenseID,
	)
	if err != nil {
		return mapWriteError(err, "failed to execute update expense query")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense %s: %w", expense.ExpenseID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	if !isRowID(expenseID) {
		return fmt.Errorf("expense %s: %w", expenseID, apperrors.ErrNotFound)
	}
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return mapLookupError(err, "failed to delete expense")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense %s: %w", expenseID, apperrors.ErrNotFound)
	}
	return nil
}

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.Amount,
		&m.AccountType,
		&m.ExpenseType,
		&m.Category,
		&m.Description,
		&m.Author,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}
