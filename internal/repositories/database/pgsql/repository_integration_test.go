package pgsql

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker_api/internal/apperrors"
	"github.com/SscSPs/expense_tracker_api/internal/core/domain"
	"github.com/SscSPs/expense_tracker_api/pkg/database"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a disposable database named by PGSQL_TEST_URL.
func TestPgxRepositories_Integration(t *testing.T) {
	dsn := os.Getenv("PGSQL_TEST_URL")
	if dsn == "" {
		t.Skip("PGSQL_TEST_URL not set")
	}
	ctx := context.Background()

	require.NoError(t, database.RunMigrations(dsn, slog.New(slog.NewTextHandler(os.Stderr, nil))))
	pool, err := database.NewPgxPool(ctx, dsn, true)
	require.NoError(t, err)
	defer pool.Close()

	repos := NewRepositoryProvider(pool)
	require.NoError(t, repos.Health.Ping(ctx))

	marker := uuid.NewString()[:8]
	now := time.Now().UTC().Truncate(time.Microsecond)
	e := domain.Expense{
		ExpenseID:   uuid.NewString(),
		Amount:      decimal.RequireFromString("12.34"),
		AccountType: "cash",
		ExpenseType: "expense",
		Category:    "Food",
		Description: "lunch " + marker,
		Timestamps:  domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	require.NoError(t, repos.ExpenseRepo.SaveExpense(ctx, e))
	t.Cleanup(func() { _ = repos.ExpenseRepo.DeleteExpense(ctx, e.ExpenseID) })

	got, err := repos.ExpenseRepo.FindExpenseByID(ctx, e.ExpenseID)
	require.NoError(t, err)
	assert.True(t, e.Amount.Equal(got.Amount))

	filter := domain.ExpenseFilter{Search: "LUNCH " + marker, CreatedFrom: &now}
	list, err := repos.ExpenseRepo.FindExpenses(ctx, domain.ExpenseQuery{
		Filter: filter,
		Sort:   domain.DefaultExpenseSort(),
		Window: domain.PageWindow{Page: 1, Limit: 10},
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, e.ExpenseID, list[0].ExpenseID)

	total, err := repos.ExpenseRepo.CountExpenses(ctx, filter)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	require.NoError(t, repos.ExpenseRepo.DeleteExpense(ctx, e.ExpenseID))
	assert.ErrorIs(t, repos.ExpenseRepo.DeleteExpense(ctx, e.ExpenseID), apperrors.ErrNotFound)

	// A braced id parses as a UUID and reaches the server; "abc" does not.
	_, err = repos.ExpenseRepo.FindExpenseByID(ctx, "{"+e.ExpenseID+"}")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = repos.ExpenseRepo.FindExpenseByID(ctx, "abc")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	huge := e
	huge.ExpenseID = uuid.NewString()
	huge.Amount = decimal.RequireFromString("1000000000000000")
	assert.ErrorIs(t, repos.ExpenseRepo.SaveExpense(ctx, huge), apperrors.ErrValidation)

	u := domain.User{
		UserID:       uuid.NewString(),
		Username:     "it_" + marker,
		Email:        marker + "@example.com",
		PasswordHash: "hash",
		Timestamps:   domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	require.NoError(t, repos.UserRepo.SaveUser(ctx, u))
	t.Cleanup(func() { _, _ = pool.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, u.UserID) })

	dup := u
	dup.UserID = uuid.NewString()
	assert.ErrorIs(t, repos.UserRepo.SaveUser(ctx, dup), apperrors.ErrDuplicate)
}
