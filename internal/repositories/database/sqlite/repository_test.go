package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker_api/internal/apperrors"
	"github.com/SscSPs/expense_tracker_api/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_api/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	db   *sqlx.DB
	repo portsrepo.RepositoryProvider
	base time.Time
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	db, err := Open(s.ctx, ":memory:")
	require.NoError(s.T(), err, "failed to create test database")
	s.db = db
	s.repo = NewRepositoryProvider(db)
	s.base = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
}

func (s *RepositoryTestSuite) TearDownTest() {
	if s.db != nil {
		s.db.Close()
	}
}

func (s *RepositoryTestSuite) seed(amount string, category, description string, createdAt time.Time) domain.Expense {
	e := domain.Expense{
		ExpenseID:   uuid.NewString(),
		Amount:      decimal.RequireFromString(amount),
		AccountType: "cash",
		ExpenseType: "expense",
		Category:    category,
		Description: description,
		Timestamps:  domain.Timestamps{CreatedAt: createdAt, UpdatedAt: createdAt},
	}
	require.NoError(s.T(), s.repo.ExpenseRepo.SaveExpense(s.ctx, e))
	return e
}

func (s *RepositoryTestSuite) seedDefault() (coffee, bus, rent domain.Expense) {
	coffee = s.seed("4.50", "Food", "Morning COFFEE", s.base)
	bus = s.seed("2.00", "Transport", "bus ticket", s.base.Add(time.Hour))
	rent = s.seed("900", "Housing", "rent", s.base.AddDate(0, 0, -20))
	return
}

func (s *RepositoryTestSuite) query(f domain.ExpenseFilter, sort domain.ExpenseSort, page, limit int) []domain.Expense {
	got, err := s.repo.ExpenseRepo.FindExpenses(s.ctx, domain.ExpenseQuery{
		Filter: f,
		Sort:   sort,
		Window: domain.PageWindow{Page: page, Limit: limit},
	})
	require.NoError(s.T(), err)
	return got
}

func ids(es []domain.Expense) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.ExpenseID
	}
	return out
}

func (s *RepositoryTestSuite) TestSaveAndFindByID() {
	e := s.seed("-12.75", "Refund", "returned shoes", s.base)

	got, err := s.repo.ExpenseRepo.FindExpenseByID(s.ctx, e.ExpenseID)
	require.NoError(s.T(), err)
	assert.True(s.T(), decimal.RequireFromString("-12.75").Equal(got.Amount))
	assert.Equal(s.T(), "Refund", got.Category)
	assert.Equal(s.T(), "returned shoes", got.Description)
	assert.True(s.T(), s.base.Equal(got.CreatedAt))
	assert.Nil(s.T(), got.Author)
}

func (s *RepositoryTestSuite) TestSaveExpense_WithAuthor() {
	author := uuid.NewString()
	e := domain.Expense{
		ExpenseID:   uuid.NewString(),
		Amount:      decimal.NewFromInt(3),
		AccountType: "card",
		ExpenseType: "expense",
		Category:    "Food",
		Author:      &author,
		Timestamps:  domain.Timestamps{CreatedAt: s.base, UpdatedAt: s.base},
	}
	require.NoError(s.T(), s.repo.ExpenseRepo.SaveExpense(s.ctx, e))

	got, err := s.repo.ExpenseRepo.FindExpenseByID(s.ctx, e.ExpenseID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), got.Author)
	assert.Equal(s.T(), author, *got.Author)
	assert.Empty(s.T(), got.Description)
}

func (s *RepositoryTestSuite) TestFindByID_NotFound() {
	_, err := s.repo.ExpenseRepo.FindExpenseByID(s.ctx, uuid.NewString())
	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
}

func (s *RepositoryTestSuite) TestFindExpenses_DefaultSortNewestFirst() {
	coffee, bus, rent := s.seedDefault()

	got := s.query(domain.ExpenseFilter{}, domain.DefaultExpenseSort(), 1, 10)
	assert.Equal(s.T(), []string{bus.ExpenseID, coffee.ExpenseID, rent.ExpenseID}, ids(got))
}

func (s *RepositoryTestSuite) TestFindExpenses_SearchDescriptionOrCategory() {
	coffee, bus, _ := s.seedDefault()

	got := s.query(domain.ExpenseFilter{Search: "coffee"}, domain.DefaultExpenseSort(), 1, 10)
	assert.Equal(s.T(), []string{coffee.ExpenseID}, ids(got))

	got = s.query(domain.ExpenseFilter{Search: "TRANS"}, domain.DefaultExpenseSort(), 1, 10)
	assert.Equal(s.T(), []string{bus.ExpenseID}, ids(got))
}

func (s *RepositoryTestSuite) TestFindExpenses_SearchIsLiteral() {
	s.seedDefault()
	promo := s.seed("10", "Shopping", "50% off", s.base)

	got := s.query(domain.ExpenseFilter{Search: "%"}, domain.DefaultExpenseSort(), 1, 10)
	assert.Equal(s.T(), []string{promo.ExpenseID}, ids(got))

	got = s.query(domain.ExpenseFilter{Search: "_"}, domain.DefaultExpenseSort(), 1, 10)
	assert.Empty(s.T(), got)
}

func (s *RepositoryTestSuite) TestFindExpenses_SortByAmountAndDescription() {
	coffee, bus, rent := s.seedDefault()

	got := s.query(domain.ExpenseFilter{}, domain.ExpenseSort{Field: domain.SortByAmount, Direction: domain.SortDesc}, 1, 10)
	assert.Equal(s.T(), []string{rent.ExpenseID, coffee.ExpenseID, bus.ExpenseID}, ids(got))

	got = s.query(domain.ExpenseFilter{}, domain.ExpenseSort{Field: domain.SortByDescription, Direction: domain.SortAsc}, 1, 10)
	assert.Equal(s.T(), []string{coffee.ExpenseID, bus.ExpenseID, rent.ExpenseID}, ids(got))
}

func (s *RepositoryTestSuite) TestFindExpenses_DateBoundsInclusive() {
	coffee, bus, _ := s.seedDefault()
	from := s.base
	to := s.base.Add(time.Hour)

	f := domain.ExpenseFilter{CreatedFrom: &from, CreatedTo: &to}
	got := s.query(f, domain.DefaultExpenseSort(), 1, 10)
	assert.ElementsMatch(s.T(), []string{coffee.ExpenseID, bus.ExpenseID}, ids(got))

	total, err := s.repo.ExpenseRepo.CountExpenses(s.ctx, f)
	require.NoError(s.T(), err)
	assert.EqualValues(s.T(), 2, total)
}

func (s *RepositoryTestSuite) TestFindExpenses_PaginationWindow() {
	for i := 0; i < 25; i++ {
		s.seed("1", "Misc", "item", s.base.Add(time.Duration(i)*time.Minute))
	}

	page3 := s.query(domain.ExpenseFilter{}, domain.DefaultExpenseSort(), 3, 10)
	assert.Len(s.T(), page3, 5)

	beyond := s.query(domain.ExpenseFilter{}, domain.DefaultExpenseSort(), 4, 10)
	assert.Empty(s.T(), beyond)

	total, err := s.repo.ExpenseRepo.CountExpenses(s.ctx, domain.ExpenseFilter{})
	require.NoError(s.T(), err)
	assert.EqualValues(s.T(), 25, total)
}

func (s *RepositoryTestSuite) TestFindExpenses_TiesAreStableAcrossPages() {
	for i := 0; i < 6; i++ {
		s.seed("5", "Food", "same", s.base)
	}
	sort := domain.ExpenseSort{Field: domain.SortByAmount, Direction: domain.SortAsc}

	first := s.query(domain.ExpenseFilter{}, sort, 1, 3)
	second := s.query(domain.ExpenseFilter{}, sort, 2, 3)
	all := s.query(domain.ExpenseFilter{}, sort, 1, 6)

	assert.Equal(s.T(), ids(all), append(ids(first), ids(second)...))
}

func (s *RepositoryTestSuite) TestFindExpenses_SearchFoldsNonASCII() {
	cafe := s.seed("3.20", "CAFÉ", "flat white", s.base)
	s.seed("1", "Misc", "cafe without accent", s.base)

	got := s.query(domain.ExpenseFilter{Search: "café"}, domain.DefaultExpenseSort(), 1, 10)
	assert.Equal(s.T(), []string{cafe.ExpenseID}, ids(got))

	total, err := s.repo.ExpenseRepo.CountExpenses(s.ctx, domain.ExpenseFilter{Search: "Café"})
	require.NoError(s.T(), err)
	assert.EqualValues(s.T(), 1, total)
}

func (s *RepositoryTestSuite) TestAmount_RoundTripsExactly() {
	e := s.seed("12345678901234567.89", "Misc", "big", s.base)

	got, err := s.repo.ExpenseRepo.FindExpenseByID(s.ctx, e.ExpenseID)
	require.NoError(s.T(), err)
	assert.True(s.T(), e.Amount.Equal(got.Amount), "got %s", got.Amount)

	e.Amount = decimal.RequireFromString("0.1000")
	e.UpdatedAt = s.base.Add(time.Minute)
	require.NoError(s.T(), s.repo.ExpenseRepo.UpdateExpense(s.ctx, e))
	got, err = s.repo.ExpenseRepo.FindExpenseByID(s.ctx, e.ExpenseID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "0.1", got.Amount.String())
}

func (s *RepositoryTestSuite) TestFindExpenses_AmountSortIsNumeric() {
	nine := s.seed("9", "Misc", "nine", s.base)
	ten := s.seed("10", "Misc", "ten", s.base)
	neg := s.seed("-100.5", "Refund", "refund", s.base)

	got := s.query(domain.ExpenseFilter{}, domain.ExpenseSort{Field: domain.SortByAmount, Direction: domain.SortAsc}, 1, 10)
	assert.Equal(s.T(), []string{neg.ExpenseID, nine.ExpenseID, ten.ExpenseID}, ids(got))
}

func (s *RepositoryTestSuite) TestFindExpenses_HugePageIsEmpty() {
	s.seedDefault()

	got := s.query(domain.ExpenseFilter{}, domain.DefaultExpenseSort(), 1_000_000_000_000_000_000, 10)
	assert.Empty(s.T(), got)
}

func (s *RepositoryTestSuite) TestUpdateExpense() {
	e := s.seed("4.50", "Food", "coffee", s.base)
	e.ReplaceMutableFields(decimal.RequireFromString("6"), "card", "expense", "Drinks")
	e.UpdatedAt = s.base.Add(time.Minute)

	require.NoError(s.T(), s.repo.ExpenseRepo.UpdateExpense(s.ctx, e))

	got, err := s.repo.ExpenseRepo.FindExpenseByID(s.ctx, e.ExpenseID)
	require.NoError(s.T(), err)
	assert.True(s.T(), decimal.NewFromInt(6).Equal(got.Amount))
	assert.Equal(s.T(), "Drinks", got.Category)
	assert.Equal(s.T(), "coffee", got.Description)
	assert.True(s.T(), e.UpdatedAt.Equal(got.UpdatedAt))
	assert.True(s.T(), s.base.Equal(got.CreatedAt))
}

func (s *RepositoryTestSuite) TestUpdateAndDelete_NotFound() {
	missing := domain.Expense{ExpenseID: uuid.NewString(), Amount: decimal.NewFromInt(1)}
	assert.ErrorIs(s.T(), s.repo.ExpenseRepo.UpdateExpense(s.ctx, missing), apperrors.ErrNotFound)
	assert.ErrorIs(s.T(), s.repo.ExpenseRepo.DeleteExpense(s.ctx, missing.ExpenseID), apperrors.ErrNotFound)
}

func (s *RepositoryTestSuite) TestDeleteExpense() {
	e := s.seed("1", "Misc", "gone", s.base)
	require.NoError(s.T(), s.repo.ExpenseRepo.DeleteExpense(s.ctx, e.ExpenseID))

	_, err := s.repo.ExpenseRepo.FindExpenseByID(s.ctx, e.ExpenseID)
	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
}

func (s *RepositoryTestSuite) TestUsers() {
	u := domain.User{
		UserID:       uuid.NewString(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Timestamps:   domain.Timestamps{CreatedAt: s.base, UpdatedAt: s.base},
	}
	require.NoError(s.T(), s.repo.UserRepo.SaveUser(s.ctx, u))

	byEmail, err := s.repo.UserRepo.FindUserByEmail(s.ctx, "alice@example.com")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), u.UserID, byEmail.UserID)
	assert.Equal(s.T(), "hash", byEmail.PasswordHash)

	byID, err := s.repo.UserRepo.FindUserByID(s.ctx, u.UserID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "alice", byID.Username)

	either, err := s.repo.UserRepo.FindUserByUsernameOrEmail(s.ctx, "alice", "other@example.com")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), u.UserID, either.UserID)

	_, err = s.repo.UserRepo.FindUserByEmail(s.ctx, "bob@example.com")
	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)

	dup := u
	dup.UserID = uuid.NewString()
	dup.Username = "alice2"
	assert.ErrorIs(s.T(), s.repo.UserRepo.SaveUser(s.ctx, dup), apperrors.ErrDuplicate)
}

func (s *RepositoryTestSuite) TestPing() {
	assert.NoError(s.T(), s.repo.Health.Ping(s.ctx))
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
