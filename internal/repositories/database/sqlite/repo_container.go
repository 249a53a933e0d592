package sqlite

import (
	portsrepo "github.com/SscSPs/expense_tracker_api/internal/core/ports/repositories"
	"github.com/jmoiron/sqlx"
)

func NewRepositoryProvider(db *sqlx.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ExpenseRepo: newSQLiteExpenseRepository(db),
		UserRepo:    newSQLiteUserRepository(db),
		Health:      &BaseRepository{DB: db},
	}
}
