package sqlite

import (
	"context"
	"fmt"

	"github.com/SscSPs/expense_tracker_api/internal/apperrors"
	"github.com/SscSPs/expense_tracker_api/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_api/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker_api/internal/models"
	"github.com/SscSPs/expense_tracker_api/internal/utils/mapping"
	"github.com/jmoiron/sqlx"
)

// userRow mirrors the users table; timestamps are unix milliseconds.
type userRow struct {
	UserID       string `db:"user_id"`
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	CreatedAt    int64  `db:"created_at"`
	UpdatedAt    int64  `db:"updated_at"`
}

func (r userRow) toModel() models.User {
	return models.User{
		UserID:       r.UserID,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		CreatedAt:    fromMillis(r.CreatedAt),
		UpdatedAt:    fromMillis(r.UpdatedAt),
	}
}

type SQLiteUserRepository struct {
	BaseRepository
}

func newSQLiteUserRepository(db *sqlx.DB) portsrepo.UserRepositoryFacade {
	return &SQLiteUserRepository{BaseRepository{DB: db}}
}

var _ portsrepo.UserRepositoryFacade = (*SQLiteUserRepository)(nil)

const userColumns = `user_id, username, email, password_hash, created_at, updated_at`

func (r *SQLiteUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		m.UserID, m.Username, m.Email, m.PasswordHash, toMillis(m.CreatedAt), toMillis(m.UpdatedAt),
	)
	if err != nil {
		return mapWriteError(err, "failed to save user")
	}
	return nil
}

func (r *SQLiteUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = ?`, userID)
}

func (r *SQLiteUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
}

func (r *SQLiteUserRepository) FindUserByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	return r.findOne(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ? OR email = ? ORDER BY created_at LIMIT 1`,
		username, email)
}

func (r *SQLiteUserRepository) findOne(ctx context.Context, query string, args ...any) (*domain.User, error) {
	var row userRow
	if err := r.DB.GetContext(ctx, &row, query, args...); err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	u := mapping.ToDomainUser(row.toModel())
	return &u, nil
}
