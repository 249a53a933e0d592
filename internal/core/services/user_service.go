package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker_api/internal/apperrors"
	"github.com/SscSPs/expense_tracker_api/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker_api/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_api/internal/dto"
	"github.com/SscSPs/expense_tracker_api/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// NormalizeRegistration trims the username and lower-cases the email.
func NormalizeRegistration(req dto.RegisterRequest) dto.RegisterRequest {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = NormalizeEmail(req.Email)
	return req
}

// NormalizeEmail is the canonical stored form of an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	req = NormalizeRegistration(req)
	if err := s.ValidateRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.FindUserByUsernameOrEmail(ctx, req.Username, req.Email)
	switch {
	case err == nil && existing != nil:
		return nil, fmt.Errorf("%w: username or email already registered", apperrors.ErrDuplicate)
	case err != nil && !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to check for existing user")
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Timestamps:   domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	// The unique constraints still catch a concurrent registration.
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save user")
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if err := requireID(userID, "user id"); err != nil {
		return nil, err
	}
	return s.userRepo.FindUserByID(ctx, userID)
}

// AuthenticateUser returns apperrors.ErrNotFound for an unknown email and
// apperrors.ErrUnauthorized for a wrong password.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user does not exist", apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogInfo(ctx, "Login rejected: bad password", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}
	return user, nil
}
