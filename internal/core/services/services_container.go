package services

import (
	"time"

	portsrepo "github.com/SscSPs/expense_tracker_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker_api/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_api/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Expense: NewExpenseService(repos.ExpenseRepo, WithClock(time.Now)),
		User:    NewUserService(repos.UserRepo),
		Token:   NewTokenService(cfg),
	}
}
