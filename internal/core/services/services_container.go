package services

import (
	portsrepo "github.com/oclock/event_backend/internal/core/ports/repositories"
	portssvc "github.com/oclock/event_backend/internal/core/ports/services"
	"github.com/oclock/event_backend/internal/platform/config"
	"github.com/oclock/event_backend/internal/platform/email"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Refresh tokens first; the auth service issues them at login.
	container.RefreshToken = NewRefreshTokenService(cfg, repos.RefreshTokenRepo, repos.UserRepo)
	container.Auth = NewAuthService(cfg, repos.UserRepo, container.RefreshToken)
	container.Event = NewEventService(repos.EventRepo, repos.UserRepo, repos.LocationRepo, repos.SponsorRepo, repos.Tx)
	container.User = NewUserService(repos.UserRepo, email.NewLogSender())

	return container
}
