package handler

import (
	"context"

	"github.com/itchan-dev/itchan-auth/backend/internal/service"
)

// HealthChecker reports whether the user directory is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth   service.AuthService
	health HealthChecker
}

func New(auth service.AuthService, health HealthChecker) *Handler {
	return &Handler{
		auth:   auth,
		health: health,
	}
}
