package handler

import (
	"context"

	"github.com/itchan-dev/confluence-bridge/backend/internal/service"
)

// HealthChecker reports whether Confluence can be reached with our credentials.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	user       service.UserService
	attachment service.AttachmentService
	health     HealthChecker
}

func New(user service.UserService, attachment service.AttachmentService, health HealthChecker) *Handler {
	return &Handler{
		user:       user,
		attachment: attachment,
		health:     health,
	}
}
