// internal/app/features/users/handler.go
package users

import (
	usersvc "github.com/dalemusser/weatherhub/internal/app/services/users"
	"go.uber.org/zap"
)

const notFoundMessage = "User not found"

// Handler is the feature-level entry point for user accounts.
type Handler struct {
	Users    *usersvc.Service
	MaxLimit int
	Log      *zap.Logger
}

// NewHandler constructs a users Handler. maxLimit caps the page size.
func NewHandler(svc *usersvc.Service, maxLimit int, logger *zap.Logger) *Handler {
	return &Handler{
		Users:    svc,
		MaxLimit: maxLimit,
		Log:      logger,
	}
}
