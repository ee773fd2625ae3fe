package service

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/user/model"
)

// UserService is the business logic contract for identity and
// user management.
type UserService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.LoginResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*model.LoginResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.UserDTO, error)

	// Admin operations
	ListUsers(ctx context.Context, page, limit int) ([]model.UserDTO, int, error)
	UpdateUserRole(ctx context.Context, id uuid.UUID, role string) error
	UpdateUserStatus(ctx context.Context, id uuid.UUID, isActive bool) error
}
