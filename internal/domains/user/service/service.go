package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/internal/domains/user/model"
	"portfolio-backend/internal/domains/user/repository"
	"portfolio-backend/pkg/jwt"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type userService struct {
	userRepo   repository.UserRepository
	jwtManager *jwt.Manager
}

func NewUserService(userRepo repository.UserRepository, jwtManager *jwt.Manager) UserService {
	return &userService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

func (s *userService) Register(ctx context.Context, req model.RegisterRequest) (*model.LoginResponse, error) {
	// Step 1: Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Step 3: Create user entity. New signups are ordinary users; the
	// admin role is only granted through the user management endpoint.
	u := &model.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		DisplayName:  req.DisplayName,
		Role:         model.RoleUser,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	// Step 4: Issue tokens
	return s.buildLoginResponse(u)
}

func (s *userService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == model.ErrUserNotFound {
			// Do not reveal whether the email exists
			return nil, model.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	if !u.IsActive {
		return nil, model.ErrUserDisabled
	}

	return s.buildLoginResponse(u)
}

func (s *userService) Refresh(ctx context.Context, refreshToken string) (*model.LoginResponse, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, model.ErrInvalidCredentials
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, model.ErrInvalidCredentials
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err == model.ErrUserNotFound {
			return nil, model.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !u.IsActive {
		return nil, model.ErrUserDisabled
	}

	return s.buildLoginResponse(u)
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*model.UserDTO, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := model.ToDTO(u)
	return &dto, nil
}

// =====================================================
// ADMIN OPERATIONS
// =====================================================

func (s *userService) ListUsers(ctx context.Context, page, limit int) ([]model.UserDTO, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	users, total, err := s.userRepo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]model.UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, model.ToDTO(u))
	}

	return dtos, total, nil
}

func (s *userService) UpdateUserRole(ctx context.Context, id uuid.UUID, role string) error {
	req := model.UpdateRoleRequest{Role: role}
	if err := req.Validate(); err != nil {
		return err
	}

	return s.userRepo.UpdateRole(ctx, id, role)
}

func (s *userService) UpdateUserStatus(ctx context.Context, id uuid.UUID, isActive bool) error {
	return s.userRepo.UpdateStatus(ctx, id, isActive)
}

func (s *userService) buildLoginResponse(u *model.User) (*model.LoginResponse, error) {
	access, err := s.jwtManager.GenerateAccessToken(u.ID.String(), u.Email, u.DisplayName, u.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, err := s.jwtManager.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &model.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    time.Now().Add(15 * time.Minute),
		User:         model.ToDTO(u),
	}, nil
}
