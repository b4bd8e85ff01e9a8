package user

import (
	"context"
	"errors"

	"github.com/david-vardanov/teambie/internal/shared/contextutil"
	usererrors "github.com/david-vardanov/teambie/internal/user/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock

type Service interface {
	GetAll(ctx context.Context) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)

	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	UpdateStatus(ctx context.Context, id string, isActive bool) error
	UpdateRole(ctx context.Context, id string, role string) error

	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	ForceResetPassword(ctx context.Context, userID, newPassword string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}

	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}

	return mapToResponse(*u), nil
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, nil)

	l.Info("creating user", zap.String("email", req.Email))

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		l.Error("failed to hash password", zap.Error(err))
		return UserResponse{}, err
	}

	role := req.Role
	if role == "" {
		role = "EMPLOYEE"
	}

	u := &User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     role,
		IsActive: true,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return UserResponse{}, usererrors.ErrUserAlreadyExists
		}
		l.Error("failed to create user", zap.Error(err))
		return UserResponse{}, err
	}

	l.Info("user created successfully", zap.String("email", u.Email))
	return mapToResponse(*u), nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, isActive bool) error {
	l := contextutil.GetLogger(ctx, nil)

	u, err := s.findUser(ctx, id)
	if err != nil {
		return err
	}

	u.IsActive = isActive

	if err := s.repo.Update(ctx, u); err != nil {
		l.Error("failed to update user status", zap.Error(err))
		return err
	}

	return nil
}

func (s *service) UpdateRole(ctx context.Context, id string, role string) error {
	if role != "ADMIN" && role != "EMPLOYEE" {
		return usererrors.ErrInvalidRole
	}

	u, err := s.findUser(ctx, id)
	if err != nil {
		return err
	}

	u.Role = role
	return s.repo.Update(ctx, u)
}

func (s *service) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(currentPassword)); err != nil {
		return usererrors.ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.Password = string(hashed)
	return s.repo.Update(ctx, u)
}

func (s *service) ForceResetPassword(ctx context.Context, userID, newPassword string) error {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.Password = string(hashed)
	return s.repo.Update(ctx, u)
}

func (s *service) findUser(ctx context.Context, id string) (*User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usererrors.ErrUserNotFound
		}
		return nil, err
	}

	return u, nil
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
