package auth

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"time"

	autherrors "github.com/david-vardanov/teambie/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (string, string, *UserResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, string, *UserResponse, error)
	GetMe(ctx context.Context, userID string) (*UserResponse, error)
	Register(ctx context.Context, req RegisterRequest) (*UserResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (string, string, *UserResponse, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", nil, autherrors.ErrInvalidCredentials
		}
		return "", "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", nil, autherrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", "", nil, autherrors.ErrUserInactive
	}

	access, err := s.generateToken(user, accessTokenTTL, "access")
	if err != nil {
		s.logger.Error("❌ Failed to sign access token", zap.Error(err))
		return "", "", nil, autherrors.ErrTokenGenerationFailed
	}

	refresh, err := s.generateToken(user, refreshTokenTTL, "refresh")
	if err != nil {
		s.logger.Error("❌ Failed to sign refresh token", zap.Error(err))
		return "", "", nil, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("🔓 User logged in", zap.String("user_id", user.ID))
	return access, refresh, mapToUserResponse(user), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, *UserResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidRefreshToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", "", nil, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", nil, autherrors.ErrInvalidRefreshToken
	}

	// Access token tidak boleh dipakai untuk refresh.
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return "", "", nil, autherrors.ErrInvalidRefreshToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", nil, autherrors.ErrInvalidRefreshToken
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", nil, autherrors.ErrUserNotFound
		}
		return "", "", nil, err
	}

	if !user.IsActive {
		return "", "", nil, autherrors.ErrUserInactive
	}

	newAccess, err := s.generateToken(user, accessTokenTTL, "access")
	if err != nil {
		return "", "", nil, autherrors.ErrTokenGenerationFailed
	}

	newRefresh, err := s.generateToken(user, refreshTokenTTL, "refresh")
	if err != nil {
		return "", "", nil, autherrors.ErrTokenGenerationFailed
	}

	return newAccess, newRefresh, mapToUserResponse(user), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*UserResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, autherrors.ErrUserNotFound
		}
		return nil, err
	}

	return mapToUserResponse(user), nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     "EMPLOYEE",
		IsActive: true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, autherrors.ErrEmailAlreadyRegistered
		}
		return nil, err
	}

	s.logger.Info("🆕 User registered", zap.String("user_id", user.ID), zap.String("email", user.Email))
	return mapToUserResponse(user), nil
}

func (s *service) generateToken(user *User, ttl time.Duration, tokenType string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"type":    tokenType,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
