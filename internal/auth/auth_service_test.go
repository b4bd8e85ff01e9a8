package auth_test

import (
	"context"
	"os"
	"testing"

	"github.com/david-vardanov/teambie/internal/auth"
	autherrors "github.com/david-vardanov/teambie/internal/auth/errors"
	"github.com/david-vardanov/teambie/internal/auth/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func testUser(t *testing.T, password string) *auth.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &auth.User{
		ID:       uuid.NewString(),
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: string(hashed),
		Role:     "ADMIN",
		IsActive: true,
	}
}

func TestLogin_Success(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := auth.NewService(nil, repo)

	user := testUser(t, "password123")
	repo.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").Return(user, nil)

	access, refresh, res, err := svc.Login(context.Background(), "jane@example.com", "password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, user.ID, res.ID)
	assert.Equal(t, "ADMIN", res.Role)

	// Access token harus membawa identitas yang dibaca middleware.
	token, err := jwt.Parse(access, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, "jane@example.com", claims["email"])
	assert.Equal(t, "ADMIN", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := auth.NewService(nil, repo)

	user := testUser(t, "password123")
	repo.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").Return(user, nil)

	_, _, _, err := svc.Login(context.Background(), "jane@example.com", "wrong")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := auth.NewService(nil, repo)

	repo.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, _, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := auth.NewService(nil, repo)

	user := testUser(t, "password123")
	user.IsActive = false
	repo.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").Return(user, nil)

	_, _, _, err := svc.Login(context.Background(), "jane@example.com", "password123")
	assert.ErrorIs(t, err, autherrors.ErrUserInactive)
}

func TestRefreshToken_Success(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := auth.NewService(nil, repo)

	user := testUser(t, "password123")
	repo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
	repo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)

	_, refresh, _, err := svc.Login(context.Background(), user.Email, "password123")
	assert.NoError(t, err)

	newAccess, newRefresh, res, err := svc.RefreshToken(context.Background(), refresh)
	assert.NoError(t, err)
	assert.NotEmpty(t, newAccess)
	assert.NotEmpty(t, newRefresh)
	assert.Equal(t, user.ID, res.ID)
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := auth.NewService(nil, repo)

	user := testUser(t, "password123")
	repo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)

	access, _, _, err := svc.Login(context.Background(), user.Email, "password123")
	assert.NoError(t, err)

	_, _, _, err = svc.RefreshToken(context.Background(), access)
	assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
}

func TestRefreshToken_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := auth.NewService(nil, repo)

	_, _, _, err := svc.RefreshToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
}

func TestGetMe_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := auth.NewService(nil, repo)

	_, err := svc.GetMe(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
}

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := auth.NewService(nil, repo)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *auth.User) error {
			assert.Equal(t, "EMPLOYEE", u.Role)
			assert.True(t, u.IsActive)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("password123")))
			return nil
		},
	)

	res, err := svc.Register(context.Background(), auth.RegisterRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "john@example.com", res.Email)
	assert.Equal(t, "EMPLOYEE", res.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := auth.NewService(nil, repo)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
}
