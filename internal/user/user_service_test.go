package user_test

import (
	"context"
	"testing"

	"github.com/david-vardanov/teambie/internal/user"
	usererrors "github.com/david-vardanov/teambie/internal/user/errors"
	"github.com/david-vardanov/teambie/internal/user/mock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func existingUser(t *testing.T, password string) *user.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &user.User{
		ID:       uuid.New(),
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: string(hashed),
		Role:     "EMPLOYEE",
		IsActive: true,
	}
}

func TestCreateUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := user.NewService(repo)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *user.User) error {
			assert.Equal(t, "EMPLOYEE", u.Role)
			assert.True(t, u.IsActive)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("password123")))
			return nil
		},
	)

	res, err := svc.Create(context.Background(), user.CreateUserRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "john@example.com", res.Email)
}

func TestCreateUser_ExplicitAdminRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := user.NewService(repo)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *user.User) error {
			assert.Equal(t, "ADMIN", u.Role)
			return nil
		},
	)

	res, err := svc.Create(context.Background(), user.CreateUserRequest{
		Name:     "Root",
		Email:    "root@example.com",
		Password: "password123",
		Role:     "ADMIN",
	})

	assert.NoError(t, err)
	assert.Equal(t, "ADMIN", res.Role)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := user.NewService(repo)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

	_, err := svc.Create(context.Background(), user.CreateUserRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, usererrors.ErrUserAlreadyExists)
}

func TestGetByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := user.NewService(repo)

	id := uuid.NewString()
	repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
}

func TestGetByID_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := user.NewService(repo)

	_, err := svc.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, usererrors.ErrInvalidUserID)
}

func TestUpdateStatus_Deactivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := user.NewService(repo)

	u := existingUser(t, "password123")
	repo.EXPECT().FindByID(gomock.Any(), u.ID.String()).Return(u, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, updated *user.User) error {
			assert.False(t, updated.IsActive)
			return nil
		},
	)

	err := svc.UpdateStatus(context.Background(), u.ID.String(), false)
	assert.NoError(t, err)
}

func TestUpdateRole_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := user.NewService(repo)

	err := svc.UpdateRole(context.Background(), uuid.NewString(), "SUPERUSER")
	assert.ErrorIs(t, err, usererrors.ErrInvalidRole)
}

func TestUpdateRole_Promote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := user.NewService(repo)

	u := existingUser(t, "password123")
	repo.EXPECT().FindByID(gomock.Any(), u.ID.String()).Return(u, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, updated *user.User) error {
			assert.Equal(t, "ADMIN", updated.Role)
			return nil
		},
	)

	err := svc.UpdateRole(context.Background(), u.ID.String(), "ADMIN")
	assert.NoError(t, err)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := user.NewService(repo)

	u := existingUser(t, "password123")
	repo.EXPECT().FindByID(gomock.Any(), u.ID.String()).Return(u, nil)

	err := svc.ChangePassword(context.Background(), u.ID.String(), "wrong", "newpassword1")
	assert.ErrorIs(t, err, usererrors.ErrWrongPassword)
}

func TestChangePassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := user.NewService(repo)

	u := existingUser(t, "password123")
	repo.EXPECT().FindByID(gomock.Any(), u.ID.String()).Return(u, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, updated *user.User) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newpassword1")))
			return nil
		},
	)

	err := svc.ChangePassword(context.Background(), u.ID.String(), "password123", "newpassword1")
	assert.NoError(t, err)
}

func TestForceResetPassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := user.NewService(repo)

	u := existingUser(t, "password123")
	repo.EXPECT().FindByID(gomock.Any(), u.ID.String()).Return(u, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, updated *user.User) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("resetpass99")))
			return nil
		},
	)

	err := svc.ForceResetPassword(context.Background(), u.ID.String(), "resetpass99")
	assert.NoError(t, err)
}
