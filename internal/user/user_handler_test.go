package user_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	usererrors "github.com/david-vardanov/teambie/internal/user/errors"

	"github.com/david-vardanov/teambie/internal/user"
	"github.com/david-vardanov/teambie/internal/user/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupHandlerTest(t *testing.T) (*gin.Engine, *mock.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	svc := mock.NewMockService(ctrl)
	handler := user.NewHandler(svc)

	r := gin.New()
	r.GET("/users", handler.GetAll)
	r.GET("/users/:id", handler.GetById)
	r.POST("/users", handler.Create)
	r.PATCH("/users/:id/status", handler.ToggleStatus)
	r.PATCH("/users/:id/role", handler.UpdateRole)
	r.POST("/users/change-password", func(c *gin.Context) {
		c.Set("user_id", "u-1")
		handler.ChangePassword(c)
	})
	return r, svc
}

func TestGetAllUsers_Success(t *testing.T) {
	r, svc := setupHandlerTest(t)

	svc.EXPECT().GetAll(gomock.Any()).Return([]user.UserResponse{
		{ID: "u-1", Name: "Jane Doe", Email: "jane@example.com", Role: "ADMIN", IsActive: true},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, true, res["ok"])
	assert.Len(t, res["data"], 1)
}

func TestGetUserById_NotFound(t *testing.T) {
	r, svc := setupHandlerTest(t)

	svc.EXPECT().GetByID(gomock.Any(), "u-404").Return(user.UserResponse{}, usererrors.ErrUserNotFound)

	req := httptest.NewRequest(http.MethodGet, "/users/u-404", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateUser_ValidationError(t *testing.T) {
	r, _ := setupHandlerTest(t)

	body, _ := json.Marshal(gin.H{"email": "bad", "password": "x"})
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUser_Created(t *testing.T) {
	r, svc := setupHandlerTest(t)

	svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(user.UserResponse{
		ID: "u-2", Name: "John Doe", Email: "john@example.com", Role: "EMPLOYEE", IsActive: true,
	}, nil)

	body, _ := json.Marshal(gin.H{"name": "John Doe", "email": "john@example.com", "password": "password123"})
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestUpdateRole_RejectsUnknownRole(t *testing.T) {
	r, _ := setupHandlerTest(t)

	body, _ := json.Marshal(gin.H{"role": "SUPERUSER"})
	req := httptest.NewRequest(http.MethodPatch, "/users/u-1/role", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChangePasswordHandler_WrongCurrent(t *testing.T) {
	r, svc := setupHandlerTest(t)

	svc.EXPECT().ChangePassword(gomock.Any(), "u-1", "wrong", "newpassword1").
		Return(usererrors.ErrWrongPassword)

	body, _ := json.Marshal(gin.H{"current_password": "wrong", "new_password": "newpassword1"})
	req := httptest.NewRequest(http.MethodPost, "/users/change-password", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
