package attendance_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/david-vardanov/teambie/internal/attendance"
	attendanceerrors "github.com/david-vardanov/teambie/internal/attendance/errors"
	"github.com/david-vardanov/teambie/internal/employee"

	attendanceMock "github.com/david-vardanov/teambie/internal/attendance/mock"
	employeeMock "github.com/david-vardanov/teambie/internal/employee/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestHandler_GetToday(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := attendanceMock.NewMockService(ctrl)
	mockEmployees := employeeMock.NewMockRepository(ctrl)
	handler := attendance.NewHandler(mockService, mockEmployees)

	t.Run("Success", func(t *testing.T) {
		arrival := "09:12"
		rows := []attendance.CheckIn{
			{
				ID:                uuid.New(),
				EmployeeID:        uuid.New(),
				Date:              time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
				Status:            attendance.StatusArrived,
				ActualArrivalTime: &arrival,
				Employee:          &attendance.EmployeeRef{FullName: "Jane Doe"},
			},
		}
		mockService.EXPECT().ListToday(gomock.Any()).Return(rows, nil)

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.GET("/attendance/today", handler.GetToday)

		req, _ := http.NewRequest(http.MethodGet, "/attendance/today", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, true, res["ok"])
	})
}

func TestHandler_ManualCheckIn(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := attendanceMock.NewMockService(ctrl)
	mockEmployees := employeeMock.NewMockRepository(ctrl)
	handler := attendance.NewHandler(mockService, mockEmployees)

	empID := uuid.New()
	emp := &employee.Employee{ID: empID, FullName: "Jane Doe"}

	t.Run("Success", func(t *testing.T) {
		arrival := "09:45"
		mockEmployees.EXPECT().FindByID(gomock.Any(), empID.String()).Return(emp, nil)
		mockService.EXPECT().
			ManualCheckIn(gomock.Any(), emp, 0, "09:45").
			Return(&attendance.CheckIn{
				ID:                uuid.New(),
				EmployeeID:        empID,
				Date:              time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
				Status:            attendance.StatusArrived,
				ActualArrivalTime: &arrival,
			}, nil)

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.POST("/attendance/employees/:employee_id/check-in", handler.ManualCheckIn)

		body, _ := json.Marshal(attendance.ManualTimeRequest{CustomTime: "09:45"})
		req, _ := http.NewRequest(http.MethodPost, "/attendance/employees/"+empID.String()+"/check-in", bytes.NewBuffer(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("employee not found", func(t *testing.T) {
		mockEmployees.EXPECT().FindByID(gomock.Any(), empID.String()).Return(nil, gorm.ErrRecordNotFound)

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.POST("/attendance/employees/:employee_id/check-in", handler.ManualCheckIn)

		body, _ := json.Marshal(attendance.ManualTimeRequest{CustomTime: "09:45"})
		req, _ := http.NewRequest(http.MethodPost, "/attendance/employees/"+empID.String()+"/check-in", bytes.NewBuffer(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("already checked in", func(t *testing.T) {
		mockEmployees.EXPECT().FindByID(gomock.Any(), empID.String()).Return(emp, nil)
		mockService.EXPECT().
			ManualCheckIn(gomock.Any(), emp, 0, "").
			Return(nil, attendanceerrors.ErrAlreadyCheckedIn)

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.POST("/attendance/employees/:employee_id/check-in", handler.ManualCheckIn)

		body, _ := json.Marshal(attendance.ManualTimeRequest{})
		req, _ := http.NewRequest(http.MethodPost, "/attendance/employees/"+empID.String()+"/check-in", bytes.NewBuffer(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
