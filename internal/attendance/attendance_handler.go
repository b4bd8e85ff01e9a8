package attendance

import (
	"errors"
	"net/http"

	employeeerrors "github.com/david-vardanov/teambie/internal/employee/errors"

	"github.com/david-vardanov/teambie/internal/employee"
	"github.com/david-vardanov/teambie/internal/shared/apperror"
	"github.com/david-vardanov/teambie/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	service   Service
	employees employee.Repository
	logger    *zap.Logger
}

func NewHandler(service Service, employees employee.Repository, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, employees: employees, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("attendance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) findEmployee(c *gin.Context) (*employee.Employee, bool) {
	emp, err := h.employees.FindByID(c.Request.Context(), c.Param("employee_id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.writeServiceError(c, employeeerrors.ErrEmployeeNotFound)
		} else {
			h.writeServiceError(c, err)
		}
		return nil, false
	}
	return emp, true
}

// GetToday serves the team-status board: every record for today's date.
func (h *Handler) GetToday(c *gin.Context) {
	rows, err := h.service.ListToday(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, mapToListResponse(rows), nil)
}

// GetRange serves history exports: ?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *Handler) GetRange(c *gin.Context) {
	rows, err := h.service.ListRange(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, mapToListResponse(rows), nil)
}

func (h *Handler) GetEmployeeToday(c *gin.Context) {
	rec, err := h.service.TodayRecord(c.Request.Context(), c.Param("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, mapToResponse(*rec), nil)
}

func (h *Handler) ManualCheckIn(c *gin.Context) {
	var req ManualTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http manual check-in validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	emp, ok := h.findEmployee(c)
	if !ok {
		return
	}

	rec, err := h.service.ManualCheckIn(c.Request.Context(), emp, req.MinutesAgo, req.CustomTime)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, mapToResponse(*rec), nil)
}

func (h *Handler) ManualCheckOut(c *gin.Context) {
	var req ManualTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http manual check-out validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	emp, ok := h.findEmployee(c)
	if !ok {
		return
	}

	rec, err := h.service.ManualCheckOut(c.Request.Context(), emp, req.MinutesAgo, req.CustomTime)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, mapToResponse(*rec), nil)
}
