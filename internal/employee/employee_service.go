package employee

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/david-vardanov/teambie/internal/clock"
	employeeerrors "github.com/david-vardanov/teambie/internal/employee/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Archive(ctx context.Context, id string) error
	LinkChat(ctx context.Context, email string, chatID int64) (EmployeeResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("create employee requested", zap.String("email", req.Email))

	applyCreateDefaults(&req)
	if err := validateWindow(req.ArrivalWindowStart, req.ArrivalWindowEnd); err != nil {
		return EmployeeResponse{}, err
	}
	startDate, err := clock.ParseDate(req.StartDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidStartDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e := &Employee{
		ID:                  uuid.New(),
		FullName:            req.FullName,
		Email:               strings.ToLower(strings.TrimSpace(req.Email)),
		ArrivalWindowStart:  req.ArrivalWindowStart,
		ArrivalWindowEnd:    req.ArrivalWindowEnd,
		WorkHoursPerDay:     req.WorkHoursPerDay,
		HalfDayOnFridays:    req.HalfDayOnFridays,
		WorkHoursOnFriday:   req.WorkHoursOnFriday,
		HomeOfficeDays:      joinWeekdays(req.HomeOfficeDays),
		ExemptFromTracking:  req.ExemptFromTracking,
		VacationDaysPerYear: req.VacationDaysPerYear,
		HolidayDaysPerYear:  req.HolidayDaysPerYear,
		StartDate:           startDate,
	}

	if err := qtx.Create(ctx, e); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	s.logger.Info("create employee success",
		zap.String("employee_id", e.ID.String()),
		zap.String("email", e.Email),
	)
	return mapToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if req.FullName != nil {
		e.FullName = *req.FullName
	}
	if req.Email != nil {
		e.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	start, end := e.ArrivalWindowStart, e.ArrivalWindowEnd
	if req.ArrivalWindowStart != nil {
		start = *req.ArrivalWindowStart
	}
	if req.ArrivalWindowEnd != nil {
		end = *req.ArrivalWindowEnd
	}
	if err := validateWindow(start, end); err != nil {
		return EmployeeResponse{}, err
	}
	e.ArrivalWindowStart, e.ArrivalWindowEnd = start, end

	if req.WorkHoursPerDay != nil {
		e.WorkHoursPerDay = *req.WorkHoursPerDay
	}
	if req.HalfDayOnFridays != nil {
		e.HalfDayOnFridays = *req.HalfDayOnFridays
	}
	if req.WorkHoursOnFriday != nil {
		e.WorkHoursOnFriday = *req.WorkHoursOnFriday
	}
	if req.HomeOfficeDays != nil {
		e.HomeOfficeDays = joinWeekdays(*req.HomeOfficeDays)
	}
	if req.ExemptFromTracking != nil {
		e.ExemptFromTracking = *req.ExemptFromTracking
	}
	if req.VacationDaysPerYear != nil {
		e.VacationDaysPerYear = *req.VacationDaysPerYear
	}
	if req.HolidayDaysPerYear != nil {
		e.HolidayDaysPerYear = *req.HolidayDaysPerYear
	}
	if req.StartDate != nil {
		startDate, err := clock.ParseDate(*req.StartDate)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidStartDate
		}
		e.StartDate = startDate
	}

	if err := qtx.Update(ctx, e); err != nil {
		s.logger.Error("update employee persist failed",
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(*e), nil
}

func (s *service) Archive(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if e.Archived {
		return employeeerrors.ErrEmployeeArchived
	}

	now := time.Now().UTC()
	e.Archived = true
	e.ArchivedAt = &now

	if err := qtx.Update(ctx, e); err != nil {
		s.logger.Error("archive employee persist failed",
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("employee archived", zap.String("employee_id", id))
	return nil
}

// LinkChat attaches a Telegram chat to the employee matching the email.
func (s *service) LinkChat(ctx context.Context, email string, chatID int64) (EmployeeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}
	if e.Archived {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeArchived
	}

	e.ChatID = &chatID
	if err := qtx.Update(ctx, e); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.logger.Info("chat linked",
		zap.String("employee_id", e.ID.String()),
		zap.Int64("chat_id", chatID),
	)
	return mapToResponse(*e), nil
}

func applyCreateDefaults(req *CreateEmployeeRequest) {
	if req.ArrivalWindowStart == "" {
		req.ArrivalWindowStart = "09:00"
	}
	if req.ArrivalWindowEnd == "" {
		req.ArrivalWindowEnd = "10:00"
	}
	if req.WorkHoursPerDay == 0 {
		req.WorkHoursPerDay = 8
	}
	if req.WorkHoursOnFriday == 0 {
		req.WorkHoursOnFriday = 6
	}
	if req.VacationDaysPerYear == 0 {
		req.VacationDaysPerYear = 20
	}
	if req.HolidayDaysPerYear == 0 {
		req.HolidayDaysPerYear = 5
	}
}

func validateWindow(start, end string) error {
	startMin, err := clock.ToMinutes(start)
	if err != nil {
		return employeeerrors.ErrInvalidTimeWindow
	}
	endMin, err := clock.ToMinutes(end)
	if err != nil {
		return employeeerrors.ErrInvalidTimeWindow
	}
	if startMin >= endMin {
		return employeeerrors.ErrInvalidTimeWindow
	}
	return nil
}

func joinWeekdays(days []int) string {
	parts := make([]string, 0, len(days))
	for _, d := range days {
		if d < 0 || d > 6 {
			continue
		}
		parts = append(parts, strconv.Itoa(d))
	}
	return strings.Join(parts, ",")
}
