package event

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/david-vardanov/teambie/internal/clock"
	"github.com/david-vardanov/teambie/internal/employee"
	eventerrors "github.com/david-vardanov/teambie/internal/event/errors"
	"github.com/david-vardanov/teambie/internal/events"
	"github.com/david-vardanov/teambie/internal/leave"
	"github.com/david-vardanov/teambie/internal/messaging/kafka"
	"github.com/david-vardanov/teambie/internal/notifier"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const sickDayBackdateLimit = 7

//go:generate mockgen -source=event_service.go -destination=mock/event_service_mock.go -package=mock
type Service interface {
	// Event Gate: does the employee have an approved leave event covering the date?
	HasApprovedLeaveOn(ctx context.Context, employeeID string, date time.Time) (bool, error)

	// AnnotationsOn lists late-arrival or left-early annotations for a date,
	// with the employee preloaded. Reports use it.
	AnnotationsOn(ctx context.Context, date time.Time, sub Subtype) ([]Event, error)

	Balance(ctx context.Context, emp *employee.Employee, t Type) (BalanceResponse, error)

	RequestVacation(ctx context.Context, emp *employee.Employee, startDate, endDate string) (EventResponse, error)
	RequestSickDay(ctx context.Context, emp *employee.Employee, date string) (EventResponse, error)
	RequestHomeOffice(ctx context.Context, emp *employee.Employee, date string) (EventResponse, error)
	RequestDayOff(ctx context.Context, emp *employee.Employee, date, notes string) (EventResponse, error)

	Create(ctx context.Context, actorID string, req CreateEventRequest) (EventResponse, error)
	Update(ctx context.Context, id string, req UpdateEventRequest) (EventResponse, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (EventResponse, error)
	ListPending(ctx context.Context) ([]EventResponse, error)
	ListRange(ctx context.Context, from, to string) ([]EventResponse, error)

	Approve(ctx context.Context, id string) (EventResponse, error)
	ApproveDayOff(ctx context.Context, id string, paymentType string) (EventResponse, error)
	Reject(ctx context.Context, id string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	outbox   kafka.OutboxRepository
	notifier notifier.Notifier
	clock    *clock.Clock
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, clk *clock.Clock, logger ...*zap.Logger) Service {
	l := zap.L().Named("event.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("event.service")
	}
	return &service{db: db, repo: repo, clock: clk, logger: l}
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	clk *clock.Clock,
	outbox kafka.OutboxRepository,
	ntf notifier.Notifier,
	logger ...*zap.Logger,
) Service {
	svc := NewService(db, repo, clk, logger...).(*service)
	svc.outbox = outbox
	svc.notifier = ntf
	return svc
}

// --- Event Gate ---

func (s *service) HasApprovedLeaveOn(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	return s.repo.HasApprovedEventOn(ctx, employeeID, date, LeaveTypes)
}

func (s *service) AnnotationsOn(ctx context.Context, date time.Time, sub Subtype) ([]Event, error) {
	return s.repo.ListAnnotationsOn(ctx, date, sub)
}

// --- Balance ---

func (s *service) Balance(ctx context.Context, emp *employee.Employee, t Type) (BalanceResponse, error) {
	allowance := emp.VacationDaysPerYear
	if t == TypeHoliday {
		allowance = emp.HolidayDaysPerYear
	}

	period := leave.CurrentPeriod(emp.StartDate, s.clock.Now())
	rows, err := s.repo.ListModeratedByTypeStartingIn(ctx, emp.ID.String(), t, period.Start, period.End)
	if err != nil {
		return BalanceResponse{}, err
	}

	taken := 0
	for _, e := range rows {
		taken += leave.InclusiveDays(e.StartDate, e.EndDate)
	}

	return BalanceResponse{
		Type:        string(t),
		DaysTaken:   taken,
		DaysLeft:    allowance - taken,
		PeriodStart: period.Start.Format("2006-01-02"),
		PeriodEnd:   period.End.Format("2006-01-02"),
	}, nil
}

// --- Self-service requests (unmoderated unless stated otherwise) ---

func (s *service) RequestVacation(ctx context.Context, emp *employee.Employee, startDate, endDate string) (EventResponse, error) {
	start, err := clock.ParseDate(startDate)
	if err != nil {
		return EventResponse{}, eventerrors.ErrInvalidDateFormat
	}
	end, err := clock.ParseDate(endDate)
	if err != nil {
		return EventResponse{}, eventerrors.ErrInvalidDateFormat
	}
	if start.After(end) {
		return EventResponse{}, eventerrors.ErrInvalidDateRange
	}

	// Vacations need advance notice: earliest allowed start is the day
	// after tomorrow.
	today := clock.DateOnly(s.clock.Now())
	if start.Before(today.AddDate(0, 0, 2)) {
		return EventResponse{}, eventerrors.ErrVacationTooSoon
	}

	balance, err := s.Balance(ctx, emp, TypeVacation)
	if err != nil {
		return EventResponse{}, err
	}
	requested := leave.InclusiveDays(start, &end)
	if requested > balance.DaysLeft {
		s.logger.Warn("vacation request over balance",
			zap.String("employee_id", emp.ID.String()),
			zap.Int("requested", requested),
			zap.Int("days_left", balance.DaysLeft),
		)
		return EventResponse{}, eventerrors.ErrInsufficientBalance
	}

	return s.createRequest(ctx, emp, TypeVacation, start, &end, "")
}

func (s *service) RequestSickDay(ctx context.Context, emp *employee.Employee, date string) (EventResponse, error) {
	day, err := clock.ParseDate(date)
	if err != nil {
		return EventResponse{}, eventerrors.ErrInvalidDateFormat
	}

	today := clock.DateOnly(s.clock.Now())
	if day.After(today) {
		return EventResponse{}, eventerrors.ErrDateInFuture
	}
	if day.Before(today.AddDate(0, 0, -sickDayBackdateLimit)) {
		return EventResponse{}, eventerrors.ErrBackdateTooFar
	}

	return s.createRequest(ctx, emp, TypeSickDay, day, nil, "")
}

func (s *service) RequestHomeOffice(ctx context.Context, emp *employee.Employee, date string) (EventResponse, error) {
	day, err := clock.ParseDate(date)
	if err != nil {
		return EventResponse{}, eventerrors.ErrInvalidDateFormat
	}
	if day.Before(clock.DateOnly(s.clock.Now())) {
		return EventResponse{}, eventerrors.ErrDateInPast
	}

	return s.createRequest(ctx, emp, TypeHomeOffice, day, nil, "")
}

// RequestDayOff defaults to DAY_OFF_PAID; moderation may rewrite it to unpaid.
func (s *service) RequestDayOff(ctx context.Context, emp *employee.Employee, date, notes string) (EventResponse, error) {
	day, err := clock.ParseDate(date)
	if err != nil {
		return EventResponse{}, eventerrors.ErrInvalidDateFormat
	}
	if day.Before(clock.DateOnly(s.clock.Now())) {
		return EventResponse{}, eventerrors.ErrDateInPast
	}

	pending, err := s.repo.HasPendingOfTypesOn(ctx, emp.ID.String(), day, DayOffTypes)
	if err != nil {
		return EventResponse{}, err
	}
	if pending {
		return EventResponse{}, eventerrors.ErrDuplicatePendingRequest
	}

	return s.createRequest(ctx, emp, TypeDayOffPaid, day, nil, notes)
}

func (s *service) createRequest(ctx context.Context, emp *employee.Employee, t Type, start time.Time, end *time.Time, notes string) (EventResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create request begin tx failed", zap.Error(err))
		return EventResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empID := emp.ID
	e := &Event{
		ID:          uuid.New(),
		EmployeeID:  &empID,
		Type:        t,
		StartDate:   start,
		EndDate:     end,
		Notes:       notes,
		Moderated:   false,
		CreatedByID: &empID,
	}
	if err := qtx.Create(ctx, e); err != nil {
		s.logger.Error("create request persist failed", zap.Error(err))
		return EventResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return EventResponse{}, err
	}

	s.logger.Info("leave request created",
		zap.String("event_id", e.ID.String()),
		zap.String("employee_id", emp.ID.String()),
		zap.String("type", string(t)),
	)

	if s.notifier != nil {
		s.notifier.SendToAdmins(ctx, fmt.Sprintf(
			"📨 New request from %s: %s, %s",
			emp.FullName, t.Label(), formatEventDates(e),
		))
	}
	return mapToResponse(*e), nil
}

// --- Admin CRUD ---

func (s *service) Create(ctx context.Context, actorID string, req CreateEventRequest) (EventResponse, error) {
	t := Type(req.Type)
	if !t.Valid() {
		return EventResponse{}, eventerrors.ErrInvalidEventType
	}
	start, err := clock.ParseDate(req.StartDate)
	if err != nil {
		return EventResponse{}, eventerrors.ErrInvalidDateFormat
	}
	var end *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		parsed, err := clock.ParseDate(*req.EndDate)
		if err != nil {
			return EventResponse{}, eventerrors.ErrInvalidDateFormat
		}
		if start.After(parsed) {
			return EventResponse{}, eventerrors.ErrInvalidDateRange
		}
		end = &parsed
	}

	e := &Event{
		ID:        uuid.New(),
		Type:      t,
		StartDate: start,
		EndDate:   end,
		Notes:     req.Notes,
		IsGlobal:  req.IsGlobal,
		Moderated: req.Moderated,
	}
	// Global events (company holidays) have no subject employee and skip
	// the moderation queue.
	if req.IsGlobal {
		e.Moderated = true
	} else if req.EmployeeID != nil {
		empID, err := uuid.Parse(*req.EmployeeID)
		if err != nil {
			return EventResponse{}, eventerrors.ErrInvalidEventID
		}
		e.EmployeeID = &empID
	}
	if actor, err := uuid.Parse(actorID); err == nil {
		e.CreatedByID = &actor
	}

	if err := s.repo.Create(ctx, e); err != nil {
		s.logger.Error("create event persist failed", zap.Error(err))
		return EventResponse{}, err
	}

	s.logger.Info("event created",
		zap.String("event_id", e.ID.String()),
		zap.String("type", string(e.Type)),
		zap.Bool("is_global", e.IsGlobal),
	)
	return mapToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEventRequest) (EventResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EventResponse{}, eventerrors.ErrInvalidEventID
	}

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EventResponse{}, eventerrors.ErrEventNotFound
		}
		return EventResponse{}, err
	}

	if req.Type != nil {
		t := Type(*req.Type)
		if !t.Valid() {
			return EventResponse{}, eventerrors.ErrInvalidEventType
		}
		e.Type = t
	}
	if req.StartDate != nil {
		start, err := clock.ParseDate(*req.StartDate)
		if err != nil {
			return EventResponse{}, eventerrors.ErrInvalidDateFormat
		}
		e.StartDate = start
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			e.EndDate = nil
		} else {
			end, err := clock.ParseDate(*req.EndDate)
			if err != nil {
				return EventResponse{}, eventerrors.ErrInvalidDateFormat
			}
			e.EndDate = &end
		}
	}
	if e.EndDate != nil && e.StartDate.After(*e.EndDate) {
		return EventResponse{}, eventerrors.ErrInvalidDateRange
	}
	if req.Notes != nil {
		e.Notes = *req.Notes
	}

	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("update event persist failed", zap.String("event_id", id), zap.Error(err))
		return EventResponse{}, err
	}
	return mapToResponse(*e), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return eventerrors.ErrInvalidEventID
	}
	return s.repo.DeleteHard(ctx, id)
}

func (s *service) GetByID(ctx context.Context, id string) (EventResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EventResponse{}, eventerrors.ErrInvalidEventID
	}
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EventResponse{}, eventerrors.ErrEventNotFound
		}
		return EventResponse{}, err
	}
	return mapToResponse(*e), nil
}

func (s *service) ListPending(ctx context.Context) ([]EventResponse, error) {
	rows, err := s.repo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) ListRange(ctx context.Context, from, to string) ([]EventResponse, error) {
	start, err := clock.ParseDate(from)
	if err != nil {
		return nil, eventerrors.ErrInvalidDateFormat
	}
	end, err := clock.ParseDate(to)
	if err != nil {
		return nil, eventerrors.ErrInvalidDateFormat
	}
	if start.After(end) {
		return nil, eventerrors.ErrInvalidDateRange
	}

	rows, err := s.repo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

// --- Moderation ---

func (s *service) Approve(ctx context.Context, id string) (EventResponse, error) {
	return s.moderate(ctx, id, nil)
}

func (s *service) ApproveDayOff(ctx context.Context, id string, paymentType string) (EventResponse, error) {
	target := TypeDayOffPaid
	if paymentType == "UNPAID" {
		target = TypeDayOffUnpaid
	}
	return s.moderate(ctx, id, &target)
}

func (s *service) moderate(ctx context.Context, id string, rewriteType *Type) (EventResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EventResponse{}, eventerrors.ErrInvalidEventID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("moderate begin tx failed", zap.Error(err))
		return EventResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EventResponse{}, eventerrors.ErrEventNotFound
		}
		return EventResponse{}, err
	}

	// Two admins may race on the same request; the second one loses here.
	if e.Moderated {
		s.logger.Warn("moderate on already-moderated event", zap.String("event_id", id))
		return EventResponse{}, eventerrors.ErrAlreadyModerated
	}
	if rewriteType != nil {
		if e.Type != TypeDayOffPaid && e.Type != TypeDayOffUnpaid {
			return EventResponse{}, eventerrors.ErrNotDayOffRequest
		}
		e.Type = *rewriteType
	}
	e.Moderated = true

	if err := qtx.Update(ctx, e); err != nil {
		s.logger.Error("moderate persist failed", zap.String("event_id", id), zap.Error(err))
		return EventResponse{}, err
	}
	if err := s.emitModerated(ctx, tx, e, events.DecisionApproved); err != nil {
		return EventResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return EventResponse{}, err
	}

	s.logger.Info("event approved",
		zap.String("event_id", id),
		zap.String("type", string(e.Type)),
	)
	s.notifyDecision(ctx, e, fmt.Sprintf(
		"✅ Your request was approved: %s, %s", e.Type.Label(), formatEventDates(e),
	))
	return mapToResponse(*e), nil
}

// Reject hard-deletes the event; there is no soft "rejected" state.
func (s *service) Reject(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return eventerrors.ErrInvalidEventID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return eventerrors.ErrEventNotFound
		}
		return err
	}
	if e.Moderated {
		return eventerrors.ErrAlreadyModerated
	}

	if err := qtx.DeleteHard(ctx, id); err != nil {
		s.logger.Error("reject delete failed", zap.String("event_id", id), zap.Error(err))
		return err
	}
	if err := s.emitModerated(ctx, tx, e, events.DecisionRejected); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("event rejected", zap.String("event_id", id), zap.String("type", string(e.Type)))
	s.notifyDecision(ctx, e, fmt.Sprintf(
		"❌ Your request was rejected: %s, %s", e.Type.Label(), formatEventDates(e),
	))
	return nil
}

func (s *service) emitModerated(ctx context.Context, tx *sql.Tx, e *Event, decision string) error {
	if s.outbox == nil {
		return nil
	}

	payload := events.LeaveModeratedEvent{
		EventType:  "leave.moderated",
		EventID:    e.ID.String(),
		LeaveType:  string(e.Type),
		Decision:   decision,
		OccurredAt: time.Now().UTC(),
	}
	if e.EmployeeID != nil {
		payload.EmployeeID = e.EmployeeID.String()
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		AggregateType: "event",
		AggregateID:   e.ID.String(),
		EventType:     payload.EventType,
		Topic:         events.LeaveModeratedTopic,
		Payload:       raw,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) notifyDecision(ctx context.Context, e *Event, text string) {
	if s.notifier == nil || e.Employee == nil || e.Employee.ChatID == nil {
		return
	}
	// Delivery failure never rolls back the decision.
	s.notifier.SendToUser(ctx, *e.Employee.ChatID, text)
}

func formatEventDates(e *Event) string {
	if e.EndDate == nil {
		return e.StartDate.Format("2006-01-02")
	}
	return fmt.Sprintf("%s .. %s", e.StartDate.Format("2006-01-02"), e.EndDate.Format("2006-01-02"))
}
