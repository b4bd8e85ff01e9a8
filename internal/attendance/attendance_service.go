package attendance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	attendanceerrors "github.com/david-vardanov/teambie/internal/attendance/errors"
	"github.com/david-vardanov/teambie/internal/clock"
	"github.com/david-vardanov/teambie/internal/employee"
	"github.com/david-vardanov/teambie/internal/event"
	"github.com/david-vardanov/teambie/internal/events"
	"github.com/david-vardanov/teambie/internal/messaging/kafka"
	"github.com/david-vardanov/teambie/internal/notifier"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Leaving up to this many minutes before the expected time is not flagged.
const earlyDepartureGraceMinutes = 15

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	// ShouldTrackToday decides whether the employee gets attendance prompts
	// today: exemption, weekends, home-office days and approved leave all
	// suppress tracking.
	ShouldTrackToday(ctx context.Context, emp *employee.Employee) (bool, error)
	TodayRecord(ctx context.Context, employeeID string) (*CheckIn, error)

	StartDay(ctx context.Context, emp *employee.Employee) (*CheckIn, bool, error)
	ConfirmArrival(ctx context.Context, emp *employee.Employee) (*CheckIn, error)
	DeferArrival(ctx context.Context, emp *employee.Employee, input string) (*CheckIn, error)
	MarkArrivalReminded(ctx context.Context, rec *CheckIn) error

	InitiateDeparture(ctx context.Context, emp *employee.Employee) (*CheckIn, error)
	ConfirmDeparture(ctx context.Context, emp *employee.Employee) (*CheckIn, error)
	DeferDeparture(ctx context.Context, emp *employee.Employee, input string) (*CheckIn, error)

	MarkMissed(ctx context.Context, emp *employee.Employee) (*CheckIn, error)
	AutoCheckout(ctx context.Context, emp *employee.Employee) (*CheckIn, error)

	ManualCheckIn(ctx context.Context, emp *employee.Employee, minutesAgo int, customTime string) (*CheckIn, error)
	ManualCheckOut(ctx context.Context, emp *employee.Employee, minutesAgo int, customTime string) (*CheckIn, error)

	ListToday(ctx context.Context) ([]CheckIn, error)
	ListTodayByStatuses(ctx context.Context, statuses []Status) ([]CheckIn, error)
	ListRange(ctx context.Context, from, to string) ([]CheckIn, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	events   event.Repository
	outbox   kafka.OutboxRepository
	notifier notifier.Notifier
	clock    *clock.Clock
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, eventRepo event.Repository, clk *clock.Clock, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, events: eventRepo, clock: clk, logger: l}
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	eventRepo event.Repository,
	clk *clock.Clock,
	outbox kafka.OutboxRepository,
	ntf notifier.Notifier,
	logger ...*zap.Logger,
) Service {
	svc := NewService(db, repo, eventRepo, clk, logger...).(*service)
	svc.outbox = outbox
	svc.notifier = ntf
	return svc
}

func (s *service) today() time.Time {
	return clock.DateOnly(s.clock.Now())
}

// --- Tracking guards ---

func (s *service) ShouldTrackToday(ctx context.Context, emp *employee.Employee) (bool, error) {
	if emp.ExemptFromTracking || emp.Archived {
		return false, nil
	}
	if s.clock.IsWeekend() {
		return false, nil
	}
	if emp.HasHomeOfficeOn(s.clock.Weekday()) {
		return false, nil
	}
	covered, err := s.events.HasApprovedEventOn(ctx, emp.ID.String(), s.today(), event.LeaveTypes)
	if err != nil {
		return false, err
	}
	return !covered, nil
}

func (s *service) TodayRecord(ctx context.Context, employeeID string) (*CheckIn, error) {
	rec, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, s.today())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, attendanceerrors.ErrNoRecordToday
		}
		return nil, err
	}
	return rec, nil
}

// --- Arrival ---

// StartDay opens today's record in WAITING_ARRIVAL. Calling it again on the
// same day returns the existing record untouched, so a duplicate scheduler
// tick cannot ask twice.
func (s *service) StartDay(ctx context.Context, emp *employee.Employee) (*CheckIn, bool, error) {
	existing, err := s.repo.FindByEmployeeAndDate(ctx, emp.ID.String(), s.today())
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	now := s.clock.Now()
	rec := &CheckIn{
		ID:             uuid.New(),
		EmployeeID:     emp.ID,
		Date:           s.today(),
		Status:         StatusWaitingArrival,
		AskedArrivalAt: &now,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		// Two ticks may race past the existence check; the unique
		// (employee_id, checkin_date) index settles it.
		again, ferr := s.repo.FindByEmployeeAndDate(ctx, emp.ID.String(), s.today())
		if ferr == nil {
			return again, false, nil
		}
		return nil, false, err
	}

	s.logger.Info("attendance day opened",
		zap.String("employee_id", emp.ID.String()),
		zap.String("date", s.clock.Today()),
	)
	return rec, true, nil
}

func (s *service) ConfirmArrival(ctx context.Context, emp *employee.Employee) (*CheckIn, error) {
	return s.applyArrival(ctx, emp, s.clock.TimeOfDay(), false)
}

func (s *service) DeferArrival(ctx context.Context, emp *employee.Employee, input string) (*CheckIn, error) {
	at, err := ParseDeferral(input, s.clock.Now())
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec, err := qtx.FindByEmployeeAndDate(ctx, emp.ID.String(), s.today())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, attendanceerrors.ErrNoRecordToday
		}
		return nil, err
	}
	if !rec.Status.awaitingArrival() {
		if rec.Status == StatusArrived || rec.Status == StatusWaitingDeparture || rec.Status == StatusWaitingDepartureReminder {
			return nil, attendanceerrors.ErrAlreadyCheckedIn
		}
		return nil, attendanceerrors.ErrInvalidStatusTransition
	}

	rec.ExpectedArrivalAt = &at
	rec.Status = StatusWaitingArrivalReminder
	if err := qtx.Update(ctx, rec); err != nil {
		return nil, err
	}

	// Promising a time past the arrival window already makes the day late;
	// flag it now instead of waiting for the actual check-in.
	alert := ""
	promised := at.Format("15:04")
	if sameDate(at, s.clock.Now()) && minutesOf(promised) > minutesOf(emp.ArrivalWindowEnd) {
		notes := fmt.Sprintf("Late arrival: %s (window: %s-%s)", promised, emp.ArrivalWindowStart, emp.ArrivalWindowEnd)
		created, err := s.annotateOnce(ctx, tx, emp.ID, event.SubtypeLateArrival, notes)
		if err != nil {
			return nil, err
		}
		if created {
			alert = notes
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	if alert != "" {
		s.alertAdmins(ctx, emp, alert)
	}

	s.logger.Info("arrival deferred",
		zap.String("employee_id", emp.ID.String()),
		zap.Time("expected_at", at),
	)
	return rec, nil
}

// MarkArrivalReminded records that a follow-up nudge went out, so the next
// tick respects the reminder interval.
func (s *service) MarkArrivalReminded(ctx context.Context, rec *CheckIn) error {
	now := s.clock.Now()
	rec.LastArrivalReminderAt = &now
	return s.repo.Update(ctx, rec)
}

// applyArrival is the single check-in path. Both the employee's own
// confirmation and the admin's manual check-in land here; manual is the only
// caller allowed to override MISSED or open a missing record.
func (s *service) applyArrival(ctx context.Context, emp *employee.Employee, hhmm string, manual bool) (*CheckIn, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	created := false
	rec, err := qtx.FindByEmployeeAndDate(ctx, emp.ID.String(), s.today())
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if !manual {
			return nil, attendanceerrors.ErrNoRecordToday
		}
		rec = &CheckIn{ID: uuid.New(), EmployeeID: emp.ID, Date: s.today()}
		created = true
	}

	switch rec.Status {
	case StatusLeft:
		return nil, attendanceerrors.ErrAlreadyCheckedOut
	case StatusArrived, StatusWaitingDeparture, StatusWaitingDepartureReminder:
		return nil, attendanceerrors.ErrAlreadyCheckedIn
	case StatusMissed:
		if !manual {
			return nil, attendanceerrors.ErrInvalidStatusTransition
		}
	}

	now := s.clock.Now()
	rec.Status = StatusArrived
	rec.ConfirmedArrivalAt = &now
	rec.ActualArrivalTime = &hhmm

	if created {
		err = qtx.Create(ctx, rec)
	} else {
		err = qtx.Update(ctx, rec)
	}
	if err != nil {
		return nil, err
	}

	alert := ""
	if minutesOf(hhmm) > minutesOf(emp.ArrivalWindowEnd) {
		notes := fmt.Sprintf("Late arrival: %s (window: %s-%s)", hhmm, emp.ArrivalWindowStart, emp.ArrivalWindowEnd)
		created, aerr := s.annotateOnce(ctx, tx, emp.ID, event.SubtypeLateArrival, notes)
		if aerr != nil {
			return nil, aerr
		}
		if created {
			alert = notes
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	if alert != "" {
		s.alertAdmins(ctx, emp, alert)
	}

	s.logger.Info("arrival confirmed",
		zap.String("employee_id", emp.ID.String()),
		zap.String("arrival_time", hhmm),
		zap.Bool("manual", manual),
	)
	return rec, nil
}

// --- Departure ---

// InitiateDeparture moves an arrived employee into WAITING_DEPARTURE and pins
// the expected departure instant derived from the actual arrival time.
func (s *service) InitiateDeparture(ctx context.Context, emp *employee.Employee) (*CheckIn, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec, err := qtx.FindByEmployeeAndDate(ctx, emp.ID.String(), s.today())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, attendanceerrors.ErrNoRecordToday
		}
		return nil, err
	}
	switch {
	case rec.Status == StatusLeft:
		return nil, attendanceerrors.ErrAlreadyCheckedOut
	case rec.Status.awaitingArrival() || rec.Status == StatusMissed:
		return nil, attendanceerrors.ErrNotArrivedYet
	case rec.Status != StatusArrived:
		return nil, attendanceerrors.ErrInvalidStatusTransition
	}

	now := s.clock.Now()
	if rec.ExpectedDepartureAt == nil {
		expected, err := s.expectedDepartureAt(rec, emp)
		if err != nil {
			return nil, err
		}
		rec.ExpectedDepartureAt = &expected
	}
	rec.AskedDepartureAt = &now
	rec.Status = StatusWaitingDeparture

	if err := qtx.Update(ctx, rec); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *service) ConfirmDeparture(ctx context.Context, emp *employee.Employee) (*CheckIn, error) {
	return s.applyDeparture(ctx, emp, s.clock.TimeOfDay())
}

func (s *service) DeferDeparture(ctx context.Context, emp *employee.Employee, input string) (*CheckIn, error) {
	at, err := ParseDeferral(input, s.clock.Now())
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec, err := qtx.FindByEmployeeAndDate(ctx, emp.ID.String(), s.today())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, attendanceerrors.ErrNoRecordToday
		}
		return nil, err
	}
	switch {
	case rec.Status == StatusLeft:
		return nil, attendanceerrors.ErrAlreadyCheckedOut
	case rec.Status.awaitingArrival() || rec.Status == StatusMissed:
		return nil, attendanceerrors.ErrNotArrivedYet
	case rec.Status != StatusWaitingDeparture && rec.Status != StatusWaitingDepartureReminder && rec.Status != StatusArrived:
		return nil, attendanceerrors.ErrInvalidStatusTransition
	}

	// A departure deferral is status-only. The promised time is acknowledged
	// but never stored: the early-leave baseline and the auto-checkout time
	// stay pinned to arrival plus the day's hours.
	rec.Status = StatusWaitingDepartureReminder
	if err := qtx.Update(ctx, rec); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("departure deferred",
		zap.String("employee_id", emp.ID.String()),
		zap.Time("expected_at", at),
	)
	return rec, nil
}

// applyDeparture is the single check-out path, shared by the employee's
// confirmation and the admin's manual check-out.
func (s *service) applyDeparture(ctx context.Context, emp *employee.Employee, hhmm string) (*CheckIn, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec, err := qtx.FindByEmployeeAndDate(ctx, emp.ID.String(), s.today())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, attendanceerrors.ErrNoRecordToday
		}
		return nil, err
	}
	if rec.Status == StatusLeft {
		return nil, attendanceerrors.ErrAlreadyCheckedOut
	}
	if rec.ActualArrivalTime == nil {
		return nil, attendanceerrors.ErrNotArrivedYet
	}

	expected, err := s.expectedDepartureTime(rec, emp)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	rec.Status = StatusLeft
	rec.ConfirmedDepartureAt = &now
	rec.ActualDepartureTime = &hhmm

	if err := qtx.Update(ctx, rec); err != nil {
		return nil, err
	}

	alert := ""
	if minutesOf(expected)-minutesOf(hhmm) > earlyDepartureGraceMinutes {
		notes := fmt.Sprintf("Left early: %s (expected: %s)", hhmm, expected)
		created, aerr := s.annotateOnce(ctx, tx, emp.ID, event.SubtypeLeftEarly, notes)
		if aerr != nil {
			return nil, aerr
		}
		if created {
			alert = notes
		}
	}

	if err := s.emitClosed(ctx, tx, rec); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	if alert != "" {
		s.alertAdmins(ctx, emp, alert)
	}

	s.logger.Info("departure confirmed",
		zap.String("employee_id", emp.ID.String()),
		zap.String("departure_time", hhmm),
	)
	return rec, nil
}

// --- Day closure ---

func (s *service) MarkMissed(ctx context.Context, emp *employee.Employee) (*CheckIn, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// An employee the bot never reached still gets a MISSED day: the sweep
	// creates the record on the spot instead of skipping them.
	created := false
	rec, err := qtx.FindByEmployeeAndDate(ctx, emp.ID.String(), s.today())
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		rec = &CheckIn{ID: uuid.New(), EmployeeID: emp.ID, Date: s.today()}
		created = true
	}
	if !created && !rec.Status.awaitingArrival() {
		return nil, attendanceerrors.ErrInvalidStatusTransition
	}

	rec.Status = StatusMissed
	if created {
		err = qtx.Create(ctx, rec)
	} else {
		err = qtx.Update(ctx, rec)
	}
	if err != nil {
		return nil, err
	}
	if err := s.emitClosed(ctx, tx, rec); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Warn("check-in missed",
		zap.String("employee_id", emp.ID.String()),
		zap.String("date", s.clock.Today()),
	)
	return rec, nil
}

// AutoCheckout closes an unanswered day at the planned departure time, not
// the sweep time. No late/early annotation is created for auto closures.
func (s *service) AutoCheckout(ctx context.Context, emp *employee.Employee) (*CheckIn, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec, err := qtx.FindByEmployeeAndDate(ctx, emp.ID.String(), s.today())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, attendanceerrors.ErrNoRecordToday
		}
		return nil, err
	}
	switch rec.Status {
	case StatusArrived, StatusWaitingDeparture, StatusWaitingDepartureReminder:
	default:
		return nil, attendanceerrors.ErrInvalidStatusTransition
	}

	planned, err := s.expectedDepartureTime(rec, emp)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	rec.Status = StatusLeft
	rec.ConfirmedDepartureAt = &now
	rec.ActualDepartureTime = &planned
	rec.AutoCheckedOut = true

	if err := qtx.Update(ctx, rec); err != nil {
		return nil, err
	}
	if err := s.emitClosed(ctx, tx, rec); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("auto checkout",
		zap.String("employee_id", emp.ID.String()),
		zap.String("departure_time", planned),
	)
	return rec, nil
}

// --- Manual adjustments ---

func (s *service) ManualCheckIn(ctx context.Context, emp *employee.Employee, minutesAgo int, customTime string) (*CheckIn, error) {
	hhmm, err := ResolveManualTime(s.clock.Now(), minutesAgo, customTime)
	if err != nil {
		return nil, err
	}
	return s.applyArrival(ctx, emp, hhmm, true)
}

func (s *service) ManualCheckOut(ctx context.Context, emp *employee.Employee, minutesAgo int, customTime string) (*CheckIn, error) {
	hhmm, err := ResolveManualTime(s.clock.Now(), minutesAgo, customTime)
	if err != nil {
		return nil, err
	}
	return s.applyDeparture(ctx, emp, hhmm)
}

// --- Listings ---

func (s *service) ListToday(ctx context.Context) ([]CheckIn, error) {
	return s.repo.ListByDate(ctx, s.today())
}

func (s *service) ListTodayByStatuses(ctx context.Context, statuses []Status) ([]CheckIn, error) {
	return s.repo.ListByStatusesOn(ctx, s.today(), statuses)
}

func (s *service) ListRange(ctx context.Context, from, to string) ([]CheckIn, error) {
	start, err := clock.ParseDate(from)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDateFormat
	}
	end, err := clock.ParseDate(to)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDateFormat
	}
	return s.repo.ListBetween(ctx, start, end)
}

// --- Internals ---

// expectedDepartureTime resolves the HH:MM the employee is expected to leave:
// the instant pinned at departure initiation wins, otherwise arrival plus the
// day's work hours.
func (s *service) expectedDepartureTime(rec *CheckIn, emp *employee.Employee) (string, error) {
	if rec.ExpectedDepartureAt != nil {
		return rec.ExpectedDepartureAt.Format("15:04"), nil
	}
	if rec.ActualArrivalTime == nil {
		return "", attendanceerrors.ErrNotArrivedYet
	}
	hours := emp.WorkHoursForDay(rec.Date.Weekday() == time.Friday)
	return clock.AddMinutes(*rec.ActualArrivalTime, hours*60)
}

func (s *service) expectedDepartureAt(rec *CheckIn, emp *employee.Employee) (time.Time, error) {
	hhmm, err := s.expectedDepartureTime(rec, emp)
	if err != nil {
		return time.Time{}, err
	}
	m := minutesOf(hhmm)
	now := s.clock.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), m/60, m%60, 0, 0, now.Location()), nil
}

// annotateOnce creates at most one LATE_LEFT_EARLY annotation per employee,
// day and subtype, inside the caller's transaction. Annotations are
// pre-moderated: they record a fact, they do not await approval. Returns
// whether a new annotation was created, so the caller alerts admins once.
func (s *service) annotateOnce(ctx context.Context, tx *sql.Tx, employeeID uuid.UUID, sub event.Subtype, notes string) (bool, error) {
	eqtx := s.events.WithTx(tx)
	has, err := eqtx.HasAnnotationOn(ctx, employeeID.String(), s.today(), sub)
	if err != nil || has {
		return false, err
	}

	empID := employeeID
	subtype := sub
	err = eqtx.Create(ctx, &event.Event{
		ID:         uuid.New(),
		EmployeeID: &empID,
		Type:       event.TypeLateLeftEarly,
		Subtype:    &subtype,
		StartDate:  s.today(),
		Notes:      notes,
		Moderated:  true,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// alertAdmins tells admins about a fresh annotation. Delivery failure never
// rolls back the attendance change, so this runs after commit.
func (s *service) alertAdmins(ctx context.Context, emp *employee.Employee, notes string) {
	if s.notifier == nil {
		return
	}
	s.notifier.SendToAdmins(ctx, fmt.Sprintf("⚠️ %s. %s", emp.FullName, notes))
}

func (s *service) emitClosed(ctx context.Context, tx *sql.Tx, rec *CheckIn) error {
	if s.outbox == nil {
		return nil
	}

	payload := events.CheckInClosedEvent{
		EventType:      "attendance.checkin.closed",
		EmployeeID:     rec.EmployeeID.String(),
		Date:           rec.Date.Format("2006-01-02"),
		Status:         string(rec.Status),
		AutoCheckedOut: rec.AutoCheckedOut,
		OccurredAt:     time.Now().UTC(),
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		AggregateType: "attendance",
		AggregateID:   rec.ID.String(),
		EventType:     payload.EventType,
		Topic:         events.CheckInClosedTopic,
		Payload:       raw,
		Status:        kafka.OutboxStatusPending,
	})
}

func minutesOf(hhmm string) int {
	m, err := clock.ToMinutes(hhmm)
	if err != nil {
		return 0
	}
	return m
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
