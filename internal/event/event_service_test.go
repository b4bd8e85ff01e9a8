package event_test

import (
	"context"
	"testing"
	"time"

	"github.com/david-vardanov/teambie/internal/clock"
	"github.com/david-vardanov/teambie/internal/employee"
	"github.com/david-vardanov/teambie/internal/event"
	eventerrors "github.com/david-vardanov/teambie/internal/event/errors"
	"github.com/david-vardanov/teambie/internal/event/mock"
	kafkamock "github.com/david-vardanov/teambie/internal/messaging/kafka/mock"
	"github.com/david-vardanov/teambie/internal/notifier"
	notifiermock "github.com/david-vardanov/teambie/internal/notifier/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type eventDeps struct {
	sqlMock  sqlmock.Sqlmock
	service  event.Service
	repo     *mock.MockRepository
	outbox   *kafkamock.MockOutboxRepository
	notifier *notifiermock.MockNotifier
}

func setupEventTest(t *testing.T, now time.Time) eventDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mock.NewMockRepository(ctrl)
	outbox := kafkamock.NewMockOutboxRepository(ctrl)
	ntf := notifiermock.NewMockNotifier(ctrl)

	repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()
	outbox.EXPECT().WithTx(gomock.Any()).Return(outbox).AnyTimes()

	clk := clock.NewWithNowFn(0, func() time.Time { return now })
	svc := event.NewServiceWithOutbox(db, repo, clk, outbox, ntf)

	return eventDeps{
		sqlMock:  sqlMock,
		service:  svc,
		repo:     repo,
		outbox:   outbox,
		notifier: ntf,
	}
}

func requester() *employee.Employee {
	return &employee.Employee{
		ID:                  uuid.New(),
		FullName:            "Jane Doe",
		VacationDaysPerYear: 20,
		HolidayDaysPerYear:  5,
		StartDate:           time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

// now: Wednesday 2025-03-12
var testNow = time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

func TestBalance_CountsInclusiveDays(t *testing.T) {
	deps := setupEventTest(t, testNow)
	emp := requester()

	end := time.Date(2024, 9, 5, 0, 0, 0, 0, time.UTC)
	deps.repo.EXPECT().
		ListModeratedByTypeStartingIn(gomock.Any(), emp.ID.String(), event.TypeVacation, gomock.Any(), gomock.Any()).
		Return([]event.Event{
			{StartDate: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), EndDate: &end},
			{StartDate: time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC)},
		}, nil)

	res, err := deps.service.Balance(context.Background(), emp, event.TypeVacation)

	assert.NoError(t, err)
	assert.Equal(t, 6, res.DaysTaken) // 5 inclusive + 1 single day
	assert.Equal(t, 14, res.DaysLeft)
	// Anniversary period runs June to June, not calendar years.
	assert.Equal(t, "2024-06-01", res.PeriodStart)
	assert.Equal(t, "2025-05-31", res.PeriodEnd)
}

func TestRequestVacation_Success(t *testing.T) {
	deps := setupEventTest(t, testNow)
	emp := requester()

	deps.repo.EXPECT().
		ListModeratedByTypeStartingIn(gomock.Any(), emp.ID.String(), event.TypeVacation, gomock.Any(), gomock.Any()).
		Return(nil, nil)

	deps.sqlMock.ExpectBegin()
	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *event.Event) error {
			assert.Equal(t, event.TypeVacation, e.Type)
			assert.False(t, e.Moderated)
			assert.Equal(t, emp.ID, *e.EmployeeID)
			return nil
		},
	)
	deps.sqlMock.ExpectCommit()
	deps.notifier.EXPECT().SendToAdmins(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, text string) notifier.Result {
			assert.Contains(t, text, "Jane Doe")
			assert.Contains(t, text, "Vacation")
			return notifier.Result{Sent: 1}
		},
	)

	res, err := deps.service.RequestVacation(context.Background(), emp, "2025-03-20", "2025-03-24")

	assert.NoError(t, err)
	assert.Equal(t, string(event.TypeVacation), res.Type)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestRequestVacation_TooSoon(t *testing.T) {
	deps := setupEventTest(t, testNow)

	// Tomorrow is inside the two-day notice window.
	_, err := deps.service.RequestVacation(context.Background(), requester(), "2025-03-13", "2025-03-14")
	assert.ErrorIs(t, err, eventerrors.ErrVacationTooSoon)
}

func TestRequestVacation_OverBalance(t *testing.T) {
	deps := setupEventTest(t, testNow)
	emp := requester()
	emp.VacationDaysPerYear = 3

	deps.repo.EXPECT().
		ListModeratedByTypeStartingIn(gomock.Any(), emp.ID.String(), event.TypeVacation, gomock.Any(), gomock.Any()).
		Return(nil, nil)

	_, err := deps.service.RequestVacation(context.Background(), emp, "2025-03-20", "2025-03-24")
	assert.ErrorIs(t, err, eventerrors.ErrInsufficientBalance)
}

func TestRequestSickDay_FutureDateRejected(t *testing.T) {
	deps := setupEventTest(t, testNow)

	_, err := deps.service.RequestSickDay(context.Background(), requester(), "2025-03-13")
	assert.ErrorIs(t, err, eventerrors.ErrDateInFuture)
}

func TestRequestSickDay_BackdateLimit(t *testing.T) {
	deps := setupEventTest(t, testNow)

	_, err := deps.service.RequestSickDay(context.Background(), requester(), "2025-03-01")
	assert.ErrorIs(t, err, eventerrors.ErrBackdateTooFar)
}

func TestRequestSickDay_BackdatedWithinLimit(t *testing.T) {
	deps := setupEventTest(t, testNow)
	emp := requester()

	deps.sqlMock.ExpectBegin()
	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *event.Event) error {
			assert.Equal(t, event.TypeSickDay, e.Type)
			assert.Nil(t, e.EndDate)
			return nil
		},
	)
	deps.sqlMock.ExpectCommit()
	deps.notifier.EXPECT().SendToAdmins(gomock.Any(), gomock.Any())

	_, err := deps.service.RequestSickDay(context.Background(), emp, "2025-03-10")
	assert.NoError(t, err)
}

func TestRequestDayOff_DuplicatePending(t *testing.T) {
	deps := setupEventTest(t, testNow)
	emp := requester()

	deps.repo.EXPECT().
		HasPendingOfTypesOn(gomock.Any(), emp.ID.String(), gomock.Any(), event.DayOffTypes).
		Return(true, nil)

	_, err := deps.service.RequestDayOff(context.Background(), emp, "2025-03-14", "family errand")
	assert.ErrorIs(t, err, eventerrors.ErrDuplicatePendingRequest)
}

func TestApprove_MarksModeratedAndEmitsOutbox(t *testing.T) {
	deps := setupEventTest(t, testNow)

	chatID := int64(42)
	empID := uuid.New()
	pending := &event.Event{
		ID:         uuid.New(),
		EmployeeID: &empID,
		Type:       event.TypeVacation,
		StartDate:  time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
		Moderated:  false,
		Employee:   &event.EmployeeRef{ID: empID, FullName: "Jane Doe", ChatID: &chatID},
	}

	deps.sqlMock.ExpectBegin()
	deps.repo.EXPECT().FindByID(gomock.Any(), pending.ID.String()).Return(pending, nil)
	deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *event.Event) error {
			assert.True(t, e.Moderated)
			return nil
		},
	)
	deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	deps.sqlMock.ExpectCommit()
	deps.notifier.EXPECT().SendToUser(gomock.Any(), chatID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, text string) notifier.Result {
			assert.Contains(t, text, "approved")
			return notifier.Result{Sent: 1}
		},
	)

	res, err := deps.service.Approve(context.Background(), pending.ID.String())

	assert.NoError(t, err)
	assert.True(t, res.Moderated)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestApprove_AlreadyModerated(t *testing.T) {
	deps := setupEventTest(t, testNow)

	moderated := &event.Event{
		ID:        uuid.New(),
		Type:      event.TypeVacation,
		StartDate: time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
		Moderated: true,
	}

	deps.sqlMock.ExpectBegin()
	deps.repo.EXPECT().FindByID(gomock.Any(), moderated.ID.String()).Return(moderated, nil)
	deps.sqlMock.ExpectRollback()

	_, err := deps.service.Approve(context.Background(), moderated.ID.String())
	assert.ErrorIs(t, err, eventerrors.ErrAlreadyModerated)
}

func TestApproveDayOff_RewritesToUnpaid(t *testing.T) {
	deps := setupEventTest(t, testNow)

	empID := uuid.New()
	pending := &event.Event{
		ID:         uuid.New(),
		EmployeeID: &empID,
		Type:       event.TypeDayOffPaid,
		StartDate:  time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
	}

	deps.sqlMock.ExpectBegin()
	deps.repo.EXPECT().FindByID(gomock.Any(), pending.ID.String()).Return(pending, nil)
	deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *event.Event) error {
			assert.Equal(t, event.TypeDayOffUnpaid, e.Type)
			return nil
		},
	)
	deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	deps.sqlMock.ExpectCommit()

	res, err := deps.service.ApproveDayOff(context.Background(), pending.ID.String(), "UNPAID")

	assert.NoError(t, err)
	assert.Equal(t, string(event.TypeDayOffUnpaid), res.Type)
}

func TestApproveDayOff_WrongKind(t *testing.T) {
	deps := setupEventTest(t, testNow)

	pending := &event.Event{
		ID:        uuid.New(),
		Type:      event.TypeVacation,
		StartDate: time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
	}

	deps.sqlMock.ExpectBegin()
	deps.repo.EXPECT().FindByID(gomock.Any(), pending.ID.String()).Return(pending, nil)
	deps.sqlMock.ExpectRollback()

	_, err := deps.service.ApproveDayOff(context.Background(), pending.ID.String(), "PAID")
	assert.ErrorIs(t, err, eventerrors.ErrNotDayOffRequest)
}

func TestReject_HardDeletes(t *testing.T) {
	deps := setupEventTest(t, testNow)

	empID := uuid.New()
	chatID := int64(42)
	pending := &event.Event{
		ID:         uuid.New(),
		EmployeeID: &empID,
		Type:       event.TypeHomeOffice,
		StartDate:  time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Employee:   &event.EmployeeRef{ID: empID, FullName: "Jane Doe", ChatID: &chatID},
	}

	deps.sqlMock.ExpectBegin()
	deps.repo.EXPECT().FindByID(gomock.Any(), pending.ID.String()).Return(pending, nil)
	deps.repo.EXPECT().DeleteHard(gomock.Any(), pending.ID.String()).Return(nil)
	deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	deps.sqlMock.ExpectCommit()
	deps.notifier.EXPECT().SendToUser(gomock.Any(), chatID, gomock.Any()).Return(notifier.Result{Sent: 1})

	err := deps.service.Reject(context.Background(), pending.ID.String())
	assert.NoError(t, err)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestCreate_GlobalHolidaySkipsModeration(t *testing.T) {
	deps := setupEventTest(t, testNow)

	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *event.Event) error {
			assert.True(t, e.IsGlobal)
			assert.True(t, e.Moderated)
			assert.Nil(t, e.EmployeeID)
			return nil
		},
	)

	res, err := deps.service.Create(context.Background(), uuid.NewString(), event.CreateEventRequest{
		Type:      string(event.TypeHoliday),
		StartDate: "2025-05-01",
		Notes:     "Labor day",
		IsGlobal:  true,
	})

	assert.NoError(t, err)
	assert.True(t, res.Moderated)
}

func TestUpdate_InvalidRangeRejected(t *testing.T) {
	deps := setupEventTest(t, testNow)

	end := time.Date(2025, 3, 22, 0, 0, 0, 0, time.UTC)
	existing := &event.Event{
		ID:        uuid.New(),
		Type:      event.TypeVacation,
		StartDate: time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
	}
	deps.repo.EXPECT().FindByID(gomock.Any(), existing.ID.String()).Return(existing, nil)

	newStart := "2025-03-25"
	_, err := deps.service.Update(context.Background(), existing.ID.String(), event.UpdateEventRequest{
		StartDate: &newStart,
	})
	assert.ErrorIs(t, err, eventerrors.ErrInvalidDateRange)
}

func TestGetByID_NotFound(t *testing.T) {
	deps := setupEventTest(t, testNow)

	id := uuid.NewString()
	deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := deps.service.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, eventerrors.ErrEventNotFound)
}

func TestHasApprovedLeaveOn_DelegatesWithLeaveTypes(t *testing.T) {
	deps := setupEventTest(t, testNow)

	empID := uuid.NewString()
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	deps.repo.EXPECT().HasApprovedEventOn(gomock.Any(), empID, day, event.LeaveTypes).Return(true, nil)

	covered, err := deps.service.HasApprovedLeaveOn(context.Background(), empID, day)
	assert.NoError(t, err)
	assert.True(t, covered)
}

func TestAnnotationsOn_DelegatesToRepo(t *testing.T) {
	deps := setupEventTest(t, testNow)

	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	rows := []event.Event{
		{ID: uuid.New(), Employee: &event.EmployeeRef{FullName: "Jane Doe"}},
	}
	deps.repo.EXPECT().ListAnnotationsOn(gomock.Any(), day, event.SubtypeLateArrival).Return(rows, nil)

	got, err := deps.service.AnnotationsOn(context.Background(), day, event.SubtypeLateArrival)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "Jane Doe", got[0].Employee.FullName)
}
