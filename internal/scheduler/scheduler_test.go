package scheduler_test

import (
	"context"
	"testing"
	"time"

	"github.com/david-vardanov/teambie/internal/attendance"
	attendanceerrors "github.com/david-vardanov/teambie/internal/attendance/errors"
	"github.com/david-vardanov/teambie/internal/clock"
	"github.com/david-vardanov/teambie/internal/employee"
	"github.com/david-vardanov/teambie/internal/event"
	"github.com/david-vardanov/teambie/internal/notifier"
	"github.com/david-vardanov/teambie/internal/scheduler"
	"github.com/david-vardanov/teambie/internal/settings"

	attendanceMock "github.com/david-vardanov/teambie/internal/attendance/mock"
	employeeMock "github.com/david-vardanov/teambie/internal/employee/mock"
	notifierMock "github.com/david-vardanov/teambie/internal/notifier/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type stubSettings struct{ cfg *settings.Settings }

func (s stubSettings) Current(context.Context) (*settings.Settings, error) { return s.cfg, nil }

type stubEvents struct {
	rows        []event.EventResponse
	annotations map[event.Subtype][]event.Event
}

func (s *stubEvents) ListRange(context.Context, string, string) ([]event.EventResponse, error) {
	return s.rows, nil
}

func (s *stubEvents) AnnotationsOn(_ context.Context, _ time.Time, sub event.Subtype) ([]event.Event, error) {
	return s.annotations[sub], nil
}

// stubDirectory plays the identity store; tests set admins to exercise the
// report exclusion.
type stubDirectory struct{ admins []string }

func (s *stubDirectory) AdminChatIDs(context.Context) ([]int64, error)    { return nil, nil }
func (s *stubDirectory) AdminEmails(context.Context) ([]string, error)    { return s.admins, nil }
func (s *stubDirectory) EmployeeChatIDs(context.Context) ([]int64, error) { return nil, nil }

// quietConfig pushes every report far into the evening so tests can exercise
// one job at a time.
func quietConfig() *settings.Settings {
	return &settings.Settings{
		TimezoneOffset:            0,
		MorningReportTime:         "23:58",
		EndOfDayReportTime:        "23:59",
		MissedCheckInTime:         "23:57",
		ArrivalReminderInterval:   5,
		AutoCheckoutBufferMinutes: 30,
		BotEnabled:                true,
	}
}

type schedDeps struct {
	attendance *attendanceMock.MockService
	employees  *employeeMock.MockRepository
	notifier   *notifierMock.MockNotifier
	events     *stubEvents
	directory  *stubDirectory
}

func setupScheduler(t *testing.T, now time.Time, cfg *settings.Settings, rows []event.EventResponse) (*scheduler.Scheduler, *schedDeps) {
	ctrl := gomock.NewController(t)

	deps := &schedDeps{
		attendance: attendanceMock.NewMockService(ctrl),
		employees:  employeeMock.NewMockRepository(ctrl),
		notifier:   notifierMock.NewMockNotifier(ctrl),
		events:     &stubEvents{rows: rows},
		directory:  &stubDirectory{},
	}
	clk := clock.NewWithNowFn(0, func() time.Time { return now })

	s := scheduler.New(deps.employees, deps.attendance, stubSettings{cfg}, deps.events, deps.notifier, deps.directory, clk)
	return s, deps
}

func schedEmployee() employee.Employee {
	chatID := int64(42)
	return employee.Employee{
		ID:                 uuid.New(),
		FullName:           "Jane Doe",
		Email:              "jane@acme.io",
		ChatID:             &chatID,
		ArrivalWindowStart: "09:00",
		ArrivalWindowEnd:   "10:00",
		WorkHoursPerDay:    8,
		StartDate:          time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Wednesday
func wednesdayAt(hhmm string) time.Time {
	parsed, _ := time.Parse("15:04", hhmm)
	return time.Date(2025, 3, 12, parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
}

// Monday
func mondayAt(hhmm string) time.Time {
	parsed, _ := time.Parse("15:04", hhmm)
	return time.Date(2025, 3, 17, parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
}

func TestScheduler_ArrivalPromptOnce(t *testing.T) {
	ctx := context.Background()
	emp := schedEmployee()

	s, deps := setupScheduler(t, wednesdayAt("09:05"), quietConfig(), nil)

	deps.employees.EXPECT().FindAllActive(ctx).Return([]employee.Employee{emp}, nil).Times(2)
	deps.attendance.EXPECT().ShouldTrackToday(ctx, gomock.Any()).Return(true, nil).Times(2)

	// First tick opens the day and asks once.
	deps.attendance.EXPECT().TodayRecord(ctx, emp.ID.String()).Return(nil, attendanceerrors.ErrNoRecordToday)
	deps.attendance.EXPECT().StartDay(ctx, gomock.Any()).
		Return(&attendance.CheckIn{ID: uuid.New(), EmployeeID: emp.ID, Status: attendance.StatusWaitingArrival}, true, nil)
	deps.notifier.EXPECT().SendToUser(ctx, int64(42), gomock.Any()).Return(notifier.Result{Sent: 1})

	s.Tick(ctx)

	// Second tick a minute later: the record exists, the window is still
	// open, nothing is sent.
	deps.attendance.EXPECT().TodayRecord(ctx, emp.ID.String()).
		Return(&attendance.CheckIn{ID: uuid.New(), EmployeeID: emp.ID, Status: attendance.StatusWaitingArrival}, nil)

	s.Tick(ctx)
}

func TestScheduler_MissedSweepLatchesDaily(t *testing.T) {
	ctx := context.Background()
	emp := schedEmployee()

	cfg := quietConfig()
	cfg.MissedCheckInTime = "12:00"

	s, deps := setupScheduler(t, wednesdayAt("12:05"), cfg, nil)

	deps.employees.EXPECT().FindAllActive(ctx).Return([]employee.Employee{emp}, nil).Times(2)
	deps.attendance.EXPECT().ShouldTrackToday(ctx, gomock.Any()).Return(true, nil).Times(2)

	// First tick past the cutoff closes the day and reports to admins.
	deps.attendance.EXPECT().TodayRecord(ctx, emp.ID.String()).
		Return(&attendance.CheckIn{ID: uuid.New(), EmployeeID: emp.ID, Status: attendance.StatusWaitingArrival}, nil)
	deps.attendance.EXPECT().MarkMissed(ctx, gomock.Any()).
		Return(&attendance.CheckIn{ID: uuid.New(), EmployeeID: emp.ID, Status: attendance.StatusMissed}, nil)
	deps.notifier.EXPECT().SendToUser(ctx, int64(42), gomock.Any()).Return(notifier.Result{Sent: 1})
	deps.notifier.EXPECT().SendToAdmins(ctx, gomock.Any())

	s.Tick(ctx)

	// A second tick the same day must not sweep again.
	deps.attendance.EXPECT().TodayRecord(ctx, emp.ID.String()).
		Return(&attendance.CheckIn{ID: uuid.New(), EmployeeID: emp.ID, Status: attendance.StatusMissed}, nil)

	s.Tick(ctx)
}

func TestScheduler_MissedSweepClosesUnopenedDay(t *testing.T) {
	ctx := context.Background()
	emp := schedEmployee()

	cfg := quietConfig()
	cfg.MissedCheckInTime = "12:00"

	s, deps := setupScheduler(t, wednesdayAt("12:05"), cfg, nil)

	deps.employees.EXPECT().FindAllActive(ctx).Return([]employee.Employee{emp}, nil).Times(2)
	deps.attendance.EXPECT().ShouldTrackToday(ctx, gomock.Any()).Return(true, nil).Times(2)

	// The bot never opened a record for this employee. The sweep still marks
	// the day missed instead of asking them to check in.
	deps.attendance.EXPECT().TodayRecord(ctx, emp.ID.String()).
		Return(nil, attendanceerrors.ErrNoRecordToday)
	deps.attendance.EXPECT().MarkMissed(ctx, gomock.Any()).
		Return(&attendance.CheckIn{ID: uuid.New(), EmployeeID: emp.ID, Status: attendance.StatusMissed}, nil)
	deps.notifier.EXPECT().SendToUser(ctx, int64(42), gomock.Any()).Return(notifier.Result{Sent: 1})
	deps.notifier.EXPECT().
		SendToAdmins(ctx, gomock.Any()).
		Do(func(_ context.Context, text string) {
			assert.Contains(t, text, "Jane Doe")
		})

	s.Tick(ctx)

	// Past the cutoff no fresh arrival prompt goes out either: StartDay has
	// no expectation, so any call would fail the test.
	deps.attendance.EXPECT().TodayRecord(ctx, emp.ID.String()).
		Return(nil, attendanceerrors.ErrNoRecordToday)

	s.Tick(ctx)
}

func TestScheduler_AutoCheckoutAfterBuffer(t *testing.T) {
	ctx := context.Background()
	emp := schedEmployee()

	s, deps := setupScheduler(t, wednesdayAt("18:50"), quietConfig(), nil)

	expected := wednesdayAt("18:15")
	departure := "18:15"

	deps.employees.EXPECT().FindAllActive(ctx).Return([]employee.Employee{emp}, nil)
	deps.attendance.EXPECT().ShouldTrackToday(ctx, gomock.Any()).Return(true, nil)
	deps.attendance.EXPECT().TodayRecord(ctx, emp.ID.String()).
		Return(&attendance.CheckIn{
			ID:                  uuid.New(),
			EmployeeID:          emp.ID,
			Status:              attendance.StatusWaitingDeparture,
			ExpectedDepartureAt: &expected,
		}, nil)
	deps.attendance.EXPECT().AutoCheckout(ctx, gomock.Any()).
		Return(&attendance.CheckIn{
			ID:                  uuid.New(),
			EmployeeID:          emp.ID,
			Status:              attendance.StatusLeft,
			ActualDepartureTime: &departure,
			AutoCheckedOut:      true,
		}, nil)
	deps.notifier.EXPECT().SendToUser(ctx, int64(42), gomock.Any()).Return(notifier.Result{Sent: 1})

	s.Tick(ctx)
}

func TestScheduler_BufferNotElapsed(t *testing.T) {
	ctx := context.Background()
	emp := schedEmployee()

	s, deps := setupScheduler(t, wednesdayAt("18:30"), quietConfig(), nil)

	expected := wednesdayAt("18:15")

	deps.employees.EXPECT().FindAllActive(ctx).Return([]employee.Employee{emp}, nil)
	deps.attendance.EXPECT().ShouldTrackToday(ctx, gomock.Any()).Return(true, nil)
	deps.attendance.EXPECT().TodayRecord(ctx, emp.ID.String()).
		Return(&attendance.CheckIn{
			ID:                  uuid.New(),
			EmployeeID:          emp.ID,
			Status:              attendance.StatusWaitingDeparture,
			ExpectedDepartureAt: &expected,
		}, nil)

	s.Tick(ctx)
}

func TestScheduler_DisabledBotDoesNothing(t *testing.T) {
	ctx := context.Background()

	cfg := quietConfig()
	cfg.BotEnabled = false

	s, _ := setupScheduler(t, wednesdayAt("09:05"), cfg, nil)
	s.Tick(ctx)
}

func TestScheduler_UntrackedEmployeeSkipped(t *testing.T) {
	ctx := context.Background()
	emp := schedEmployee()

	s, deps := setupScheduler(t, wednesdayAt("09:05"), quietConfig(), nil)

	deps.employees.EXPECT().FindAllActive(ctx).Return([]employee.Employee{emp}, nil)
	deps.attendance.EXPECT().ShouldTrackToday(ctx, gomock.Any()).Return(false, nil)

	s.Tick(ctx)
}

func TestScheduler_MorningReportBuckets(t *testing.T) {
	ctx := context.Background()

	cfg := quietConfig()
	cfg.MorningReportTime = "09:00"

	jane := schedEmployee()
	bob := schedEmployee()
	bob.FullName = "Bob Stone"
	bob.Email = "bob@acme.io"
	bob.HomeOfficeDays = "3" // recurring Wednesday
	carol := schedEmployee()
	carol.FullName = "Carol Hart"
	carol.Email = "carol@acme.io"
	dave := schedEmployee()
	dave.FullName = "Dave Admin"
	dave.Email = "boss@acme.io"
	eve := schedEmployee()
	eve.FullName = "Eve Short"
	eve.Email = "eve@acme.io"

	janeID := jane.ID.String()
	eveID := eve.ID.String()
	rows := []event.EventResponse{
		{Type: string(event.TypeVacation), EmployeeID: &janeID, EmployeeName: jane.FullName, Moderated: true},
		// An unmoderated sick day does not take Eve off the office count.
		{Type: string(event.TypeSickDay), EmployeeID: &eveID, EmployeeName: eve.FullName, Moderated: false},
	}

	s, deps := setupScheduler(t, wednesdayAt("09:01"), cfg, rows)
	deps.directory.admins = []string{"boss@acme.io"}

	deps.employees.EXPECT().FindAllActive(ctx).
		Return([]employee.Employee{jane, bob, carol, dave, eve}, nil)
	deps.attendance.EXPECT().ShouldTrackToday(ctx, gomock.Any()).Return(false, nil).AnyTimes()
	deps.notifier.EXPECT().
		SendToAdmins(ctx, gomock.Any()).
		Do(func(_ context.Context, text string) {
			assert.Contains(t, text, "Expected in office: 2")
			assert.Contains(t, text, "🏠 Home office: Bob Stone")
			assert.Contains(t, text, "🏖 Vacation: Jane Doe")
			assert.NotContains(t, text, "Dave Admin")
			assert.NotContains(t, text, "Eve Short")
		})

	s.Tick(ctx)
}

func TestScheduler_EndOfDaySummary(t *testing.T) {
	ctx := context.Background()

	cfg := quietConfig()
	cfg.EndOfDayReportTime = "18:00"

	jane := schedEmployee()
	bob := schedEmployee()
	bob.FullName = "Bob Stone"
	bob.Email = "bob@acme.io"
	dave := schedEmployee()
	dave.FullName = "Dave Admin"
	dave.Email = "boss@acme.io"

	arrival, departure := "09:02", "17:05"
	records := []attendance.CheckIn{
		{
			ID: uuid.New(), EmployeeID: jane.ID, Status: attendance.StatusLeft,
			ActualArrivalTime: &arrival, ActualDepartureTime: &departure,
			Employee: &attendance.EmployeeRef{ID: jane.ID, FullName: jane.FullName},
		},
		{
			ID: uuid.New(), EmployeeID: bob.ID, Status: attendance.StatusMissed,
			Employee: &attendance.EmployeeRef{ID: bob.ID, FullName: bob.FullName},
		},
		// The admin's own record must not skew the completion rate.
		{
			ID: uuid.New(), EmployeeID: dave.ID, Status: attendance.StatusMissed,
			Employee: &attendance.EmployeeRef{ID: dave.ID, FullName: dave.FullName},
		},
	}

	s, deps := setupScheduler(t, wednesdayAt("18:01"), cfg, nil)
	deps.directory.admins = []string{"boss@acme.io"}
	deps.events.annotations = map[event.Subtype][]event.Event{
		event.SubtypeLateArrival: {
			{Employee: &event.EmployeeRef{FullName: jane.FullName}},
		},
	}

	deps.employees.EXPECT().FindAllActive(ctx).
		Return([]employee.Employee{jane, bob, dave}, nil)
	deps.attendance.EXPECT().ShouldTrackToday(ctx, gomock.Any()).Return(false, nil).AnyTimes()
	deps.attendance.EXPECT().ListToday(ctx).Return(records, nil)
	deps.notifier.EXPECT().
		SendToAdmins(ctx, gomock.Any()).
		Do(func(_ context.Context, text string) {
			assert.Contains(t, text, "Completed: 1/2 (50%)")
			assert.Contains(t, text, "Jane Doe: 09:02 to 17:05")
			assert.Contains(t, text, "🚫 Missed: Bob Stone")
			assert.Contains(t, text, "⏰ Late arrival: Jane Doe")
			assert.NotContains(t, text, "Dave Admin")
		})

	s.Tick(ctx)
}

func TestScheduler_WeeklySummaryPriorWeek(t *testing.T) {
	ctx := context.Background()

	jane := schedEmployee()
	dave := schedEmployee()
	dave.FullName = "Dave Admin"
	dave.Email = "boss@acme.io"

	records := []attendance.CheckIn{
		{
			ID: uuid.New(), EmployeeID: jane.ID, Status: attendance.StatusLeft,
			Employee: &attendance.EmployeeRef{ID: jane.ID, FullName: jane.FullName},
		},
		{
			ID: uuid.New(), EmployeeID: jane.ID, Status: attendance.StatusMissed,
			Employee: &attendance.EmployeeRef{ID: jane.ID, FullName: jane.FullName},
		},
		{
			ID: uuid.New(), EmployeeID: dave.ID, Status: attendance.StatusLeft,
			Employee: &attendance.EmployeeRef{ID: dave.ID, FullName: dave.FullName},
		},
	}

	janeID := jane.ID.String()
	end := "2025-03-11"
	rows := []event.EventResponse{
		{
			Type: string(event.TypeHomeOffice), EmployeeID: &janeID,
			StartDate: "2025-03-10", EndDate: &end, Moderated: true,
		},
	}

	s, deps := setupScheduler(t, mondayAt("09:01"), quietConfig(), rows)
	deps.directory.admins = []string{"boss@acme.io"}

	// Monday 2025-03-17: the digest covers 2025-03-10 through 2025-03-16.
	deps.attendance.EXPECT().ListRange(ctx, "2025-03-10", "2025-03-16").Return(records, nil)
	deps.employees.EXPECT().FindAllActive(ctx).
		Return([]employee.Employee{jane, dave}, nil)

	text, err := s.WeeklySummary(ctx)
	assert.NoError(t, err)
	assert.Contains(t, text, "2025-03-10 to 2025-03-16")
	assert.Contains(t, text, "Attendance rate: 50%")
	assert.Contains(t, text, "Jane Doe: 1 day(s) in office, 1 missed")
	assert.Contains(t, text, "🏠 Home office: 2 day(s)")
	assert.NotContains(t, text, "Dave Admin")
}

func TestScheduler_WeeklyReportFiresMondayMorning(t *testing.T) {
	ctx := context.Background()

	cfg := quietConfig()
	cfg.MorningReportTime = "09:00"

	jane := schedEmployee()
	records := []attendance.CheckIn{
		{
			ID: uuid.New(), EmployeeID: jane.ID, Status: attendance.StatusLeft,
			Employee: &attendance.EmployeeRef{ID: jane.ID, FullName: jane.FullName},
		},
	}

	s, deps := setupScheduler(t, mondayAt("09:01"), cfg, nil)

	// Once for the tick itself, once inside the weekly summary.
	deps.employees.EXPECT().FindAllActive(ctx).Return([]employee.Employee{jane}, nil).Times(2)
	deps.attendance.EXPECT().ShouldTrackToday(ctx, gomock.Any()).Return(false, nil).AnyTimes()
	deps.attendance.EXPECT().ListRange(ctx, "2025-03-10", "2025-03-16").Return(records, nil)
	// Morning report plus the weekly digest.
	deps.notifier.EXPECT().SendToAdmins(ctx, gomock.Any()).Times(2)

	s.Tick(ctx)
}

func TestScheduler_NoWeeklyReportMidweek(t *testing.T) {
	ctx := context.Background()

	cfg := quietConfig()
	cfg.MorningReportTime = "09:00"

	s, deps := setupScheduler(t, wednesdayAt("09:01"), cfg, nil)

	// Only the morning report goes out; ListRange has no expectation, so a
	// weekly digest on a Wednesday would fail the test.
	deps.employees.EXPECT().FindAllActive(ctx).Return(nil, nil)
	deps.notifier.EXPECT().SendToAdmins(ctx, gomock.Any())

	s.Tick(ctx)
}
