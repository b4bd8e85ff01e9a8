package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/david-vardanov/teambie/internal/attendance"
	attendanceerrors "github.com/david-vardanov/teambie/internal/attendance/errors"
	"github.com/david-vardanov/teambie/internal/clock"
	"github.com/david-vardanov/teambie/internal/employee"
	"github.com/david-vardanov/teambie/internal/event"
	"github.com/david-vardanov/teambie/internal/leave"
	"github.com/david-vardanov/teambie/internal/notifier"
	"github.com/david-vardanov/teambie/internal/settings"

	"go.uber.org/zap"
)

// SettingsSource yields the current bot configuration; the scheduler re-reads
// it every tick so admin changes apply without a restart.
type SettingsSource interface {
	Current(ctx context.Context) (*settings.Settings, error)
}

// EventSource lists leave events and annotations for the report jobs.
type EventSource interface {
	ListRange(ctx context.Context, from, to string) ([]event.EventResponse, error)
	AnnotationsOn(ctx context.Context, date time.Time, sub event.Subtype) ([]event.Event, error)
}

type Scheduler struct {
	employees  employee.Repository
	attendance attendance.Service
	settings   SettingsSource
	events     EventSource
	notifier   notifier.Notifier
	directory  notifier.Directory
	clock      *clock.Clock
	logger     *zap.Logger

	mu        sync.Mutex
	lastFired map[string]string
}

func New(
	employees employee.Repository,
	attendanceService attendance.Service,
	settingsSource SettingsSource,
	eventSource EventSource,
	ntf notifier.Notifier,
	directory notifier.Directory,
	clk *clock.Clock,
	logger ...*zap.Logger,
) *Scheduler {
	l := zap.L().Named("scheduler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("scheduler")
	}
	return &Scheduler{
		employees:  employees,
		attendance: attendanceService,
		settings:   settingsSource,
		events:     eventSource,
		notifier:   ntf,
		directory:  directory,
		clock:      clk,
		logger:     l,
		lastFired:  make(map[string]string),
	}
}

// Run ticks once a minute until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, tickInterval time.Duration) {
	if tickInterval <= 0 {
		tickInterval = time.Minute
	}

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	s.logger.Info("scheduler started", zap.Duration("tick_interval", tickInterval))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick runs every due job exactly once. It is safe to call more often than
// the schedule requires: creation is idempotent and daily jobs are latched on
// the date they last fired.
func (s *Scheduler) Tick(ctx context.Context) {
	cfg, err := s.settings.Current(ctx)
	if err != nil {
		s.logger.Error("load settings failed", zap.Error(err))
		return
	}
	if !cfg.BotEnabled {
		return
	}

	today := s.clock.Today()
	nowMin := minutesOf(s.clock.TimeOfDay())
	workday := !s.clock.IsWeekend()

	missedDue := workday && nowMin >= minutesOf(cfg.MissedCheckInTime) && s.claimDaily("missed-sweep", today)

	emps, err := s.employees.FindAllActive(ctx)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return
	}

	var missed []string
	for i := range emps {
		emp := &emps[i]
		if name := s.runEmployeeJobs(ctx, emp, cfg, missedDue); name != "" {
			missed = append(missed, name)
		}
	}

	if len(missed) > 0 {
		s.notifier.SendToAdmins(ctx, "🚫 Missed check-in today:\n• "+strings.Join(missed, "\n• "))
	}

	if workday && nowMin >= minutesOf(cfg.MorningReportTime) && s.claimDaily("morning-report", today) {
		s.morningReport(ctx, emps)
	}
	if workday && nowMin >= minutesOf(cfg.MorningReportTime) && s.claimDaily("anniversary-check", today) {
		s.anniversaryCheck(ctx, emps)
	}
	if workday && nowMin >= minutesOf(cfg.EndOfDayReportTime) && s.claimDaily("eod-report", today) {
		s.endOfDayReport(ctx, emps)
	}
	// The weekly digest covers the previous Monday through Sunday and goes
	// out Monday morning together with the day's first report.
	if s.clock.Weekday() == time.Monday && nowMin >= minutesOf(cfg.MorningReportTime) && s.claimDaily("weekly-report", today) {
		s.weeklyReport(ctx)
	}
}

// runEmployeeJobs advances one employee's day. A failure is logged and
// skipped; the rest of the team still gets their prompts. Returns the
// employee's name when the missed sweep just closed their day.
func (s *Scheduler) runEmployeeJobs(ctx context.Context, emp *employee.Employee, cfg *settings.Settings, missedDue bool) string {
	track, err := s.attendance.ShouldTrackToday(ctx, emp)
	if err != nil {
		s.logger.Error("tracking check failed", zap.String("employee_id", emp.ID.String()), zap.Error(err))
		return ""
	}
	if !track || emp.ChatID == nil {
		return ""
	}

	now := s.clock.Now()
	nowMin := minutesOf(s.clock.TimeOfDay())

	rec, err := s.attendance.TodayRecord(ctx, emp.ID.String())
	if err != nil {
		if !errors.Is(err, attendanceerrors.ErrNoRecordToday) {
			s.logger.Error("load record failed", zap.String("employee_id", emp.ID.String()), zap.Error(err))
			return ""
		}
		// No record at the missed deadline counts as a missed day too; a
		// fresh arrival prompt at this point would just dodge the sweep.
		if missedDue {
			if _, err := s.attendance.MarkMissed(ctx, emp); err != nil {
				s.logger.Error("mark missed failed", zap.String("employee_id", emp.ID.String()), zap.Error(err))
				return ""
			}
			s.send(ctx, emp, "🚫 No check-in today, marking the day as missed. An admin can still check you in manually.")
			return emp.FullName
		}
		if nowMin >= minutesOf(emp.ArrivalWindowStart) && nowMin < minutesOf(cfg.MissedCheckInTime) {
			s.askArrival(ctx, emp)
		}
		return ""
	}

	switch rec.Status {
	case attendance.StatusWaitingArrival, attendance.StatusWaitingArrivalReminder:
		if missedDue {
			if _, err := s.attendance.MarkMissed(ctx, emp); err != nil {
				s.logger.Error("mark missed failed", zap.String("employee_id", emp.ID.String()), zap.Error(err))
				return ""
			}
			s.send(ctx, emp, "🚫 No check-in today, marking the day as missed. An admin can still check you in manually.")
			return emp.FullName
		}
		s.arrivalFollowUp(ctx, emp, rec, cfg, now)

	case attendance.StatusArrived:
		s.maybeAskDeparture(ctx, emp, rec, now)

	case attendance.StatusWaitingDeparture, attendance.StatusWaitingDepartureReminder:
		s.maybeAutoCheckout(ctx, emp, rec, cfg, now)
	}
	return ""
}

func (s *Scheduler) askArrival(ctx context.Context, emp *employee.Employee) {
	rec, created, err := s.attendance.StartDay(ctx, emp)
	if err != nil {
		s.logger.Error("start day failed", zap.String("employee_id", emp.ID.String()), zap.Error(err))
		return
	}
	if !created || rec == nil {
		return
	}
	s.send(ctx, emp, "🌅 Good morning! Are you at the office? Reply /checkin, or tell me when you expect to arrive (\"in 30 min\", \"10:15\").")
}

// arrivalFollowUp nudges a deferred employee once their promised time has
// passed, no more often than the configured reminder interval.
func (s *Scheduler) arrivalFollowUp(ctx context.Context, emp *employee.Employee, rec *attendance.CheckIn, cfg *settings.Settings, now time.Time) {
	due := rec.ExpectedArrivalAt
	if due == nil {
		// Never deferred: nudge after the arrival window closes.
		end := s.todayAt(emp.ArrivalWindowEnd)
		due = &end
	}
	if now.Before(*due) {
		return
	}

	interval := time.Duration(cfg.ArrivalReminderInterval) * time.Minute
	if rec.LastArrivalReminderAt != nil && now.Sub(*rec.LastArrivalReminderAt) < interval {
		return
	}

	if err := s.attendance.MarkArrivalReminded(ctx, rec); err != nil {
		s.logger.Error("mark reminded failed", zap.String("employee_id", emp.ID.String()), zap.Error(err))
		return
	}
	s.send(ctx, emp, "👀 Are you in yet? Reply /checkin once you arrive, or give me a new time.")
}

func (s *Scheduler) maybeAskDeparture(ctx context.Context, emp *employee.Employee, rec *attendance.CheckIn, now time.Time) {
	expected, ok := s.expectedDeparture(rec, emp)
	if !ok || now.Before(expected) {
		return
	}

	if _, err := s.attendance.InitiateDeparture(ctx, emp); err != nil {
		s.logger.Error("initiate departure failed", zap.String("employee_id", emp.ID.String()), zap.Error(err))
		return
	}
	s.send(ctx, emp, "🏁 Your workday is up. Heading home? Reply /checkout, or tell me how much longer you're staying.")
}

func (s *Scheduler) maybeAutoCheckout(ctx context.Context, emp *employee.Employee, rec *attendance.CheckIn, cfg *settings.Settings, now time.Time) {
	expected, ok := s.expectedDeparture(rec, emp)
	if !ok {
		return
	}
	buffer := time.Duration(cfg.AutoCheckoutBufferMinutes) * time.Minute
	if now.Before(expected.Add(buffer)) {
		return
	}

	closed, err := s.attendance.AutoCheckout(ctx, emp)
	if err != nil {
		s.logger.Error("auto checkout failed", zap.String("employee_id", emp.ID.String()), zap.Error(err))
		return
	}
	departure := ""
	if closed.ActualDepartureTime != nil {
		departure = *closed.ActualDepartureTime
	}
	s.send(ctx, emp, fmt.Sprintf("🏁 No answer, so I checked you out at %s. Use /checkout tomorrow!", departure))
}

// expectedDeparture mirrors the service's planned-departure rule for
// scheduling decisions: the instant pinned at departure initiation wins,
// otherwise arrival plus the day's hours.
func (s *Scheduler) expectedDeparture(rec *attendance.CheckIn, emp *employee.Employee) (time.Time, bool) {
	if rec.ExpectedDepartureAt != nil {
		return *rec.ExpectedDepartureAt, true
	}
	if rec.ActualArrivalTime == nil {
		return time.Time{}, false
	}
	hours := emp.WorkHoursForDay(s.clock.IsFriday())
	end, err := clock.AddMinutes(*rec.ActualArrivalTime, hours*60)
	if err != nil {
		return time.Time{}, false
	}
	return s.todayAt(end), true
}

func (s *Scheduler) todayAt(hhmm string) time.Time {
	now := s.clock.Now()
	m := minutesOf(hhmm)
	return time.Date(now.Year(), now.Month(), now.Day(), m/60, m%60, 0, 0, now.Location())
}

func (s *Scheduler) send(ctx context.Context, emp *employee.Employee, text string) {
	if emp.ChatID == nil {
		return
	}
	if res := s.notifier.SendToUser(ctx, *emp.ChatID, text); res.Failed > 0 {
		s.logger.Warn("send failed", zap.String("employee_id", emp.ID.String()))
	}
}

// adminEmails resolves the admin identity set at read time, lowercased, so
// reports never count admins among the team.
func (s *Scheduler) adminEmails(ctx context.Context) map[string]bool {
	set := make(map[string]bool)
	if s.directory == nil {
		return set
	}
	emails, err := s.directory.AdminEmails(ctx)
	if err != nil {
		s.logger.Error("resolve admin emails failed", zap.Error(err))
		return set
	}
	for _, e := range emails {
		set[strings.ToLower(e)] = true
	}
	return set
}

// claimDaily returns true at most once per job and date.
func (s *Scheduler) claimDaily(job, date string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastFired[job] == date {
		return false
	}
	s.lastFired[job] = date
	return true
}

func (s *Scheduler) anniversaryCheck(ctx context.Context, emps []employee.Employee) {
	now := s.clock.Now()
	for i := range emps {
		emp := &emps[i]
		if !leave.IsAnniversary(emp.StartDate, now) {
			continue
		}
		years := leave.YearsOfService(emp.StartDate, now)
		s.notifier.SendToAdmins(ctx, fmt.Sprintf(
			"🎂 %s hits %d year(s) today. Vacation and holiday balances roll into a fresh period.",
			emp.FullName, years,
		))
		s.send(ctx, emp, fmt.Sprintf("🎂 Happy anniversary! %d year(s) today. Your leave balances just reset.", years))
	}
}

func minutesOf(hhmm string) int {
	m, err := clock.ToMinutes(hhmm)
	if err != nil {
		return 0
	}
	return m
}
