package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/david-vardanov/teambie/internal/attendance"
	"github.com/david-vardanov/teambie/internal/clock"
	"github.com/david-vardanov/teambie/internal/employee"
	"github.com/david-vardanov/teambie/internal/event"
	"github.com/david-vardanov/teambie/internal/leave"

	"go.uber.org/zap"
)

// morningReport tells admins who is expected in the office and who is away,
// grouped by reason. Admins and tracking-exempt employees never appear.
func (s *Scheduler) morningReport(ctx context.Context, emps []employee.Employee) {
	today := s.clock.Today()

	rows, err := s.events.ListRange(ctx, today, today)
	if err != nil {
		s.logger.Error("morning report failed", zap.Error(err))
		return
	}

	admins := s.adminEmails(ctx)
	weekday := s.clock.Weekday()

	type awayReason struct {
		homeOffice bool
		vacation   bool
		sick       bool
	}
	byEmployee := make(map[string]*awayReason)
	reasonOf := func(id string) *awayReason {
		r, ok := byEmployee[id]
		if !ok {
			r = &awayReason{}
			byEmployee[id] = r
		}
		return r
	}

	var global []string
	for _, e := range rows {
		if !e.Moderated {
			continue
		}
		if e.IsGlobal {
			global = append(global, event.Type(e.Type).Label())
			continue
		}
		if e.EmployeeID == nil {
			continue
		}
		switch event.Type(e.Type) {
		case event.TypeHomeOffice:
			reasonOf(*e.EmployeeID).homeOffice = true
		case event.TypeSickDay:
			reasonOf(*e.EmployeeID).sick = true
		case event.TypeVacation, event.TypeHoliday, event.TypeDayOffPaid, event.TypeDayOffUnpaid:
			reasonOf(*e.EmployeeID).vacation = true
		}
	}

	office := 0
	var homeOffice, vacation, sick []string
	for i := range emps {
		emp := &emps[i]
		if emp.ExemptFromTracking || admins[strings.ToLower(emp.Email)] {
			continue
		}
		r := byEmployee[emp.ID.String()]
		switch {
		case r != nil && r.sick:
			sick = append(sick, emp.FullName)
		case r != nil && r.vacation:
			vacation = append(vacation, emp.FullName)
		case r != nil && r.homeOffice, emp.HasHomeOfficeOn(weekday):
			homeOffice = append(homeOffice, emp.FullName)
		default:
			office++
		}
	}

	lines := []string{fmt.Sprintf("🏢 Expected in office: %d", office)}
	if len(homeOffice) > 0 {
		lines = append(lines, "🏠 Home office: "+strings.Join(homeOffice, ", "))
	}
	if len(vacation) > 0 {
		lines = append(lines, "🏖 Vacation: "+strings.Join(vacation, ", "))
	}
	if len(sick) > 0 {
		lines = append(lines, "🤒 Sick: "+strings.Join(sick, ", "))
	}
	for _, g := range global {
		lines = append(lines, "Everyone: "+g)
	}

	s.notifier.SendToAdmins(ctx, "🌅 Morning report ("+today+")\n"+strings.Join(lines, "\n"))
}

// endOfDayReport summarizes today's attendance for admins: completion rate,
// per-person lines, and who arrived late or left early.
func (s *Scheduler) endOfDayReport(ctx context.Context, emps []employee.Employee) {
	rows, err := s.attendance.ListToday(ctx)
	if err != nil {
		s.logger.Error("end of day report failed", zap.Error(err))
		return
	}
	if len(rows) == 0 {
		return
	}

	skip := s.adminRecordFilter(ctx, emps)

	tracked, completed := 0, 0
	var lines, missed []string
	for _, rec := range rows {
		if skip[rec.EmployeeID.String()] {
			continue
		}
		tracked++
		switch rec.Status {
		case attendance.StatusLeft:
			completed++
		case attendance.StatusMissed:
			missed = append(missed, recordName(rec))
		}
		lines = append(lines, formatDayLine(rec))
	}
	if tracked == 0 {
		return
	}

	text := fmt.Sprintf("🌙 End of day (%s)\nCompleted: %d/%d (%d%%)\n• %s",
		s.clock.Today(), completed, tracked, completed*100/tracked, strings.Join(lines, "\n• "))
	if len(missed) > 0 {
		text += "\n🚫 Missed: " + strings.Join(missed, ", ")
	}
	if late := s.annotationNames(ctx, event.SubtypeLateArrival); len(late) > 0 {
		text += "\n⏰ Late arrival: " + strings.Join(late, ", ")
	}
	if early := s.annotationNames(ctx, event.SubtypeLeftEarly); len(early) > 0 {
		text += "\n🏃 Left early: " + strings.Join(early, ", ")
	}
	s.notifier.SendToAdmins(ctx, text)
}

// weeklyReport sends WeeklySummary to admins, Monday mornings.
func (s *Scheduler) weeklyReport(ctx context.Context) {
	text, err := s.WeeklySummary(ctx)
	if err != nil {
		s.logger.Error("weekly report failed", zap.Error(err))
		return
	}
	if text == "" {
		return
	}
	s.notifier.SendToAdmins(ctx, text)
}

// WeeklySummary aggregates the previous Monday through Sunday: overall
// attendance rate, per-employee day counts, and leave days taken by type.
// The /weekreport command reuses it on demand.
func (s *Scheduler) WeeklySummary(ctx context.Context) (string, error) {
	now := s.clock.Now()
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	thisMonday := clock.DateOnly(now).AddDate(0, 0, -(weekday - 1))
	from := thisMonday.AddDate(0, 0, -7)
	to := thisMonday.AddDate(0, 0, -1)
	fromStr := from.Format("2006-01-02")
	toStr := to.Format("2006-01-02")

	rows, err := s.attendance.ListRange(ctx, fromStr, toStr)
	if err != nil {
		return "", err
	}

	emps, err := s.employees.FindAllActive(ctx)
	if err != nil {
		return "", err
	}
	skip := s.adminRecordFilter(ctx, emps)

	type tally struct {
		name    string
		present int
		missed  int
		auto    int
	}
	byEmployee := make(map[string]*tally)
	var order []string
	totalPresent, totalMissed := 0, 0
	for _, rec := range rows {
		key := rec.EmployeeID.String()
		if skip[key] {
			continue
		}
		t, ok := byEmployee[key]
		if !ok {
			t = &tally{name: recordName(rec)}
			byEmployee[key] = t
			order = append(order, key)
		}
		switch {
		case rec.Status == attendance.StatusMissed:
			t.missed++
			totalMissed++
		case rec.Status == attendance.StatusLeft && rec.AutoCheckedOut:
			t.present++
			t.auto++
			totalPresent++
		default:
			t.present++
			totalPresent++
		}
	}
	if totalPresent+totalMissed == 0 {
		return "", nil
	}

	var lines []string
	for _, key := range order {
		t := byEmployee[key]
		line := fmt.Sprintf("%s: %d day(s) in office", t.name, t.present)
		if t.missed > 0 {
			line += fmt.Sprintf(", %d missed", t.missed)
		}
		if t.auto > 0 {
			line += fmt.Sprintf(", %d auto checkout(s)", t.auto)
		}
		lines = append(lines, line)
	}

	rate := totalPresent * 100 / (totalPresent + totalMissed)
	text := fmt.Sprintf("📊 Weekly report (%s to %s)\nAttendance rate: %d%%\n• %s",
		fromStr, toStr, rate, strings.Join(lines, "\n• "))

	if leaveLines := s.weekLeaveDays(ctx, fromStr, toStr, from, to); len(leaveLines) > 0 {
		text += "\nLeave taken:\n• " + strings.Join(leaveLines, "\n• ")
	}
	return text, nil
}

// weekLeaveDays counts moderated leave days per type, clipped to the window.
func (s *Scheduler) weekLeaveDays(ctx context.Context, fromStr, toStr string, from, to time.Time) []string {
	rows, err := s.events.ListRange(ctx, fromStr, toStr)
	if err != nil {
		s.logger.Error("weekly leave tally failed", zap.Error(err))
		return nil
	}

	days := make(map[event.Type]int)
	for _, e := range rows {
		if !e.Moderated {
			continue
		}
		t := event.Type(e.Type)
		switch t {
		case event.TypeHomeOffice, event.TypeVacation, event.TypeSickDay,
			event.TypeHoliday, event.TypeDayOffPaid, event.TypeDayOffUnpaid:
		default:
			continue
		}
		start, err := clock.ParseDate(e.StartDate)
		if err != nil {
			continue
		}
		end := start
		if e.EndDate != nil {
			if parsed, err := clock.ParseDate(*e.EndDate); err == nil {
				end = parsed
			}
		}
		if start.Before(from) {
			start = from
		}
		if end.After(to) {
			end = to
		}
		if end.Before(start) {
			continue
		}
		days[t] += leave.InclusiveDays(start, &end)
	}

	var lines []string
	for _, t := range []event.Type{
		event.TypeHomeOffice, event.TypeVacation, event.TypeSickDay,
		event.TypeHoliday, event.TypeDayOffPaid, event.TypeDayOffUnpaid,
	} {
		if days[t] > 0 {
			lines = append(lines, fmt.Sprintf("%s: %d day(s)", t.Label(), days[t]))
		}
	}
	return lines
}

// adminRecordFilter maps employee IDs that reports must skip because the
// employee's email belongs to an admin account.
func (s *Scheduler) adminRecordFilter(ctx context.Context, emps []employee.Employee) map[string]bool {
	admins := s.adminEmails(ctx)
	skip := make(map[string]bool)
	if len(admins) == 0 {
		return skip
	}
	for i := range emps {
		if admins[strings.ToLower(emps[i].Email)] {
			skip[emps[i].ID.String()] = true
		}
	}
	return skip
}

// annotationNames resolves today's late/early annotations to employee names.
func (s *Scheduler) annotationNames(ctx context.Context, sub event.Subtype) []string {
	rows, err := s.events.AnnotationsOn(ctx, clock.DateOnly(s.clock.Now()), sub)
	if err != nil {
		s.logger.Error("list annotations failed", zap.String("subtype", string(sub)), zap.Error(err))
		return nil
	}
	var names []string
	for _, e := range rows {
		if e.Employee != nil {
			names = append(names, e.Employee.FullName)
		}
	}
	return names
}

func recordName(rec attendance.CheckIn) string {
	if rec.Employee != nil {
		return rec.Employee.FullName
	}
	return rec.EmployeeID.String()
}

func formatDayLine(rec attendance.CheckIn) string {
	name := recordName(rec)

	switch rec.Status {
	case attendance.StatusMissed:
		return name + ": missed"
	case attendance.StatusLeft:
		in, out := "?", "?"
		if rec.ActualArrivalTime != nil {
			in = *rec.ActualArrivalTime
		}
		if rec.ActualDepartureTime != nil {
			out = *rec.ActualDepartureTime
		}
		line := fmt.Sprintf("%s: %s to %s", name, in, out)
		if rec.AutoCheckedOut {
			line += " (auto)"
		}
		return line
	case attendance.StatusArrived, attendance.StatusWaitingDeparture, attendance.StatusWaitingDepartureReminder:
		in := "?"
		if rec.ActualArrivalTime != nil {
			in = *rec.ActualArrivalTime
		}
		return fmt.Sprintf("%s: in since %s", name, in)
	default:
		return name + ": no answer yet"
	}
}
