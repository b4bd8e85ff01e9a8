package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/david-vardanov/teambie/internal/attendance"
	"github.com/david-vardanov/teambie/internal/employee"
	"github.com/david-vardanov/teambie/internal/event"
	"github.com/david-vardanov/teambie/internal/shared/apperror"
)

const helpText = `🤖 Commands:
/checkin - confirm you're at the office
/checkout - confirm you're leaving
/mystatus - today's record
/balance - vacation and holiday balances
/vacation <start> <end> - request vacation (YYYY-MM-DD)
/sick [date] - report a sick day
/homeoffice [date] - request a home-office day
/dayoff [date] [reason] - request a day off
/help - this list

When I ask a question, you can also just answer in plain text:
"in 30 min", "in 1 hour", "10:15".`

func (b *Bot) cmdStart(ctx context.Context, chatID int64, args string) {
	email := strings.TrimSpace(args)
	if email == "" {
		b.reply(chatID, "👋 Hi! Link your account with /start your.email@company.com")
		return
	}

	resp, err := b.empService.LinkChat(ctx, email, chatID)
	if err != nil {
		b.replyError(chatID, err)
		return
	}
	b.reply(chatID, fmt.Sprintf("✅ Linked! Welcome, %s. Type /help to see what I can do.", resp.FullName))
}

func (b *Bot) cmdCheckIn(ctx context.Context, chatID int64, emp *employee.Employee) {
	rec, err := b.attendance.ConfirmArrival(ctx, emp)
	if err != nil {
		b.replyError(chatID, err)
		return
	}
	b.reply(chatID, fmt.Sprintf("✅ Checked in at %s. Have a good day!", *rec.ActualArrivalTime))
}

func (b *Bot) cmdCheckOut(ctx context.Context, chatID int64, emp *employee.Employee) {
	rec, err := b.attendance.ConfirmDeparture(ctx, emp)
	if err != nil {
		b.replyError(chatID, err)
		return
	}
	b.reply(chatID, fmt.Sprintf("🏁 Checked out at %s. See you tomorrow!", *rec.ActualDepartureTime))
}

func (b *Bot) cmdMyStatus(ctx context.Context, chatID int64, emp *employee.Employee) {
	rec, err := b.attendance.TodayRecord(ctx, emp.ID.String())
	if err != nil {
		b.reply(chatID, "📋 No attendance record for today.")
		return
	}

	var sb strings.Builder
	sb.WriteString("📋 Today (" + b.clock.Today() + ")\n")
	sb.WriteString("Status: " + statusLabel(rec.Status) + "\n")
	if rec.ActualArrivalTime != nil {
		sb.WriteString("Arrived: " + *rec.ActualArrivalTime + "\n")
	}
	if rec.ExpectedDepartureAt != nil {
		sb.WriteString("Expected out: " + rec.ExpectedDepartureAt.Format("15:04") + "\n")
	}
	if rec.ActualDepartureTime != nil {
		line := "Left: " + *rec.ActualDepartureTime
		if rec.AutoCheckedOut {
			line += " (auto)"
		}
		sb.WriteString(line + "\n")
	}
	b.reply(chatID, strings.TrimRight(sb.String(), "\n"))
}

func (b *Bot) cmdBalance(ctx context.Context, chatID int64, emp *employee.Employee) {
	vacation, err := b.events.Balance(ctx, emp, event.TypeVacation)
	if err != nil {
		b.replyError(chatID, err)
		return
	}
	holiday, err := b.events.Balance(ctx, emp, event.TypeHoliday)
	if err != nil {
		b.replyError(chatID, err)
		return
	}

	b.reply(chatID, fmt.Sprintf(
		"🧾 Balances (%s to %s)\n🏖 Vacation: %d left of %d\n🎉 Holiday: %d left of %d",
		vacation.PeriodStart, vacation.PeriodEnd,
		vacation.DaysLeft, vacation.DaysLeft+vacation.DaysTaken,
		holiday.DaysLeft, holiday.DaysLeft+holiday.DaysTaken,
	))
}

func (b *Bot) cmdVacation(ctx context.Context, chatID int64, emp *employee.Employee, args string) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		b.reply(chatID, "🏖 Usage: /vacation 2025-07-01 2025-07-10")
		return
	}

	resp, err := b.events.RequestVacation(ctx, emp, fields[0], fields[1])
	if err != nil {
		b.replyError(chatID, err)
		return
	}
	b.reply(chatID, fmt.Sprintf("🏖 Vacation request sent for %s to %s. An admin will review it.", resp.StartDate, *resp.EndDate))
}

func (b *Bot) cmdSick(ctx context.Context, chatID int64, emp *employee.Employee, args string) {
	date := strings.TrimSpace(args)
	if date == "" {
		date = b.clock.Today()
	}

	resp, err := b.events.RequestSickDay(ctx, emp, date)
	if err != nil {
		b.replyError(chatID, err)
		return
	}
	b.reply(chatID, fmt.Sprintf("🤒 Sick day reported for %s. Get well soon!", resp.StartDate))
}

func (b *Bot) cmdHomeOffice(ctx context.Context, chatID int64, emp *employee.Employee, args string) {
	date := strings.TrimSpace(args)
	if date == "" {
		date = b.clock.Today()
	}

	resp, err := b.events.RequestHomeOffice(ctx, emp, date)
	if err != nil {
		b.replyError(chatID, err)
		return
	}
	b.reply(chatID, fmt.Sprintf("🏠 Home office requested for %s. An admin will review it.", resp.StartDate))
}

func (b *Bot) cmdDayOff(ctx context.Context, chatID int64, emp *employee.Employee, args string) {
	date := b.clock.Today()
	notes := ""
	if fields := strings.Fields(args); len(fields) > 0 {
		date = fields[0]
		notes = strings.Join(fields[1:], " ")
	}

	resp, err := b.events.RequestDayOff(ctx, emp, date, notes)
	if err != nil {
		b.replyError(chatID, err)
		return
	}
	b.reply(chatID, fmt.Sprintf("🆓 Day off requested for %s. An admin will decide paid or unpaid.", resp.StartDate))
}

func (b *Bot) cmdHelp(_ context.Context, chatID int64) {
	b.reply(chatID, helpText)
}

func statusLabel(s attendance.Status) string {
	switch s {
	case attendance.StatusWaitingArrival, attendance.StatusWaitingArrivalReminder:
		return "⏳ waiting for check-in"
	case attendance.StatusArrived:
		return "🟢 at the office"
	case attendance.StatusWaitingDeparture, attendance.StatusWaitingDepartureReminder:
		return "🟡 wrapping up"
	case attendance.StatusLeft:
		return "🔵 left"
	case attendance.StatusMissed:
		return "🚫 missed"
	default:
		return string(s)
	}
}

func userMessage(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Something went wrong, try again."
}
