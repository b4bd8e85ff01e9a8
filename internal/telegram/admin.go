package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/david-vardanov/teambie/internal/employee"
	"github.com/david-vardanov/teambie/internal/event"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (b *Bot) cmdTeamStatus(ctx context.Context, chatID int64) {
	rows, err := b.attendance.ListToday(ctx)
	if err != nil {
		b.replyError(chatID, err)
		return
	}
	if len(rows) == 0 {
		b.reply(chatID, "👥 No attendance records yet today.")
		return
	}

	var lines []string
	for _, rec := range rows {
		name := rec.EmployeeID.String()
		if rec.Employee != nil {
			name = rec.Employee.FullName
		}
		line := fmt.Sprintf("%s %s", statusLabel(rec.Status), name)
		if rec.ActualArrivalTime != nil {
			line += " (in " + *rec.ActualArrivalTime
			if rec.ActualDepartureTime != nil {
				line += ", out " + *rec.ActualDepartureTime
			}
			line += ")"
		}
		lines = append(lines, line)
	}
	b.reply(chatID, "👥 Team today:\n"+strings.Join(lines, "\n"))
}

// cmdPending lists unmoderated requests, each with its own approve/reject
// buttons.
func (b *Bot) cmdPending(ctx context.Context, chatID int64) {
	rows, err := b.events.ListPending(ctx)
	if err != nil {
		b.replyError(chatID, err)
		return
	}
	if len(rows) == 0 {
		b.reply(chatID, "📭 Nothing waiting for review.")
		return
	}

	for _, e := range rows {
		text := fmt.Sprintf("%s %s\n%s", event.Type(e.Type).Label(), e.EmployeeName, e.StartDate)
		if e.EndDate != nil {
			text += " to " + *e.EndDate
		}
		if e.Notes != "" {
			text += "\n💬 " + e.Notes
		}

		msg := tgbotapi.NewMessage(chatID, text)
		if event.Type(e.Type) == event.TypeDayOffPaid || event.Type(e.Type) == event.TypeDayOffUnpaid {
			msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
				tgbotapi.NewInlineKeyboardRow(
					tgbotapi.NewInlineKeyboardButtonData("💰 Paid", "dayoff:"+e.ID+":PAID"),
					tgbotapi.NewInlineKeyboardButtonData("🆓 Unpaid", "dayoff:"+e.ID+":UNPAID"),
					tgbotapi.NewInlineKeyboardButtonData("❌ Reject", "reject:"+e.ID),
				),
			)
		} else {
			msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
				tgbotapi.NewInlineKeyboardRow(
					tgbotapi.NewInlineKeyboardButtonData("✅ Approve", "approve:"+e.ID),
					tgbotapi.NewInlineKeyboardButtonData("❌ Reject", "reject:"+e.ID),
				),
			)
		}
		if _, err := b.api.Send(msg); err != nil {
			b.logger.Warn("send pending item failed", zap.Error(err))
		}
	}
}

func (b *Bot) cmdBroadcast(ctx context.Context, chatID int64, args string) {
	text := strings.TrimSpace(args)
	if text == "" {
		b.reply(chatID, "📣 Usage: /broadcast your message")
		return
	}

	ids, err := b.directory.EmployeeChatIDs(ctx)
	if err != nil {
		b.replyError(chatID, err)
		return
	}

	sent := 0
	for _, id := range ids {
		if _, err := b.api.Send(tgbotapi.NewMessage(id, "📣 "+text)); err == nil {
			sent++
		}
	}
	b.reply(chatID, fmt.Sprintf("📣 Delivered to %d of %d.", sent, len(ids)))
}

func (b *Bot) cmdAdminCheckIn(ctx context.Context, chatID int64, args string) {
	emp, when, ok := b.parseAdminTarget(ctx, chatID, args, "/admincheckin jane@company.com [HH:MM]")
	if !ok {
		return
	}

	rec, err := b.attendance.ManualCheckIn(ctx, emp, 0, when)
	if err != nil {
		b.replyError(chatID, err)
		return
	}
	b.reply(chatID, fmt.Sprintf("✅ %s checked in at %s.", emp.FullName, *rec.ActualArrivalTime))
}

func (b *Bot) cmdAdminCheckOut(ctx context.Context, chatID int64, args string) {
	emp, when, ok := b.parseAdminTarget(ctx, chatID, args, "/admincheckout jane@company.com [HH:MM]")
	if !ok {
		return
	}

	rec, err := b.attendance.ManualCheckOut(ctx, emp, 0, when)
	if err != nil {
		b.replyError(chatID, err)
		return
	}
	b.reply(chatID, fmt.Sprintf("🏁 %s checked out at %s.", emp.FullName, *rec.ActualDepartureTime))
}

// cmdWeekReport sends last week's digest on demand instead of waiting for
// Monday morning.
func (b *Bot) cmdWeekReport(ctx context.Context, chatID int64) {
	text, err := b.reporter.WeeklySummary(ctx)
	if err != nil {
		b.replyError(chatID, err)
		return
	}
	if text == "" {
		b.reply(chatID, "📊 No attendance data for last week yet.")
		return
	}
	b.reply(chatID, text)
}

func (b *Bot) parseAdminTarget(ctx context.Context, chatID int64, args, usage string) (emp *employee.Employee, when string, ok bool) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		b.reply(chatID, "✍️ Usage: "+usage)
		return nil, "", false
	}

	target, err := b.employees.FindByEmail(ctx, fields[0])
	if err != nil {
		b.reply(chatID, "🤷 No employee with email "+fields[0])
		return nil, "", false
	}
	if len(fields) > 1 {
		when = fields[1]
	}
	return target, when, true
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	parts := strings.Split(cb.Data, ":")

	ack := func(text string) {
		if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, text)); err != nil {
			b.logger.Warn("callback ack failed", zap.Error(err))
		}
	}

	isAdmin := false
	if ids, err := b.directory.AdminChatIDs(ctx); err == nil {
		for _, id := range ids {
			if id == chatID {
				isAdmin = true
				break
			}
		}
	}
	if !isAdmin {
		ack("Admins only")
		return
	}

	switch {
	case len(parts) == 2 && parts[0] == "approve":
		resp, err := b.events.Approve(ctx, parts[1])
		if err != nil {
			ack(userMessage(err))
			return
		}
		ack("Approved")
		b.reply(chatID, fmt.Sprintf("✅ Approved: %s %s", event.Type(resp.Type).Label(), resp.EmployeeName))

	case len(parts) == 3 && parts[0] == "dayoff":
		resp, err := b.events.ApproveDayOff(ctx, parts[1], parts[2])
		if err != nil {
			ack(userMessage(err))
			return
		}
		ack("Approved")
		b.reply(chatID, fmt.Sprintf("✅ Approved as %s: %s", event.Type(resp.Type).Label(), resp.EmployeeName))

	case len(parts) == 2 && parts[0] == "reject":
		if err := b.events.Reject(ctx, parts[1]); err != nil {
			ack(userMessage(err))
			return
		}
		ack("Rejected")
		b.reply(chatID, "❌ Rejected and removed.")

	default:
		ack("Unknown action")
	}
}
