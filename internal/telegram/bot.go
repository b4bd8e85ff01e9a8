package telegram

import (
	"context"
	"strings"

	"github.com/david-vardanov/teambie/internal/attendance"
	"github.com/david-vardanov/teambie/internal/clock"
	"github.com/david-vardanov/teambie/internal/employee"
	"github.com/david-vardanov/teambie/internal/event"
	"github.com/david-vardanov/teambie/internal/notifier"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// WeekReporter builds the weekly attendance digest on demand.
type WeekReporter interface {
	WeeklySummary(ctx context.Context) (string, error)
}

// Bot owns the long-poll loop and routes chat traffic to the domain
// services. It never decides attendance or leave semantics itself.
type Bot struct {
	api        *tgbotapi.BotAPI
	employees  employee.Repository
	empService employee.Service
	attendance attendance.Service
	events     event.Service
	directory  notifier.Directory
	reporter   WeekReporter
	clock      *clock.Clock
	logger     *zap.Logger
}

func NewBot(
	api *tgbotapi.BotAPI,
	employees employee.Repository,
	empService employee.Service,
	attendanceService attendance.Service,
	eventService event.Service,
	directory notifier.Directory,
	reporter WeekReporter,
	clk *clock.Clock,
	logger ...*zap.Logger,
) *Bot {
	l := zap.L().Named("telegram.bot")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("telegram.bot")
	}
	return &Bot{
		api:        api,
		employees:  employees,
		empService: empService,
		attendance: attendanceService,
		events:     eventService,
		directory:  directory,
		reporter:   reporter,
		clock:      clk,
		logger:     l,
	}
}

// Run long-polls until the context is cancelled.
func (b *Bot) Run(ctx context.Context) {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := b.api.GetUpdatesChan(cfg)

	b.logger.Info("bot update loop started", zap.String("username", b.api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("bot update loop stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, chatID, msg.Command(), strings.TrimSpace(msg.CommandArguments()))
		return
	}
	b.handleFreeText(ctx, chatID, text)
}

func (b *Bot) handleCommand(ctx context.Context, chatID int64, command, args string) {
	if command == "start" {
		b.cmdStart(ctx, chatID, args)
		return
	}

	emp, ok := b.requireEmployee(ctx, chatID)
	if !ok {
		return
	}

	switch command {
	case "checkin":
		b.cmdCheckIn(ctx, chatID, emp)
	case "checkout":
		b.cmdCheckOut(ctx, chatID, emp)
	case "mystatus":
		b.cmdMyStatus(ctx, chatID, emp)
	case "balance":
		b.cmdBalance(ctx, chatID, emp)
	case "vacation":
		b.cmdVacation(ctx, chatID, emp, args)
	case "sick":
		b.cmdSick(ctx, chatID, emp, args)
	case "homeoffice":
		b.cmdHomeOffice(ctx, chatID, emp, args)
	case "dayoff":
		b.cmdDayOff(ctx, chatID, emp, args)
	case "help":
		b.cmdHelp(ctx, chatID)

	case "teamstatus":
		b.admin(ctx, chatID, b.cmdTeamStatus)
	case "pending":
		b.admin(ctx, chatID, b.cmdPending)
	case "broadcast":
		b.admin(ctx, chatID, func(ctx context.Context, chatID int64) { b.cmdBroadcast(ctx, chatID, args) })
	case "admincheckin":
		b.admin(ctx, chatID, func(ctx context.Context, chatID int64) { b.cmdAdminCheckIn(ctx, chatID, args) })
	case "admincheckout":
		b.admin(ctx, chatID, func(ctx context.Context, chatID int64) { b.cmdAdminCheckOut(ctx, chatID, args) })
	case "weekreport":
		b.admin(ctx, chatID, b.cmdWeekReport)

	default:
		b.reply(chatID, "🤔 Unknown command. Try /help.")
	}
}

// handleFreeText treats a plain message as an answer to whichever question is
// open on today's record.
func (b *Bot) handleFreeText(ctx context.Context, chatID int64, text string) {
	emp, ok := b.requireEmployee(ctx, chatID)
	if !ok {
		return
	}

	rec, err := b.attendance.TodayRecord(ctx, emp.ID.String())
	if err != nil {
		b.reply(chatID, "💬 Nothing pending right now. Try /help.")
		return
	}

	switch rec.Status {
	case attendance.StatusWaitingArrival, attendance.StatusWaitingArrivalReminder:
		updated, err := b.attendance.DeferArrival(ctx, emp, text)
		if err != nil {
			b.replyError(chatID, err)
			return
		}
		b.reply(chatID, "👌 Got it, I'll check back around "+updated.ExpectedArrivalAt.Format("15:04")+".")
	case attendance.StatusWaitingDeparture, attendance.StatusWaitingDepartureReminder:
		if _, err := b.attendance.DeferDeparture(ctx, emp, text); err != nil {
			b.replyError(chatID, err)
			return
		}
		b.reply(chatID, "👌 Noted, I'll check back with you in a bit.")
	default:
		b.reply(chatID, "💬 Nothing pending right now. Try /help.")
	}
}

func (b *Bot) requireEmployee(ctx context.Context, chatID int64) (*employee.Employee, bool) {
	emp, err := b.employees.FindByChatID(ctx, chatID)
	if err != nil {
		b.reply(chatID, "👋 I don't know you yet. Link your account with /start your.email@company.com")
		return nil, false
	}
	return emp, true
}

// admin runs fn only for chats the identity store currently marks as admin.
func (b *Bot) admin(ctx context.Context, chatID int64, fn func(context.Context, int64)) {
	ids, err := b.directory.AdminChatIDs(ctx)
	if err != nil {
		b.logger.Error("admin lookup failed", zap.Error(err))
		b.reply(chatID, "⚠️ Could not verify permissions, try again.")
		return
	}
	for _, id := range ids {
		if id == chatID {
			fn(ctx, chatID)
			return
		}
	}
	b.reply(chatID, "🔒 Admins only.")
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Warn("send failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (b *Bot) replyError(chatID int64, err error) {
	b.reply(chatID, "⚠️ "+userMessage(err))
}
