package notifier

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type telegramNotifier struct {
	api       *tgbotapi.BotAPI
	directory Directory
	logger    *zap.Logger
}

func NewTelegram(api *tgbotapi.BotAPI, directory Directory, logger ...*zap.Logger) Notifier {
	l := zap.L().Named("notifier.telegram")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notifier.telegram")
	}
	return &telegramNotifier{api: api, directory: directory, logger: l}
}

func (n *telegramNotifier) SendToUser(ctx context.Context, chatID int64, text string) Result {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := n.api.Send(msg); err != nil {
		n.logger.Warn("send to user failed",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return Result{Failed: 1}
	}
	return Result{Sent: 1}
}

func (n *telegramNotifier) SendToAdmins(ctx context.Context, text string) Result {
	ids, err := n.directory.AdminChatIDs(ctx)
	if err != nil {
		n.logger.Error("resolve admin chat ids failed", zap.Error(err))
		return Result{}
	}
	return n.broadcast(ctx, ids, text)
}

func (n *telegramNotifier) SendToAllEmployees(ctx context.Context, text string) Result {
	ids, err := n.directory.EmployeeChatIDs(ctx)
	if err != nil {
		n.logger.Error("resolve employee chat ids failed", zap.Error(err))
		return Result{}
	}
	return n.broadcast(ctx, ids, text)
}

func (n *telegramNotifier) broadcast(ctx context.Context, ids []int64, text string) Result {
	var res Result
	for _, id := range ids {
		r := n.SendToUser(ctx, id, text)
		res.Sent += r.Sent
		res.Failed += r.Failed
	}
	if res.Failed > 0 {
		n.logger.Warn("broadcast partially failed",
			zap.Int("sent", res.Sent),
			zap.Int("failed", res.Failed),
		)
	}
	return res
}
