package notifier

import "context"

// Result counts per-recipient delivery outcomes for a broadcast.
type Result struct {
	Sent   int
	Failed int
}

// Notifier delivers chat messages. Delivery failure is never fatal to the
// caller: state changes that triggered a notification already stand.
//
//go:generate mockgen -source=notifier.go -destination=mock/notifier_mock.go -package=mock
type Notifier interface {
	SendToUser(ctx context.Context, chatID int64, text string) Result
	SendToAdmins(ctx context.Context, text string) Result
	SendToAllEmployees(ctx context.Context, text string) Result
}

// Directory resolves recipient chat IDs. Admin membership is decided by the
// identity store at call time, not cached.
type Directory interface {
	AdminChatIDs(ctx context.Context) ([]int64, error)
	AdminEmails(ctx context.Context) ([]string, error)
	EmployeeChatIDs(ctx context.Context) ([]int64, error)
}
