package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/david-vardanov/teambie/internal/attendance"
	"github.com/david-vardanov/teambie/internal/clock"
	"github.com/david-vardanov/teambie/internal/employee"
	"github.com/david-vardanov/teambie/internal/event"
	"github.com/david-vardanov/teambie/internal/messaging/kafka"
	"github.com/david-vardanov/teambie/internal/notifier"
	"github.com/david-vardanov/teambie/internal/scheduler"
	"github.com/david-vardanov/teambie/internal/settings"
	"github.com/david-vardanov/teambie/internal/shared/connection"
	"github.com/david-vardanov/teambie/internal/telegram"

	"go.uber.org/zap"
)

// RunBot menjalankan long-polling Telegram bot beserta scheduler menit-an.
func RunBot() error {
	logger := zap.L().Named("app.bot")

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("✅ Database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	api, err := connection.ConnectTelegramWithRetry(token, 5)
	if err != nil {
		return err
	}
	logger.Info("✅ Telegram connection established", zap.String("bot", api.Self.UserName))

	// --- Wiring ---
	attendanceRepo := attendance.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	eventRepo := event.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	settingsRepo := settings.NewRepository(gormDB)

	directory := notifier.NewDirectory(gormDB)
	ntf := notifier.NewTelegram(api, directory)

	clk := clock.New(0)
	settingsService := settings.NewService(settingsRepo, clk)
	if row, err := settingsService.Current(context.Background()); err == nil {
		clk.SetOffset(row.TimezoneOffset)
	}

	employeeService := employee.NewService(sqlDB, employeeRepo)
	eventService := event.NewServiceWithOutbox(sqlDB, eventRepo, clk, outboxRepo, ntf)
	attendanceService := attendance.NewServiceWithOutbox(sqlDB, attendanceRepo, eventRepo, clk, outboxRepo, ntf)

	sched := scheduler.New(employeeRepo, attendanceService, settingsService, eventService, ntf, directory, clk)
	bot := telegram.NewBot(api, employeeRepo, employeeService, attendanceService, eventService, directory, sched, clk)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go bot.Run(ctx)
	go sched.Run(ctx, time.Minute)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("bot shutting down")
	cancel()

	return nil
}
