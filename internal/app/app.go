package app

import (
	"context"
	"os"

	"github.com/david-vardanov/teambie/internal/clock"
	"github.com/david-vardanov/teambie/internal/notifier"
	"github.com/david-vardanov/teambie/internal/settings"
	"github.com/david-vardanov/teambie/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

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

	// Redis opsional; tanpa Redis idempotency middleware dilewati.
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
		logger.Info("✅ Redis connection established")
	}

	clk := clock.New(0)
	seedClockOffset(gormDB, clk)

	// Notifier opsional untuk proses API; approval tetap jalan tanpa bot.
	var ntf notifier.Notifier
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		api, err := connection.ConnectTelegramWithRetry(token, 5)
		if err != nil {
			return err
		}
		ntf = notifier.NewTelegram(api, notifier.NewDirectory(gormDB))
		logger.Info("✅ Telegram notifier attached")
	}

	return registerModules(router, sqlDB, gormDB, rdb, clk, ntf)
}

// seedClockOffset memuat timezone offset dari settings saat boot.
func seedClockOffset(gormDB *gorm.DB, clk *clock.Clock) {
	repo := settings.NewRepository(gormDB)
	svc := settings.NewService(repo, clk)
	if row, err := svc.Current(context.Background()); err == nil {
		clk.SetOffset(row.TimezoneOffset)
	}
}
