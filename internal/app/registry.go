package app

import (
	"database/sql"

	"github.com/david-vardanov/teambie/internal/attendance"
	"github.com/david-vardanov/teambie/internal/auth"
	"github.com/david-vardanov/teambie/internal/clock"
	"github.com/david-vardanov/teambie/internal/employee"
	"github.com/david-vardanov/teambie/internal/event"
	"github.com/david-vardanov/teambie/internal/messaging/kafka"
	"github.com/david-vardanov/teambie/internal/notifier"
	"github.com/david-vardanov/teambie/internal/rbac"
	"github.com/david-vardanov/teambie/internal/rbac/infra"
	"github.com/david-vardanov/teambie/internal/settings"
	"github.com/david-vardanov/teambie/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	clk *clock.Clock,
	ntf notifier.Notifier,
) error {
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	eventRepo := event.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	settingsRepo := settings.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer)
	if err != nil {
		return err
	}

	// --- Services ---
	settingsService := settings.NewService(settingsRepo, clk)
	authService := auth.NewService(db, authRepo)
	employeeService := employee.NewService(db, employeeRepo)
	eventService := event.NewServiceWithOutbox(db, eventRepo, clk, outboxRepo, ntf)
	attendanceService := attendance.NewServiceWithOutbox(db, attendanceRepo, eventRepo, clk, outboxRepo, ntf)
	userService := user.NewService(userRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	attendanceHandler := attendance.NewHandler(attendanceService, employeeRepo)
	employeeHandler := employee.NewHandler(employeeService)
	eventHandler := event.NewHandler(eventService)
	settingsHandler := settings.NewHandler(settingsService)
	userHandler := user.NewHandler(userService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, rdb)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		event.RegisterRoutes(api, eventHandler, rbacService, rdb)
		settings.RegisterRoutes(api, settingsHandler, rbacService)
		user.RegisterRoutes(api, userHandler, rbacService, zap.L())
	}

	return nil
}
