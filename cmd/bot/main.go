package main

import (
	"github.com/david-vardanov/teambie/internal/app"
	"github.com/david-vardanov/teambie/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	if err := app.RunBot(); err != nil {
		logger.Fatal("run bot failed", zap.Error(err))
	}
}
