package main

import (
	stdLog "log"
	"time"

	"github.com/joho/godotenv"
	"github.com/practicum/shareit/gateway/app"
	"github.com/practicum/shareit/gateway/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Fatal("load envs from .env ", zap.Error(err))
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
