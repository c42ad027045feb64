package main

import (
	"crypto_casino/internal/app"
	"crypto_casino/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	logger.Init()
	defer logger.Sync()

	a := app.NewApp()
	if err := a.Run(); err != nil {
		logger.Error("server stopped", zap.Error(err))
	}
}
