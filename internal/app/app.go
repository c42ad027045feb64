package app

import (
	"context"
	"net/http"

	"crypto_casino/internal/config"
	"crypto_casino/pkg/logger"

	"go.uber.org/zap"
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) Run() error {
	err := config.Load(".env")
	if err != nil {
		logger.Warn("failed to load .env file", zap.Error(err))
	}
	s.initServiceProvider()

	ctx := context.Background()
	r := s.ServiceProvider.Router(ctx)

	logger.Info("starting server", zap.String("addr", s.ServiceProvider.HTTPCfg().Address()))
	return http.ListenAndServe(s.ServiceProvider.HTTPCfg().Address(), r)
}
