package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/taskdeck/client/internal/cli"
	"github.com/taskdeck/client/internal/config"
	"github.com/taskdeck/client/internal/services/lifecycle"
	"github.com/taskdeck/client/pkg/apiclient"
	"github.com/taskdeck/client/pkg/httpcontext"
	"github.com/taskdeck/client/pkg/logger"
	"github.com/taskdeck/client/repository/rest"
	"github.com/taskdeck/client/usecase/directory"
	sessionUC "github.com/taskdeck/client/usecase/session"
	"github.com/taskdeck/client/usecase/tasklist"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	clientCfg := apiclient.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.RequestTimeout,
		MaxConns:  cfg.API.MaxConns,
		UserAgent: cfg.API.UserAgent,
	}

	// the auth endpoints use a separate client: no bearer header, and a
	// 401 there means bad credentials rather than an expired session
	var app *cli.App
	authClient := apiclient.New(clientCfg, nil, zapLogger)
	apiClient := apiclient.New(clientCfg, func() {
		if app != nil {
			app.SessionExpired()
		}
	}, zapLogger)

	authRepo := rest.NewAuthRepository(authClient)
	taskRepo := rest.NewTaskRepository(apiClient)
	userRepo := rest.NewUserRepository(apiClient)

	sessions := sessionUC.New(authRepo, apiClient, zapLogger)
	tasks := tasklist.New(taskRepo, zapLogger)
	users := directory.New(userRepo, zapLogger)

	adapter := httpcontext.NewAdapter(cfg.API.RequestTimeout)

	app = cli.New(cli.Deps{
		Session:   sessions,
		Tasks:     tasks,
		Directory: users,
		Adapter:   adapter,
		Logger:    zapLogger,
		In:        os.Stdin,
		Out:       os.Stdout,
	})

	manager.Register("session", func(context.Context) error {
		sessions.Logout()
		return nil
	})

	if err := app.Run(appCtx); err != nil {
		zapLogger.Error("command loop failed", zap.Error(err))
	}

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
