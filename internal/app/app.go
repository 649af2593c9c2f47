package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/editions/config"
	"github.com/daniilsolovey/editions/internal/catalog"
	"github.com/daniilsolovey/editions/internal/db"
	"github.com/daniilsolovey/editions/internal/rest"
	"github.com/daniilsolovey/editions/internal/rpc"
	"github.com/labstack/echo/v4"
)

const rpcPath = "/rpc/"

type App struct {
	DB      *db.Repository
	Manager *catalog.Manager
	Logger  *slog.Logger
	Echo    *echo.Echo
	Config  config.Config
}

func New(cfg config.Config, store db.Store, logger *slog.Logger) *App {
	repo := db.New(store)
	manager := catalog.NewManager(repo, logger)

	handler := rest.NewEditionHandler(manager, logger, cfg.App.FrontendDir)
	e := handler.RegisterRoutes()
	e.Any(rpcPath, echo.WrapHandler(rpc.New(logger, manager)))

	return &App{
		DB:      repo,
		Manager: manager,
		Logger:  logger,
		Echo:    e,
		Config:  cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.Logger.Info("service started", "addr", a.Config.Addr())
	err := a.Echo.Start(a.Config.Addr())
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	return errors.Join(err, a.DB.Close())
}
