package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/news-feed/config"
	"github.com/daniilsolovey/news-feed/internal/db"
	"github.com/daniilsolovey/news-feed/internal/newsfeed"
	"github.com/daniilsolovey/news-feed/internal/rest"
	"github.com/go-pg/pg/v10"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	repo := db.New(dbConnect)
	manager := newsfeed.NewManager(repo)
	service := newsfeed.NewService(manager, repo)

	store := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode
	if cfg.Session.MaxAge > 0 {
		store.Options.MaxAge = cfg.Session.MaxAge
	}

	handler := rest.NewHandler(service, store, logger)

	return &App{
		DB:     repo,
		Logger: logger,
		Echo:   handler.RegisterRoutes(),
		Config: cfg,
	}
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
