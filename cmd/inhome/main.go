package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	adapthttp "inhome/internal/adapter/http"
	"inhome/internal/app"
	"inhome/internal/config"
	"inhome/internal/remote"
	"inhome/internal/session"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}
	setupLogging(cfg.LogLevel)

	db, err := session.OpenDB(cfg.SessionDBPath)
	if err != nil {
		slog.Error("session db open failed", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	sessions := session.NewManager(db, cfg.IsDevelopment())
	store := session.NewStore(sessions)

	client := remote.New(cfg.APIBaseURL, cfg.RequestTimeout)

	authSvc := app.NewAuthService(client, store)
	productSvc := app.NewProductService(client, store)

	h := adapthttp.New(authSvc, productSvc, sessions, cfg.WebDir).Handler()
	slog.Info("listening", "addr", cfg.Addr, "api", cfg.APIBaseURL)
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func setupLogging(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}
