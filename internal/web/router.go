package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/robiyakhmed13-ux/New-year-bot/internal/bot"
	"github.com/robiyakhmed13-ux/New-year-bot/internal/config"
	"github.com/robiyakhmed13-ux/New-year-bot/internal/handlers"
	"github.com/robiyakhmed13-ux/New-year-bot/internal/store"
)

func Router(cfg *config.Config, d *bot.Dispatcher, st *store.Store) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", handlers.Root(cfg))
	r.Get("/healthz", handlers.Health)

	// the secret in the path is the only auth Telegram offers here
	r.Post(cfg.WebhookPath(), handlers.TelegramWebhook(d))

	r.Get("/qr/{chatID}.png", handlers.QR(st))

	return r
}
