package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/robiyakhmed13-ux/New-year-bot/internal/bot"
	"github.com/robiyakhmed13-ux/New-year-bot/internal/config"
	"github.com/robiyakhmed13-ux/New-year-bot/internal/sheet"
	"github.com/robiyakhmed13-ux/New-year-bot/internal/store"
	"github.com/robiyakhmed13-ux/New-year-bot/internal/web"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// A broken sheet config must not keep the bot down; conversations keep
	// working and only the store-backed admin commands report the error.
	var vals sheet.Values
	switch cfg.SheetBackend {
	case "sqlite":
		vals, err = sheet.OpenSqlite(cfg.SheetDB)
	default:
		vals, err = sheet.NewGoogle(context.Background(), cfg.CredsJSON, cfg.SheetID, cfg.SheetTab)
	}
	if err != nil {
		log.Printf("sheets: init failed: %v", err)
		vals = sheet.Unavailable{Err: err}
	}

	st := store.New(vals, cfg.TZ)
	if err := st.EnsureSchema(); err != nil {
		log.Printf("sheets: ensure schema: %v", err)
	}

	client := bot.NewClient(cfg.Token)
	d := bot.NewDispatcher(client, st, cfg)
	d.StartSessionSweep()

	if err := client.SetWebhook(cfg.WebhookURL(), true); err != nil {
		log.Printf("telegram: set webhook: %v", err)
	}

	srv := &http.Server{Addr: cfg.Addr, Handler: web.Router(cfg, d, st)}
	go func() {
		log.Printf("New Year bot listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	if err := client.DeleteWebhook(false); err != nil {
		log.Printf("telegram: delete webhook: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}
