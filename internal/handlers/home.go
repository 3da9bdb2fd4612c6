package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/robiyakhmed13-ux/New-year-bot/internal/config"
)

// Root reports liveness plus the webhook path, handy when checking the
// deployment from a browser.
func Root(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":      true,
			"webhook": cfg.WebhookPath(),
		})
	}
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
