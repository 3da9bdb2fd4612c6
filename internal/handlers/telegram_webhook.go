package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/robiyakhmed13-ux/New-year-bot/internal/bot"
)

// TelegramWebhook decodes an update and hands it to the dispatcher. The
// webhook path already embeds the secret, so reaching this handler is the
// authentication.
func TelegramWebhook(d *bot.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		b, _ := io.ReadAll(r.Body)

		var up bot.Update
		if err := json.Unmarshal(b, &up); err != nil {
			http.Error(w, "bad request", 400)
			return
		}
		d.Handle(&up)
		w.WriteHeader(200)
		w.Write([]byte(`{"ok":true}`))
	}
}
