package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/robiyakhmed13-ux/New-year-bot/internal/store"
)

// QR serves the entry pass sent with the day invitation: a PNG encoding
// the registration's chat id and visit day for a quick scan at the door.
func QR(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chatID, err := strconv.ParseInt(chi.URLParam(r, "chatID"), 10, 64)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		reg, ok, err := st.Get(chatID)
		if err != nil || !ok {
			http.NotFound(w, r)
			return
		}

		payload := fmt.Sprintf("NY|chat:%d|day:%d|child:%s", reg.ChatID, reg.AssignedDay, reg.ChildFullname)
		png, err := qrcode.Encode(payload, qrcode.Medium, 256)
		if err != nil {
			http.Error(w, "failed to generate qr", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(png)
	}
}
