package bot

import (
	"fmt"
	"log"

	"github.com/robiyakhmed13-ux/New-year-bot/internal/assign"
)

// handleNotify broadcasts the day invitation to every registrant of that
// day who hasn't been notified yet. Best effort, at-least-once: a failed
// send stays unnotified and is picked up by the next run, and one bad
// recipient never stops the rest of the batch. Re-running is safe because
// marked recipients are skipped.
func (d *Dispatcher) handleNotify(chat int64, from *User, day int) {
	if !d.requireAdmin(chat, from) {
		return
	}

	ids, err := d.reg.ListUnnotifiedForDay(day)
	if err != nil {
		_ = d.c.SendMessage(chat, fmt.Sprintf(msgSheetsErrFmt, err), nil)
		return
	}
	if len(ids) == 0 {
		_ = d.c.SendMessage(chat, fmt.Sprintf(msgNothingToSendFmt, day), nil)
		return
	}

	msg := msgNotif27
	if day == assign.Day28 {
		msg = msgNotif28
	}

	sent, failed := 0, 0
	for _, cid := range ids {
		if err := d.c.SendMessage(cid, msg, nil); err != nil {
			failed++
			continue
		}
		if err := d.reg.MarkNotified(cid); err != nil {
			// delivered but unmarked: the next run may send a duplicate,
			// which beats silently losing the invitation
			log.Printf("sheets: mark notified chat %d: %v", cid, err)
		}
		// entry pass, best effort
		_ = d.c.SendPhoto(cid, fmt.Sprintf("%s/qr/%d.png", d.cfg.PublicURL, cid), "", nil)
		sent++
	}

	_ = d.c.SendMessage(chat, fmt.Sprintf(msgBroadcastSumFmt, sent, failed), nil)
}
