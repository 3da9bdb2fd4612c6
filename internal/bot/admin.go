package bot

import (
	"fmt"

	"github.com/robiyakhmed13-ux/New-year-bot/internal/assign"
)

// requireAdmin gates privileged commands on the single configured admin
// identity. A denied caller gets a message and nothing else happens.
func (d *Dispatcher) requireAdmin(chat int64, from *User) bool {
	if from == nil || from.ID != d.cfg.AdminChatID {
		_ = d.c.SendMessage(chat, msgAdminOnly, nil)
		return false
	}
	return true
}

// handleExport replies with the per-day counts from the stored
// assigned_day column. Broadcast selection recomputes days from surnames,
// so this is also where any drift between the two becomes visible.
func (d *Dispatcher) handleExport(chat int64, from *User) {
	if !d.requireAdmin(chat, from) {
		return
	}
	c27, err := d.reg.CountByDay(assign.Day27)
	if err != nil {
		_ = d.c.SendMessage(chat, fmt.Sprintf(msgSheetsErrFmt, err), nil)
		return
	}
	c28, err := d.reg.CountByDay(assign.Day28)
	if err != nil {
		_ = d.c.SendMessage(chat, fmt.Sprintf(msgSheetsErrFmt, err), nil)
		return
	}
	_ = d.c.SendMessage(chat, fmt.Sprintf(msgExportFmt, c27, c28), nil)
}
