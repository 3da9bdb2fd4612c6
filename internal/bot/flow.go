package bot

import (
	"fmt"
	"log"
	"strings"

	"github.com/robiyakhmed13-ux/New-year-bot/internal/services"
	"github.com/robiyakhmed13-ux/New-year-bot/internal/store"
)

// handleRegisterStart enters the intake flow. Starting over mid-flow
// resets the session and every collected field.
func (d *Dispatcher) handleRegisterStart(chat int64) {
	if d.cfg.Closed(d.now()) {
		d.endSession(chat)
		_ = d.c.SendMessage(chat, msgClosed, nil)
		return
	}
	d.startSession(chat)
	_ = d.c.SendMessage(chat, msgAskChild, RemoveKeyboard())
}

func (d *Dispatcher) handleCancel(chat int64) {
	d.endSession(chat)
	_ = d.c.SendMessage(chat, msgCanceled, RemoveKeyboard())
}

// handleStep advances the conversation one state. Invalid input re-prompts
// the same state and mutates nothing.
func (d *Dispatcher) handleStep(chat int64, m *Message) {
	sess, ok := d.session(chat)
	if !ok {
		_ = d.c.SendMessage(chat, msgHint, nil)
		return
	}

	text := strings.TrimSpace(m.Text)
	switch sess.step {
	case stepChildName:
		if !services.FullName(text) {
			_ = d.c.SendMessage(chat, msgNameInvalid, nil)
			return
		}
		sess.child = text
		sess.step = stepParentName
		_ = d.c.SendMessage(chat, msgAskParent, nil)

	case stepParentName:
		if !services.FullName(text) {
			_ = d.c.SendMessage(chat, msgNameInvalid, nil)
			return
		}
		sess.parent = text
		sess.step = stepPhoto
		_ = d.c.SendMessage(chat, msgAskPhoto, nil)

	case stepPhoto:
		if len(m.Photo) == 0 {
			_ = d.c.SendMessage(chat, msgPhotoInvalid, nil)
			return
		}
		sess.photoFileID = bestPhoto(m.Photo).FileID
		sess.step = stepPhone
		_ = d.c.SendMessage(chat, msgAskPhone, nil)

	case stepPhone:
		// the deadline can pass while a session is open
		if d.cfg.Closed(d.now()) {
			d.endSession(chat)
			_ = d.c.SendMessage(chat, msgClosed, nil)
			return
		}
		if !services.ValidPhone(text) {
			_ = d.c.SendMessage(chat, msgPhoneInvalid, nil)
			return
		}
		sess.phone = text
		sess.step = stepConfirm
		_ = d.c.SendMessage(chat, fmt.Sprintf(msgConfirmFmt, sess.child, sess.parent, sess.phone), nil)

	case stepConfirm:
		d.handleConfirm(chat, m, sess)
	}
}

func (d *Dispatcher) handleConfirm(chat int64, m *Message, sess *session) {
	ans := strings.ToLower(strings.TrimSpace(m.Text))
	switch ans {
	case "yo‘q", "yoq", "no", "cancel":
		d.endSession(chat)
		_ = d.c.SendMessage(chat, msgCanceled, nil)
		return
	case "ha", "xa", "yes", "ok":
	default:
		_ = d.c.SendMessage(chat, msgConfirmRetry, nil)
		return
	}

	var userID int64
	var username string
	if m.From != nil {
		userID = m.From.ID
		username = m.From.Username
	}

	r := store.Registration{
		ChatID:         chat,
		UserID:         userID,
		Username:       username,
		ChildFullname:  sess.child,
		ParentFullname: sess.parent,
		ParentPhone:    sess.phone,
		PhotoFileID:    sess.photoFileID,
		AssignedDay:    d.day.Day(sess.parent),
	}

	// A sheet failure never blocks the registration: the admin still gets
	// the full record directly.
	if err := d.reg.Upsert(r); err != nil {
		log.Printf("sheets: upsert chat %d: %v", chat, err)
	}
	d.sendToAdmin(r)

	_ = d.c.SendMessage(chat, msgSuccess, nil)
	d.endSession(chat)
}

func (d *Dispatcher) sendToAdmin(r store.Registration) {
	caption := fmt.Sprintf(msgAdminCaptionFmt,
		r.ChildFullname, r.ParentFullname, r.ParentPhone,
		orDash(r.Username), r.UserID, r.ChatID,
		d.now().In(d.cfg.TZ).Format("2006-01-02 15:04:05"))
	if err := d.c.SendPhoto(d.cfg.AdminChatID, r.PhotoFileID, caption, nil); err != nil {
		log.Printf("bot: admin notify chat %d: %v", r.ChatID, err)
	}
}

// bestPhoto picks the highest-resolution variant; Telegram usually orders
// them ascending, so ties go to the later entry.
func bestPhoto(sizes []PhotoSize) PhotoSize {
	best := sizes[len(sizes)-1]
	area := best.Width * best.Height
	for _, p := range sizes {
		if a := p.Width * p.Height; a > area {
			best, area = p, a
		}
	}
	return best
}
