package bot

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/robiyakhmed13-ux/New-year-bot/internal/config"
	"github.com/robiyakhmed13-ux/New-year-bot/internal/store"
)

type sentMsg struct {
	chat int64
	text string
}

type sentPhoto struct {
	chat    int64
	photo   string
	caption string
}

type fakeSender struct {
	msgs    []sentMsg
	photos  []sentPhoto
	failFor map[int64]bool
}

func (f *fakeSender) SendMessage(chatID int64, text string, _ any) error {
	if f.failFor[chatID] {
		return errors.New("blocked by user")
	}
	f.msgs = append(f.msgs, sentMsg{chatID, text})
	return nil
}

func (f *fakeSender) SendPhoto(chatID int64, photo, caption string, _ any) error {
	if f.failFor[chatID] {
		return errors.New("blocked by user")
	}
	f.photos = append(f.photos, sentPhoto{chatID, photo, caption})
	return nil
}

func (f *fakeSender) last(chat int64) string {
	for i := len(f.msgs) - 1; i >= 0; i-- {
		if f.msgs[i].chat == chat {
			return f.msgs[i].text
		}
	}
	return ""
}

type fakeRegistry struct {
	upserts    []store.Registration
	upsertErr  error
	unnotified []int64
	listErr    error
	marked     map[int64]bool
	markErr    error
}

func (f *fakeRegistry) Upsert(r store.Registration) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts = append(f.upserts, r)
	return nil
}

func (f *fakeRegistry) CountByDay(day int) (int, error) { return len(f.upserts), nil }

func (f *fakeRegistry) ListUnnotifiedForDay(day int) ([]int64, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []int64
	for _, id := range f.unnotified {
		if !f.marked[id] {
			out = append(out, id)
		}
	}
	return out, nil
}

func (f *fakeRegistry) MarkNotified(chatID int64) error {
	if f.markErr != nil {
		return f.markErr
	}
	if f.marked == nil {
		f.marked = map[int64]bool{}
	}
	f.marked[chatID] = true
	return nil
}

const testAdminID = int64(777)

func testDispatcher(t *testing.T) (*Dispatcher, *fakeSender, *fakeRegistry) {
	t.Helper()
	cfg := &config.Config{
		AdminChatID: testAdminID,
		PublicURL:   "https://bot.example",
		Deadline:    time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC),
		TZ:          time.UTC,
	}
	snd := &fakeSender{failFor: map[int64]bool{}}
	reg := &fakeRegistry{}
	d := NewDispatcher(snd, reg, cfg)
	d.now = func() time.Time { return time.Date(2025, 12, 20, 10, 0, 0, 0, time.UTC) }
	return d, snd, reg
}

func text(chat int64, from *User, s string) *Update {
	return &Update{Message: &Message{From: from, Chat: &Chat{ID: chat}, Text: s}}
}

func photo(chat int64, from *User, sizes ...PhotoSize) *Update {
	return &Update{Message: &Message{From: from, Chat: &Chat{ID: chat}, Photo: sizes}}
}

func runHappyPath(t *testing.T, d *Dispatcher, chat int64, from *User) {
	t.Helper()
	d.Handle(text(chat, from, "/register"))
	d.Handle(text(chat, from, "Bola Bolayev"))
	d.Handle(text(chat, from, "Olim Akbarov"))
	d.Handle(photo(chat, from,
		PhotoSize{FileID: "small", Width: 90, Height: 90},
		PhotoSize{FileID: "big", Width: 800, Height: 600},
		PhotoSize{FileID: "mid", Width: 320, Height: 240},
	))
	d.Handle(text(chat, from, "+998901234567"))
	d.Handle(text(chat, from, "Ha"))
}

func TestFlowHappyPath(t *testing.T) {
	d, snd, reg := testDispatcher(t)
	from := &User{ID: 55, Username: "olim"}
	runHappyPath(t, d, 100, from)

	if len(reg.upserts) != 1 {
		t.Fatalf("upserts: want 1, got %d", len(reg.upserts))
	}
	r := reg.upserts[0]
	if r.ChatID != 100 || r.UserID != 55 || r.Username != "olim" {
		t.Errorf("identity fields wrong: %+v", r)
	}
	if r.ChildFullname != "Bola Bolayev" || r.ParentFullname != "Olim Akbarov" {
		t.Errorf("names wrong: %+v", r)
	}
	if r.ParentPhone != "+998901234567" {
		t.Errorf("phone wrong: %q", r.ParentPhone)
	}
	if r.PhotoFileID != "big" {
		t.Errorf("photo variant: want big (highest resolution), got %q", r.PhotoFileID)
	}
	if r.AssignedDay != 27 {
		t.Errorf("surname Olim must map to 27, got %d", r.AssignedDay)
	}

	// admin got the photo with the caption
	if len(snd.photos) != 1 || snd.photos[0].chat != testAdminID {
		t.Fatalf("admin photo: %+v", snd.photos)
	}
	if !strings.Contains(snd.photos[0].caption, "Olim Akbarov") {
		t.Errorf("admin caption missing parent name: %q", snd.photos[0].caption)
	}
	if snd.last(100) != msgSuccess {
		t.Errorf("last user message: %q", snd.last(100))
	}

	// session is gone: plain text falls back to the hint
	d.Handle(text(100, from, "salom"))
	if snd.last(100) != msgHint {
		t.Errorf("expected hint after completed flow, got %q", snd.last(100))
	}
}

func TestFlowChSurnameGoesTo28(t *testing.T) {
	d, _, reg := testDispatcher(t)
	from := &User{ID: 56}
	d.Handle(text(200, from, "/register"))
	d.Handle(text(200, from, "Bola Bolayev"))
	d.Handle(text(200, from, "Chorshanbiyev Davron"))
	d.Handle(photo(200, from, PhotoSize{FileID: "p", Width: 1, Height: 1}))
	d.Handle(text(200, from, "+998901234567"))
	d.Handle(text(200, from, "xa"))

	if len(reg.upserts) != 1 || reg.upserts[0].AssignedDay != 28 {
		t.Fatalf("Chorshanbiyev must map to 28: %+v", reg.upserts)
	}
}

func TestFlowInvalidInputDoesNotAdvance(t *testing.T) {
	d, snd, reg := testDispatcher(t)
	from := &User{ID: 57}
	d.Handle(text(300, from, "/register"))

	d.Handle(text(300, from, "Aziz")) // one word
	if snd.last(300) != msgNameInvalid {
		t.Fatalf("expected name re-prompt, got %q", snd.last(300))
	}
	// still at the child-name step: a valid name now advances to parent
	d.Handle(text(300, from, "Aziz Azizov"))
	if snd.last(300) != msgAskParent {
		t.Fatalf("expected parent prompt, got %q", snd.last(300))
	}

	d.Handle(text(300, from, "Olim Akbarov"))
	d.Handle(text(300, from, "not a photo"))
	if snd.last(300) != msgPhotoInvalid {
		t.Fatalf("expected photo re-prompt, got %q", snd.last(300))
	}
	d.Handle(photo(300, from, PhotoSize{FileID: "p", Width: 1, Height: 1}))

	d.Handle(text(300, from, "12"))
	if snd.last(300) != msgPhoneInvalid {
		t.Fatalf("expected phone re-prompt, got %q", snd.last(300))
	}
	d.Handle(text(300, from, "+998901234567"))

	d.Handle(text(300, from, "balki"))
	if snd.last(300) != msgConfirmRetry {
		t.Fatalf("expected confirm re-prompt, got %q", snd.last(300))
	}
	if len(reg.upserts) != 0 {
		t.Errorf("nothing may be written before confirmation")
	}
}

func TestFlowNegativeConfirmWritesNothing(t *testing.T) {
	d, snd, reg := testDispatcher(t)
	from := &User{ID: 58}
	d.Handle(text(400, from, "/register"))
	d.Handle(text(400, from, "Bola Bolayev"))
	d.Handle(text(400, from, "Olim Akbarov"))
	d.Handle(photo(400, from, PhotoSize{FileID: "p", Width: 1, Height: 1}))
	d.Handle(text(400, from, "+998901234567"))
	d.Handle(text(400, from, "Yo‘q"))

	if len(reg.upserts) != 0 {
		t.Errorf("negative confirm must not write: %+v", reg.upserts)
	}
	if len(snd.photos) != 0 {
		t.Errorf("negative confirm must not notify admin")
	}
	if snd.last(400) != msgCanceled {
		t.Errorf("expected cancel message, got %q", snd.last(400))
	}
}

func TestFlowReentryResetsFields(t *testing.T) {
	d, _, reg := testDispatcher(t)
	from := &User{ID: 59}
	d.Handle(text(500, from, "/register"))
	d.Handle(text(500, from, "Eski Bola"))

	// start over mid-flow; previously collected fields must be gone
	d.Handle(text(500, from, "/register"))
	d.Handle(text(500, from, "Yangi Bola"))
	d.Handle(text(500, from, "Olim Akbarov"))
	d.Handle(photo(500, from, PhotoSize{FileID: "p", Width: 1, Height: 1}))
	d.Handle(text(500, from, "+998901234567"))
	d.Handle(text(500, from, "ha"))

	if len(reg.upserts) != 1 {
		t.Fatalf("upserts: want 1, got %d", len(reg.upserts))
	}
	if reg.upserts[0].ChildFullname != "Yangi Bola" {
		t.Errorf("stale field survived re-entry: %+v", reg.upserts[0])
	}
}

func TestFlowDeadlineGate(t *testing.T) {
	d, snd, _ := testDispatcher(t)
	from := &User{ID: 60}

	// the deadline day itself is still open
	d.now = func() time.Time { return time.Date(2025, 12, 25, 23, 59, 0, 0, time.UTC) }
	d.Handle(text(600, from, "/register"))
	if snd.last(600) != msgAskChild {
		t.Fatalf("deadline day must stay open, got %q", snd.last(600))
	}

	// the following day is closed
	d.now = func() time.Time { return time.Date(2025, 12, 26, 0, 1, 0, 0, time.UTC) }
	d.Handle(text(601, from, "/register"))
	if snd.last(601) != msgClosed {
		t.Fatalf("expected closed message, got %q", snd.last(601))
	}
}

func TestFlowDeadlineRecheckedAtPhoneStep(t *testing.T) {
	d, snd, reg := testDispatcher(t)
	from := &User{ID: 61}
	d.Handle(text(700, from, "/register"))
	d.Handle(text(700, from, "Bola Bolayev"))
	d.Handle(text(700, from, "Olim Akbarov"))
	d.Handle(photo(700, from, PhotoSize{FileID: "p", Width: 1, Height: 1}))

	// deadline passes while the session is open
	d.now = func() time.Time { return time.Date(2025, 12, 26, 10, 0, 0, 0, time.UTC) }
	d.Handle(text(700, from, "+998901234567"))
	if snd.last(700) != msgClosed {
		t.Fatalf("expected closed at phone step, got %q", snd.last(700))
	}
	// session destroyed, nothing written
	if len(reg.upserts) != 0 {
		t.Errorf("closed session must not write")
	}
	d.Handle(text(700, from, "ha"))
	if snd.last(700) != msgHint {
		t.Errorf("session should be gone, got %q", snd.last(700))
	}
}

func TestFlowCancelDestroysSession(t *testing.T) {
	d, snd, _ := testDispatcher(t)
	from := &User{ID: 62}
	d.Handle(text(800, from, "/register"))
	d.Handle(text(800, from, "Bola Bolayev"))
	d.Handle(text(800, from, "/cancel"))
	if snd.last(800) != msgCanceled {
		t.Fatalf("expected cancel message, got %q", snd.last(800))
	}
	d.Handle(text(800, from, "Olim Akbarov"))
	if snd.last(800) != msgHint {
		t.Errorf("session survived /cancel, got %q", snd.last(800))
	}
}

func TestFlowSessionExpires(t *testing.T) {
	d, snd, _ := testDispatcher(t)
	from := &User{ID: 63}
	d.Handle(text(900, from, "/register"))

	d.now = func() time.Time { return time.Date(2025, 12, 22, 10, 0, 1, 0, time.UTC) }
	d.Handle(text(900, from, "Bola Bolayev"))
	if snd.last(900) != msgHint {
		t.Errorf("idle session must expire, got %q", snd.last(900))
	}
}

func TestFlowStoreFailureStillNotifiesAdmin(t *testing.T) {
	d, snd, reg := testDispatcher(t)
	reg.upsertErr = errors.New("sheet down")
	from := &User{ID: 64, Username: "olim"}
	runHappyPath(t, d, 1000, from)

	if len(snd.photos) != 1 || snd.photos[0].chat != testAdminID {
		t.Fatalf("admin must be notified despite store failure: %+v", snd.photos)
	}
	if snd.last(1000) != msgSuccess {
		t.Errorf("user must still see success, got %q", snd.last(1000))
	}
}

func TestHandleMalformedUpdates(t *testing.T) {
	d, _, _ := testDispatcher(t)
	d.Handle(nil)
	d.Handle(&Update{})
	d.Handle(&Update{Message: &Message{}})
	d.Handle(&Update{Message: &Message{Chat: &Chat{ID: 1}}}) // no From, no text
}

func TestWhoami(t *testing.T) {
	d, snd, _ := testDispatcher(t)
	d.Handle(text(1100, &User{ID: 42, Username: "someone"}, "/whoami"))
	got := snd.last(1100)
	if !strings.Contains(got, "42") || !strings.Contains(got, "someone") {
		t.Errorf("whoami reply: %q", got)
	}
}
