package bot

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/robiyakhmed13-ux/New-year-bot/internal/assign"
	"github.com/robiyakhmed13-ux/New-year-bot/internal/config"
	"github.com/robiyakhmed13-ux/New-year-bot/internal/store"
)

// Sender is the outbound side of the messaging transport.
type Sender interface {
	SendMessage(chatID int64, text string, replyMarkup any) error
	SendPhoto(chatID int64, photo, caption string, replyMarkup any) error
}

// Registry is the slice of the registration store the dispatcher uses.
type Registry interface {
	Upsert(r store.Registration) error
	CountByDay(day int) (int, error)
	ListUnnotifiedForDay(day int) ([]int64, error)
	MarkNotified(chatID int64) error
}

type Dispatcher struct {
	c   Sender
	reg Registry
	cfg *config.Config
	day assign.Strategy
	now func() time.Time

	mu       sync.Mutex
	sessions map[int64]*session
	locks    map[int64]*sync.Mutex
}

func NewDispatcher(c Sender, reg Registry, cfg *config.Config) *Dispatcher {
	return &Dispatcher{
		c:   c,
		reg: reg,
		cfg: cfg,
		// Active assignment rule. assign.ByCapacity{Counts: reg, Cap27:
		// cfg.Capacity27, Cap28: cfg.Capacity28} plugs in here instead
		// when balancing by headcount.
		day:      assign.BySurname{},
		now:      time.Now,
		sessions: map[int64]*session{},
		locks:    map[int64]*sync.Mutex{},
	}
}

// Handle processes one inbound update. Updates for the same chat are
// serialized; malformed updates are dropped.
func (d *Dispatcher) Handle(u *Update) {
	if u == nil || u.Message == nil || u.Message.Chat == nil {
		return
	}
	m := u.Message
	chat := m.Chat.ID

	l := d.chatLock(chat)
	l.Lock()
	defer l.Unlock()

	text := strings.TrimSpace(m.Text)
	switch {
	case strings.HasPrefix(text, "/start"):
		_ = d.c.SendMessage(chat, msgWelcome, nil)
	case strings.HasPrefix(text, "/whoami"):
		d.handleWhoami(chat, m.From)
	case strings.HasPrefix(text, "/register"):
		d.handleRegisterStart(chat)
	case strings.HasPrefix(text, "/cancel"):
		d.handleCancel(chat)
	case strings.HasPrefix(text, "/notify27"):
		d.handleNotify(chat, m.From, assign.Day27)
	case strings.HasPrefix(text, "/notify28"):
		d.handleNotify(chat, m.From, assign.Day28)
	case strings.HasPrefix(text, "/export"):
		d.handleExport(chat, m.From)
	default:
		d.handleStep(chat, m)
	}
}

func (d *Dispatcher) handleWhoami(chat int64, from *User) {
	if from == nil {
		return
	}
	_ = d.c.SendMessage(chat, fmt.Sprintf(msgWhoamiFmt, orDash(from.Username), from.ID, chat), nil)
}

func orDash(username string) string {
	if username == "" {
		return "—"
	}
	return username
}
