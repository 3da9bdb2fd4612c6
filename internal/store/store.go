// Package store keeps registrations in an external sheet of ten columns:
//
//	created_at | chat_id | user_id | username | child_fullname |
//	parent_fullname | parent_phone | photo_file_id | assigned_day | notified_at
//
// The sheet has no index and no uniqueness constraint; chat_id is the
// logical key and every lookup is a scan. A write-through map from chat_id
// to row position collapses repeated scans to O(1) after the first load and
// is re-verified against the sheet before each keyed write.
package store

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/robiyakhmed13-ux/New-year-bot/internal/assign"
	"github.com/robiyakhmed13-ux/New-year-bot/internal/sheet"
)

const (
	colCreatedAt = iota
	colChatID
	colUserID
	colUsername
	colChildFullname
	colParentFullname
	colParentPhone
	colPhotoFileID
	colAssignedDay
	colNotifiedAt
)

var headers = []string{
	"created_at", "chat_id", "user_id", "username",
	"child_fullname", "parent_fullname", "parent_phone",
	"photo_file_id", "assigned_day", "notified_at",
}

type Registration struct {
	CreatedAt      string
	ChatID         int64
	UserID         int64
	Username       string
	ChildFullname  string
	ParentFullname string
	ParentPhone    string
	PhotoFileID    string
	AssignedDay    int
	NotifiedAt     string
}

type Store struct {
	vals sheet.Values
	loc  *time.Location
	now  func() time.Time

	// mu serializes every write in this process. The sheet itself offers
	// no transactions, so scan-then-write from two processes sharing one
	// sheet can still lose an update or duplicate a row.
	mu     sync.Mutex
	loaded bool
	pos    map[int64]int // chat_id -> sheet row number (first data row is 2)
	rows   int           // data rows seen at load time plus local appends
}

func New(vals sheet.Values, loc *time.Location) *Store {
	return &Store{
		vals: vals,
		loc:  loc,
		now:  time.Now,
		pos:  map[int64]int{},
	}
}

func (s *Store) nowStr() string {
	return s.now().In(s.loc).Format("2006-01-02 15:04:05")
}

// EnsureSchema writes the header row unless the first row already has at
// least 3 populated cells. Callers log the error and keep going; a missing
// sheet must never stop the process.
func (s *Store) EnsureSchema() error {
	rows, err := s.vals.Get("A1:J1")
	if err != nil {
		return err
	}
	if len(rows) > 0 && len(rows[0]) >= 3 {
		return nil
	}
	return s.vals.Update("A1:J1", [][]string{headers})
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// reloadLocked rescans the data range and rebuilds the position cache.
func (s *Store) reloadLocked() error {
	rows, err := s.vals.Get("A2:J")
	if err != nil {
		return err
	}
	s.pos = make(map[int64]int, len(rows))
	for i, r := range rows {
		id, err := strconv.ParseInt(cell(r, colChatID), 10, 64)
		if err != nil {
			continue
		}
		s.pos[id] = 2 + i
	}
	s.rows = len(rows)
	s.loaded = true
	return nil
}

// locateLocked returns the sheet row holding chatID. A cache hit is
// verified against the live row; if someone reordered the sheet underneath
// us the cache is considered drifted and rebuilt from a full rescan.
func (s *Store) locateLocked(chatID int64) (int, bool, error) {
	if !s.loaded {
		if err := s.reloadLocked(); err != nil {
			return 0, false, err
		}
	}
	if n, ok := s.pos[chatID]; ok {
		rows, err := s.vals.Get(fmt.Sprintf("A%d:J%d", n, n))
		if err != nil {
			return 0, false, err
		}
		if len(rows) > 0 && cell(rows[0], colChatID) == strconv.FormatInt(chatID, 10) {
			return n, true, nil
		}
		if err := s.reloadLocked(); err != nil {
			return 0, false, err
		}
		n, ok = s.pos[chatID]
		return n, ok, nil
	}
	return 0, false, nil
}

// FindByChatID returns the sheet row number holding the registration.
func (s *Store) FindByChatID(chatID int64) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locateLocked(chatID)
}

// Get loads the registration for a chat.
func (s *Store) Get(chatID int64) (Registration, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok, err := s.locateLocked(chatID)
	if err != nil || !ok {
		return Registration{}, false, err
	}
	rows, err := s.vals.Get(fmt.Sprintf("A%d:J%d", n, n))
	if err != nil {
		return Registration{}, false, err
	}
	if len(rows) == 0 {
		return Registration{}, false, nil
	}
	return fromCells(rows[0]), true, nil
}

// Upsert overwrites the row matching the chat_id or appends a new one.
// CreatedAt is stamped and the notified marker cleared on every write, so a
// re-registration becomes eligible for the next broadcast again.
func (s *Store) Upsert(r Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := [][]string{{
		s.nowStr(),
		strconv.FormatInt(r.ChatID, 10),
		strconv.FormatInt(r.UserID, 10),
		r.Username,
		r.ChildFullname,
		r.ParentFullname,
		r.ParentPhone,
		r.PhotoFileID,
		strconv.Itoa(r.AssignedDay),
		"", // notified_at
	}}

	n, ok, err := s.locateLocked(r.ChatID)
	if err != nil {
		return err
	}
	if ok {
		return s.vals.Update(fmt.Sprintf("A%d:J%d", n, n), row)
	}
	if err := s.vals.Append("A2:J", row); err != nil {
		return err
	}
	s.rows++
	s.pos[r.ChatID] = 1 + s.rows // header row + data offset
	return nil
}

// CountByDay scans and counts rows whose stored assigned_day matches.
func (s *Store) CountByDay(day int) (int, error) {
	rows, err := s.vals.Get("A2:J")
	if err != nil {
		return 0, err
	}
	want := strconv.Itoa(day)
	n := 0
	for _, r := range rows {
		if cell(r, colAssignedDay) == want {
			n++
		}
	}
	return n, nil
}

// ListUnnotifiedForDay returns chat ids that have no notified marker and
// whose day, recomputed from the stored parent surname, equals the
// requested day. The persisted assigned_day column is deliberately ignored
// here, matching how broadcasts have always selected recipients; if rows
// were written with the capacity strategy the two can disagree.
func (s *Store) ListUnnotifiedForDay(day int) ([]int64, error) {
	rows, err := s.vals.Get("A2:J")
	if err != nil {
		return nil, err
	}
	var out []int64
	for _, r := range rows {
		if cell(r, colNotifiedAt) != "" {
			continue
		}
		parent := cell(r, colParentFullname)
		if (assign.BySurname{}).Day(parent) != day {
			continue
		}
		id, err := strconv.ParseInt(cell(r, colChatID), 10, 64)
		if err != nil {
			continue
		}
		out = append(out, id)
	}
	return out, nil
}

// MarkNotified stamps the notified_at column. Unknown ids are a silent
// no-op so a recipient deleted mid-broadcast doesn't fail the batch.
func (s *Store) MarkNotified(chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok, err := s.locateLocked(chatID)
	if err != nil || !ok {
		return err
	}
	return s.vals.Update(fmt.Sprintf("J%d", n), [][]string{{s.nowStr()}})
}

func fromCells(r []string) Registration {
	chatID, _ := strconv.ParseInt(cell(r, colChatID), 10, 64)
	userID, _ := strconv.ParseInt(cell(r, colUserID), 10, 64)
	day, _ := strconv.Atoi(cell(r, colAssignedDay))
	return Registration{
		CreatedAt:      cell(r, colCreatedAt),
		ChatID:         chatID,
		UserID:         userID,
		Username:       cell(r, colUsername),
		ChildFullname:  cell(r, colChildFullname),
		ParentFullname: cell(r, colParentFullname),
		ParentPhone:    cell(r, colParentPhone),
		PhotoFileID:    cell(r, colPhotoFileID),
		AssignedDay:    day,
		NotifiedAt:     cell(r, colNotifiedAt),
	}
}
