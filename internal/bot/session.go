package bot

import (
	"sync"
	"time"
)

type step int

const (
	stepChildName step = iota
	stepParentName
	stepPhoto
	stepPhone
	stepConfirm
)

// A five-question flow answered in minutes; anything idle for a day is
// abandoned and dropped.
const sessionTTL = 24 * time.Hour

type session struct {
	step        step
	child       string
	parent      string
	phone       string
	photoFileID string
	touched     time.Time
}

// session returns the active session for a chat, dropping it first if it
// idled past the TTL. Callers hold the per-chat lock.
func (d *Dispatcher) session(chat int64) (*session, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	s, ok := d.sessions[chat]
	if !ok {
		return nil, false
	}
	if d.now().Sub(s.touched) > sessionTTL {
		delete(d.sessions, chat)
		return nil, false
	}
	s.touched = d.now()
	return s, true
}

// startSession creates a fresh session, discarding any previous one along
// with its collected fields.
func (d *Dispatcher) startSession(chat int64) *session {
	d.mu.Lock()
	defer d.mu.Unlock()
	s := &session{step: stepChildName, touched: d.now()}
	d.sessions[chat] = s
	return s
}

func (d *Dispatcher) endSession(chat int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.sessions, chat)
}

// chatLock returns the mutex serializing updates for one chat, so no two
// steps of the same conversation ever run concurrently.
func (d *Dispatcher) chatLock(chat int64) *sync.Mutex {
	d.mu.Lock()
	defer d.mu.Unlock()
	l, ok := d.locks[chat]
	if !ok {
		l = &sync.Mutex{}
		d.locks[chat] = l
	}
	return l
}

// StartSessionSweep prunes abandoned sessions hourly, so chats that never
// come back don't pin memory forever.
func (d *Dispatcher) StartSessionSweep() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			d.sweepSessions()
		}
	}()
}

func (d *Dispatcher) sweepSessions() {
	d.mu.Lock()
	defer d.mu.Unlock()
	cutoff := d.now().Add(-sessionTTL)
	for chat, s := range d.sessions {
		if s.touched.Before(cutoff) {
			delete(d.sessions, chat)
		}
	}
}
