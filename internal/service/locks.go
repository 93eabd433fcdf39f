package service

import "sync"

// SessionLocks serialises work on one cart session while leaving other
// sessions free to proceed.
type SessionLocks struct {
	mu   sync.Mutex
	held map[string]*sessionLock
}

type sessionLock struct {
	mu      sync.Mutex
	waiters int
}

func NewSessionLocks() *SessionLocks {
	return &SessionLocks{held: make(map[string]*sessionLock)}
}

func (l *SessionLocks) Lock(sessionID string) (unlock func()) {
	l.mu.Lock()
	sl, ok := l.held[sessionID]
	if !ok {
		sl = &sessionLock{}
		l.held[sessionID] = sl
	}
	sl.waiters++
	l.mu.Unlock()

	sl.mu.Lock()
	return func() {
		sl.mu.Unlock()

		l.mu.Lock()
		sl.waiters--
		if sl.waiters == 0 {
			delete(l.held, sessionID)
		}
		l.mu.Unlock()
	}
}
