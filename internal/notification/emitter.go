package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL matches the storefront toast duration.
const DefaultTTL = 3 * time.Second

type entry struct {
	notification Notification
	timer        *time.Timer
}

// Emitter holds the active notifications per session. Each Emit
// schedules its own expiry; Dismiss cancels the scheduled task so no
// dangling callback fires after removal.
type Emitter struct {
	mu         sync.Mutex
	defaultTTL time.Duration
	sessions   map[string][]*entry
}

func NewEmitter(defaultTTL time.Duration) *Emitter {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	return &Emitter{
		defaultTTL: defaultTTL,
		sessions:   make(map[string][]*entry),
	}
}

// Emit appends a notification with the emitter's default TTL.
func (e *Emitter) Emit(sessionID, message string, category Category) Notification {
	return e.EmitWithTTL(sessionID, message, category, e.defaultTTL)
}

// EmitWithTTL appends a notification that self-destructs after ttl.
func (e *Emitter) EmitWithTTL(sessionID, message string, category Category, ttl time.Duration) Notification {
	if ttl <= 0 {
		ttl = e.defaultTTL
	}

	n := Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Category:  category,
		CreatedAt: time.Now(),
		TTL:       ttl,
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	ent := &entry{notification: n}
	ent.timer = time.AfterFunc(ttl, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.remove(sessionID, n.ID)
	})
	e.sessions[sessionID] = append(e.sessions[sessionID], ent)

	return n
}

// Dismiss removes a notification before its TTL. Dismissing an already
// expired or unknown id is a no-op; it reports whether anything was
// removed.
func (e *Emitter) Dismiss(sessionID, id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, ent := range e.sessions[sessionID] {
		if ent.notification.ID == id {
			ent.timer.Stop()
			return e.remove(sessionID, id)
		}
	}
	return false
}

// Active returns the session's live notifications ordered by creation
// time, oldest first.
func (e *Emitter) Active(sessionID string) []Notification {
	e.mu.Lock()
	defer e.mu.Unlock()

	entries := e.sessions[sessionID]
	out := make([]Notification, 0, len(entries))
	for _, ent := range entries {
		out = append(out, ent.notification)
	}
	return out
}

// Close stops every pending expiry timer.
func (e *Emitter) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, entries := range e.sessions {
		for _, ent := range entries {
			ent.timer.Stop()
		}
	}
	e.sessions = make(map[string][]*entry)
}

// remove deletes the entry in place; callers hold the lock.
func (e *Emitter) remove(sessionID, id string) bool {
	entries := e.sessions[sessionID]
	for i, ent := range entries {
		if ent.notification.ID == id {
			e.sessions[sessionID] = append(entries[:i], entries[i+1:]...)
			if len(e.sessions[sessionID]) == 0 {
				delete(e.sessions, sessionID)
			}
			return true
		}
	}
	return false
}
