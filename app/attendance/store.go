package attendance

import (
	"log"
	"sync"
)

// Store is the durable backstop for attendance records: a flat set of
// keys whose presence means "attended". Add on an existing key and
// Remove on an absent key are successes, so retries are harmless.
type Store interface {
	LoadAll() (map[string]bool, error)
	Add(key string) error
	Remove(key string) error
}

// Tracker keeps the working copy of the attendance set in memory and
// syncs each change to the Store best-effort. Local state is the source
// of truth for the current session: a failed remote write is surfaced
// as a warning and never rolled back, and a nil Store just means
// memory-only mode.
type Tracker struct {
	mu      sync.RWMutex
	records map[string]bool
	store   Store
}

// NewTracker loads the existing records from the store. When the store
// is unreachable the tracker starts empty and degrades to memory-only
// behavior for reads of history, but keeps trying to sync writes.
func NewTracker(store Store) *Tracker {
	t := &Tracker{records: make(map[string]bool), store: store}
	if store == nil {
		log.Println("Attendance store not configured, running memory-only")
		return t
	}
	records, err := store.LoadAll()
	if err != nil {
		log.Printf("Warning: could not load attendance records, starting empty: %v", err)
		return t
	}
	t.records = records
	return t
}

// Mark records a session as attended. The returned error reports a
// failed remote sync only; the local mark always succeeds.
func (t *Tracker) Mark(key string) error {
	t.mu.Lock()
	t.records[key] = true
	t.mu.Unlock()

	if t.store == nil {
		return nil
	}
	if err := t.store.Add(key); err != nil {
		log.Printf("Warning: could not sync attendance mark: %v", err)
		return err
	}
	return nil
}

// Unmark removes an attended session, mirroring Mark's sync policy.
func (t *Tracker) Unmark(key string) error {
	t.mu.Lock()
	delete(t.records, key)
	t.mu.Unlock()

	if t.store == nil {
		return nil
	}
	if err := t.store.Remove(key); err != nil {
		log.Printf("Warning: could not sync attendance undo: %v", err)
		return err
	}
	return nil
}

// IsMarked reports whether a session key is attended.
func (t *Tracker) IsMarked(key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.records[key]
}

// CountMatching counts attended sessions for one student and one
// (subject, type) pair across the whole record set.
func (t *Tracker) CountMatching(mis, subject, sessionType string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for key := range t.records {
		record, err := ParseKey(key)
		if err != nil {
			continue
		}
		if record.MIS == mis && record.Subject == subject && record.Type == sessionType {
			count++
		}
	}
	return count
}
