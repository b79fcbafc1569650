package attendance

import (
	"errors"
	"testing"
)

// fakeStore records calls and can be told to fail.
type fakeStore struct {
	records map[string]bool
	fail    bool
	adds    int
	removes int
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[string]bool{}}
}

var errStoreDown = errors.New("store unreachable")

func (s *fakeStore) LoadAll() (map[string]bool, error) {
	if s.fail {
		return nil, errStoreDown
	}
	out := make(map[string]bool, len(s.records))
	for k := range s.records {
		out[k] = true
	}
	return out, nil
}

func (s *fakeStore) Add(key string) error {
	s.adds++
	if s.fail {
		return errStoreDown
	}
	s.records[key] = true
	return nil
}

func (s *fakeStore) Remove(key string) error {
	s.removes++
	if s.fail {
		return errStoreDown
	}
	delete(s.records, key)
	return nil
}

func TestTrackerMarkAndUnmark(t *testing.T) {
	store := newFakeStore()
	tracker := NewTracker(store)

	key := "612572034_2026-02-03_Data Structures_THEORY_9:30"
	if err := tracker.Mark(key); err != nil {
		t.Fatalf("Mark: %v", err)
	}
	if !tracker.IsMarked(key) {
		t.Error("key should be marked locally")
	}
	if !store.records[key] {
		t.Error("key should be synced to the store")
	}

	if err := tracker.Unmark(key); err != nil {
		t.Fatalf("Unmark: %v", err)
	}
	if tracker.IsMarked(key) {
		t.Error("key should be unmarked")
	}
	if store.records[key] {
		t.Error("key should be removed from the store")
	}
}

func TestTrackerKeepsLocalStateWhenStoreFails(t *testing.T) {
	store := newFakeStore()
	tracker := NewTracker(store)
	store.fail = true

	key := "612572034_2026-02-03_Data Structures_THEORY_9:30"
	err := tracker.Mark(key)
	if err == nil {
		t.Fatal("Mark should surface the sync failure")
	}
	if !tracker.IsMarked(key) {
		t.Error("local mark must survive a failed sync")
	}

	if err := tracker.Unmark(key); err == nil {
		t.Fatal("Unmark should surface the sync failure")
	}
	if tracker.IsMarked(key) {
		t.Error("local undo must survive a failed sync")
	}
}

func TestTrackerLoadFailureStartsEmpty(t *testing.T) {
	store := newFakeStore()
	store.records["existing"] = true
	store.fail = true

	tracker := NewTracker(store)
	if tracker.IsMarked("existing") {
		t.Error("unreachable store should degrade to an empty tracker")
	}
}

func TestTrackerMemoryOnly(t *testing.T) {
	tracker := NewTracker(nil)

	key := "612572034_2026-02-03_Data Structures_THEORY_9:30"
	if err := tracker.Mark(key); err != nil {
		t.Fatalf("memory-only Mark should not fail: %v", err)
	}
	if !tracker.IsMarked(key) {
		t.Error("memory-only mark lost")
	}
}

func TestTrackerLoadsExistingRecords(t *testing.T) {
	store := newFakeStore()
	store.records["existing"] = true

	tracker := NewTracker(store)
	if !tracker.IsMarked("existing") {
		t.Error("existing records should be loaded at startup")
	}
}

func TestCountMatching(t *testing.T) {
	tracker := NewTracker(nil)
	keys := []string{
		"612572034_2026-02-02_Data Structures_THEORY_9:30",
		"612572034_2026-02-09_Data Structures_THEORY_9:30",
		"612572034_2026-02-03_Data Structures_LAB_11:30",
		"612572099_2026-02-02_Data Structures_THEORY_9:30",
		"malformed",
	}
	for _, key := range keys {
		tracker.records[key] = true
	}

	if got := tracker.CountMatching("612572034", "Data Structures", "THEORY"); got != 2 {
		t.Errorf("CountMatching theory = %d, want 2", got)
	}
	if got := tracker.CountMatching("612572034", "Data Structures", "LAB"); got != 1 {
		t.Errorf("CountMatching lab = %d, want 1", got)
	}
	if got := tracker.CountMatching("612572034", "Quantum Physics", "THEORY"); got != 0 {
		t.Errorf("CountMatching unknown subject = %d, want 0", got)
	}
}
