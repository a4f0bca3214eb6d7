package service

import "sync"

// noteLocks is a mutex keyed by note id. It serialises the translate-and-
// persist path per note, so two concurrent requests for the same note cannot
// both observe it untranslated and both call the provider. Entries are
// reference counted and removed once the last holder releases them.
type noteLocks struct {
	mu    sync.Mutex
	locks map[int64]*noteLock
}

type noteLock struct {
	sync.Mutex
	refs int
}

func newNoteLocks() *noteLocks {
	return &noteLocks{locks: make(map[int64]*noteLock)}
}

// lock acquires the mutex for note id and returns its release function.
// The registry lock is never held while waiting on a note lock.
func (n *noteLocks) lock(id int64) func() {
	n.mu.Lock()
	entry, ok := n.locks[id]
	if !ok {
		entry = &noteLock{}
		n.locks[id] = entry
	}
	entry.refs++
	n.mu.Unlock()

	entry.Lock()

	return func() {
		entry.Unlock()

		n.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(n.locks, id)
		}
		n.mu.Unlock()
	}
}
