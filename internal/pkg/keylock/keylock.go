// Package keylock provides mutual exclusion scoped to a string key.
//
// The order lifecycle requires read-then-write operations on one order
// (bind a quote, advance the status, apply a delivery event) to be
// serialized per order identity so that two concurrent callers cannot both
// observe the same state and both succeed. KeyLock gives each key its own
// mutex while callers for different keys proceed in parallel.
package keylock

import "sync"

// KeyLock serializes critical sections per key.
// The zero value is not usable; create instances with NewKeyLock.
//
// Entries are reference counted: a key's mutex exists only while at least one
// caller holds or waits for it, so the lock set does not grow with the number
// of distinct keys seen over the process lifetime.
type KeyLock struct {
	mu    sync.Mutex
	locks map[string]*keyMutex
}

type keyMutex struct {
	mu   sync.Mutex
	refs int
}

// NewKeyLock creates an empty KeyLock.
func NewKeyLock() *KeyLock {
	return &KeyLock{locks: make(map[string]*keyMutex)}
}

// Lock acquires the mutex for key, creating it on first use, and returns the
// matching unlock function. Callers must invoke the returned function exactly
// once, typically via defer. The last release of a key removes its entry.
//
//	unlock := locks.Lock(orderID.String())
//	defer unlock()
func (k *KeyLock) Lock(key string) func() {
	k.mu.Lock()
	entry, ok := k.locks[key]
	if !ok {
		entry = &keyMutex{}
		k.locks[key] = entry
	}
	entry.refs++
	k.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()

		k.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
