package keylock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func (k *KeyLock) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}

func TestKeyLock_EntryExistsOnlyWhileHeld(t *testing.T) {
	locks := NewKeyLock()

	unlock := locks.Lock("order-1")
	assert.Equal(t, 1, locks.size())

	unlock()
	assert.Equal(t, 0, locks.size())
}

func TestKeyLock_EvictsAfterLastContenderReleases(t *testing.T) {
	locks := NewKeyLock()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := "order-1"
			if n%2 == 0 {
				key = "order-2"
			}
			unlock := locks.Lock(key)
			defer unlock()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, locks.size())
}
