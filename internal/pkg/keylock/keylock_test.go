package keylock_test

import (
	"sync"
	"testing"

	"shipping/internal/pkg/keylock"

	"github.com/stretchr/testify/assert"
)

func TestKeyLock_SerializesSameKey(t *testing.T) {
	locks := keylock.NewKeyLock()

	counter := 0
	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("order-1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestKeyLock_IndependentKeysDoNotBlock(t *testing.T) {
	locks := keylock.NewKeyLock()

	unlockA := locks.Lock("order-a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := locks.Lock("order-b")
		unlockB()
		close(done)
	}()

	// Holding order-a must not prevent order-b from being acquired.
	<-done
}

func TestKeyLock_ReacquireAfterUnlock(t *testing.T) {
	locks := keylock.NewKeyLock()

	unlock := locks.Lock("order-1")
	unlock()

	unlock = locks.Lock("order-1")
	unlock()
}
