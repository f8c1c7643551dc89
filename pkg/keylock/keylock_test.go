package keylock_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/dealsync/pkg/keylock"
)

func TestMap_SameKeySerialized(t *testing.T) {
	t.Parallel()

	m := keylock.New()

	const workers = 50

	var (
		wg      sync.WaitGroup
		inside  int
		maxSeen int
		counter int
		guard   sync.Mutex
	)

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			unlock := m.Lock("J-100")
			defer unlock()

			guard.Lock()
			inside++
			maxSeen = max(maxSeen, inside)
			guard.Unlock()

			counter++

			guard.Lock()
			inside--
			guard.Unlock()
		}()
	}

	wg.Wait()

	require.Equal(t, workers, counter)
	require.Equal(t, 1, maxSeen)
	require.Zero(t, m.Len())
}

func TestMap_DifferentKeysIndependent(t *testing.T) {
	t.Parallel()

	m := keylock.New()

	unlockA := m.Lock("J-1")
	defer unlockA()

	done := make(chan struct{})

	go func() {
		unlockB := m.Lock("J-2")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key blocked")
	}

	require.Equal(t, 1, m.Len())
}
