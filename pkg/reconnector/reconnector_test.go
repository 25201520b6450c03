package reconnector

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLocker(t *testing.T) {
	lk := &locker{slots: make(map[string]*uint32)}

	flagA := lk.getLocker("Target A")
	assert.Equal(t, uint32(0), *flagA)
	assert.Equal(t, 1, lk.Slots())
	require.True(t, atomic.CompareAndSwapUint32(flagA, 0, 1))

	// The same target shares its flag.
	assert.Same(t, flagA, lk.getLocker("Target A"))
	assert.Equal(t, 1, lk.Slots())

	flagB := lk.getLocker("Target B")
	assert.Equal(t, uint32(0), *flagB)
	assert.Equal(t, 2, lk.Slots())
}

func TestReconnect(t *testing.T) {
	interval = 10 * time.Millisecond
	var calls int32

	f := func() error {
		if atomic.AddInt32(&calls, 1) < 3 {
			return errors.New("connection refused")
		}
		return nil
	}

	done := make(chan bool, 1)
	go func() {
		Reconnect("mysql", f)
		done <- true
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Failed to reconnect")
	}

	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Equal(t, uint32(0), atomic.LoadUint32(l.getLocker("mysql")))
}

func TestReconnectSingleLoop(t *testing.T) {
	interval = 10 * time.Millisecond
	var calls int32

	release := make(chan struct{})
	f := func() error {
		atomic.AddInt32(&calls, 1)
		<-release
		return nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Reconnect("shared", f)
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
