package reconnector

import (
	"sync"
	"sync/atomic"
	"time"

	"ethabi/util/log"
)

var interval = 500 * time.Millisecond

// locker hands out one flag per reconnect target.
type locker struct {
	mu    sync.Mutex
	slots map[string]*uint32
}

var l = &locker{slots: make(map[string]*uint32)}

func (l *locker) getLocker(target string) *uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()

	flag, ok := l.slots[target]
	if !ok {
		flag = new(uint32)
		l.slots[target] = flag
	}

	return flag
}

// Slots returns the number of known targets.
func (l *locker) Slots() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.slots)
}

// Reconnect calls f until it returns nil. Only one reconnect loop runs per
// target, concurrent callers block until that loop succeeds.
func Reconnect(target string, f func() error) {
	flag := l.getLocker(target)

	if !atomic.CompareAndSwapUint32(flag, 0, 1) {
		for atomic.LoadUint32(flag) == 1 {
			time.Sleep(interval / 10)
		}
		return
	}
	defer atomic.StoreUint32(flag, 0)

	for retry := 1; ; retry++ {
		err := f()
		if err == nil {
			if retry > 1 {
				log.Infof("%s reconnected after %d attempts", target, retry)
			}
			return
		}

		log.Warnf("%s connection lost, retry in %v (attempt %d): %v", target, interval, retry, err)
		time.Sleep(interval)
	}
}
