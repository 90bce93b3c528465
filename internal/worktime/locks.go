package worktime

import "sync"

// employeeLocks hands out one mutex per employee id. Entries are dropped once
// no caller holds or waits on them.
type employeeLocks struct {
	mu    sync.Mutex
	locks map[string]*employeeLock
}

type employeeLock struct {
	mu   sync.Mutex
	refs int
}

func (l *employeeLocks) lock(employeeID string) (unlock func()) {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*employeeLock)
	}
	el, ok := l.locks[employeeID]
	if !ok {
		el = &employeeLock{}
		l.locks[employeeID] = el
	}
	el.refs++
	l.mu.Unlock()

	el.mu.Lock()
	return func() {
		el.mu.Unlock()

		l.mu.Lock()
		el.refs--
		if el.refs == 0 {
			delete(l.locks, employeeID)
		}
		l.mu.Unlock()
	}
}
