package lock

import (
	"sync"

	"github.com/apex/log"
)

// NameLocker hands out one mutex per name. Mutexes are created up front for
// the names passed to NewNameLocker, or on first use, and kept for the life
// of the locker. Callers must only lock names from a bounded set.
type NameLocker struct {
	mapMutex sync.Mutex
	nameMap  map[string]*sync.Mutex
}

func NewNameLocker(names ...string) *NameLocker {
	l := &NameLocker{
		nameMap: make(map[string]*sync.Mutex, len(names)),
	}

	for _, name := range names {
		l.nameMap[name] = &sync.Mutex{}
	}

	return l
}

// Len is the number of names that have a mutex.
func (l *NameLocker) Len() int {
	l.mapMutex.Lock()
	defer l.mapMutex.Unlock()
	return len(l.nameMap)
}

func (l *NameLocker) mutexFor(name string, create bool) *sync.Mutex {
	l.mapMutex.Lock()
	defer l.mapMutex.Unlock()

	m, ok := l.nameMap[name]
	if !ok && create {
		m = &sync.Mutex{}
		l.nameMap[name] = m
	}

	return m
}

func (l *NameLocker) AcquireLock(name string) {
	l.mutexFor(name, true).Lock()
}

func (l *NameLocker) ReleaseLock(name string) {
	m := l.mutexFor(name, false)
	if m == nil {
		log.Errorf("ReleaseLock called on name (%s) with no mutex", name)
		return
	}

	m.Unlock()
}

func (l *NameLocker) WithLock(name string, f func() error) error {
	l.AcquireLock(name)
	defer l.ReleaseLock(name)
	return f()
}
