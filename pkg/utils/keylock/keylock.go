package keylock

import (
	"slices"
	"sync"
)

// KeyLock is a set of mutexes indexed by string key. Entries are released when no
// goroutine holds or waits for them.
type KeyLock struct {
	mutex sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mutex sync.Mutex
	refs  int
}

func New() *KeyLock {
	return &KeyLock{
		locks: make(map[string]*entry),
	}
}

// Lock blocks until the key is free and returns the function to unlock it.
func (x *KeyLock) Lock(key string) func() {
	x.mutex.Lock()
	e, ok := x.locks[key]
	if !ok {
		e = &entry{}
		x.locks[key] = e
	}
	e.refs++
	x.mutex.Unlock()

	e.mutex.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mutex.Unlock()

			x.mutex.Lock()
			e.refs--
			if e.refs == 0 {
				delete(x.locks, key)
			}
			x.mutex.Unlock()
		})
	}
}

// LockAll locks every distinct key in sorted order and returns the function
// that unlocks them. Callers sharing any key are serialized.
func (x *KeyLock) LockAll(keys ...string) func() {
	keys = slices.Clone(keys)
	slices.Sort(keys)
	keys = slices.Compact(keys)

	unlocks := make([]func(), 0, len(keys))
	for _, key := range keys {
		unlocks = append(unlocks, x.Lock(key))
	}
	return func() {
		for i := len(unlocks) - 1; i >= 0; i-- {
			unlocks[i]()
		}
	}
}

// Len returns number of keys currently held or waited on.
func (x *KeyLock) Len() int {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	return len(x.locks)
}
