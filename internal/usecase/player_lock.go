package usecase

import "sync"

// playerLocks hands out one mutex per player id. Entries are dropped once
// no caller holds or waits on them.
type playerLocks struct {
	mutex sync.Mutex
	locks map[string]*playerLock
}

type playerLock struct {
	sync.Mutex
	waiters int
}

func newPlayerLocks() *playerLocks {
	return &playerLocks{
		locks: make(map[string]*playerLock),
	}
}

// lock - blocks until the player's mutex is held and returns its release func.
func (that *playerLocks) lock(playerID string) func() {
	that.mutex.Lock()
	entry, ok := that.locks[playerID]
	if !ok {
		entry = &playerLock{}
		that.locks[playerID] = entry
	}
	entry.waiters++
	that.mutex.Unlock()

	entry.Lock()

	return func() {
		entry.Unlock()

		that.mutex.Lock()
		entry.waiters--
		if entry.waiters == 0 {
			delete(that.locks, playerID)
		}
		that.mutex.Unlock()
	}
}

func (that *playerLocks) size() int {
	that.mutex.Lock()
	defer that.mutex.Unlock()

	return len(that.locks)
}
