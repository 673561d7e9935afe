// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package instruction

import (
	"sync"

	"github.com/insolar/voter-stake-registry/internal/app/registry"
)

// accountLocks serializes instructions touching the same account. An entry
// lives only while somebody holds or waits for it.
type accountLocks struct {
	mu    sync.Mutex
	locks map[registry.Pubkey]*accountLock
}

type accountLock struct {
	sync.Mutex
	refs int
}

func newAccountLocks() *accountLocks {
	return &accountLocks{locks: make(map[registry.Pubkey]*accountLock)}
}

// lock blocks until key is free and returns the function releasing it.
func (l *accountLocks) lock(key registry.Pubkey) func() {
	l.mu.Lock()
	al, ok := l.locks[key]
	if !ok {
		al = &accountLock{}
		l.locks[key] = al
	}
	al.refs++
	l.mu.Unlock()

	al.Lock()
	return func() {
		al.Unlock()

		l.mu.Lock()
		al.refs--
		if al.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}
}

func (l *accountLocks) held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
