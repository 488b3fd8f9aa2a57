// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package runtime

import (
	"context"
	"github.com/orbs-network/orbs-linkboard-go/crypto/address"
	"github.com/pkg/errors"
	"sort"
	"sync"
)

type lockEntry struct {
	held chan struct{}
	refs int
}

// accountLocks hands out exclusive per-address locks. Entries exist only while someone holds or waits on them.
type accountLocks struct {
	mutex   sync.Mutex
	entries map[address.Address]*lockEntry
}

func newAccountLocks() *accountLocks {
	return &accountLocks{entries: make(map[address.Address]*lockEntry)}
}

// acquire locks every address in ascending order, so two callers never wait on each other in a cycle.
// On failure nothing stays locked. The returned func releases everything.
func (l *accountLocks) acquire(ctx context.Context, addresses []address.Address) (func(), error) {
	sorted := append([]address.Address(nil), addresses...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	locked := make([]address.Address, 0, len(sorted))
	release := func() {
		for i := len(locked) - 1; i >= 0; i-- {
			l.unlock(locked[i])
		}
	}

	for i, addr := range sorted {
		if i > 0 && addr.Equal(sorted[i-1]) {
			continue
		}
		entry := l.ref(addr)
		select {
		case entry.held <- struct{}{}:
			locked = append(locked, addr)
		case <-ctx.Done():
			l.unref(addr, entry)
			release()
			return nil, errors.Wrapf(ErrAccountLocked, "account %s: %s", addr, ctx.Err())
		}
	}

	return release, nil
}

func (l *accountLocks) ref(addr address.Address) *lockEntry {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	entry, ok := l.entries[addr]
	if !ok {
		entry = &lockEntry{held: make(chan struct{}, 1)}
		l.entries[addr] = entry
	}
	entry.refs++
	return entry
}

func (l *accountLocks) unref(addr address.Address, entry *lockEntry) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	entry.refs--
	if entry.refs == 0 {
		delete(l.entries, addr)
	}
}

func (l *accountLocks) unlock(addr address.Address) {
	l.mutex.Lock()
	entry := l.entries[addr]
	l.mutex.Unlock()

	<-entry.held
	l.unref(addr, entry)
}

func (l *accountLocks) size() int {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return len(l.entries)
}
