// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package runtime

import (
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"sync"
)

// recentTransactions remembers the receipts of the last committed transactions, oldest evicted first.
type recentTransactions struct {
	lock     sync.RWMutex
	capacity int
	order    []string
	next     int
	receipts map[string]*Receipt
}

func newRecentTransactions(capacity int) *recentTransactions {
	return &recentTransactions{
		capacity: capacity,
		order:    make([]string, 0, capacity),
		receipts: make(map[string]*Receipt, capacity),
	}
}

func (r *recentTransactions) add(receipt *Receipt) {
	if r.capacity == 0 {
		return
	}
	key := receipt.TxHash.KeyForMap()

	r.lock.Lock()
	defer r.lock.Unlock()

	if _, exists := r.receipts[key]; exists {
		return
	}

	if len(r.order) < r.capacity {
		r.order = append(r.order, key)
	} else {
		delete(r.receipts, r.order[r.next])
		r.order[r.next] = key
		r.next = (r.next + 1) % r.capacity
	}
	r.receipts[key] = receipt
}

func (r *recentTransactions) get(txHash primitives.Sha256) *Receipt {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return r.receipts[txHash.KeyForMap()]
}

func (r *recentTransactions) has(txHash primitives.Sha256) bool {
	return r.get(txHash) != nil
}

func (r *recentTransactions) count() int {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return len(r.receipts)
}
