// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package memory

import (
	"fmt"
	"github.com/orbs-network/orbs-linkboard-go/crypto/address"
	"github.com/orbs-network/orbs-linkboard-go/instrumentation/metric"
	"github.com/orbs-network/orbs-linkboard-go/services/accountstorage/adapter"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"sort"
	"strings"
	"sync"
)

type metrics struct {
	numberOfAccounts *metric.Gauge
	sizeInBytes      *metric.Gauge
}

func newMetrics(m metric.Factory) *metrics {
	return &metrics{
		numberOfAccounts: m.NewGauge("AccountStorage.InMemoryPersistence.Accounts.Count"),
		sizeInBytes:      m.NewGauge("AccountStorage.InMemoryPersistence.Size.Bytes"),
	}
}

type InMemoryAccountPersistence struct {
	metrics *metrics
	mutex   sync.RWMutex
	records map[address.Address][]byte
	slot    primitives.BlockHeight
}

func NewAccountPersistence(metricFactory metric.Factory) *InMemoryAccountPersistence {
	return &InMemoryAccountPersistence{
		metrics: newMetrics(metricFactory),
		records: make(map[address.Address][]byte),
	}
}

func (p *InMemoryAccountPersistence) Write(slot primitives.BlockHeight, diff []adapter.Record) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	for _, record := range diff {
		if len(record.Value) == 0 {
			delete(p.records, record.Address)
			continue
		}
		p.records[record.Address] = append([]byte(nil), record.Value...)
	}
	p.slot = slot
	p.reportSize()
	return nil
}

func (p *InMemoryAccountPersistence) reportSize() {
	size := 0
	for _, value := range p.records {
		size += len(value)
	}
	p.metrics.numberOfAccounts.Update(int64(len(p.records)))
	p.metrics.sizeInBytes.Update(int64(size))
}

func (p *InMemoryAccountPersistence) Read(addr address.Address) ([]byte, bool, error) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	value, ok := p.records[addr]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (p *InMemoryAccountPersistence) ReadMetadata() (primitives.BlockHeight, error) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return p.slot, nil
}

func (p *InMemoryAccountPersistence) Close() error {
	return nil
}

// Dump renders the stored accounts ordered by address, for debugging failed tests.
func (p *InMemoryAccountPersistence) Dump() string {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	addresses := make([]address.Address, 0, len(p.records))
	for addr := range p.records {
		addresses = append(addresses, addr)
	}
	sort.Slice(addresses, func(i, j int) bool { return addresses[i].Less(addresses[j]) })

	output := strings.Builder{}
	output.WriteString(fmt.Sprintf("{slot: %d, accounts: {", p.slot))
	for _, addr := range addresses {
		output.WriteString(fmt.Sprintf("%s:%d bytes,", addr, len(p.records[addr])))
	}
	output.WriteString("}}")
	return output.String()
}
