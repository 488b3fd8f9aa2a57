// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package accountstorage

import (
	"context"
	"github.com/orbs-network/orbs-linkboard-go/crypto/address"
	"github.com/orbs-network/orbs-linkboard-go/instrumentation/logfields"
	"github.com/orbs-network/orbs-linkboard-go/instrumentation/metric"
	"github.com/orbs-network/orbs-linkboard-go/services/accountstorage/adapter"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"sync"
	"time"
)

type metrics struct {
	commitTime        *metric.Histogram
	committedAccounts *metric.Rate
	lastCommittedSlot *metric.Gauge
}

func newMetrics(m metric.Factory) *metrics {
	return &metrics{
		commitTime:        m.NewLatency("AccountStorage.CommitAccounts.Time.Millis", 10*time.Second),
		committedAccounts: m.NewRate("AccountStorage.CommittedAccounts.PerSecond"),
		lastCommittedSlot: m.NewGauge("AccountStorage.LastCommittedSlot"),
	}
}

// Service reads accounts by address and commits modified accounts, assigning each commit the next slot.
type Service struct {
	logger      log.Logger
	persistence adapter.AccountPersistence
	metrics     *metrics

	commitMutex sync.RWMutex
	lastSlot    primitives.BlockHeight
}

func NewAccountStorage(parent log.Logger, metricFactory metric.Factory, persistence adapter.AccountPersistence) (*Service, error) {
	logger := parent.WithTags(log.Service("account-storage"))

	lastSlot, err := persistence.ReadMetadata()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read last committed slot")
	}

	s := &Service{
		logger:      logger,
		persistence: persistence,
		metrics:     newMetrics(metricFactory),
		lastSlot:    lastSlot,
	}
	s.metrics.lastCommittedSlot.UpdateUint64(uint64(lastSlot))

	logger.Info("account storage ready", logfields.Slot(lastSlot))
	return s, nil
}

// ReadAccount never fails for unknown addresses, they read as EmptyAccount.
func (s *Service) ReadAccount(ctx context.Context, addr address.Address) (*Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrapf(err, "read of account %s aborted", addr)
	}

	raw, ok, err := s.persistence.Read(addr)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read account %s", addr)
	}
	if !ok {
		return EmptyAccount(addr), nil
	}

	return DecodeAccount(addr, raw)
}

// CommitAccounts writes all accounts in one batch. Either every account is stored under the returned slot or none is.
func (s *Service) CommitAccounts(ctx context.Context, accounts []*Account) (primitives.BlockHeight, error) {
	if err := ctx.Err(); err != nil {
		return 0, errors.Wrap(err, "commit aborted")
	}

	start := time.Now()
	defer s.metrics.commitTime.RecordSince(start)

	records := make([]adapter.Record, 0, len(accounts))
	for _, a := range accounts {
		record := adapter.Record{Address: a.Address}
		if !a.IsEmpty() {
			record.Value = EncodeAccount(a)
		}
		records = append(records, record)
	}

	s.commitMutex.Lock()
	defer s.commitMutex.Unlock()

	slot := s.lastSlot + 1
	if err := s.persistence.Write(slot, records); err != nil {
		return 0, errors.Wrapf(err, "failed to commit %d accounts", len(accounts))
	}
	s.lastSlot = slot

	s.metrics.committedAccounts.Measure(int64(len(accounts)))
	s.metrics.lastCommittedSlot.UpdateUint64(uint64(slot))
	return slot, nil
}

func (s *Service) LastCommittedSlot() primitives.BlockHeight {
	s.commitMutex.RLock()
	defer s.commitMutex.RUnlock()

	return s.lastSlot
}
