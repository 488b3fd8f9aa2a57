// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package badger

import (
	"encoding/binary"
	"fmt"
	"github.com/dgraph-io/badger/v4"
	"github.com/orbs-network/orbs-linkboard-go/crypto/address"
	"github.com/orbs-network/orbs-linkboard-go/instrumentation/metric"
	"github.com/orbs-network/orbs-linkboard-go/services/accountstorage/adapter"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

var accountKeyPrefix = []byte("account/")
var slotKey = []byte("meta/slot")

type metrics struct {
	writes *metric.Rate
}

type BadgerAccountPersistence struct {
	db      *badger.DB
	logger  log.Logger
	metrics *metrics
}

// NewAccountPersistence opens a badger database under dataDir, an empty dataDir keeps everything in memory.
func NewAccountPersistence(parent log.Logger, metricFactory metric.Factory, dataDir string) (*BadgerAccountPersistence, error) {
	logger := parent.WithTags(log.String("adapter", "account-storage-badger"))

	opts := badger.DefaultOptions(dataDir).WithLogger(&badgerLogger{logger})
	if dataDir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open badger db at %q", dataDir)
	}
	logger.Info("badger account storage opened", log.String("data-dir", dataDir))

	return &BadgerAccountPersistence{
		db:      db,
		logger:  logger,
		metrics: &metrics{writes: metricFactory.NewRate("AccountStorage.BadgerPersistence.Writes.PerSecond")},
	}, nil
}

func accountKey(addr address.Address) []byte {
	return append(append([]byte(nil), accountKeyPrefix...), addr[:]...)
}

func (p *BadgerAccountPersistence) Write(slot primitives.BlockHeight, diff []adapter.Record) error {
	err := p.db.Update(func(txn *badger.Txn) error {
		for _, record := range diff {
			key := accountKey(record.Address)
			if len(record.Value) == 0 {
				if err := txn.Delete(key); err != nil {
					return err
				}
				continue
			}
			if err := txn.Set(key, record.Value); err != nil {
				return err
			}
		}

		slotBytes := make([]byte, 8)
		binary.LittleEndian.PutUint64(slotBytes, uint64(slot))
		return txn.Set(slotKey, slotBytes)
	})
	if err != nil {
		return errors.Wrapf(err, "failed to write %d accounts at slot %d", len(diff), slot)
	}

	p.metrics.writes.Measure(int64(len(diff)))
	return nil
}

func (p *BadgerAccountPersistence) Read(addr address.Address) ([]byte, bool, error) {
	var value []byte
	err := p.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(accountKey(addr))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})

	if err == badger.ErrKeyNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed to read account %s", addr)
	}
	return value, true, nil
}

func (p *BadgerAccountPersistence) ReadMetadata() (primitives.BlockHeight, error) {
	var slot primitives.BlockHeight
	err := p.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(slotKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if len(val) != 8 {
				return errors.Errorf("slot record has %d bytes", len(val))
			}
			slot = primitives.BlockHeight(binary.LittleEndian.Uint64(val))
			return nil
		})
	})

	if err == badger.ErrKeyNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "failed to read last committed slot")
	}
	return slot, nil
}

func (p *BadgerAccountPersistence) Close() error {
	if err := p.db.Close(); err != nil {
		return errors.Wrap(err, "failed to close badger db")
	}
	return nil
}

type badgerLogger struct {
	logger log.Logger
}

func (l *badgerLogger) Errorf(f string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(f, v...))
}

func (l *badgerLogger) Warningf(f string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(f, v...), log.String("level", "warning"))
}

func (l *badgerLogger) Infof(f string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(f, v...))
}

func (l *badgerLogger) Debugf(f string, v ...interface{}) {}
