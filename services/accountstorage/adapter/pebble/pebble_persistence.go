// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package pebble

import (
	"encoding/binary"
	"fmt"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
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

type PebbleAccountPersistence struct {
	db      *pebble.DB
	logger  log.Logger
	metrics *metrics
}

// NewAccountPersistence opens a pebble database under dataDir, an empty dataDir keeps everything in memory.
func NewAccountPersistence(parent log.Logger, metricFactory metric.Factory, dataDir string) (*PebbleAccountPersistence, error) {
	logger := parent.WithTags(log.String("adapter", "account-storage-pebble"))

	opts := &pebble.Options{
		Logger: &pebbleLogger{logger},
	}
	dir := dataDir
	if dir == "" {
		opts.FS = vfs.NewMem()
		dir = "accounts"
	}

	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open pebble db at %q", dataDir)
	}
	logger.Info("pebble account storage opened", log.String("data-dir", dataDir))

	return &PebbleAccountPersistence{
		db:      db,
		logger:  logger,
		metrics: &metrics{writes: metricFactory.NewRate("AccountStorage.PebblePersistence.Writes.PerSecond")},
	}, nil
}

func accountKey(addr address.Address) []byte {
	return append(append([]byte(nil), accountKeyPrefix...), addr[:]...)
}

func (p *PebbleAccountPersistence) Write(slot primitives.BlockHeight, diff []adapter.Record) error {
	batch := p.db.NewBatch()
	defer batch.Close()

	for _, record := range diff {
		key := accountKey(record.Address)
		if len(record.Value) == 0 {
			if err := batch.Delete(key, nil); err != nil {
				return errors.Wrapf(err, "failed to stage removal of account %s", record.Address)
			}
			continue
		}
		if err := batch.Set(key, record.Value, nil); err != nil {
			return errors.Wrapf(err, "failed to stage account %s", record.Address)
		}
	}

	slotBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(slotBytes, uint64(slot))
	if err := batch.Set(slotKey, slotBytes, nil); err != nil {
		return errors.Wrap(err, "failed to stage slot")
	}

	if err := batch.Commit(pebble.Sync); err != nil {
		return errors.Wrapf(err, "failed to write %d accounts at slot %d", len(diff), slot)
	}

	p.metrics.writes.Measure(int64(len(diff)))
	return nil
}

func (p *PebbleAccountPersistence) get(key []byte) ([]byte, bool, error) {
	val, closer, err := p.db.Get(key)
	if err == pebble.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	defer closer.Close()

	return append([]byte(nil), val...), true, nil
}

func (p *PebbleAccountPersistence) Read(addr address.Address) ([]byte, bool, error) {
	value, ok, err := p.get(accountKey(addr))
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed to read account %s", addr)
	}
	return value, ok, nil
}

func (p *PebbleAccountPersistence) ReadMetadata() (primitives.BlockHeight, error) {
	value, ok, err := p.get(slotKey)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read last committed slot")
	}
	if !ok {
		return 0, nil
	}
	if len(value) != 8 {
		return 0, errors.Errorf("slot record has %d bytes", len(value))
	}
	return primitives.BlockHeight(binary.LittleEndian.Uint64(value)), nil
}

func (p *PebbleAccountPersistence) Close() error {
	if err := p.db.Close(); err != nil {
		return errors.Wrap(err, "failed to close pebble db")
	}
	return nil
}

type pebbleLogger struct {
	logger log.Logger
}

func (l *pebbleLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *pebbleLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *pebbleLogger) Fatalf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	l.logger.Error(message, log.String("fatal", "true"))
	panic(message)
}
