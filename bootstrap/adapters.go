// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package bootstrap

import (
	"github.com/orbs-network/orbs-linkboard-go/config"
	"github.com/orbs-network/orbs-linkboard-go/instrumentation/metric"
	accountStorageAdapter "github.com/orbs-network/orbs-linkboard-go/services/accountstorage/adapter"
	"github.com/orbs-network/orbs-linkboard-go/services/accountstorage/adapter/badger"
	accountStorageMemory "github.com/orbs-network/orbs-linkboard-go/services/accountstorage/adapter/memory"
	"github.com/orbs-network/orbs-linkboard-go/services/accountstorage/adapter/pebble"
	eventsAdapter "github.com/orbs-network/orbs-linkboard-go/services/events/adapter"
	"github.com/orbs-network/orbs-linkboard-go/services/events/adapter/kafka"
	eventsMemory "github.com/orbs-network/orbs-linkboard-go/services/events/adapter/memory"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

const maxEventsKeptWithoutBroker = 10000

func newAccountPersistence(logger log.Logger, metricFactory metric.Factory, cfg config.AccountStorageConfig) (accountStorageAdapter.AccountPersistence, error) {
	switch cfg.AccountStorageBackend() {
	case config.ACCOUNT_STORAGE_BACKEND_MEMORY:
		return accountStorageMemory.NewAccountPersistence(metricFactory), nil
	case config.ACCOUNT_STORAGE_BACKEND_BADGER:
		persistence, err := badger.NewAccountPersistence(logger, metricFactory, cfg.AccountStorageDataDir())
		if err != nil {
			return nil, err
		}
		return persistence, nil
	case config.ACCOUNT_STORAGE_BACKEND_PEBBLE:
		persistence, err := pebble.NewAccountPersistence(logger, metricFactory, cfg.AccountStorageDataDir())
		if err != nil {
			return nil, err
		}
		return persistence, nil
	}
	return nil, errors.Errorf("unknown account storage backend %q", cfg.AccountStorageBackend())
}

func newEventPublisher(logger log.Logger, cfg config.EventsConfig) (eventsAdapter.EventPublisher, error) {
	if len(cfg.EventsKafkaBrokers()) == 0 {
		logger.Info("no kafka brokers configured, keeping events in memory")
		return eventsMemory.NewBoundedMemoryPublisher(maxEventsKeptWithoutBroker), nil
	}
	publisher, err := kafka.NewKafkaPublisher(logger, cfg)
	if err != nil {
		return nil, err
	}
	return publisher, nil
}
