// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package bootstrap

import (
	"github.com/orbs-network/orbs-linkboard-go/config"
	"github.com/orbs-network/orbs-linkboard-go/instrumentation/metric"
	"github.com/orbs-network/orbs-linkboard-go/services/accountstorage/adapter/badger"
	accountStorageMemory "github.com/orbs-network/orbs-linkboard-go/services/accountstorage/adapter/memory"
	"github.com/orbs-network/orbs-linkboard-go/services/accountstorage/adapter/pebble"
	"github.com/orbs-network/orbs-linkboard-go/services/events/adapter/kafka"
	eventsMemory "github.com/orbs-network/orbs-linkboard-go/services/events/adapter/memory"
	"github.com/orbs-network/orbs-linkboard-go/test/with"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewAccountPersistence_SelectsBackend(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		cfg := config.ForTests(0)

		persistence, err := newAccountPersistence(parent.Logger, metric.NewRegistry(), cfg)
		require.NoError(t, err)
		require.IsType(t, &accountStorageMemory.InMemoryAccountPersistence{}, persistence)

		cfg.SetString(config.ACCOUNT_STORAGE_BACKEND, config.ACCOUNT_STORAGE_BACKEND_BADGER)
		cfg.SetString(config.ACCOUNT_STORAGE_DATA_DIR, t.TempDir())
		persistence, err = newAccountPersistence(parent.Logger, metric.NewRegistry(), cfg)
		require.NoError(t, err)
		require.IsType(t, &badger.BadgerAccountPersistence{}, persistence)
		require.NoError(t, persistence.Close())

		cfg.SetString(config.ACCOUNT_STORAGE_BACKEND, config.ACCOUNT_STORAGE_BACKEND_PEBBLE)
		cfg.SetString(config.ACCOUNT_STORAGE_DATA_DIR, t.TempDir())
		persistence, err = newAccountPersistence(parent.Logger, metric.NewRegistry(), cfg)
		require.NoError(t, err)
		require.IsType(t, &pebble.PebbleAccountPersistence{}, persistence)
		require.NoError(t, persistence.Close())
	})
}

func TestNewEventPublisher_FallsBackToMemoryWithoutBrokers(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		cfg := config.ForTests(0)

		publisher, err := newEventPublisher(parent.Logger, cfg)
		require.NoError(t, err)
		require.IsType(t, &eventsMemory.MemoryPublisher{}, publisher)

		cfg.SetString(config.EVENTS_KAFKA_BROKERS, "127.0.0.1:9092")
		publisher, err = newEventPublisher(parent.Logger, cfg)
		require.NoError(t, err)
		require.IsType(t, &kafka.KafkaPublisher{}, publisher)
		require.NoError(t, publisher.Close())
	})
}
