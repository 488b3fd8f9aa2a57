// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"github.com/pkg/errors"
)

// smallest store a program can initialize: discriminator, total count and entry count
const minimalStoreSpaceBytes = 8 + 8 + 4

func Validate(cfg NodeConfig) error {
	if cfg.LinkboardStoreSpaceBytes() < minimalStoreSpaceBytes {
		return errors.Errorf("linkboard store space must be at least %d bytes, got %d", minimalStoreSpaceBytes, cfg.LinkboardStoreSpaceBytes())
	}

	if cfg.RuntimeRecentTransactionsCapacity() == 0 {
		return errors.New("runtime recent transactions capacity must be positive")
	}

	if cfg.RuntimeLockTimeout() <= 0 {
		return errors.New("runtime lock timeout must be positive")
	}

	switch cfg.AccountStorageBackend() {
	case ACCOUNT_STORAGE_BACKEND_MEMORY:
	case ACCOUNT_STORAGE_BACKEND_BADGER, ACCOUNT_STORAGE_BACKEND_PEBBLE:
		if cfg.AccountStorageDataDir() == "" {
			return errors.Errorf("account storage backend %s requires a data dir", cfg.AccountStorageBackend())
		}
	default:
		return errors.Errorf("unknown account storage backend %q", cfg.AccountStorageBackend())
	}

	if len(cfg.EventsKafkaBrokers()) > 0 && cfg.EventsKafkaTopic() == "" {
		return errors.New("kafka brokers are configured without a topic")
	}

	if cfg.HttpSendTransactionRatePerSecond() == 0 || cfg.HttpSendTransactionBurst() == 0 {
		return errors.New("send transaction rate limit and burst must be positive")
	}

	return nil
}
