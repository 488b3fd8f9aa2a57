// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"time"
)

// all other configs are variations from the production one
func defaultProductionConfig() mutableNodeConfig {
	cfg := emptyConfig()

	cfg.SetString(HTTP_ADDRESS, ":8080")
	cfg.SetUint32(HTTP_SEND_TRANSACTION_RATE_PER_SECOND, 50)
	cfg.SetUint32(HTTP_SEND_TRANSACTION_BURST, 100)
	cfg.SetDuration(HTTP_SEND_TRANSACTION_TIMEOUT, 10*time.Second)

	// the space reserved by the deployed program for its single store account
	cfg.SetUint32(LINKBOARD_STORE_SPACE_BYTES, 9000)

	cfg.SetUint64(RUNTIME_LAMPORTS_PER_BYTE, 10)
	cfg.SetUint32(RUNTIME_RECENT_TRANSACTIONS_CAPACITY, 10000)
	cfg.SetDuration(RUNTIME_LOCK_TIMEOUT, 5*time.Second)

	cfg.SetString(ACCOUNT_STORAGE_BACKEND, ACCOUNT_STORAGE_BACKEND_BADGER)
	cfg.SetString(ACCOUNT_STORAGE_DATA_DIR, "/usr/local/var/linkboard")

	cfg.SetString(EVENTS_KAFKA_TOPIC, "linkboard-events")
	cfg.SetDuration(EVENTS_KAFKA_BATCH_TIMEOUT, 100*time.Millisecond)
	cfg.SetUint32(EVENTS_QUEUE_SIZE, 1000)

	cfg.SetBool(FAUCET_ENABLED, false)
	cfg.SetUint64(FAUCET_MAX_AIRDROP_LAMPORTS, 1000000)

	cfg.SetDuration(METRICS_REPORT_INTERVAL, 30*time.Second)
	cfg.SetBool(LOGGER_FULL_LOG, false)
	cfg.SetDuration(LOGGER_FILE_TRUNCATION_INTERVAL, 24*time.Hour)
	cfg.SetUint32(LOGGER_BULK_SIZE, 100)

	return cfg
}

// config for a production node
func ForProduction(dataDir string) mutableNodeConfig {
	cfg := defaultProductionConfig()

	if dataDir != "" {
		cfg.SetString(ACCOUNT_STORAGE_DATA_DIR, dataDir)
	}
	return cfg
}

// config for a local development node with in-memory accounts and the faucet open
func ForDevelopment(httpAddress string) mutableNodeConfig {
	cfg := defaultProductionConfig()

	cfg.SetString(HTTP_ADDRESS, httpAddress)
	cfg.SetString(ACCOUNT_STORAGE_BACKEND, ACCOUNT_STORAGE_BACKEND_MEMORY)
	cfg.SetBool(FAUCET_ENABLED, true)
	cfg.SetBool(LOGGER_FULL_LOG, true)
	cfg.SetDuration(METRICS_REPORT_INTERVAL, 5*time.Second)

	return cfg
}

// config for unit and component tests
func ForTests(storeSpaceBytes uint32) mutableNodeConfig {
	cfg := emptyConfig()

	cfg.SetString(HTTP_ADDRESS, "127.0.0.1:0")
	cfg.SetUint32(HTTP_SEND_TRANSACTION_RATE_PER_SECOND, 1000)
	cfg.SetUint32(HTTP_SEND_TRANSACTION_BURST, 1000)
	cfg.SetDuration(HTTP_SEND_TRANSACTION_TIMEOUT, 2*time.Second)

	cfg.SetUint32(LINKBOARD_STORE_SPACE_BYTES, storeSpaceBytes)

	cfg.SetUint64(RUNTIME_LAMPORTS_PER_BYTE, 10)
	cfg.SetUint32(RUNTIME_RECENT_TRANSACTIONS_CAPACITY, 100)
	cfg.SetDuration(RUNTIME_LOCK_TIMEOUT, 1*time.Second)

	cfg.SetString(ACCOUNT_STORAGE_BACKEND, ACCOUNT_STORAGE_BACKEND_MEMORY)

	cfg.SetString(EVENTS_KAFKA_TOPIC, "linkboard-events-test")
	cfg.SetDuration(EVENTS_KAFKA_BATCH_TIMEOUT, 10*time.Millisecond)
	cfg.SetUint32(EVENTS_QUEUE_SIZE, 100)

	cfg.SetBool(FAUCET_ENABLED, true)
	cfg.SetUint64(FAUCET_MAX_AIRDROP_LAMPORTS, 10000000)

	cfg.SetDuration(METRICS_REPORT_INTERVAL, 1*time.Second)
	cfg.SetBool(LOGGER_FULL_LOG, true)

	return cfg
}
