// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

const (
	HTTP_ADDRESS                          = "HTTP_ADDRESS"
	HTTP_SEND_TRANSACTION_RATE_PER_SECOND = "HTTP_SEND_TRANSACTION_RATE_PER_SECOND"
	HTTP_SEND_TRANSACTION_BURST           = "HTTP_SEND_TRANSACTION_BURST"
	HTTP_SEND_TRANSACTION_TIMEOUT         = "HTTP_SEND_TRANSACTION_TIMEOUT"

	LINKBOARD_STORE_SPACE_BYTES = "LINKBOARD_STORE_SPACE_BYTES"

	RUNTIME_LAMPORTS_PER_BYTE            = "RUNTIME_LAMPORTS_PER_BYTE"
	RUNTIME_RECENT_TRANSACTIONS_CAPACITY = "RUNTIME_RECENT_TRANSACTIONS_CAPACITY"
	RUNTIME_LOCK_TIMEOUT                 = "RUNTIME_LOCK_TIMEOUT"

	ACCOUNT_STORAGE_BACKEND  = "ACCOUNT_STORAGE_BACKEND"
	ACCOUNT_STORAGE_DATA_DIR = "ACCOUNT_STORAGE_DATA_DIR"

	EVENTS_KAFKA_BROKERS       = "EVENTS_KAFKA_BROKERS"
	EVENTS_KAFKA_TOPIC         = "EVENTS_KAFKA_TOPIC"
	EVENTS_KAFKA_BATCH_TIMEOUT = "EVENTS_KAFKA_BATCH_TIMEOUT"
	EVENTS_QUEUE_SIZE          = "EVENTS_QUEUE_SIZE"

	FAUCET_ENABLED              = "FAUCET_ENABLED"
	FAUCET_MAX_AIRDROP_LAMPORTS = "FAUCET_MAX_AIRDROP_LAMPORTS"

	METRICS_REPORT_INTERVAL         = "METRICS_REPORT_INTERVAL"
	LOGGER_FULL_LOG                 = "LOGGER_FULL_LOG"
	LOGGER_FILE_TRUNCATION_INTERVAL = "LOGGER_FILE_TRUNCATION_INTERVAL"
	LOGGER_HTTP_ENDPOINT            = "LOGGER_HTTP_ENDPOINT"
	LOGGER_BULK_SIZE                = "LOGGER_BULK_SIZE"
)
