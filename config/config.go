// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"time"
)

type NodeConfig interface {
	// http
	HttpAddress() string
	HttpSendTransactionRatePerSecond() uint32
	HttpSendTransactionBurst() uint32
	HttpSendTransactionTimeout() time.Duration

	// linkboard program
	LinkboardStoreSpaceBytes() uint32

	// runtime
	RuntimeLamportsPerByte() uint64
	RuntimeRecentTransactionsCapacity() uint32
	RuntimeLockTimeout() time.Duration

	// account storage
	AccountStorageBackend() string
	AccountStorageDataDir() string

	// events
	EventsKafkaBrokers() []string
	EventsKafkaTopic() string
	EventsKafkaBatchTimeout() time.Duration
	EventsQueueSize() uint32

	// faucet
	FaucetEnabled() bool
	FaucetMaxAirdropLamports() uint64

	// instrumentation
	MetricsReportInterval() time.Duration
	LoggerFullLog() bool
	LoggerFileTruncationInterval() time.Duration
	LoggerHttpEndpoint() string
	LoggerBulkSize() uint32
}

type mutableNodeConfig interface {
	NodeConfig
	Set(key string, value NodeConfigValue) mutableNodeConfig
	SetDuration(key string, value time.Duration) mutableNodeConfig
	SetUint32(key string, value uint32) mutableNodeConfig
	SetUint64(key string, value uint64) mutableNodeConfig
	SetString(key string, value string) mutableNodeConfig
	SetBool(key string, value bool) mutableNodeConfig
	Modify(newValues ...NodeConfigKeyValue)
}

type LinkboardConfig interface {
	LinkboardStoreSpaceBytes() uint32
}

type RuntimeConfig interface {
	RuntimeLamportsPerByte() uint64
	RuntimeRecentTransactionsCapacity() uint32
	RuntimeLockTimeout() time.Duration
}

type AccountStorageConfig interface {
	AccountStorageBackend() string
	AccountStorageDataDir() string
}

type EventsConfig interface {
	EventsKafkaBrokers() []string
	EventsKafkaTopic() string
	EventsKafkaBatchTimeout() time.Duration
	EventsQueueSize() uint32
}

type HttpServerConfig interface {
	HttpAddress() string
	HttpSendTransactionRatePerSecond() uint32
	HttpSendTransactionBurst() uint32
	HttpSendTransactionTimeout() time.Duration
	FaucetEnabled() bool
	FaucetMaxAirdropLamports() uint64
}

const (
	ACCOUNT_STORAGE_BACKEND_MEMORY = "memory"
	ACCOUNT_STORAGE_BACKEND_BADGER = "badger"
	ACCOUNT_STORAGE_BACKEND_PEBBLE = "pebble"
)
