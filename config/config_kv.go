// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"strings"
	"time"
)

type NodeConfigValue struct {
	Uint32Value   uint32
	Uint64Value   uint64
	DurationValue time.Duration
	StringValue   string
	BoolValue     bool
}

type NodeConfigKeyValue struct {
	Key   string
	Value NodeConfigValue
}

type config struct {
	kv map[string]NodeConfigValue
}

func emptyConfig() mutableNodeConfig {
	return &config{
		kv: make(map[string]NodeConfigValue),
	}
}

func (c *config) Set(key string, value NodeConfigValue) mutableNodeConfig {
	c.kv[key] = value
	return c
}

func (c *config) SetDuration(key string, value time.Duration) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{DurationValue: value}
	return c
}

func (c *config) SetUint32(key string, value uint32) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{Uint32Value: value, Uint64Value: uint64(value)}
	return c
}

// SetUint64 also fills the 32 bit slot when the value fits, so numeric JSON values serve either getter.
func (c *config) SetUint64(key string, value uint64) mutableNodeConfig {
	v := NodeConfigValue{Uint64Value: value}
	if value <= uint64(^uint32(0)) {
		v.Uint32Value = uint32(value)
	}
	c.kv[key] = v
	return c
}

func (c *config) SetString(key string, value string) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{StringValue: value}
	return c
}

func (c *config) SetBool(key string, value bool) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{BoolValue: value}
	return c
}

func (c *config) Modify(newValues ...NodeConfigKeyValue) {
	for _, kv := range newValues {
		c.kv[kv.Key] = kv.Value
	}
}

func (c *config) HttpAddress() string {
	return c.kv[HTTP_ADDRESS].StringValue
}

func (c *config) HttpSendTransactionRatePerSecond() uint32 {
	return c.kv[HTTP_SEND_TRANSACTION_RATE_PER_SECOND].Uint32Value
}

func (c *config) HttpSendTransactionBurst() uint32 {
	return c.kv[HTTP_SEND_TRANSACTION_BURST].Uint32Value
}

func (c *config) HttpSendTransactionTimeout() time.Duration {
	return c.kv[HTTP_SEND_TRANSACTION_TIMEOUT].DurationValue
}

func (c *config) LinkboardStoreSpaceBytes() uint32 {
	return c.kv[LINKBOARD_STORE_SPACE_BYTES].Uint32Value
}

func (c *config) RuntimeLamportsPerByte() uint64 {
	return c.kv[RUNTIME_LAMPORTS_PER_BYTE].Uint64Value
}

func (c *config) RuntimeRecentTransactionsCapacity() uint32 {
	return c.kv[RUNTIME_RECENT_TRANSACTIONS_CAPACITY].Uint32Value
}

func (c *config) RuntimeLockTimeout() time.Duration {
	return c.kv[RUNTIME_LOCK_TIMEOUT].DurationValue
}

func (c *config) AccountStorageBackend() string {
	return c.kv[ACCOUNT_STORAGE_BACKEND].StringValue
}

func (c *config) AccountStorageDataDir() string {
	return c.kv[ACCOUNT_STORAGE_DATA_DIR].StringValue
}

func (c *config) EventsKafkaBrokers() []string {
	raw := c.kv[EVENTS_KAFKA_BROKERS].StringValue
	if raw == "" {
		return nil
	}

	var brokers []string
	for _, broker := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(broker); trimmed != "" {
			brokers = append(brokers, trimmed)
		}
	}
	return brokers
}

func (c *config) EventsKafkaTopic() string {
	return c.kv[EVENTS_KAFKA_TOPIC].StringValue
}

func (c *config) EventsKafkaBatchTimeout() time.Duration {
	return c.kv[EVENTS_KAFKA_BATCH_TIMEOUT].DurationValue
}

func (c *config) EventsQueueSize() uint32 {
	return c.kv[EVENTS_QUEUE_SIZE].Uint32Value
}

func (c *config) FaucetEnabled() bool {
	return c.kv[FAUCET_ENABLED].BoolValue
}

func (c *config) FaucetMaxAirdropLamports() uint64 {
	return c.kv[FAUCET_MAX_AIRDROP_LAMPORTS].Uint64Value
}

func (c *config) MetricsReportInterval() time.Duration {
	return c.kv[METRICS_REPORT_INTERVAL].DurationValue
}

func (c *config) LoggerFullLog() bool {
	return c.kv[LOGGER_FULL_LOG].BoolValue
}

func (c *config) LoggerFileTruncationInterval() time.Duration {
	return c.kv[LOGGER_FILE_TRUNCATION_INTERVAL].DurationValue
}

func (c *config) LoggerHttpEndpoint() string {
	return c.kv[LOGGER_HTTP_ENDPOINT].StringValue
}

func (c *config) LoggerBulkSize() uint32 {
	return c.kv[LOGGER_BULK_SIZE].Uint32Value
}
