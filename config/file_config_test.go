// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig_OverrideProductionConfig(t *testing.T) {
	cfg := ForProduction("/tmp/linkboard")

	err := modifyFromJson(cfg, `
{
	"linkboard-store-space-bytes": 4096,
	"runtime-lamports-per-byte": 7,
	"runtime-lock-timeout": "250ms",
	"account-storage-backend": "pebble",
	"events-kafka-brokers": ["kafka-1:9092", "kafka-2:9092"],
	"faucet-enabled": true
}`)
	require.NoError(t, err)

	require.EqualValues(t, 4096, cfg.LinkboardStoreSpaceBytes())
	require.EqualValues(t, 7, cfg.RuntimeLamportsPerByte())
	require.EqualValues(t, 250*time.Millisecond, cfg.RuntimeLockTimeout())
	require.Equal(t, ACCOUNT_STORAGE_BACKEND_PEBBLE, cfg.AccountStorageBackend())
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.EventsKafkaBrokers())
	require.True(t, cfg.FaucetEnabled())

	require.Equal(t, "/tmp/linkboard", cfg.AccountStorageDataDir(), "keys missing from the json keep their defaults")
	require.EqualValues(t, 10000, cfg.RuntimeRecentTransactionsCapacity(), "keys missing from the json keep their defaults")
}

func TestConfig_ParsesZeroValues(t *testing.T) {
	cfg := ForProduction("")

	err := modifyFromJson(cfg, `
{
	"runtime-lamports-per-byte": 0,
	"faucet-enabled": false,
	"metrics-report-interval": "0s",
	"logger-http-endpoint": ""
}`)
	require.NoError(t, err)

	require.EqualValues(t, 0, cfg.RuntimeLamportsPerByte())
	require.False(t, cfg.FaucetEnabled())
	require.EqualValues(t, 0, cfg.MetricsReportInterval())
	require.Equal(t, "", cfg.LoggerHttpEndpoint())
}

func TestConfig_RejectsNegativeNumbers(t *testing.T) {
	err := modifyFromJson(emptyConfig(), `{"linkboard-store-space-bytes": -1}`)
	require.Error(t, err)
}

func TestConfig_RejectsInvalidJson(t *testing.T) {
	err := modifyFromJson(emptyConfig(), `{"linkboard-store-space-bytes": `)
	require.Error(t, err)
}

func TestConfig_KafkaBrokersFromCommaSeparatedString(t *testing.T) {
	cfg := emptyConfig()
	cfg.SetString(EVENTS_KAFKA_BROKERS, " a:9092, ,b:9092 ")

	require.Equal(t, []string{"a:9092", "b:9092"}, cfg.EventsKafkaBrokers())
}

func TestGetNodeConfigFromFiles_MergesFilesInOrder(t *testing.T) {
	dir, err := ioutil.TempDir("", "linkboard-config")
	require.NoError(t, err)

	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")
	require.NoError(t, ioutil.WriteFile(first, []byte(`{"linkboard-store-space-bytes": 1000, "runtime-lamports-per-byte": 2}`), 0644))
	require.NoError(t, ioutil.WriteFile(second, []byte(`{"linkboard-store-space-bytes": 2000}`), 0644))

	cfg, err := GetNodeConfigFromFiles(FilesPaths{first, second}, ":9999")
	require.NoError(t, err)

	require.EqualValues(t, 2000, cfg.LinkboardStoreSpaceBytes(), "later files override earlier ones")
	require.EqualValues(t, 2, cfg.RuntimeLamportsPerByte())
	require.Equal(t, ":9999", cfg.HttpAddress())
}

func TestGetNodeConfigFromFiles_MissingFile(t *testing.T) {
	_, err := GetNodeConfigFromFiles(FilesPaths{"/no/such/config.json"}, "")
	require.Error(t, err)
}

func TestGetNodeConfigFromFiles_DefaultsWithoutFiles(t *testing.T) {
	cfg, err := GetNodeConfigFromFiles(nil, "")
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.HttpAddress())
	require.EqualValues(t, 9000, cfg.LinkboardStoreSpaceBytes())
	require.EqualValues(t, 10, cfg.RuntimeLamportsPerByte())
}
