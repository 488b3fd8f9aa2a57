// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package instrumentation

import (
	"github.com/orbs-network/orbs-linkboard-go/config"
	"github.com/orbs-network/orbs-linkboard-go/instrumentation/logfields"
	"github.com/orbs-network/scribe/log"
	"os"
)

const BOOTSTRAP_CRASH_LOG_PATH = "./linkboard-bootstrap.log"

const DEFAULT_BULK_SIZE = 100

// GetBootstrapCrashLogger is used until the node config is loaded, so it cannot depend on it.
func GetBootstrapCrashLogger() log.Logger {
	logFile, err := os.OpenFile(BOOTSTRAP_CRASH_LOG_PATH, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		panic(err)
	}

	return log.GetLogger(log.String("app", "linkboard"), log.String("phase", "bootstrap")).WithOutput(
		log.NewFormattingOutput(log.NewTruncatingFileWriter(logFile), log.NewHumanReadableFormatter()),
		log.NewFormattingOutput(os.Stdout, log.NewHumanReadableFormatter()),
	)
}

// NodeFields identify which node and build wrote a line when logs of several nodes are shipped together.
func NodeFields(cfg config.NodeConfig) []*log.Field {
	version := config.GetVersion()
	return []*log.Field{
		log.String("app", "linkboard"),
		log.String("version", version.Semantic),
		log.String("commit", version.Commit),
		log.String("storage-backend", cfg.AccountStorageBackend()),
		log.String("http-address", cfg.HttpAddress()),
	}
}

// PartialLogFilter keeps errors, metrics and every line that reports a committed slot.
func PartialLogFilter() log.Filter {
	return log.Or(log.OnlyErrors(), log.OnlyMetrics(), log.IncludeFieldWithKey(logfields.SlotKey))
}

// GetLogger writes json to stdout unless silent, to path when given and to an http bulk endpoint when configured.
func GetLogger(path string, silent bool, cfg config.NodeConfig) log.Logger {
	var outputs []log.Output

	if !silent {
		outputs = append(outputs, log.NewFormattingOutput(os.Stdout, log.NewJsonFormatter()))
	}

	if endpoint := cfg.LoggerHttpEndpoint(); endpoint != "" {
		bulkSize := int(cfg.LoggerBulkSize())
		if bulkSize == 0 {
			bulkSize = DEFAULT_BULK_SIZE
		}
		outputs = append(outputs, log.NewBulkOutput(log.NewHttpWriter(endpoint), log.NewJsonFormatter().WithTimestampColumn("@timestamp"), bulkSize))
	}

	if path != "" {
		logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			panic(err)
		}
		fileWriter := log.NewTruncatingFileWriter(logFile, cfg.LoggerFileTruncationInterval())
		outputs = append(outputs, log.NewFormattingOutput(fileWriter, log.NewJsonFormatter()))
	}

	logger := log.GetLogger(NodeFields(cfg)...).WithOutput(outputs...)
	if cfg.LoggerFullLog() {
		return logger
	}
	return logger.WithFilters(PartialLogFilter())
}
