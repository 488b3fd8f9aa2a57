// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package bootstrap

import (
	"context"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-linkboard-go/config"
	"github.com/orbs-network/orbs-linkboard-go/instrumentation/metric"
	"github.com/orbs-network/orbs-linkboard-go/services/accountstorage"
	accountStorageAdapter "github.com/orbs-network/orbs-linkboard-go/services/accountstorage/adapter"
	"github.com/orbs-network/orbs-linkboard-go/services/events"
	eventsAdapter "github.com/orbs-network/orbs-linkboard-go/services/events/adapter"
	"github.com/orbs-network/orbs-linkboard-go/services/processor/linkboard"
	"github.com/orbs-network/orbs-linkboard-go/services/runtime"
	"github.com/orbs-network/scribe/log"
)

// NodeLogic is everything a node runs except its outer surfaces.
type NodeLogic struct {
	govnr.TreeSupervisor

	Runtime   *runtime.Runtime
	Accounts  *accountstorage.Service
	Linkboard *linkboard.Service
	Events    *events.Service

	EventPublisher eventsAdapter.EventPublisher
}

func NewNodeLogic(
	ctx context.Context,
	logger log.Logger,
	metricRegistry metric.Registry,
	nodeConfig config.NodeConfig,
	accountPersistence accountStorageAdapter.AccountPersistence,
	eventPublisher eventsAdapter.EventPublisher,
) (*NodeLogic, error) {

	accounts, err := accountstorage.NewAccountStorage(logger, metricRegistry, accountPersistence)
	if err != nil {
		return nil, err
	}

	eventsService := events.NewEventsService(ctx, logger, metricRegistry, nodeConfig, eventPublisher)
	program := linkboard.NewProgram(logger, metricRegistry, nodeConfig)

	logic := &NodeLogic{
		Runtime:   runtime.NewRuntime(logger, metricRegistry, nodeConfig, accounts, eventsService, program),
		Accounts:  accounts,
		Linkboard: linkboard.NewService(accounts),
		Events:    eventsService,

		EventPublisher: eventPublisher,
	}

	metricRegistry.NewText("Node.Version.Semantic", config.GetVersion().Semantic)
	metricRegistry.NewText("Node.Version.Commit", config.GetVersion().Commit)
	metricRegistry.NewText("AccountStorage.Backend", nodeConfig.AccountStorageBackend())

	logic.Supervise(eventsService)
	logic.Supervise(metricRegistry.ReportEvery(ctx, nodeConfig.MetricsReportInterval(), logger))

	logger.Info("node logic started", log.Stringable("program", program.ProgramId()), log.Uint32("store-space-bytes", nodeConfig.LinkboardStoreSpaceBytes()))

	return logic, nil
}
