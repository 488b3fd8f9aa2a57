// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package bootstrap

import (
	"context"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-linkboard-go/bootstrap/httpserver"
	"github.com/orbs-network/orbs-linkboard-go/config"
	"github.com/orbs-network/orbs-linkboard-go/instrumentation/metric"
	accountStorageAdapter "github.com/orbs-network/orbs-linkboard-go/services/accountstorage/adapter"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"sync"
)

type Node struct {
	govnr.TreeSupervisor
	logger             log.Logger
	logic              *NodeLogic
	httpServer         *httpserver.HttpServer
	accountPersistence accountStorageAdapter.AccountPersistence
	ctxCancel          context.CancelFunc
	shutdownOnce       sync.Once
	shutdownComplete   chan struct{}
}

func NewNode(nodeConfig config.NodeConfig, logger log.Logger) (*Node, error) {
	nodeLogger := logger.WithTags(log.String("node", nodeConfig.HttpAddress()))
	metricRegistry := metric.NewRegistry()

	accountPersistence, err := newAccountPersistence(nodeLogger, metricRegistry, nodeConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open account storage")
	}

	eventPublisher, err := newEventPublisher(nodeLogger, nodeConfig)
	if err != nil {
		accountPersistence.Close()
		return nil, errors.Wrap(err, "failed to create event publisher")
	}

	ctx, ctxCancel := context.WithCancel(context.Background())
	logic, err := NewNodeLogic(ctx, nodeLogger, metricRegistry, nodeConfig, accountPersistence, eventPublisher)
	if err != nil {
		ctxCancel()
		eventPublisher.Close()
		accountPersistence.Close()
		return nil, err
	}

	httpServer, err := httpserver.NewHttpServer(nodeConfig, nodeLogger, logic.Runtime, logic.Accounts, logic.Linkboard, metricRegistry)
	if err != nil {
		ctxCancel()
		logic.Events.GracefulShutdown(context.Background())
		accountPersistence.Close()
		return nil, err
	}

	n := &Node{
		logger:             nodeLogger,
		logic:              logic,
		httpServer:         httpServer,
		accountPersistence: accountPersistence,
		ctxCancel:          ctxCancel,
		shutdownComplete:   make(chan struct{}),
	}
	n.Supervise(logic)
	return n, nil
}

func (n *Node) Port() int {
	return n.httpServer.Port()
}

func (n *Node) Logic() *NodeLogic {
	return n.logic
}

// GracefulShutdown stops accepting requests, stops background publishing and closes storage. Only the first call has effect.
func (n *Node) GracefulShutdown(shutdownContext context.Context) {
	n.shutdownOnce.Do(func() {
		n.logger.Info("shutting down")
		n.httpServer.GracefulShutdown(shutdownContext)
		n.ctxCancel()
		n.logic.Events.GracefulShutdown(shutdownContext)
		if err := n.accountPersistence.Close(); err != nil {
			n.logger.Error("failed to close account storage", log.Error(err))
		}
		close(n.shutdownComplete)
	})
}

func (n *Node) WaitUntilShutdown(shutdownContext context.Context) {
	select {
	case <-n.shutdownComplete:
	case <-shutdownContext.Done():
		return
	}
	n.TreeSupervisor.WaitUntilShutdown(shutdownContext)
}
