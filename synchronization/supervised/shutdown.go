// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package supervised

import (
	"context"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-linkboard-go/instrumentation/logfields"
	"github.com/orbs-network/scribe/log"
	"os"
	"os/signal"
	"syscall"
	"time"
)

type GracefulShutdowner interface {
	govnr.ShutdownWaiter
	GracefulShutdown(shutdownContext context.Context)
}

func ShutdownGracefully(s GracefulShutdowner, timeout time.Duration) {
	shutdownContext, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	s.GracefulShutdown(shutdownContext)
}

type OSShutdownListener struct {
	Logger     log.Logger
	shutdowner GracefulShutdowner
	timeout    time.Duration
	signals    chan os.Signal
}

func NewShutdownListener(logger log.Logger, shutdowner GracefulShutdowner) *OSShutdownListener {
	return &OSShutdownListener{
		Logger:     logger,
		shutdowner: shutdowner,
		timeout:    5 * time.Second,
		signals:    make(chan os.Signal, 1),
	}
}

// ListenToOSShutdownSignal shuts the node down gracefully on the first SIGINT or SIGTERM.
func (n *OSShutdownListener) ListenToOSShutdownSignal() {
	signal.Notify(n.signals, os.Interrupt, syscall.SIGTERM)
	n.listen()
}

func (n *OSShutdownListener) listen() {
	govnr.Once(logfields.GovnrErrorer(n.Logger), func() {
		sig := <-n.signals
		n.Logger.Info("terminating node gracefully due to os signal received", log.Stringable("signal", sig))

		ShutdownGracefully(n.shutdowner, n.timeout)
	})
}
