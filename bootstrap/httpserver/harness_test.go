// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package httpserver

import (
	"github.com/orbs-network/orbs-linkboard-go/config"
	"github.com/orbs-network/orbs-linkboard-go/instrumentation/metric"
	"github.com/orbs-network/orbs-linkboard-go/jsonapi"
	"github.com/orbs-network/orbs-linkboard-go/services/accountstorage"
	"github.com/orbs-network/orbs-linkboard-go/services/accountstorage/adapter/memory"
	"github.com/orbs-network/orbs-linkboard-go/services/processor/linkboard"
	"github.com/orbs-network/orbs-linkboard-go/services/runtime"
	"github.com/orbs-network/scribe/log"
	"github.com/stretchr/testify/require"
	"net/http/httptest"
	"testing"
	"time"
)

type harness struct {
	runtime *runtime.Runtime
	server  *httptest.Server
	client  *jsonapi.Client
}

func newHarness(t testing.TB, logger log.Logger, cfg config.NodeConfig) *harness {
	registry := metric.NewRegistry()
	storage, err := accountstorage.NewAccountStorage(logger, registry, memory.NewAccountPersistence(registry))
	require.NoError(t, err)

	rt := runtime.NewRuntime(logger, registry, cfg, storage, nil, linkboard.NewProgram(logger, registry, cfg))
	server := httptest.NewServer(newServer(cfg, logger, rt, storage, linkboard.NewService(storage), registry).createRouter())
	t.Cleanup(server.Close)

	return &harness{
		runtime: rt,
		server:  server,
		client:  jsonapi.NewClient(server.URL, 5*time.Second),
	}
}
