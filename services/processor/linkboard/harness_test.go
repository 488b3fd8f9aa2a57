// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package linkboard_test

import (
	"context"
	"github.com/orbs-network/orbs-linkboard-go/client"
	"github.com/orbs-network/orbs-linkboard-go/config"
	"github.com/orbs-network/orbs-linkboard-go/crypto/address"
	"github.com/orbs-network/orbs-linkboard-go/crypto/keys"
	"github.com/orbs-network/orbs-linkboard-go/instrumentation/metric"
	"github.com/orbs-network/orbs-linkboard-go/services/accountstorage"
	"github.com/orbs-network/orbs-linkboard-go/services/accountstorage/adapter/memory"
	"github.com/orbs-network/orbs-linkboard-go/services/processor/linkboard"
	"github.com/orbs-network/orbs-linkboard-go/services/runtime"
	"github.com/orbs-network/scribe/log"
	"github.com/stretchr/testify/require"
	"testing"
)

const lamportsPerByte = 10

type harness struct {
	t       testing.TB
	storage *accountstorage.Service
	runtime *runtime.Runtime
	service *linkboard.Service
}

func newHarness(t testing.TB, logger log.Logger, storeSpaceBytes uint32) *harness {
	cfg := config.ForTests(storeSpaceBytes)
	registry := metric.NewRegistry()
	storage, err := accountstorage.NewAccountStorage(logger, registry, memory.NewAccountPersistence(registry))
	require.NoError(t, err)

	return &harness{
		t:       t,
		storage: storage,
		runtime: runtime.NewRuntime(logger, registry, cfg, storage, nil, linkboard.NewProgram(logger, registry, cfg)),
		service: linkboard.NewService(storage),
	}
}

func (h *harness) fund(addr address.Address, lamports uint64) {
	_, err := h.runtime.Airdrop(context.Background(), addr, lamports)
	require.NoError(h.t, err)
}

func (h *harness) initialize(storeKey *keys.Ed25519KeyPair, payer *keys.Ed25519KeyPair) (*runtime.Receipt, error) {
	tx, err := client.InitializeTransaction(h.runtime.LastCommittedSlot(), storeKey, payer)
	require.NoError(h.t, err)
	return h.runtime.Execute(context.Background(), tx)
}

func (h *harness) requireInitialized(storeKey *keys.Ed25519KeyPair, payer *keys.Ed25519KeyPair, space uint32) {
	h.fund(payer.Address(), uint64(space)*lamportsPerByte)
	_, err := h.initialize(storeKey, payer)
	require.NoError(h.t, err)
}

func (h *harness) appendEntryTx(store address.Address, submitter *keys.Ed25519KeyPair, link string) (*runtime.Transaction, error) {
	return client.AppendEntryTransaction(h.runtime.LastCommittedSlot(), store, submitter, link)
}

func (h *harness) appendEntry(store address.Address, submitter *keys.Ed25519KeyPair, link string) (*runtime.Receipt, error) {
	tx, err := h.appendEntryTx(store, submitter, link)
	require.NoError(h.t, err)
	return h.runtime.Execute(context.Background(), tx)
}

func (h *harness) store(addr address.Address) *linkboard.Store {
	s, err := h.service.GetStore(context.Background(), addr)
	require.NoError(h.t, err)
	return s
}

func (h *harness) rawData(addr address.Address) []byte {
	account, err := h.storage.ReadAccount(context.Background(), addr)
	require.NoError(h.t, err)
	return account.Data
}
