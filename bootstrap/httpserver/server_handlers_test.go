// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"github.com/orbs-network/orbs-linkboard-go/client"
	"github.com/orbs-network/orbs-linkboard-go/config"
	"github.com/orbs-network/orbs-linkboard-go/crypto/address"
	"github.com/orbs-network/orbs-linkboard-go/jsonapi"
	"github.com/orbs-network/orbs-linkboard-go/services/processor/linkboard"
	"github.com/orbs-network/orbs-linkboard-go/test/crypto/keys"
	"github.com/orbs-network/orbs-linkboard-go/test/with"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/stretchr/testify/require"
	"net/http"
	"strings"
	"testing"
)

const spaceForTests = 200

func requireHttpError(t *testing.T, err error, code int) *jsonapi.HttpError {
	require.Error(t, err)
	httpErr, ok := err.(*jsonapi.HttpError)
	require.True(t, ok, "expected an http error, got %v", err)
	require.Equal(t, code, httpErr.Code, "unexpected http status: %s", httpErr.Message)
	return httpErr
}

func (h *harness) initializeStore(t *testing.T, space uint64) (*jsonapi.TransactionReceipt, primitives.BlockHeight) {
	ctx := context.Background()
	storeKey := keys.Ed25519KeyPairForTests(0)
	payer := keys.Ed25519KeyPairForTests(1)

	_, err := h.client.Airdrop(ctx, payer.Address(), space*10)
	require.NoError(t, err)

	status, err := h.client.GetStatus(ctx)
	require.NoError(t, err)

	slot := primitives.BlockHeight(status.LastCommittedSlot)
	tx, err := client.InitializeTransaction(slot, storeKey, payer)
	require.NoError(t, err)

	receipt, err := h.client.SendTransaction(ctx, tx)
	require.NoError(t, err)
	return receipt, slot
}

func TestHttpServer_InitializeAppendAndRead(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(t, parent.Logger, config.ForTests(spaceForTests))
		ctx := context.Background()
		storeKey := keys.Ed25519KeyPairForTests(0)
		submitter := keys.Ed25519KeyPairForTests(2)

		receipt, slot := h.initializeStore(t, spaceForTests)
		require.Equal(t, "COMMITTED", receipt.Status)

		tx, err := client.AppendEntryTransaction(slot, storeKey.Address(), submitter, "https://example.com/cat.gif")
		require.NoError(t, err)

		receipt, err = h.client.SendTransaction(ctx, tx)
		require.NoError(t, err)
		require.Equal(t, "COMMITTED", receipt.Status)
		require.Len(t, receipt.Events, 1)
		require.Equal(t, linkboard.ENTRY_APPENDED_EVENT, receipt.Events[0].Name)
		require.Equal(t, linkboard.ProgramId, receipt.Events[0].Program)

		appended := &linkboard.EntryAppended{}
		require.NoError(t, json.Unmarshal(receipt.Events[0].Payload, appended))
		require.EqualValues(t, 0, appended.Index)
		require.EqualValues(t, 1, appended.TotalCount)
		require.Equal(t, submitter.Address(), appended.Submitter)

		board, err := h.client.GetLinkboard(ctx, storeKey.Address())
		require.NoError(t, err)
		require.EqualValues(t, 1, board.TotalCount)
		require.Equal(t, []jsonapi.Entry{{Link: "https://example.com/cat.gif", Submitter: submitter.Address()}}, board.Entries)

		fetched, err := h.client.GetTransactionReceipt(ctx, receipt.TxHash)
		require.NoError(t, err)
		require.Equal(t, receipt, fetched)

		account, err := h.client.GetAccount(ctx, storeKey.Address())
		require.NoError(t, err)
		require.Equal(t, linkboard.ProgramId, account.Owner)
		require.Len(t, account.Data, spaceForTests)
	})
}

func TestHttpServer_RejectedTransactionReturnsReceipt(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(t, parent.Logger, config.ForTests(spaceForTests))
		ctx := context.Background()

		_, slot := h.initializeStore(t, spaceForTests)

		tx, err := client.InitializeTransaction(slot, keys.Ed25519KeyPairForTests(0), keys.Ed25519KeyPairForTests(1))
		require.NoError(t, err)

		receipt, err := h.client.SendTransaction(ctx, tx)
		httpErr := requireHttpError(t, err, http.StatusConflict)
		require.NotNil(t, receipt, "rejected transactions should come back with a receipt")
		require.Equal(t, "REJECTED_DUPLICATE", receipt.Status)
		require.Equal(t, receipt, httpErr.Receipt)
	})
}

func TestHttpServer_AppendBeyondCapacity(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		space := uint64(linkboard.MinimalAccountSize + 40)
		h := newHarness(t, parent.Logger, config.ForTests(uint32(space)))
		ctx := context.Background()

		_, slot := h.initializeStore(t, space)

		tx, err := client.AppendEntryTransaction(slot, keys.Ed25519KeyPairForTests(0).Address(), keys.Ed25519KeyPairForTests(2), strings.Repeat("x", 40))
		require.NoError(t, err)

		receipt, err := h.client.SendTransaction(ctx, tx)
		requireHttpError(t, err, http.StatusInsufficientStorage)
		require.Equal(t, "ERROR_CAPACITY_EXCEEDED", receipt.Status)

		board, err := h.client.GetLinkboard(ctx, keys.Ed25519KeyPairForTests(0).Address())
		require.NoError(t, err)
		require.Empty(t, board.Entries, "failed append should leave the store untouched")
	})
}

func TestHttpServer_GetLinkboardErrors(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(t, parent.Logger, config.ForTests(spaceForTests))
		ctx := context.Background()

		_, err := h.client.GetLinkboard(ctx, address.Derive("nothing here"))
		requireHttpError(t, err, http.StatusNotFound)

		wallet := keys.Ed25519AddressForTests(3)
		_, err = h.client.Airdrop(ctx, wallet, 10)
		require.NoError(t, err)

		_, err = h.client.GetLinkboard(ctx, wallet)
		requireHttpError(t, err, http.StatusBadRequest)

		res, err := http.Get(h.server.URL + "/api/v1/linkboard?address=not-base58-0OIl")
		require.NoError(t, err)
		res.Body.Close()
		require.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}

func TestHttpServer_Airdrop(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(t, parent.Logger, config.ForTests(spaceForTests))
		ctx := context.Background()
		wallet := keys.Ed25519AddressForTests(3)

		res, err := h.client.Airdrop(ctx, wallet, 500)
		require.NoError(t, err)
		require.Equal(t, wallet, res.Address)
		require.EqualValues(t, h.runtime.LastCommittedSlot(), res.Slot)

		account, err := h.client.GetAccount(ctx, wallet)
		require.NoError(t, err)
		require.EqualValues(t, 500, account.Balance)
		require.Equal(t, address.SystemProgram, account.Owner)

		_, err = h.client.Airdrop(ctx, wallet, 0)
		requireHttpError(t, err, http.StatusBadRequest)

		_, err = h.client.Airdrop(ctx, wallet, 10000001)
		requireHttpError(t, err, http.StatusBadRequest)
	})
}

func TestHttpServer_AirdropWhenFaucetDisabled(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		cfg := config.ForTests(spaceForTests)
		cfg.SetBool(config.FAUCET_ENABLED, false)
		h := newHarness(t, parent.Logger, cfg)

		_, err := h.client.Airdrop(context.Background(), keys.Ed25519AddressForTests(3), 10)
		requireHttpError(t, err, http.StatusForbidden)
	})
}

func TestHttpServer_SendTransactionBadRequests(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(t, parent.Logger, config.ForTests(spaceForTests))

		res, err := http.Get(h.server.URL + "/api/v1/send-transaction")
		require.NoError(t, err)
		res.Body.Close()
		require.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)

		for _, body := range []string{"", "{", `{"transaction":"***"}`, `{"transaction":"AAAA"}`} {
			res, err := http.Post(h.server.URL+"/api/v1/send-transaction", "application/json", bytes.NewReader([]byte(body)))
			require.NoError(t, err)
			res.Body.Close()
			require.Equal(t, http.StatusBadRequest, res.StatusCode, "body %q should be rejected", body)
		}
	})
}

func TestHttpServer_SendTransactionIsRateLimited(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		cfg := config.ForTests(spaceForTests)
		cfg.SetUint32(config.HTTP_SEND_TRANSACTION_RATE_PER_SECOND, 1)
		cfg.SetUint32(config.HTTP_SEND_TRANSACTION_BURST, 1)
		h := newHarness(t, parent.Logger, cfg)

		post := func() int {
			res, err := http.Post(h.server.URL+"/api/v1/send-transaction", "application/json", bytes.NewReader([]byte("{}")))
			require.NoError(t, err)
			res.Body.Close()
			return res.StatusCode
		}

		require.Equal(t, http.StatusBadRequest, post(), "first request should pass the limiter")
		require.Equal(t, http.StatusTooManyRequests, post(), "second request should be throttled")
	})
}

func TestHttpServer_GetTransactionReceiptErrors(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(t, parent.Logger, config.ForTests(spaceForTests))
		ctx := context.Background()

		_, err := h.client.GetTransactionReceipt(ctx, "zz")
		requireHttpError(t, err, http.StatusBadRequest)

		_, err = h.client.GetTransactionReceipt(ctx, strings.Repeat("ab", 32))
		requireHttpError(t, err, http.StatusNotFound)
	})
}

func TestHttpServer_StatusAndMetrics(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(t, parent.Logger, config.ForTests(spaceForTests))
		ctx := context.Background()

		_, err := h.client.Airdrop(ctx, keys.Ed25519AddressForTests(3), 10)
		require.NoError(t, err)

		status, err := h.client.GetStatus(ctx)
		require.NoError(t, err)
		require.EqualValues(t, h.runtime.LastCommittedSlot(), status.LastCommittedSlot)
		require.Equal(t, config.GetVersion(), status.Version)

		res, err := http.Get(h.server.URL + "/metrics")
		require.NoError(t, err)
		defer res.Body.Close()
		require.Equal(t, http.StatusOK, res.StatusCode)

		exported := map[string]interface{}{}
		require.NoError(t, json.NewDecoder(res.Body).Decode(&exported))
		require.Contains(t, exported, "Runtime.CommittedTransactions.Count")
	})
}
