// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package bootstrap

import (
	"context"
	"fmt"
	"github.com/orbs-network/orbs-linkboard-go/client"
	"github.com/orbs-network/orbs-linkboard-go/config"
	"github.com/orbs-network/orbs-linkboard-go/jsonapi"
	eventsMemory "github.com/orbs-network/orbs-linkboard-go/services/events/adapter/memory"
	"github.com/orbs-network/orbs-linkboard-go/test"
	"github.com/orbs-network/orbs-linkboard-go/test/crypto/keys"
	"github.com/orbs-network/orbs-linkboard-go/test/with"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

const storeSpaceForTests = 300

func startNode(t *testing.T, parent *with.LoggingHarness, cfg config.NodeConfig) (*Node, *jsonapi.Client) {
	node, err := NewNode(cfg, parent.Logger)
	require.NoError(t, err)
	return node, jsonapi.NewClient(fmt.Sprintf("http://127.0.0.1:%d", node.Port()), 5*time.Second)
}

func stopNode(node *Node) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	node.GracefulShutdown(ctx)
	node.WaitUntilShutdown(ctx)
}

func initializeAndAppend(t *testing.T, ctx context.Context, api *jsonapi.Client, links ...string) {
	storeKey := keys.Ed25519KeyPairForTests(0)
	payer := keys.Ed25519KeyPairForTests(1)

	_, err := api.Airdrop(ctx, payer.Address(), storeSpaceForTests*10)
	require.NoError(t, err)

	status, err := api.GetStatus(ctx)
	require.NoError(t, err)
	slot := primitives.BlockHeight(status.LastCommittedSlot)

	tx, err := client.InitializeTransaction(slot, storeKey, payer)
	require.NoError(t, err)
	_, err = api.SendTransaction(ctx, tx)
	require.NoError(t, err)

	for _, link := range links {
		tx, err := client.AppendEntryTransaction(slot, storeKey.Address(), payer, link)
		require.NoError(t, err)
		_, err = api.SendTransaction(ctx, tx)
		require.NoError(t, err)
	}
}

func TestNode_ServesLinkboardAndPublishesEvents(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			node, api := startNode(t, parent, config.ForTests(storeSpaceForTests))
			defer stopNode(node)

			initializeAndAppend(t, ctx, api, "a.gif", "b.gif")

			board, err := api.GetLinkboard(ctx, keys.Ed25519AddressForTests(0))
			require.NoError(t, err)
			require.EqualValues(t, 2, board.TotalCount)
			require.Equal(t, "a.gif", board.Entries[0].Link)
			require.Equal(t, "b.gif", board.Entries[1].Link)

			require.True(t, test.Eventually(func() bool {
				return len(node.Logic().EventPublisher.(*eventsMemory.MemoryPublisher).Messages()) == 2
			}), "both appends should be published")
		})
	})
}

func TestNode_ResumesFromPersistedAccounts(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			cfg := config.ForTests(storeSpaceForTests)
			cfg.SetString(config.ACCOUNT_STORAGE_BACKEND, config.ACCOUNT_STORAGE_BACKEND_BADGER)
			cfg.SetString(config.ACCOUNT_STORAGE_DATA_DIR, t.TempDir())

			node, api := startNode(t, parent, cfg)
			initializeAndAppend(t, ctx, api, "persisted.gif")
			statusBefore, err := api.GetStatus(ctx)
			require.NoError(t, err)
			stopNode(node)

			node, api = startNode(t, parent, cfg)
			defer stopNode(node)

			statusAfter, err := api.GetStatus(ctx)
			require.NoError(t, err)
			require.Equal(t, statusBefore.LastCommittedSlot, statusAfter.LastCommittedSlot, "slot should survive a restart")

			board, err := api.GetLinkboard(ctx, keys.Ed25519AddressForTests(0))
			require.NoError(t, err)
			require.Equal(t, []jsonapi.Entry{{Link: "persisted.gif", Submitter: keys.Ed25519AddressForTests(1)}}, board.Entries)
		})
	})
}

func TestNode_RefusesUnknownStorageBackend(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		cfg := config.ForTests(storeSpaceForTests)
		cfg.SetString(config.ACCOUNT_STORAGE_BACKEND, "floppy")

		_, err := NewNode(cfg, parent.Logger)
		require.Error(t, err)
	})
}

func TestNode_ShutdownIsIdempotent(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		node, _ := startNode(t, parent, config.ForTests(storeSpaceForTests))
		stopNode(node)
		stopNode(node)
	})
}
