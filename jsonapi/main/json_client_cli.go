// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package main

import (
	"context"
	"flag"
	"github.com/orbs-network/orbs-linkboard-go/client"
	"github.com/orbs-network/orbs-linkboard-go/crypto/address"
	"github.com/orbs-network/orbs-linkboard-go/crypto/keys"
	"github.com/orbs-network/orbs-linkboard-go/jsonapi"
	"github.com/orbs-network/orbs-linkboard-go/services/runtime"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/scribe/log"
	"os"
	"time"
)

// linkboard-cli --command=<status|airdrop|initialize|append|show> --api-endpoint=<http://....> [--private-key=<hex>] [--store-key=<hex>] [--store=<address>] [--link=<url>]
func main() {
	commandPtr := flag.String("command", "status", "status | airdrop | initialize | append | show")
	apiEndpointPtr := flag.String("api-endpoint", "http://localhost:8080", "<http://...>")
	privateKeyPtr := flag.String("private-key", "", "hex ed25519 private key of the signer, generated when empty")
	storeKeyPtr := flag.String("store-key", "", "hex ed25519 private key of the store account for initialize")
	storePtr := flag.String("store", "", "base58 store address for append and show")
	linkPtr := flag.String("link", "", "link to append")
	lamportsPtr := flag.Uint64("lamports", 100000, "airdrop amount")
	timeoutPtr := flag.Duration("timeout", 10*time.Second, "request timeout")

	flag.Parse()

	logger := log.GetLogger(log.String("api-endpoint", *apiEndpointPtr)).WithOutput(log.NewFormattingOutput(os.Stdout, log.NewHumanReadableFormatter()))
	api := jsonapi.NewClient(*apiEndpointPtr, *timeoutPtr)
	ctx := context.Background()

	signer := keyPairOrGenerate(logger, "signer", *privateKeyPtr)

	switch *commandPtr {
	case "status":
		status, err := api.GetStatus(ctx)
		exitOnError(logger, "failed to get status", err)
		logger.Info("node status", log.Uint64("last-committed-slot", status.LastCommittedSlot), log.Int64("uptime", status.Uptime), log.String("version", status.Version.Semantic))

	case "airdrop":
		res, err := api.Airdrop(ctx, signer.Address(), *lamportsPtr)
		exitOnError(logger, "airdrop failed", err)
		logger.Info("airdrop committed", log.Stringable("address", res.Address), log.Uint64("slot", res.Slot))

	case "initialize":
		storeKey := keyPairOrGenerate(logger, "store", *storeKeyPtr)
		tx, err := client.InitializeTransaction(recentSlot(ctx, logger, api), storeKey, signer)
		exitOnError(logger, "failed to build transaction", err)
		sendAndLog(ctx, logger, api, tx)

	case "append":
		store := parseStore(logger, *storePtr)
		tx, err := client.AppendEntryTransaction(recentSlot(ctx, logger, api), store, signer, *linkPtr)
		exitOnError(logger, "failed to build transaction", err)
		sendAndLog(ctx, logger, api, tx)

	case "show":
		board, err := api.GetLinkboard(ctx, parseStore(logger, *storePtr))
		exitOnError(logger, "failed to read linkboard", err)
		logger.Info("linkboard", log.Stringable("address", board.Address), log.Uint64("total-count", board.TotalCount))
		for i, entry := range board.Entries {
			logger.Info("entry", log.Int("index", i), log.String("link", entry.Link), log.Stringable("submitter", entry.Submitter))
		}

	default:
		logger.Error("unknown command", log.String("command", *commandPtr))
		os.Exit(2)
	}
}

func keyPairOrGenerate(logger log.Logger, name string, privateKeyHex string) *keys.Ed25519KeyPair {
	if privateKeyHex != "" {
		keyPair, err := keys.Ed25519KeyPairFromHex(privateKeyHex)
		exitOnError(logger, "invalid "+name+" key", err)
		return keyPair
	}

	keyPair, err := keys.GenerateEd25519Key()
	exitOnError(logger, "failed to generate "+name+" key", err)
	logger.Info("generated key pair", log.String("name", name), log.Stringable("address", keyPair.Address()), log.String("private-key", keyPair.PrivateKeyHex()))
	return keyPair
}

func parseStore(logger log.Logger, encoded string) address.Address {
	store, err := address.Parse(encoded)
	exitOnError(logger, "invalid store address", err)
	return store
}

func recentSlot(ctx context.Context, logger log.Logger, api *jsonapi.Client) primitives.BlockHeight {
	status, err := api.GetStatus(ctx)
	exitOnError(logger, "failed to get status", err)
	return primitives.BlockHeight(status.LastCommittedSlot)
}

func sendAndLog(ctx context.Context, logger log.Logger, api *jsonapi.Client, tx *runtime.Transaction) {
	receipt, err := api.SendTransaction(ctx, tx)
	exitOnError(logger, "transaction failed", err)
	logger.Info("transaction committed", log.String("tx-hash", receipt.TxHash), log.Uint64("slot", receipt.Slot), log.Int("events", len(receipt.Events)))
}

func exitOnError(logger log.Logger, message string, err error) {
	if err != nil {
		logger.Error(message, log.Error(err))
		os.Exit(1)
	}
}
