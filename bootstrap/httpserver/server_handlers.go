// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package httpserver

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"github.com/orbs-network/orbs-linkboard-go/crypto/hash"
	"github.com/orbs-network/orbs-linkboard-go/instrumentation/logfields"
	"github.com/orbs-network/orbs-linkboard-go/jsonapi"
	"github.com/orbs-network/orbs-linkboard-go/services/processor/linkboard"
	"github.com/orbs-network/orbs-linkboard-go/services/runtime"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"net/http"
)

func (s *HttpServer) robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, err := w.Write([]byte("User-agent: *\nDisallow: /\n"))
	if err != nil {
		s.logger.Info("error writing robots.txt response", log.Error(err))
	}
}

func (s *HttpServer) dumpMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	bytes, _ := json.Marshal(s.metricRegistry.ExportAll())
	_, err := w.Write(bytes)
	if err != nil {
		s.logger.Info("error writing response", log.Error(err))
	}
}

func (s *HttpServer) sendTransactionHandler(w http.ResponseWriter, r *http.Request) {
	if e := requireMethod(r, http.MethodPost); e != nil {
		s.writeErrorResponseAndLog(w, e)
		return
	}

	if !s.limiter.Allow() {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusTooManyRequests, nil, "too many transactions, try again later"})
		return
	}

	request := &jsonapi.SendTransactionRequest{}
	if e := readJson(r, request); e != nil {
		s.writeErrorResponseAndLog(w, e)
		return
	}

	raw, err := base64.StdEncoding.DecodeString(request.Transaction)
	if err != nil {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusBadRequest, log.Error(err), "transaction is not valid base64"})
		return
	}

	tx, err := runtime.DecodeTransaction(raw)
	if err != nil {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusBadRequest, log.Error(err), "transaction could not be decoded"})
		return
	}

	s.logger.Info("http server received send-transaction", logfields.Transaction(tx.Hash()), logfields.Program(tx.Instruction.ProgramId))

	ctx, cancel := context.WithTimeout(r.Context(), s.config.HttpSendTransactionTimeout())
	defer cancel()

	receipt, _ := s.runtime.Execute(ctx, tx)
	s.writeJsonResponse(w, translateExecutionStatusToHttpCode(receipt.Status), s.toReceiptJson(receipt))
}

func (s *HttpServer) getTransactionReceiptHandler(w http.ResponseWriter, r *http.Request) {
	if e := requireMethod(r, http.MethodGet); e != nil {
		s.writeErrorResponseAndLog(w, e)
		return
	}

	txHash, err := hex.DecodeString(r.URL.Query().Get("tx_hash"))
	if err != nil || len(txHash) != hash.SHA256_HASH_SIZE_BYTES {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusBadRequest, log.String("tx_hash", r.URL.Query().Get("tx_hash")), "tx_hash must be a hex encoded sha256"})
		return
	}

	receipt, found := s.runtime.GetReceipt(primitives.Sha256(txHash))
	if !found {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusNotFound, logfields.Transaction(txHash), "transaction receipt not found"})
		return
	}
	s.writeJsonResponse(w, http.StatusOK, s.toReceiptJson(receipt))
}

func (s *HttpServer) getAccountHandler(w http.ResponseWriter, r *http.Request) {
	if e := requireMethod(r, http.MethodGet); e != nil {
		s.writeErrorResponseAndLog(w, e)
		return
	}

	addr, e := readAddressParam(r, "address")
	if e != nil {
		s.writeErrorResponseAndLog(w, e)
		return
	}

	account, err := s.accounts.ReadAccount(r.Context(), addr)
	if err != nil {
		s.logger.Error("failed to read account", logfields.Account("address", addr), log.Error(err))
		s.writeJsonResponse(w, http.StatusInternalServerError, &jsonapi.ErrorResponse{Error: "failed to read account"})
		return
	}

	s.writeJsonResponse(w, http.StatusOK, &jsonapi.Account{
		Address:    account.Address,
		Owner:      account.Owner,
		Balance:    account.Balance,
		Data:       account.Data,
		Executable: account.Executable,
	})
}

func (s *HttpServer) getLinkboardHandler(w http.ResponseWriter, r *http.Request) {
	if e := requireMethod(r, http.MethodGet); e != nil {
		s.writeErrorResponseAndLog(w, e)
		return
	}

	addr, e := readAddressParam(r, "address")
	if e != nil {
		s.writeErrorResponseAndLog(w, e)
		return
	}

	store, err := s.stores.GetStore(r.Context(), addr)
	switch cause := errors.Cause(err); {
	case err == nil:
	case cause == linkboard.ErrStoreNotFound:
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusNotFound, log.Error(err), "linkboard not found"})
		return
	case cause == linkboard.ErrNotAStore:
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusBadRequest, log.Error(err), "account is not a linkboard"})
		return
	default:
		s.logger.Error("failed to read linkboard", logfields.Account("address", addr), log.Error(err))
		s.writeJsonResponse(w, http.StatusInternalServerError, &jsonapi.ErrorResponse{Error: "failed to read linkboard"})
		return
	}

	board := &jsonapi.Linkboard{
		Address:    addr,
		TotalCount: store.TotalCount,
		Entries:    make([]jsonapi.Entry, 0, len(store.Entries)),
	}
	for _, entry := range store.Entries {
		board.Entries = append(board.Entries, jsonapi.Entry{Link: entry.Link, Submitter: entry.Submitter})
	}
	s.writeJsonResponse(w, http.StatusOK, board)
}

func (s *HttpServer) airdropHandler(w http.ResponseWriter, r *http.Request) {
	if !s.config.FaucetEnabled() {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusForbidden, nil, "faucet is disabled"})
		return
	}

	if e := requireMethod(r, http.MethodPost); e != nil {
		s.writeErrorResponseAndLog(w, e)
		return
	}

	request := &jsonapi.AirdropRequest{}
	if e := readJson(r, request); e != nil {
		s.writeErrorResponseAndLog(w, e)
		return
	}

	if request.Lamports == 0 || request.Lamports > s.config.FaucetMaxAirdropLamports() {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusBadRequest, log.Uint64("lamports", request.Lamports), "airdrop amount must be between 1 and the faucet maximum"})
		return
	}

	slot, err := s.runtime.Airdrop(r.Context(), request.Address, request.Lamports)
	if err != nil {
		status := runtime.StatusOf(err)
		s.writeErrorResponseAndLog(w, &httpErr{translateExecutionStatusToHttpCode(status), log.Error(err), "airdrop failed: " + status.String()})
		return
	}

	s.writeJsonResponse(w, http.StatusOK, &jsonapi.AirdropResponse{Address: request.Address, Slot: uint64(slot)})
}

func (s *HttpServer) toReceiptJson(receipt *runtime.Receipt) *jsonapi.TransactionReceipt {
	res := &jsonapi.TransactionReceipt{
		TxHash: hex.EncodeToString(receipt.TxHash),
		Slot:   uint64(receipt.Slot),
		Status: receipt.Status.String(),
		Error:  receipt.Error,
	}

	for _, event := range receipt.Events {
		payload, err := json.Marshal(event.Payload)
		if err != nil {
			s.logger.Error("failed to marshal event payload", log.String("event", event.Name), log.Error(err))
			payload = nil
		}
		res.Events = append(res.Events, jsonapi.Event{Name: event.Name, Program: event.Program, Payload: payload})
	}
	return res
}
