// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package jsonapi

import (
	"encoding/json"
	"github.com/orbs-network/orbs-linkboard-go/config"
	"github.com/orbs-network/orbs-linkboard-go/crypto/address"
)

// SendTransactionRequest carries a signed wire encoded transaction as standard base64.
type SendTransactionRequest struct {
	Transaction string `json:"transaction"`
}

type Event struct {
	Name    string          `json:"name"`
	Program address.Address `json:"program"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// TransactionReceipt is returned for executed transactions whether they committed or not.
// Status is the execution status name, e.g. COMMITTED or REJECTED_DUPLICATE.
type TransactionReceipt struct {
	TxHash string  `json:"tx_hash"`
	Slot   uint64  `json:"slot"`
	Status string  `json:"status"`
	Error  string  `json:"error,omitempty"`
	Events []Event `json:"events,omitempty"`
}

type Account struct {
	Address    address.Address `json:"address"`
	Owner      address.Address `json:"owner"`
	Balance    uint64          `json:"balance"`
	Data       []byte          `json:"data"`
	Executable bool            `json:"executable"`
}

type Entry struct {
	Link      string          `json:"link"`
	Submitter address.Address `json:"submitter"`
}

type Linkboard struct {
	Address    address.Address `json:"address"`
	TotalCount uint64          `json:"total_count"`
	Entries    []Entry         `json:"entries"`
}

type AirdropRequest struct {
	Address  address.Address `json:"address"`
	Lamports uint64          `json:"lamports"`
}

type AirdropResponse struct {
	Address address.Address `json:"address"`
	Slot    uint64          `json:"slot"`
}

type Status struct {
	LastCommittedSlot uint64         `json:"last_committed_slot"`
	Uptime            int64          `json:"uptime"`
	Version           config.Version `json:"version"`
}

// ErrorResponse is the body of every non transaction failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
