// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package runtime

import (
	"github.com/orbs-network/orbs-linkboard-go/crypto/address"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
)

// Event is emitted by a program during a successful invocation. TxHash and Slot are set on commit.
type Event struct {
	Name    string
	Program address.Address
	TxHash  primitives.Sha256
	Slot    primitives.BlockHeight
	Payload interface{}
}

type Receipt struct {
	TxHash primitives.Sha256
	Slot   primitives.BlockHeight
	Status ExecutionStatus
	Error  string
	Events []*Event
}

func (r *Receipt) Committed() bool {
	return r.Status == EXECUTION_STATUS_COMMITTED
}
