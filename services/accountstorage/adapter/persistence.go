// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package adapter

import (
	"github.com/orbs-network/orbs-linkboard-go/crypto/address"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
)

// Record is one encoded account keyed by its address. An empty Value removes the account.
type Record struct {
	Address address.Address
	Value   []byte
}

type AccountPersistence interface {
	// Write applies every record and the new slot in a single atomic batch.
	Write(slot primitives.BlockHeight, diff []Record) error
	Read(addr address.Address) ([]byte, bool, error)
	ReadMetadata() (primitives.BlockHeight, error)
	Close() error
}
