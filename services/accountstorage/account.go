// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package accountstorage

import (
	"bytes"
	"github.com/orbs-network/orbs-linkboard-go/crypto/address"
)

// Account is the host record behind every address. Data keeps the length it was allocated with.
type Account struct {
	Address    address.Address
	Owner      address.Address
	Balance    uint64
	Data       []byte
	Executable bool
}

// EmptyAccount is what reading a never written address yields: system owned, no balance, no data.
func EmptyAccount(addr address.Address) *Account {
	return &Account{
		Address: addr,
		Owner:   address.SystemProgram,
	}
}

// IsEmpty reports whether the account holds nothing worth persisting.
func (a *Account) IsEmpty() bool {
	return a.Balance == 0 && len(a.Data) == 0 && a.Owner.Equal(address.SystemProgram) && !a.Executable
}

func (a *Account) Clone() *Account {
	clone := *a
	if a.Data != nil {
		clone.Data = append([]byte(nil), a.Data...)
	}
	return &clone
}

func (a *Account) Equal(other *Account) bool {
	return a.Address.Equal(other.Address) &&
		a.Owner.Equal(other.Owner) &&
		a.Balance == other.Balance &&
		a.Executable == other.Executable &&
		bytes.Equal(a.Data, other.Data)
}
