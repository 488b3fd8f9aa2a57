// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package runtime

import (
	"context"
	"github.com/orbs-network/orbs-linkboard-go/crypto/address"
	"github.com/orbs-network/orbs-linkboard-go/services/accountstorage"
)

// Program is on-chain logic hosted by the runtime. Execute mutates the accounts of the invocation in place;
// a returned error discards every change.
type Program interface {
	ProgramId() address.Address
	Name() string
	Execute(ctx context.Context, invocation *Invocation) error
}

// AccountInfo is the view a program gets of one instruction account. Account is a transaction local copy.
type AccountInfo struct {
	Address    address.Address
	IsSigner   bool
	IsWritable bool
	Account    *accountstorage.Account

	loaded *accountstorage.Account
}

type Invocation struct {
	ProgramId address.Address
	Accounts  []*AccountInfo
	Data      []byte

	lamportsPerByte uint64
	allocations     map[address.Address]*allocation
	balances        map[address.Address]uint64
	events          []*Event
}

type allocation struct {
	space uint64
	owner address.Address
}

func newInvocation(programId address.Address, accounts []*AccountInfo, data []byte, lamportsPerByte uint64) *Invocation {
	return &Invocation{
		ProgramId:       programId,
		Accounts:        accounts,
		Data:            data,
		lamportsPerByte: lamportsPerByte,
		allocations:     make(map[address.Address]*allocation),
		balances:        make(map[address.Address]uint64),
	}
}

// trackedBalance is the balance info must hold given what the system allocator did so far.
func (i *Invocation) trackedBalance(info *AccountInfo) uint64 {
	if balance, ok := i.balances[info.Address]; ok {
		return balance
	}
	if info.loaded != nil {
		return info.loaded.Balance
	}
	return info.Account.Balance
}

func (i *Invocation) EmitEvent(name string, payload interface{}) {
	i.events = append(i.events, &Event{
		Name:    name,
		Program: i.ProgramId,
		Payload: payload,
	})
}

func (i *Invocation) Events() []*Event {
	return i.events
}
