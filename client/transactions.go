// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

// Package client builds and signs linkboard transactions the way a wallet would.
package client

import (
	"github.com/orbs-network/orbs-linkboard-go/crypto/address"
	"github.com/orbs-network/orbs-linkboard-go/crypto/keys"
	"github.com/orbs-network/orbs-linkboard-go/services/processor/linkboard"
	"github.com/orbs-network/orbs-linkboard-go/services/runtime"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
)

// InitializeTransaction creates the store at the address of storeKey, paid by payer. Both sign.
func InitializeTransaction(recentSlot primitives.BlockHeight, storeKey *keys.Ed25519KeyPair, payer *keys.Ed25519KeyPair) (*runtime.Transaction, error) {
	tx := &runtime.Transaction{
		RecentSlot: recentSlot,
		FeePayer:   payer.Address(),
		Instruction: runtime.Instruction{
			ProgramId: linkboard.ProgramId,
			Accounts: []runtime.AccountMeta{
				{Address: storeKey.Address(), IsSigner: true, IsWritable: true},
				{Address: payer.Address(), IsSigner: true, IsWritable: true},
				{Address: address.SystemProgram},
			},
			Data: linkboard.EncodeInitialize(),
		},
	}
	if err := tx.Sign(storeKey, payer); err != nil {
		return nil, err
	}
	return tx, nil
}

// AppendEntryTransaction submits link to store, signed and paid by submitter.
func AppendEntryTransaction(recentSlot primitives.BlockHeight, store address.Address, submitter *keys.Ed25519KeyPair, link string) (*runtime.Transaction, error) {
	tx := &runtime.Transaction{
		RecentSlot: recentSlot,
		FeePayer:   submitter.Address(),
		Instruction: runtime.Instruction{
			ProgramId: linkboard.ProgramId,
			Accounts: []runtime.AccountMeta{
				{Address: store, IsWritable: true},
				{Address: submitter.Address(), IsSigner: true, IsWritable: true},
			},
			Data: linkboard.EncodeAppendEntry(link),
		},
	}
	if err := tx.Sign(submitter); err != nil {
		return nil, err
	}
	return tx, nil
}
