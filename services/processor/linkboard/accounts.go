// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package linkboard

import (
	"github.com/orbs-network/orbs-linkboard-go/crypto/address"
	"github.com/orbs-network/orbs-linkboard-go/services/runtime"
)

type initializeAccounts struct {
	store         *runtime.AccountInfo
	payer         *runtime.AccountInfo
	systemProgram *runtime.AccountInfo
}

// bindInitializeAccounts expects [store, payer, system_program].
func bindInitializeAccounts(accounts []*runtime.AccountInfo) (*initializeAccounts, error) {
	if len(accounts) != 3 {
		return nil, constraintViolation("accounts", "%s takes 3 accounts, got %d", INITIALIZE_METHOD, len(accounts))
	}
	bound := &initializeAccounts{store: accounts[0], payer: accounts[1], systemProgram: accounts[2]}

	if !bound.store.IsWritable {
		return nil, constraintViolation("store", "must be writable")
	}
	if !bound.store.IsSigner {
		return nil, constraintViolation("store", "must sign its own creation")
	}
	if err := requireWritableSigner("payer", bound.payer); err != nil {
		return nil, err
	}
	if !bound.systemProgram.Address.Equal(address.SystemProgram) {
		return nil, constraintViolation("system_program", "expected %s, got %s", address.SystemProgram, bound.systemProgram.Address)
	}
	return bound, nil
}

type appendEntryAccounts struct {
	store     *runtime.AccountInfo
	submitter *runtime.AccountInfo
}

// bindAppendEntryAccounts expects [store, submitter].
func bindAppendEntryAccounts(programId address.Address, accounts []*runtime.AccountInfo) (*appendEntryAccounts, error) {
	if len(accounts) != 2 {
		return nil, constraintViolation("accounts", "%s takes 2 accounts, got %d", APPEND_ENTRY_METHOD, len(accounts))
	}
	bound := &appendEntryAccounts{store: accounts[0], submitter: accounts[1]}

	if !bound.store.IsWritable {
		return nil, constraintViolation("store", "must be writable")
	}
	if !bound.store.Account.Owner.Equal(programId) {
		return nil, constraintViolation("store", "owned by %s, not by this program", bound.store.Account.Owner)
	}
	if err := requireWritableSigner("submitter", bound.submitter); err != nil {
		return nil, err
	}
	return bound, nil
}

func requireWritableSigner(name string, account *runtime.AccountInfo) error {
	if !account.IsSigner {
		return constraintViolation(name, "must be a signer")
	}
	if !account.IsWritable {
		return constraintViolation(name, "must be writable")
	}
	return nil
}
