// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package runtime

import (
	"context"
	"github.com/orbs-network/orbs-linkboard-go/crypto/address"
	"github.com/orbs-network/orbs-linkboard-go/instrumentation/logfields"
	"github.com/orbs-network/orbs-linkboard-go/services/accountstorage"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"math"
)

// AllocationCost is what the payer is debited for space bytes of account data.
func AllocationCost(space uint64, lamportsPerByte uint64) (uint64, error) {
	if lamportsPerByte != 0 && space > math.MaxUint64/lamportsPerByte {
		return 0, errors.Wrapf(ErrAllocation, "cost of %d bytes overflows", space)
	}
	return space * lamportsPerByte, nil
}

// CreateAccount is the system allocator. It moves the cost of space bytes from payer to target,
// gives target zeroed data of that length and makes the invoking program its owner.
func (i *Invocation) CreateAccount(payer *AccountInfo, target *AccountInfo, space uint64) error {
	if !payer.IsSigner || !payer.IsWritable {
		return errors.Wrapf(ErrAllocation, "payer %s must be a writable signer", payer.Address)
	}
	if !target.IsSigner || !target.IsWritable {
		return errors.Wrapf(ErrAllocation, "new account %s must be a writable signer", target.Address)
	}
	if payer.Address.Equal(target.Address) {
		return errors.Wrapf(ErrAllocation, "account %s cannot fund itself", target.Address)
	}
	if (target.loaded != nil && !target.loaded.IsEmpty()) || !target.Account.IsEmpty() {
		return errors.Wrapf(ErrAlreadyInitialized, "account %s already in use", target.Address)
	}
	if !payer.Account.Owner.Equal(address.SystemProgram) || len(payer.Account.Data) != 0 {
		return errors.Wrapf(ErrAllocation, "payer %s must be a system account without data", payer.Address)
	}

	if payer.Account.Balance != i.trackedBalance(payer) {
		return errors.Wrapf(ErrConstraintViolation, "balance of %s changed outside the system allocator", payer.Address)
	}

	cost, err := AllocationCost(space, i.lamportsPerByte)
	if err != nil {
		return err
	}
	if payer.Account.Balance < cost {
		return errors.Wrapf(ErrAllocation, "payer %s holds %d lamports, allocating %d bytes costs %d", payer.Address, payer.Account.Balance, space, cost)
	}

	payer.Account.Balance -= cost
	target.Account.Balance += cost
	target.Account.Data = make([]byte, space)
	target.Account.Owner = i.ProgramId

	i.allocations[target.Address] = &allocation{space: space, owner: i.ProgramId}
	i.balances[payer.Address] = payer.Account.Balance
	i.balances[target.Address] = target.Account.Balance
	return nil
}

// Airdrop credits lamports to a system owned account outside of any transaction.
func (r *Runtime) Airdrop(ctx context.Context, to address.Address, lamports uint64) (primitives.BlockHeight, error) {
	if lamports == 0 {
		return 0, errors.Wrap(ErrInvalidTransaction, "airdrop of zero lamports")
	}

	lockCtx, cancel := context.WithTimeout(ctx, r.config.RuntimeLockTimeout())
	defer cancel()
	release, err := r.locks.acquire(lockCtx, []address.Address{to})
	if err != nil {
		return 0, err
	}
	defer release()

	account, err := r.storage.ReadAccount(ctx, to)
	if err != nil {
		return 0, err
	}
	if !account.Owner.Equal(address.SystemProgram) {
		return 0, errors.Wrapf(ErrConstraintViolation, "account %s is owned by %s, airdrops go to system accounts", to, account.Owner)
	}
	if account.Balance > math.MaxUint64-lamports {
		return 0, errors.Wrapf(ErrInvalidTransaction, "balance of %s would overflow", to)
	}
	account.Balance += lamports

	r.commitMutex.Lock()
	slot, err := r.storage.CommitAccounts(ctx, []*accountstorage.Account{account})
	r.commitMutex.Unlock()
	if err != nil {
		return 0, err
	}

	r.logger.Info("airdrop committed", logfields.Account("to", to), log.Uint64("lamports", lamports), logfields.Slot(slot))
	return slot, nil
}
