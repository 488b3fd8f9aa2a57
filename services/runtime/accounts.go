// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package runtime

import (
	"bytes"
	"context"
	"github.com/orbs-network/orbs-linkboard-go/services/accountstorage"
	"github.com/pkg/errors"
)

type accountView struct {
	pre      *accountstorage.Account
	writable bool
	info     *AccountInfo
}

// transactionAccounts is the transaction local state. Programs see copies; pre keeps what storage returned.
type transactionAccounts struct {
	instruction []*accountView
	all         []*accountView
}

func (r *Runtime) loadAccounts(ctx context.Context, tx *Transaction) (*transactionAccounts, error) {
	t := &transactionAccounts{}
	feePayerListed := false

	for _, meta := range tx.Instruction.Accounts {
		view, err := r.loadAccount(ctx, meta)
		if err != nil {
			return nil, err
		}
		t.instruction = append(t.instruction, view)
		t.all = append(t.all, view)
		if meta.Address.Equal(tx.FeePayer) {
			feePayerListed = true
		}
	}

	if !feePayerListed {
		view, err := r.loadAccount(ctx, AccountMeta{Address: tx.FeePayer, IsSigner: true, IsWritable: true})
		if err != nil {
			return nil, err
		}
		t.all = append(t.all, view)
	}

	return t, nil
}

func (r *Runtime) loadAccount(ctx context.Context, meta AccountMeta) (*accountView, error) {
	account, err := r.storage.ReadAccount(ctx, meta.Address)
	if err != nil {
		return nil, err
	}
	return &accountView{
		pre:      account,
		writable: meta.IsWritable,
		info: &AccountInfo{
			Address:    meta.Address,
			IsSigner:   meta.IsSigner,
			IsWritable: meta.IsWritable,
			Account:    account.Clone(),
			loaded:     account,
		},
	}, nil
}

func (t *transactionAccounts) instructionAccounts() []*AccountInfo {
	infos := make([]*AccountInfo, len(t.instruction))
	for i, v := range t.instruction {
		infos[i] = v.info
	}
	return infos
}

// verifyAndCollect checks what the program did to every account and returns copies of the modified ones.
func (t *transactionAccounts) verifyAndCollect(invocation *Invocation) ([]*accountstorage.Account, error) {
	var modified []*accountstorage.Account
	for _, v := range t.all {
		if err := v.verify(invocation); err != nil {
			return nil, err
		}
		if post := v.info.Account; !post.Equal(v.pre) {
			modified = append(modified, post.Clone())
		}
	}
	return modified, nil
}

func (v *accountView) verify(invocation *Invocation) error {
	pre, post := v.pre, v.info.Account
	addr := pre.Address

	if post == nil || !post.Address.Equal(addr) {
		return errors.Wrapf(ErrConstraintViolation, "account %s was replaced", addr)
	}
	if post.Executable != pre.Executable {
		return errors.Wrapf(ErrConstraintViolation, "executable flag of %s changed", addr)
	}
	if !v.writable {
		if !post.Equal(pre) {
			return errors.Wrapf(ErrConstraintViolation, "read only account %s was modified", addr)
		}
		return nil
	}

	expectedBalance := pre.Balance
	if balance, ok := invocation.balances[addr]; ok {
		expectedBalance = balance
	}
	if post.Balance != expectedBalance {
		return errors.Wrapf(ErrConstraintViolation, "balance of %s changed outside the system allocator", addr)
	}

	if alloc, ok := invocation.allocations[addr]; ok {
		if !post.Owner.Equal(alloc.owner) || uint64(len(post.Data)) != alloc.space {
			return errors.Wrapf(ErrConstraintViolation, "allocated account %s was reshaped", addr)
		}
		return nil
	}

	if !post.Owner.Equal(pre.Owner) {
		return errors.Wrapf(ErrConstraintViolation, "owner of %s changed outside the system allocator", addr)
	}
	if len(post.Data) != len(pre.Data) {
		return errors.Wrapf(ErrConstraintViolation, "data of %s was resized", addr)
	}
	if !bytes.Equal(post.Data, pre.Data) && !pre.Owner.Equal(invocation.ProgramId) {
		return errors.Wrapf(ErrConstraintViolation, "data of %s modified by program %s which does not own it", addr, invocation.ProgramId)
	}
	return nil
}
