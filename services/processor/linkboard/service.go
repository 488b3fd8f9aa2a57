// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package linkboard

import (
	"context"
	"github.com/orbs-network/orbs-linkboard-go/crypto/address"
	"github.com/orbs-network/orbs-linkboard-go/services/accountstorage"
	"github.com/pkg/errors"
)

type AccountReader interface {
	ReadAccount(ctx context.Context, addr address.Address) (*accountstorage.Account, error)
}

// Service reads committed stores for outside callers.
type Service struct {
	accounts AccountReader
}

func NewService(accounts AccountReader) *Service {
	return &Service{accounts: accounts}
}

func (s *Service) GetStore(ctx context.Context, addr address.Address) (*Store, error) {
	account, err := s.accounts.ReadAccount(ctx, addr)
	if err != nil {
		return nil, err
	}
	if account.IsEmpty() {
		return nil, errors.Wrapf(ErrStoreNotFound, "address %s", addr)
	}
	if !account.Owner.Equal(ProgramId) {
		return nil, errors.Wrapf(ErrNotAStore, "address %s is owned by %s", addr, account.Owner)
	}

	store, err := ReadAccountData(account.Data)
	if err != nil {
		return nil, errors.Wrapf(ErrNotAStore, "address %s: %s", addr, err)
	}
	return store, nil
}
