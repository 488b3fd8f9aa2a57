// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package adapter

import (
	"github.com/orbs-network/go-mock"
	"github.com/orbs-network/orbs-linkboard-go/crypto/address"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
)

type AccountPersistenceMock struct {
	mock.Mock
}

func (m *AccountPersistenceMock) Write(slot primitives.BlockHeight, diff []Record) error {
	return m.Called(slot, diff).Error(0)
}

func (m *AccountPersistenceMock) Read(addr address.Address) ([]byte, bool, error) {
	ret := m.Called(addr)
	return ret.Get(0).([]byte), ret.Bool(1), ret.Error(2)
}

func (m *AccountPersistenceMock) ReadMetadata() (primitives.BlockHeight, error) {
	ret := m.Called()
	return ret.Get(0).(primitives.BlockHeight), ret.Error(1)
}

func (m *AccountPersistenceMock) Close() error {
	return m.Called().Error(0)
}
