// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package accountstorage

import (
	"github.com/orbs-network/orbs-linkboard-go/crypto/address"
	"github.com/orbs-network/orbs-linkboard-go/test"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestAccountCodec_RoundTrip(t *testing.T) {
	account := &Account{
		Address:    address.Derive("store"),
		Owner:      address.Derive("program"),
		Balance:    90000,
		Data:       []byte{1, 2, 3, 0, 0},
		Executable: false,
	}

	decoded, err := DecodeAccount(account.Address, EncodeAccount(account))
	require.NoError(t, err)
	test.RequireCmpEqual(t, account, decoded)
}

func TestAccountCodec_RoundTripWithoutData(t *testing.T) {
	account := &Account{
		Address:    address.Derive("program"),
		Owner:      address.SystemProgram,
		Balance:    1,
		Executable: true,
	}

	encoded := EncodeAccount(account)
	require.Len(t, encoded, accountHeaderSize)

	decoded, err := DecodeAccount(account.Address, encoded)
	require.NoError(t, err)
	test.RequireCmpEqual(t, account, decoded)
}

func TestAccountCodec_RejectsTruncatedRecords(t *testing.T) {
	account := &Account{Address: address.Derive("store"), Data: []byte("data")}
	encoded := EncodeAccount(account)

	_, err := DecodeAccount(account.Address, encoded[:accountHeaderSize-1])
	require.Error(t, err, "header too short")

	_, err = DecodeAccount(account.Address, encoded[:len(encoded)-1])
	require.Error(t, err, "data shorter than declared")
}

func TestAccountCodec_RejectsInvalidExecutableFlag(t *testing.T) {
	account := &Account{Address: address.Derive("store")}
	encoded := EncodeAccount(account)
	encoded[address.ADDRESS_SIZE_BYTES+8] = 7

	_, err := DecodeAccount(account.Address, encoded)
	require.Error(t, err)
}

func TestAccount_IsEmpty(t *testing.T) {
	require.True(t, EmptyAccount(address.Derive("a")).IsEmpty())
	require.False(t, (&Account{Balance: 1}).IsEmpty())
	require.False(t, (&Account{Data: []byte{0}}).IsEmpty())
	require.False(t, (&Account{Owner: address.Derive("program")}).IsEmpty())
}

func TestAccount_CloneIsIndependent(t *testing.T) {
	original := &Account{Address: address.Derive("a"), Data: []byte{1, 2, 3}}
	clone := original.Clone()
	clone.Data[0] = 9
	clone.Balance = 5

	require.Equal(t, []byte{1, 2, 3}, original.Data)
	require.EqualValues(t, 0, original.Balance)
	require.False(t, original.Equal(clone))
}
