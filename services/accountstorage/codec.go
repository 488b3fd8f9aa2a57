// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package accountstorage

import (
	"encoding/binary"
	"github.com/orbs-network/orbs-linkboard-go/crypto/address"
	"github.com/pkg/errors"
)

// persisted account value, the address is the storage key:
// [32 owner][u64 LE balance][u8 executable][u32 LE data length][data]
const accountHeaderSize = address.ADDRESS_SIZE_BYTES + 8 + 1 + 4

func EncodeAccount(a *Account) []byte {
	buf := make([]byte, accountHeaderSize+len(a.Data))
	copy(buf, a.Owner[:])
	offset := address.ADDRESS_SIZE_BYTES
	binary.LittleEndian.PutUint64(buf[offset:], a.Balance)
	offset += 8
	if a.Executable {
		buf[offset] = 1
	}
	offset++
	binary.LittleEndian.PutUint32(buf[offset:], uint32(len(a.Data)))
	offset += 4
	copy(buf[offset:], a.Data)
	return buf
}

func DecodeAccount(addr address.Address, raw []byte) (*Account, error) {
	if len(raw) < accountHeaderSize {
		return nil, errors.Errorf("account %s record is truncated (%d bytes)", addr, len(raw))
	}

	a := &Account{Address: addr}
	copy(a.Owner[:], raw[:address.ADDRESS_SIZE_BYTES])
	offset := address.ADDRESS_SIZE_BYTES
	a.Balance = binary.LittleEndian.Uint64(raw[offset:])
	offset += 8
	switch raw[offset] {
	case 0:
	case 1:
		a.Executable = true
	default:
		return nil, errors.Errorf("account %s record has invalid executable flag %d", addr, raw[offset])
	}
	offset++
	dataLen := int(binary.LittleEndian.Uint32(raw[offset:]))
	offset += 4
	if len(raw)-offset != dataLen {
		return nil, errors.Errorf("account %s record declares %d data bytes but holds %d", addr, dataLen, len(raw)-offset)
	}
	if dataLen > 0 {
		a.Data = append([]byte(nil), raw[offset:]...)
	}
	return a, nil
}
