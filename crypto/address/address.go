// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package address

import (
	"bytes"
	"github.com/mr-tron/base58"
	"github.com/orbs-network/orbs-linkboard-go/crypto/hash"
	"github.com/pkg/errors"
)

const ADDRESS_SIZE_BYTES = 32

// Address identifies an account. Signer accounts are addressed by their raw
// ed25519 public key, program accounts by a derived id.
type Address [ADDRESS_SIZE_BYTES]byte

// SystemProgram owns every account that no program has claimed yet.
var SystemProgram = Address{}

func FromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != ADDRESS_SIZE_BYTES {
		return a, errors.Errorf("address must be %d bytes, got %d", ADDRESS_SIZE_BYTES, len(b))
	}
	copy(a[:], b)
	return a, nil
}

func Parse(encoded string) (Address, error) {
	decoded, err := base58.Decode(encoded)
	if err != nil {
		return Address{}, errors.Wrapf(err, "invalid base58 address %q", encoded)
	}
	return FromBytes(decoded)
}

func MustParse(encoded string) Address {
	a, err := Parse(encoded)
	if err != nil {
		panic(err.Error())
	}
	return a
}

// Derive hashes a seed into a stable address for accounts that have no key pair.
func Derive(seed string) Address {
	var a Address
	copy(a[:], hash.CalcSha256([]byte("derived:"), []byte(seed)))
	return a
}

func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) String() string {
	return base58.Encode(a[:])
}

func (a Address) KeyForMap() string {
	return string(a[:])
}

func (a Address) Equal(other Address) bool {
	return a == other
}

func (a Address) Less(other Address) bool {
	return bytes.Compare(a[:], other[:]) < 0
}

func (a Address) IsZero() bool {
	return a == SystemProgram
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
