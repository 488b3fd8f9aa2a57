// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package linkboard

import (
	"bytes"
	"encoding/binary"
	"github.com/orbs-network/orbs-linkboard-go/crypto/address"
	"github.com/orbs-network/orbs-linkboard-go/crypto/hash"
	"github.com/pkg/errors"
	"unicode/utf8"
)

// Store serialization, little endian:
//
//	[u64 total_count][u32 entry_count] { [u32 link_len][link][32 submitter] }
//
// The account holding a store prefixes it with AccountDiscriminator and pads it with zeros up to its allocated size.

const (
	storeHeaderSize    = 8 + 4
	entryOverheadSize  = 4 + address.ADDRESS_SIZE_BYTES
	accountHeaderSize  = hash.DISCRIMINATOR_SIZE_BYTES
	MinimalAccountSize = accountHeaderSize + storeHeaderSize
)

var AccountDiscriminator = hash.CalcDiscriminator("account", "BaseAccount")

type Entry struct {
	Link      string
	Submitter address.Address
}

type Store struct {
	TotalCount uint64
	Entries    []Entry
}

func entrySize(link string) int {
	return entryOverheadSize + len(link)
}

func (s *Store) EncodedSize() int {
	size := storeHeaderSize
	for _, e := range s.Entries {
		size += entrySize(e.Link)
	}
	return size
}

func (s *Store) Encode() []byte {
	buf := make([]byte, 0, s.EncodedSize())
	buf = binary.LittleEndian.AppendUint64(buf, s.TotalCount)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(s.Entries)))
	for _, e := range s.Entries {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(e.Link)))
		buf = append(buf, e.Link...)
		buf = append(buf, e.Submitter[:]...)
	}
	return buf
}

// DecodeStore reads a store from the start of raw. Bytes after the last entry are ignored.
func DecodeStore(raw []byte) (*Store, error) {
	if len(raw) < storeHeaderSize {
		return nil, errors.Errorf("store needs at least %d bytes, got %d", storeHeaderSize, len(raw))
	}
	s := &Store{TotalCount: binary.LittleEndian.Uint64(raw)}
	count := binary.LittleEndian.Uint32(raw[8:])
	offset := storeHeaderSize

	// every entry takes at least entryOverheadSize bytes, a larger count cannot be real
	if uint64(count) > uint64(len(raw)-offset)/entryOverheadSize {
		return nil, errors.Errorf("store claims %d entries in %d bytes", count, len(raw)-offset)
	}
	s.Entries = make([]Entry, 0, count)

	for i := uint32(0); i < count; i++ {
		if len(raw)-offset < 4 {
			return nil, errors.Errorf("entry %d truncated at offset %d", i, offset)
		}
		linkLen := int(binary.LittleEndian.Uint32(raw[offset:]))
		offset += 4
		if linkLen < 0 || len(raw)-offset < linkLen+address.ADDRESS_SIZE_BYTES {
			return nil, errors.Errorf("entry %d with link of %d bytes truncated at offset %d", i, linkLen, offset)
		}
		link := raw[offset : offset+linkLen]
		if !utf8.Valid(link) {
			return nil, errors.Errorf("entry %d link is not valid utf8", i)
		}
		offset += linkLen
		var submitter address.Address
		copy(submitter[:], raw[offset:])
		offset += address.ADDRESS_SIZE_BYTES

		s.Entries = append(s.Entries, Entry{Link: string(link), Submitter: submitter})
	}
	return s, nil
}

// WriteAccountData overwrites data with the discriminator, the store and zero padding. data keeps its length.
func WriteAccountData(data []byte, s *Store) error {
	required := accountHeaderSize + s.EncodedSize()
	if required > len(data) {
		return errors.Wrapf(ErrCapacityExceeded, "store needs %d bytes, account holds %d", required, len(data))
	}
	n := copy(data, AccountDiscriminator[:])
	n += copy(data[n:], s.Encode())
	for i := n; i < len(data); i++ {
		data[i] = 0
	}
	return nil
}

// ReadAccountData decodes the store held by an account, checking the discriminator and the counter.
func ReadAccountData(data []byte) (*Store, error) {
	if len(data) < MinimalAccountSize {
		return nil, errors.Errorf("account data of %d bytes cannot hold a store", len(data))
	}
	if !bytes.Equal(data[:accountHeaderSize], AccountDiscriminator[:]) {
		return nil, errors.New("account discriminator mismatch")
	}
	s, err := DecodeStore(data[accountHeaderSize:])
	if err != nil {
		return nil, err
	}
	if s.TotalCount != uint64(len(s.Entries)) {
		return nil, errors.Errorf("store counts %d submissions but holds %d entries", s.TotalCount, len(s.Entries))
	}
	return s, nil
}
