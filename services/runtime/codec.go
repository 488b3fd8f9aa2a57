// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package runtime

import (
	"encoding/binary"
	"github.com/orbs-network/orbs-linkboard-go/crypto/address"
	"github.com/orbs-network/orbs-linkboard-go/crypto/signature"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/pkg/errors"
)

// Message layout, every integer little endian:
//
//	[u64 recent_slot][32 fee_payer][32 program_id]
//	[u8 account_count] { [32 address][u8 flags] }
//	[u32 data_len][data]
//
// A wire transaction is the message followed by [u8 signature_count] { [32 public_key][64 signature] }.

const (
	accountFlagSigner   = 1 << 0
	accountFlagWritable = 1 << 1
	accountFlagsMask    = accountFlagSigner | accountFlagWritable

	encodedAccountMetaSize = address.ADDRESS_SIZE_BYTES + 1
	encodedSignatureSize   = address.ADDRESS_SIZE_BYTES + signature.ED25519_SIGNATURE_SIZE_BYTES
)

func (tx *Transaction) messageSize() int {
	return 8 + 2*address.ADDRESS_SIZE_BYTES + 1 + len(tx.Instruction.Accounts)*encodedAccountMetaSize + 4 + len(tx.Instruction.Data)
}

// Message is the byte string every signer signs.
func (tx *Transaction) Message() []byte {
	return tx.appendMessage(make([]byte, 0, tx.messageSize()))
}

func (tx *Transaction) appendMessage(buf []byte) []byte {
	buf = binary.LittleEndian.AppendUint64(buf, uint64(tx.RecentSlot))
	buf = append(buf, tx.FeePayer[:]...)
	buf = append(buf, tx.Instruction.ProgramId[:]...)
	buf = append(buf, uint8(len(tx.Instruction.Accounts)))
	for _, meta := range tx.Instruction.Accounts {
		buf = append(buf, meta.Address[:]...)
		buf = append(buf, encodeAccountFlags(meta))
	}
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(tx.Instruction.Data)))
	buf = append(buf, tx.Instruction.Data...)
	return buf
}

func EncodeTransaction(tx *Transaction) []byte {
	buf := make([]byte, 0, tx.messageSize()+1+len(tx.Signatures)*encodedSignatureSize)
	buf = tx.appendMessage(buf)
	buf = append(buf, uint8(len(tx.Signatures)))
	for _, s := range tx.Signatures {
		buf = append(buf, s.PublicKey[:]...)
		buf = append(buf, s.Signature...)
	}
	return buf
}

func DecodeTransaction(raw []byte) (*Transaction, error) {
	r := &reader{buf: raw}
	tx := &Transaction{}

	tx.RecentSlot = primitives.BlockHeight(r.uint64())
	tx.FeePayer = r.address()
	tx.Instruction.ProgramId = r.address()

	accountCount := int(r.uint8())
	if accountCount > MAX_INSTRUCTION_ACCOUNTS {
		return nil, errors.Wrapf(ErrInvalidTransaction, "encoded instruction names %d accounts, max is %d", accountCount, MAX_INSTRUCTION_ACCOUNTS)
	}
	for i := 0; i < accountCount && r.err == nil; i++ {
		meta := AccountMeta{Address: r.address()}
		flags := r.uint8()
		if flags&^accountFlagsMask != 0 {
			return nil, errors.Wrapf(ErrInvalidTransaction, "account %d has unknown flags %#x", i, flags)
		}
		meta.IsSigner = flags&accountFlagSigner != 0
		meta.IsWritable = flags&accountFlagWritable != 0
		tx.Instruction.Accounts = append(tx.Instruction.Accounts, meta)
	}

	dataLen := r.uint32()
	if dataLen > MAX_INSTRUCTION_DATA_BYTES {
		return nil, errors.Wrapf(ErrInvalidTransaction, "encoded instruction data is %d bytes, max is %d", dataLen, MAX_INSTRUCTION_DATA_BYTES)
	}
	if data := r.bytes(int(dataLen)); len(data) > 0 {
		tx.Instruction.Data = append([]byte(nil), data...)
	}

	signatureCount := int(r.uint8())
	if signatureCount > MAX_TRANSACTION_SIGNATURES {
		return nil, errors.Wrapf(ErrInvalidTransaction, "encoded transaction carries %d signatures, max is %d", signatureCount, MAX_TRANSACTION_SIGNATURES)
	}
	for i := 0; i < signatureCount && r.err == nil; i++ {
		s := TransactionSignature{PublicKey: r.address()}
		if sig := r.bytes(signature.ED25519_SIGNATURE_SIZE_BYTES); sig != nil {
			s.Signature = append(primitives.Ed25519Sig(nil), sig...)
		}
		tx.Signatures = append(tx.Signatures, s)
	}

	if r.err != nil {
		return nil, errors.Wrap(ErrInvalidTransaction, r.err.Error())
	}
	if r.remaining() != 0 {
		return nil, errors.Wrapf(ErrInvalidTransaction, "%d trailing bytes after transaction", r.remaining())
	}
	return tx, nil
}

func encodeAccountFlags(meta AccountMeta) uint8 {
	var flags uint8
	if meta.IsSigner {
		flags |= accountFlagSigner
	}
	if meta.IsWritable {
		flags |= accountFlagWritable
	}
	return flags
}

// reader keeps the first error and returns zero values afterwards.
type reader struct {
	buf    []byte
	offset int
	err    error
}

func (r *reader) remaining() int {
	return len(r.buf) - r.offset
}

func (r *reader) bytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	if r.remaining() < n {
		r.err = errors.Errorf("truncated at offset %d, need %d more bytes", r.offset, n)
		return nil
	}
	b := r.buf[r.offset : r.offset+n]
	r.offset += n
	return b
}

func (r *reader) uint8() uint8 {
	if b := r.bytes(1); b != nil {
		return b[0]
	}
	return 0
}

func (r *reader) uint32() uint32 {
	if b := r.bytes(4); b != nil {
		return binary.LittleEndian.Uint32(b)
	}
	return 0
}

func (r *reader) uint64() uint64 {
	if b := r.bytes(8); b != nil {
		return binary.LittleEndian.Uint64(b)
	}
	return 0
}

func (r *reader) address() address.Address {
	var a address.Address
	if b := r.bytes(address.ADDRESS_SIZE_BYTES); b != nil {
		copy(a[:], b)
	}
	return a
}
