// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package runtime

import (
	"github.com/orbs-network/orbs-linkboard-go/crypto/address"
	"github.com/orbs-network/orbs-linkboard-go/crypto/hash"
	"github.com/orbs-network/orbs-linkboard-go/crypto/keys"
	"github.com/orbs-network/orbs-linkboard-go/crypto/signature"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/pkg/errors"
)

const (
	MAX_INSTRUCTION_ACCOUNTS   = 32
	MAX_TRANSACTION_SIGNATURES = 16
	MAX_INSTRUCTION_DATA_BYTES = 64 * 1024
)

type AccountMeta struct {
	Address    address.Address
	IsSigner   bool
	IsWritable bool
}

type Instruction struct {
	ProgramId address.Address
	Accounts  []AccountMeta
	Data      []byte
}

type TransactionSignature struct {
	PublicKey address.Address
	Signature primitives.Ed25519Sig
}

// Transaction carries a single instruction. The fee payer is always a writable signer.
type Transaction struct {
	RecentSlot  primitives.BlockHeight
	FeePayer    address.Address
	Instruction Instruction
	Signatures  []TransactionSignature
}

func (tx *Transaction) Hash() primitives.Sha256 {
	return hash.CalcSha256(tx.Message())
}

// RequiredSigners lists the fee payer followed by every signer account meta, without repetitions.
func (tx *Transaction) RequiredSigners() []address.Address {
	signers := []address.Address{tx.FeePayer}
	seen := map[address.Address]bool{tx.FeePayer: true}
	for _, meta := range tx.Instruction.Accounts {
		if meta.IsSigner && !seen[meta.Address] {
			seen[meta.Address] = true
			signers = append(signers, meta.Address)
		}
	}
	return signers
}

// WritableAddresses lists the fee payer and every writable account meta, without repetitions.
func (tx *Transaction) WritableAddresses() []address.Address {
	writable := []address.Address{tx.FeePayer}
	seen := map[address.Address]bool{tx.FeePayer: true}
	for _, meta := range tx.Instruction.Accounts {
		if meta.IsWritable && !seen[meta.Address] {
			seen[meta.Address] = true
			writable = append(writable, meta.Address)
		}
	}
	return writable
}

// Sign adds a signature over the message for each key pair, replacing an earlier signature by the same key.
func (tx *Transaction) Sign(keyPairs ...*keys.Ed25519KeyPair) error {
	message := tx.Message()
	for _, kp := range keyPairs {
		sig, err := signature.SignEd25519(kp.PrivateKey(), message)
		if err != nil {
			return errors.Wrapf(err, "failed to sign transaction by %s", kp.Address())
		}
		tx.setSignature(kp.Address(), sig)
	}
	return nil
}

func (tx *Transaction) setSignature(signer address.Address, sig primitives.Ed25519Sig) {
	for i := range tx.Signatures {
		if tx.Signatures[i].PublicKey.Equal(signer) {
			tx.Signatures[i].Signature = sig
			return
		}
	}
	tx.Signatures = append(tx.Signatures, TransactionSignature{PublicKey: signer, Signature: sig})
}

func (tx *Transaction) signatureBy(signer address.Address) (primitives.Ed25519Sig, bool) {
	for _, s := range tx.Signatures {
		if s.PublicKey.Equal(signer) {
			return s.Signature, true
		}
	}
	return nil, false
}

func validateStructure(tx *Transaction) error {
	if tx.FeePayer.IsZero() {
		return errors.Wrap(ErrInvalidTransaction, "fee payer is not set")
	}
	accounts := tx.Instruction.Accounts
	if len(accounts) == 0 {
		return errors.Wrap(ErrInvalidTransaction, "instruction names no accounts")
	}
	if len(accounts) > MAX_INSTRUCTION_ACCOUNTS {
		return errors.Wrapf(ErrInvalidTransaction, "instruction names %d accounts, max is %d", len(accounts), MAX_INSTRUCTION_ACCOUNTS)
	}
	if len(tx.Instruction.Data) > MAX_INSTRUCTION_DATA_BYTES {
		return errors.Wrapf(ErrInvalidTransaction, "instruction data is %d bytes, max is %d", len(tx.Instruction.Data), MAX_INSTRUCTION_DATA_BYTES)
	}
	if len(tx.Signatures) > MAX_TRANSACTION_SIGNATURES {
		return errors.Wrapf(ErrInvalidTransaction, "transaction carries %d signatures, max is %d", len(tx.Signatures), MAX_TRANSACTION_SIGNATURES)
	}

	seen := make(map[address.Address]bool, len(accounts))
	for _, meta := range accounts {
		if seen[meta.Address] {
			return errors.Wrapf(ErrInvalidTransaction, "account %s appears more than once", meta.Address)
		}
		seen[meta.Address] = true
	}
	return nil
}

// verifySignatures requires a valid signature from every required signer. Extra signatures must be valid too.
func verifySignatures(tx *Transaction, message []byte) error {
	for _, signer := range tx.RequiredSigners() {
		if _, ok := tx.signatureBy(signer); !ok {
			return errors.Wrapf(ErrSignatureMissing, "no signature by %s", signer)
		}
	}

	seen := make(map[address.Address]bool, len(tx.Signatures))
	for _, s := range tx.Signatures {
		if seen[s.PublicKey] {
			return errors.Wrapf(ErrInvalidTransaction, "more than one signature by %s", s.PublicKey)
		}
		seen[s.PublicKey] = true
		// the all zero key is a small order point that ed25519 verification accepts forgeries for
		if s.PublicKey.Equal(address.SystemProgram) {
			return errors.Wrap(ErrNotAuthorized, "the system program cannot sign")
		}
		if !signature.VerifyEd25519(s.PublicKey.Bytes(), message, s.Signature) {
			return errors.Wrapf(ErrNotAuthorized, "bad signature by %s", s.PublicKey)
		}
	}
	return nil
}
