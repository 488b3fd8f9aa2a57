// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package runtime

import (
	"context"
	"encoding/binary"
	"github.com/orbs-network/orbs-linkboard-go/config"
	"github.com/orbs-network/orbs-linkboard-go/crypto/address"
	"github.com/orbs-network/orbs-linkboard-go/crypto/keys"
	"github.com/orbs-network/orbs-linkboard-go/instrumentation/metric"
	"github.com/orbs-network/orbs-linkboard-go/services/accountstorage"
	"github.com/orbs-network/orbs-linkboard-go/services/accountstorage/adapter/memory"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"sync"
	"testing"
)

const (
	COUNTER_OP_CREATE = iota
	COUNTER_OP_INCREMENT
	COUNTER_OP_STEAL_LAMPORTS
	COUNTER_OP_FAIL_AFTER_WRITE
	COUNTER_OP_INFLATE_PAYER_AND_CREATE
)

const counterSpace = 8

// counterProgram keeps a u64 in each account it creates. It trusts the runtime for ownership checks.
type counterProgram struct {
	id address.Address
}

func newCounterProgram(seed string) *counterProgram {
	return &counterProgram{id: address.Derive(seed)}
}

func (p *counterProgram) ProgramId() address.Address {
	return p.id
}

func (p *counterProgram) Name() string {
	return "counter"
}

func (p *counterProgram) Execute(ctx context.Context, invocation *Invocation) error {
	if len(invocation.Data) == 0 {
		return errors.Wrap(ErrInvalidInstruction, "empty instruction data")
	}

	counter := invocation.Accounts[0].Account
	switch invocation.Data[0] {
	case COUNTER_OP_CREATE:
		return invocation.CreateAccount(invocation.Accounts[1], invocation.Accounts[0], counterSpace)
	case COUNTER_OP_INCREMENT:
		if len(counter.Data) != counterSpace {
			return errors.Wrap(ErrInvalidInstruction, "not a counter")
		}
		value := binary.LittleEndian.Uint64(counter.Data) + 1
		binary.LittleEndian.PutUint64(counter.Data, value)
		invocation.EmitEvent("Incremented", value)
	case COUNTER_OP_STEAL_LAMPORTS:
		counter.Balance++
	case COUNTER_OP_FAIL_AFTER_WRITE:
		binary.LittleEndian.PutUint64(counter.Data, 999)
		return errors.Wrap(ErrInvalidInstruction, "failing on purpose")
	case COUNTER_OP_INFLATE_PAYER_AND_CREATE:
		invocation.Accounts[1].Account.Balance += 1000000
		return invocation.CreateAccount(invocation.Accounts[1], invocation.Accounts[0], counterSpace)
	default:
		return errors.Wrapf(ErrInvalidInstruction, "unknown op %d", invocation.Data[0])
	}
	return nil
}

type eventRecorder struct {
	sync.Mutex
	events []*Event
}

func (r *eventRecorder) Publish(ctx context.Context, events []*Event) {
	r.Lock()
	defer r.Unlock()
	r.events = append(r.events, events...)
}

func (r *eventRecorder) recorded() []*Event {
	r.Lock()
	defer r.Unlock()
	return append([]*Event(nil), r.events...)
}

type harness struct {
	t       testing.TB
	runtime *Runtime
	storage *accountstorage.Service
	events  *eventRecorder
	counter *counterProgram
}

func newHarness(t testing.TB, logger log.Logger, cfg config.RuntimeConfig, programs ...Program) *harness {
	registry := metric.NewRegistry()
	storage, err := accountstorage.NewAccountStorage(logger, registry, memory.NewAccountPersistence(registry))
	require.NoError(t, err)

	counter := newCounterProgram("counter-program")
	events := &eventRecorder{}
	return &harness{
		t:       t,
		runtime: NewRuntime(logger, registry, cfg, storage, events, append([]Program{counter}, programs...)...),
		storage: storage,
		events:  events,
		counter: counter,
	}
}

func newDefaultHarness(t testing.TB, logger log.Logger) *harness {
	return newHarness(t, logger, config.ForTests(9000))
}

func (h *harness) fund(addr address.Address, lamports uint64) {
	_, err := h.runtime.Airdrop(context.Background(), addr, lamports)
	require.NoError(h.t, err)
}

func (h *harness) account(addr address.Address) *accountstorage.Account {
	account, err := h.storage.ReadAccount(context.Background(), addr)
	require.NoError(h.t, err)
	return account
}

func (h *harness) counterValue(addr address.Address) uint64 {
	data := h.account(addr).Data
	require.Len(h.t, data, counterSpace)
	return binary.LittleEndian.Uint64(data)
}

func (h *harness) createCounterTx(counter *keys.Ed25519KeyPair, payer *keys.Ed25519KeyPair) *Transaction {
	return &Transaction{
		RecentSlot: h.runtime.LastCommittedSlot(),
		FeePayer:   payer.Address(),
		Instruction: Instruction{
			ProgramId: h.counter.ProgramId(),
			Accounts: []AccountMeta{
				{Address: counter.Address(), IsSigner: true, IsWritable: true},
				{Address: payer.Address(), IsSigner: true, IsWritable: true},
			},
			Data: []byte{COUNTER_OP_CREATE},
		},
	}
}

func (h *harness) counterOpTx(op byte, nonce byte, counter address.Address, feePayer *keys.Ed25519KeyPair) *Transaction {
	return &Transaction{
		RecentSlot: h.runtime.LastCommittedSlot(),
		FeePayer:   feePayer.Address(),
		Instruction: Instruction{
			ProgramId: h.counter.ProgramId(),
			Accounts: []AccountMeta{
				{Address: counter, IsWritable: true},
			},
			Data: []byte{op, nonce},
		},
	}
}

func (h *harness) execute(tx *Transaction, signers ...*keys.Ed25519KeyPair) (*Receipt, error) {
	require.NoError(h.t, tx.Sign(signers...))
	return h.runtime.Execute(context.Background(), tx)
}

func (h *harness) requireCommitted(tx *Transaction, signers ...*keys.Ed25519KeyPair) *Receipt {
	receipt, err := h.execute(tx, signers...)
	require.NoError(h.t, err)
	require.True(h.t, receipt.Committed(), "transaction should commit")
	return receipt
}

func (h *harness) createCounter(counter *keys.Ed25519KeyPair, payer *keys.Ed25519KeyPair) {
	h.fund(payer.Address(), 1000)
	h.requireCommitted(h.createCounterTx(counter, payer), counter, payer)
}
