// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package runtime

import (
	"context"
	"github.com/orbs-network/orbs-linkboard-go/config"
	"github.com/orbs-network/orbs-linkboard-go/crypto/address"
	"github.com/orbs-network/orbs-linkboard-go/instrumentation/logfields"
	"github.com/orbs-network/orbs-linkboard-go/instrumentation/metric"
	"github.com/orbs-network/orbs-linkboard-go/services/accountstorage"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"sync"
	"time"
)

type AccountStorage interface {
	ReadAccount(ctx context.Context, addr address.Address) (*accountstorage.Account, error)
	CommitAccounts(ctx context.Context, accounts []*accountstorage.Account) (primitives.BlockHeight, error)
	LastCommittedSlot() primitives.BlockHeight
}

// EventSink receives the events of every committed transaction, in commit order.
type EventSink interface {
	Publish(ctx context.Context, events []*Event)
}

type metrics struct {
	executionTime         *metric.Histogram
	committedTransactions *metric.Gauge
	failedTransactions    *metric.Gauge
	committedRate         *metric.Rate
}

func newMetrics(m metric.Factory) *metrics {
	return &metrics{
		executionTime:         m.NewLatency("Runtime.Execute.Time.Millis", 10*time.Second),
		committedTransactions: m.NewGauge("Runtime.CommittedTransactions.Count"),
		failedTransactions:    m.NewGauge("Runtime.FailedTransactions.Count"),
		committedRate:         m.NewRate("Runtime.CommittedTransactions.PerSecond"),
	}
}

type Runtime struct {
	logger   log.Logger
	config   config.RuntimeConfig
	storage  AccountStorage
	events   EventSink
	programs map[address.Address]Program
	locks    *accountLocks
	recent   *recentTransactions
	metrics  *metrics

	// commitMutex orders slot assignment and event publishing across transactions that share no account
	commitMutex sync.Mutex
}

// NewRuntime hosts programs over storage. events may be nil.
func NewRuntime(parent log.Logger, metricFactory metric.Factory, cfg config.RuntimeConfig, storage AccountStorage, events EventSink, programs ...Program) *Runtime {
	r := &Runtime{
		logger:   parent.WithTags(log.Service("runtime")),
		config:   cfg,
		storage:  storage,
		events:   events,
		programs: make(map[address.Address]Program, len(programs)),
		locks:    newAccountLocks(),
		recent:   newRecentTransactions(int(cfg.RuntimeRecentTransactionsCapacity())),
		metrics:  newMetrics(metricFactory),
	}
	for _, p := range programs {
		r.programs[p.ProgramId()] = p
		r.logger.Info("program registered", log.String("name", p.Name()), logfields.Program(p.ProgramId()))
	}
	return r
}

// Execute runs tx to completion. The receipt is never nil; the error is nil only when the receipt is committed.
func (r *Runtime) Execute(ctx context.Context, tx *Transaction) (*Receipt, error) {
	start := time.Now()
	defer r.metrics.executionTime.RecordSince(start)

	txHash := tx.Hash()
	logger := r.logger.WithTags(logfields.Transaction(txHash))

	receipt, err := r.execute(ctx, txHash, tx)
	if err != nil {
		r.metrics.failedTransactions.Inc()
		status := StatusOf(err)
		if status == EXECUTION_STATUS_ERROR_UNEXPECTED {
			logger.Error("transaction failed unexpectedly", log.Error(err))
		} else {
			logger.Info("transaction failed", log.Stringable("status", status), log.Error(err))
		}
		return &Receipt{TxHash: txHash, Status: status, Error: err.Error()}, err
	}

	r.metrics.committedTransactions.Inc()
	r.metrics.committedRate.Measure(1)
	logger.Info("transaction committed", logfields.Slot(receipt.Slot), log.Int("events", len(receipt.Events)))
	return receipt, nil
}

func (r *Runtime) execute(ctx context.Context, txHash primitives.Sha256, tx *Transaction) (*Receipt, error) {
	if err := validateStructure(tx); err != nil {
		return nil, err
	}
	if err := verifySignatures(tx, tx.Message()); err != nil {
		return nil, err
	}

	program, ok := r.programs[tx.Instruction.ProgramId]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownProgram, "program %s", tx.Instruction.ProgramId)
	}

	if r.recent.has(txHash) {
		return nil, errors.Wrapf(ErrDuplicateTransaction, "transaction %s", txHash)
	}

	lockCtx, cancel := context.WithTimeout(ctx, r.config.RuntimeLockTimeout())
	defer cancel()
	release, err := r.locks.acquire(lockCtx, tx.WritableAddresses())
	if err != nil {
		return nil, err
	}
	defer release()

	// identical transactions lock the same fee payer, so this check cannot race with their commit
	if r.recent.has(txHash) {
		return nil, errors.Wrapf(ErrDuplicateTransaction, "transaction %s", txHash)
	}
	if err := r.checkRecentSlot(tx.RecentSlot); err != nil {
		return nil, err
	}

	views, err := r.loadAccounts(ctx, tx)
	if err != nil {
		return nil, err
	}

	invocation := newInvocation(program.ProgramId(), views.instructionAccounts(), tx.Instruction.Data, r.config.RuntimeLamportsPerByte())
	if err := program.Execute(ctx, invocation); err != nil {
		return nil, errors.Wrapf(err, "program %s failed", program.Name())
	}

	modified, err := views.verifyAndCollect(invocation)
	if err != nil {
		return nil, err
	}

	return r.commit(ctx, txHash, modified, invocation.Events())
}

// commit persists the modified accounts and hands the events to the sink before the next transaction may commit.
func (r *Runtime) commit(ctx context.Context, txHash primitives.Sha256, modified []*accountstorage.Account, events []*Event) (*Receipt, error) {
	r.commitMutex.Lock()
	defer r.commitMutex.Unlock()

	slot, err := r.storage.CommitAccounts(ctx, modified)
	if err != nil {
		return nil, err
	}

	for _, e := range events {
		e.TxHash = txHash
		e.Slot = slot
	}
	receipt := &Receipt{
		TxHash: txHash,
		Slot:   slot,
		Status: EXECUTION_STATUS_COMMITTED,
		Events: events,
	}
	r.recent.add(receipt)

	if r.events != nil && len(events) > 0 {
		r.events.Publish(ctx, events)
	}
	return receipt, nil
}

// checkRecentSlot bounds how old a transaction may be, so that a replay always finds it among the recent receipts.
func (r *Runtime) checkRecentSlot(recentSlot primitives.BlockHeight) error {
	lastSlot := r.storage.LastCommittedSlot()
	if recentSlot > lastSlot {
		return errors.Wrapf(ErrInvalidTransaction, "recent slot %d is ahead of last committed slot %d", recentSlot, lastSlot)
	}
	if uint64(lastSlot-recentSlot) > uint64(r.config.RuntimeRecentTransactionsCapacity()) {
		return errors.Wrapf(ErrTransactionExpired, "recent slot %d, last committed slot %d", recentSlot, lastSlot)
	}
	return nil
}

func (r *Runtime) GetReceipt(txHash primitives.Sha256) (*Receipt, bool) {
	receipt := r.recent.get(txHash)
	return receipt, receipt != nil
}

func (r *Runtime) LastCommittedSlot() primitives.BlockHeight {
	return r.storage.LastCommittedSlot()
}
