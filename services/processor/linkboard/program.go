// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package linkboard

import (
	"context"
	"github.com/orbs-network/orbs-linkboard-go/config"
	"github.com/orbs-network/orbs-linkboard-go/crypto/address"
	"github.com/orbs-network/orbs-linkboard-go/instrumentation/logfields"
	"github.com/orbs-network/orbs-linkboard-go/instrumentation/metric"
	"github.com/orbs-network/orbs-linkboard-go/services/runtime"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

const (
	PROGRAM_NAME         = "linkboard"
	ENTRY_APPENDED_EVENT = "EntryAppended"
)

var ProgramId = address.Derive(PROGRAM_NAME)

// EntryAppended is the payload of the event emitted by every successful append.
type EntryAppended struct {
	Store      address.Address `json:"store"`
	Submitter  address.Address `json:"submitter"`
	Link       string          `json:"link"`
	Index      uint64          `json:"index"`
	TotalCount uint64          `json:"total_count"`
}

type metrics struct {
	initialized *metric.Gauge
	appended    *metric.Gauge
	storeUsage  *metric.Histogram
}

func newMetrics(m metric.Factory) *metrics {
	return &metrics{
		initialized: m.NewGauge("Linkboard.Initialize.Executed.Count"),
		appended:    m.NewGauge("Linkboard.AppendEntry.Executed.Count"),
		storeUsage:  m.NewHistogram("Linkboard.StoreUsage.Bytes", 10*1024*1024),
	}
}

type Program struct {
	logger  log.Logger
	config  config.LinkboardConfig
	metrics *metrics
}

func NewProgram(parent log.Logger, metricFactory metric.Factory, cfg config.LinkboardConfig) *Program {
	return &Program{
		logger:  parent.WithTags(log.Service("linkboard")),
		config:  cfg,
		metrics: newMetrics(metricFactory),
	}
}

func (p *Program) ProgramId() address.Address {
	return ProgramId
}

func (p *Program) Name() string {
	return PROGRAM_NAME
}

func (p *Program) Execute(ctx context.Context, invocation *runtime.Invocation) error {
	request, err := DecodeRequest(invocation.Data)
	if err != nil {
		return err
	}

	switch r := request.(type) {
	case *Initialize:
		return p.initialize(invocation)
	case *AppendEntry:
		return p.appendEntry(invocation, r.Link)
	default:
		return errors.Wrapf(runtime.ErrInvalidInstruction, "unsupported request %T", request)
	}
}

func (p *Program) initialize(invocation *runtime.Invocation) error {
	accounts, err := bindInitializeAccounts(invocation.Accounts)
	if err != nil {
		return err
	}

	space := p.config.LinkboardStoreSpaceBytes()
	if space < MinimalAccountSize {
		return errors.Wrapf(ErrCapacityExceeded, "reserved space of %d bytes cannot hold an empty store", space)
	}
	if err := invocation.CreateAccount(accounts.payer, accounts.store, uint64(space)); err != nil {
		return err
	}
	if err := WriteAccountData(accounts.store.Account.Data, &Store{}); err != nil {
		return err
	}

	p.metrics.initialized.Inc()
	p.logger.Info("store initialized", logfields.Account("store", accounts.store.Address), logfields.Account("payer", accounts.payer.Address), log.Uint32("space", space))
	return nil
}

func (p *Program) appendEntry(invocation *runtime.Invocation, link string) error {
	accounts, err := bindAppendEntryAccounts(ProgramId, invocation.Accounts)
	if err != nil {
		return err
	}

	data := accounts.store.Account.Data
	store, err := ReadAccountData(data)
	if err != nil {
		return constraintViolation("store", "%s", err)
	}

	used := accountHeaderSize + store.EncodedSize()
	if used+entrySize(link) > len(data) {
		return errors.Wrapf(ErrCapacityExceeded, "entry of %d bytes does not fit, store uses %d of %d bytes", entrySize(link), used, len(data))
	}

	index := uint64(len(store.Entries))
	store.Entries = append(store.Entries, Entry{Link: link, Submitter: accounts.submitter.Address})
	store.TotalCount++
	if err := WriteAccountData(data, store); err != nil {
		return err
	}

	invocation.EmitEvent(ENTRY_APPENDED_EVENT, &EntryAppended{
		Store:      accounts.store.Address,
		Submitter:  accounts.submitter.Address,
		Link:       link,
		Index:      index,
		TotalCount: store.TotalCount,
	})

	p.metrics.appended.Inc()
	p.metrics.storeUsage.Record(int64(used + entrySize(link)))
	p.logger.Info("entry appended", logfields.Account("store", accounts.store.Address), logfields.Account("submitter", accounts.submitter.Address), log.Uint64("total-count", store.TotalCount))
	return nil
}
