// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package memory

import (
	"context"
	"github.com/orbs-network/orbs-linkboard-go/services/events/adapter"
	"github.com/pkg/errors"
	"sync"
)

// MemoryPublisher keeps every published message, for nodes without a broker and for tests.
type MemoryPublisher struct {
	lock     sync.RWMutex
	messages []adapter.Message
	max      int
	closed   bool
}

func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{}
}

// NewBoundedMemoryPublisher keeps only the most recent max messages.
func NewBoundedMemoryPublisher(max int) *MemoryPublisher {
	return &MemoryPublisher{max: max}
}

func (p *MemoryPublisher) Publish(ctx context.Context, messages []adapter.Message) error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.closed {
		return errors.New("publisher is closed")
	}
	p.messages = append(p.messages, messages...)
	if p.max > 0 && len(p.messages) > p.max {
		p.messages = append([]adapter.Message(nil), p.messages[len(p.messages)-p.max:]...)
	}
	return nil
}

func (p *MemoryPublisher) Close() error {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.closed = true
	return nil
}

func (p *MemoryPublisher) Messages() []adapter.Message {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return append([]adapter.Message(nil), p.messages...)
}
