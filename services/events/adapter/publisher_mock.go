// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package adapter

import (
	"context"
	"github.com/orbs-network/go-mock"
)

type EventPublisherMock struct {
	mock.Mock
}

func (p *EventPublisherMock) Publish(ctx context.Context, messages []Message) error {
	ret := p.Called(ctx, messages)
	return ret.Error(0)
}

func (p *EventPublisherMock) Close() error {
	ret := p.Called()
	return ret.Error(0)
}
