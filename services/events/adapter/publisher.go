// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package adapter

import "context"

type Message struct {
	Key   []byte
	Value []byte
}

// EventPublisher delivers messages in the order given. An error means some may not have been delivered.
type EventPublisher interface {
	Publish(ctx context.Context, messages []Message) error
	Close() error
}
