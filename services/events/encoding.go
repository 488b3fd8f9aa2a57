// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package events

import (
	"encoding/json"
	"github.com/orbs-network/orbs-linkboard-go/crypto/address"
	"github.com/orbs-network/orbs-linkboard-go/services/events/adapter"
	"github.com/orbs-network/orbs-linkboard-go/services/runtime"
	"github.com/pkg/errors"
)

// Envelope is the JSON value of every published message. Messages are keyed by program, so a program's events stay ordered.
type Envelope struct {
	Name    string          `json:"name"`
	Program address.Address `json:"program"`
	TxHash  string          `json:"tx_hash"`
	Slot    uint64          `json:"slot"`
	Payload json.RawMessage `json:"payload"`
}

func encodeEvent(e *runtime.Event) (adapter.Message, error) {
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return adapter.Message{}, errors.Wrapf(err, "failed to encode payload of event %s", e.Name)
	}
	value, err := json.Marshal(&Envelope{
		Name:    e.Name,
		Program: e.Program,
		TxHash:  e.TxHash.String(),
		Slot:    uint64(e.Slot),
		Payload: payload,
	})
	if err != nil {
		return adapter.Message{}, errors.Wrapf(err, "failed to encode event %s", e.Name)
	}
	return adapter.Message{Key: []byte(e.Program.String()), Value: value}, nil
}

func DecodeEnvelope(value []byte) (*Envelope, error) {
	e := &Envelope{}
	if err := json.Unmarshal(value, e); err != nil {
		return nil, errors.Wrap(err, "failed to decode event envelope")
	}
	return e, nil
}
