// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package logfields

import (
	"github.com/orbs-network/orbs-linkboard-go/crypto/address"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/scribe/log"
)

func Transaction(txHash primitives.Sha256) *log.Field {
	return log.Stringable("txHash", txHash)
}

func Account(key string, value address.Address) *log.Field {
	return log.Stringable(key, value)
}

func Program(programId address.Address) *log.Field {
	return log.Stringable("program", programId)
}

// SlotKey tags every log line that reports a commit.
const SlotKey = "slot"

func Slot(value primitives.BlockHeight) *log.Field {
	return &log.Field{Key: SlotKey, Uint: uint64(value), Type: log.UintType}
}

func TimestampNano(key string, value primitives.TimestampNano) *log.Field {
	return &log.Field{Key: key, Int: int64(value), Type: log.TimeType}
}
