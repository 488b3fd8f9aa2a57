// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestHistogram_RecordsSamples(t *testing.T) {
	h := newHistogram("sizes", 10000)
	for i := int64(1); i <= 100; i++ {
		h.Record(i)
	}

	exported := h.export()
	require.EqualValues(t, 100, exported.Samples)
	require.EqualValues(t, 1, exported.Min)
	require.EqualValues(t, 100, exported.Max)
	require.InDelta(t, 50.5, exported.Avg, 0.5)
}

func TestHistogram_CountsOverflows(t *testing.T) {
	h := newHistogram("sizes", 100)
	h.Record(1000000)

	require.EqualValues(t, 1, h.OverflowCount())
	require.EqualValues(t, 0, h.export().Samples)
}

func TestHistogram_RecordSince(t *testing.T) {
	h := newHistogram("latency", (10 * time.Second).Nanoseconds())
	h.RecordSince(time.Now().Add(-time.Millisecond))

	exported := h.export()
	require.EqualValues(t, 1, exported.Samples)
	require.True(t, exported.Max >= time.Millisecond.Nanoseconds(), "recorded latency should be at least 1ms")
}
