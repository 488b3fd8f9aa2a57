// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package with

import (
	"github.com/orbs-network/scribe/log"
	"testing"
)

type LoggingHarness struct {
	Logger     log.Logger
	testOutput *log.TestOutput
}

// AllowErrorsMatching lets a test log errors it provokes on purpose, like a failing broker or an undecodable event.
func (h *LoggingHarness) AllowErrorsMatching(patterns ...string) {
	for _, pattern := range patterns {
		h.testOutput.AllowErrorsMatching(pattern)
	}
}

// Logging runs f with a logger tagged by the test name. Output written by goroutines that outlive f is dropped,
// and the test fails if anything was logged at error level without being allowed.
func Logging(tb testing.TB, f func(harness *LoggingHarness)) {
	testOutput := log.NewTestOutput(tb, log.NewHumanReadableFormatter())
	h := &LoggingHarness{
		Logger:     log.GetLogger(log.String("test", tb.Name())).WithOutput(testOutput),
		testOutput: testOutput,
	}
	defer testOutput.TestTerminated()

	f(h)

	if testOutput.HasErrors() {
		tb.Fatal("test failed, unexpected errors were logged")
	}
}
