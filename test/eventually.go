// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"github.com/orbs-network/go-mock"
	"time"
)

const eventuallyIterations = 200
const consistentlyIterations = 20
const pollInterval = 5 * time.Millisecond

func Eventually(f func() bool) bool {
	for i := 0; i < eventuallyIterations; i++ {
		if f() {
			return true
		}
		time.Sleep(pollInterval)
	}
	return false
}

func Consistently(f func() bool) bool {
	for i := 0; i < consistentlyIterations; i++ {
		if !f() {
			return false
		}
		time.Sleep(pollInterval)
	}
	return true
}

// EventuallyVerify polls every mock until all of them verify, returning the last verification error otherwise.
func EventuallyVerify(mocks ...mock.HasVerify) error {
	var lastErr error
	ok := Eventually(func() bool {
		for _, m := range mocks {
			if verified, err := m.Verify(); !verified {
				lastErr = err
				return false
			}
		}
		return true
	})
	if ok {
		return nil
	}
	return lastErr
}
