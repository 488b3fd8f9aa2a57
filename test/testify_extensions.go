// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"fmt"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertCmpEqual(t assert.TestingT, expected interface{}, actual interface{}, msgAndArgs ...interface{}) bool {
	if diff := cmp.Diff(expected, actual); diff != "" {
		return assert.Fail(t, fmt.Sprintf("Not equal (-expected +actual):\n%s", diff), msgAndArgs...)
	}
	return true
}

func RequireCmpEqual(t require.TestingT, expected interface{}, actual interface{}, msgAndArgs ...interface{}) {
	if !AssertCmpEqual(t, expected, actual, msgAndArgs...) {
		t.FailNow()
	}
}
