// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package linkboard

import (
	"github.com/orbs-network/orbs-linkboard-go/services/runtime"
	"github.com/pkg/errors"
)

var ErrCapacityExceeded = runtime.NewError(runtime.EXECUTION_STATUS_ERROR_CAPACITY_EXCEEDED, "store capacity exceeded")

var (
	ErrStoreNotFound = errors.New("store not found")
	ErrNotAStore     = errors.New("account is not a linkboard store")
)

func constraintViolation(account string, reason string, args ...interface{}) error {
	return errors.Wrapf(runtime.ErrConstraintViolation, account+": "+reason, args...)
}
