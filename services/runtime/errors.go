// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package runtime

import "github.com/pkg/errors"

type ExecutionStatus uint16

const (
	EXECUTION_STATUS_RESERVED ExecutionStatus = iota
	EXECUTION_STATUS_COMMITTED
	EXECUTION_STATUS_REJECTED_INVALID_TRANSACTION
	EXECUTION_STATUS_REJECTED_SIGNATURE_MISSING
	EXECUTION_STATUS_REJECTED_SIGNATURE_MISMATCH
	EXECUTION_STATUS_REJECTED_UNKNOWN_PROGRAM
	EXECUTION_STATUS_REJECTED_DUPLICATE
	EXECUTION_STATUS_REJECTED_EXPIRED
	EXECUTION_STATUS_REJECTED_CONGESTION
	EXECUTION_STATUS_ERROR_INVALID_INSTRUCTION
	EXECUTION_STATUS_ERROR_CONSTRAINT_VIOLATION
	EXECUTION_STATUS_ERROR_ALREADY_INITIALIZED
	EXECUTION_STATUS_ERROR_ALLOCATION
	EXECUTION_STATUS_ERROR_CAPACITY_EXCEEDED
	EXECUTION_STATUS_ERROR_UNEXPECTED
)

func (s ExecutionStatus) String() string {
	switch s {
	case EXECUTION_STATUS_RESERVED:
		return "RESERVED"
	case EXECUTION_STATUS_COMMITTED:
		return "COMMITTED"
	case EXECUTION_STATUS_REJECTED_INVALID_TRANSACTION:
		return "REJECTED_INVALID_TRANSACTION"
	case EXECUTION_STATUS_REJECTED_SIGNATURE_MISSING:
		return "REJECTED_SIGNATURE_MISSING"
	case EXECUTION_STATUS_REJECTED_SIGNATURE_MISMATCH:
		return "REJECTED_SIGNATURE_MISMATCH"
	case EXECUTION_STATUS_REJECTED_UNKNOWN_PROGRAM:
		return "REJECTED_UNKNOWN_PROGRAM"
	case EXECUTION_STATUS_REJECTED_DUPLICATE:
		return "REJECTED_DUPLICATE"
	case EXECUTION_STATUS_REJECTED_EXPIRED:
		return "REJECTED_EXPIRED"
	case EXECUTION_STATUS_REJECTED_CONGESTION:
		return "REJECTED_CONGESTION"
	case EXECUTION_STATUS_ERROR_INVALID_INSTRUCTION:
		return "ERROR_INVALID_INSTRUCTION"
	case EXECUTION_STATUS_ERROR_CONSTRAINT_VIOLATION:
		return "ERROR_CONSTRAINT_VIOLATION"
	case EXECUTION_STATUS_ERROR_ALREADY_INITIALIZED:
		return "ERROR_ALREADY_INITIALIZED"
	case EXECUTION_STATUS_ERROR_ALLOCATION:
		return "ERROR_ALLOCATION"
	case EXECUTION_STATUS_ERROR_CAPACITY_EXCEEDED:
		return "ERROR_CAPACITY_EXCEEDED"
	case EXECUTION_STATUS_ERROR_UNEXPECTED:
		return "ERROR_UNEXPECTED"
	}
	return "UNKNOWN"
}

func (s ExecutionStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Error is a failure class that maps to a single ExecutionStatus. Programs declare their own with NewError.
type Error struct {
	status  ExecutionStatus
	message string
}

func NewError(status ExecutionStatus, message string) *Error {
	return &Error{status: status, message: message}
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Status() ExecutionStatus {
	return e.status
}

var (
	ErrInvalidTransaction   = NewError(EXECUTION_STATUS_REJECTED_INVALID_TRANSACTION, "invalid transaction")
	ErrSignatureMissing     = NewError(EXECUTION_STATUS_REJECTED_SIGNATURE_MISSING, "missing required signature")
	ErrNotAuthorized        = NewError(EXECUTION_STATUS_REJECTED_SIGNATURE_MISMATCH, "signature verification failed")
	ErrUnknownProgram       = NewError(EXECUTION_STATUS_REJECTED_UNKNOWN_PROGRAM, "unknown program")
	ErrDuplicateTransaction = NewError(EXECUTION_STATUS_REJECTED_DUPLICATE, "duplicate transaction")
	ErrTransactionExpired   = NewError(EXECUTION_STATUS_REJECTED_EXPIRED, "transaction recent slot expired")
	ErrAccountLocked        = NewError(EXECUTION_STATUS_REJECTED_CONGESTION, "timed out waiting for account lock")
	ErrInvalidInstruction   = NewError(EXECUTION_STATUS_ERROR_INVALID_INSTRUCTION, "invalid instruction")
	ErrConstraintViolation  = NewError(EXECUTION_STATUS_ERROR_CONSTRAINT_VIOLATION, "account constraint violated")
	ErrAlreadyInitialized   = NewError(EXECUTION_STATUS_ERROR_ALREADY_INITIALIZED, "account already initialized")
	ErrAllocation           = NewError(EXECUTION_STATUS_ERROR_ALLOCATION, "account allocation failed")
)

// StatusOf classifies err by its cause. Errors that carry no status are unexpected.
func StatusOf(err error) ExecutionStatus {
	if err == nil {
		return EXECUTION_STATUS_COMMITTED
	}
	if classified, ok := errors.Cause(err).(*Error); ok {
		return classified.status
	}
	return EXECUTION_STATUS_ERROR_UNEXPECTED
}
