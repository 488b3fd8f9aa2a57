// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package linkboard

import (
	"bytes"
	"encoding/binary"
	"github.com/orbs-network/orbs-linkboard-go/crypto/hash"
	"github.com/orbs-network/orbs-linkboard-go/services/runtime"
	"github.com/pkg/errors"
	"unicode/utf8"
)

const (
	INITIALIZE_METHOD   = "initialize"
	APPEND_ENTRY_METHOD = "append_entry"
)

var (
	initializeDiscriminator  = hash.CalcDiscriminator("global", INITIALIZE_METHOD)
	appendEntryDiscriminator = hash.CalcDiscriminator("global", APPEND_ENTRY_METHOD)
)

// Request is one of Initialize or AppendEntry.
type Request interface {
	method() string
}

type Initialize struct{}

type AppendEntry struct {
	Link string
}

func (*Initialize) method() string  { return INITIALIZE_METHOD }
func (*AppendEntry) method() string { return APPEND_ENTRY_METHOD }

func EncodeInitialize() []byte {
	return append([]byte(nil), initializeDiscriminator[:]...)
}

func EncodeAppendEntry(link string) []byte {
	buf := make([]byte, 0, hash.DISCRIMINATOR_SIZE_BYTES+4+len(link))
	buf = append(buf, appendEntryDiscriminator[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(link)))
	return append(buf, link...)
}

func DecodeRequest(data []byte) (Request, error) {
	if len(data) < hash.DISCRIMINATOR_SIZE_BYTES {
		return nil, errors.Wrapf(runtime.ErrInvalidInstruction, "instruction data of %d bytes has no method discriminator", len(data))
	}
	discriminator, args := data[:hash.DISCRIMINATOR_SIZE_BYTES], data[hash.DISCRIMINATOR_SIZE_BYTES:]

	switch {
	case bytes.Equal(discriminator, initializeDiscriminator[:]):
		if len(args) != 0 {
			return nil, errors.Wrapf(runtime.ErrInvalidInstruction, "%s takes no arguments, got %d bytes", INITIALIZE_METHOD, len(args))
		}
		return &Initialize{}, nil
	case bytes.Equal(discriminator, appendEntryDiscriminator[:]):
		link, err := decodeString(args)
		if err != nil {
			return nil, errors.Wrapf(runtime.ErrInvalidInstruction, "%s: %s", APPEND_ENTRY_METHOD, err)
		}
		return &AppendEntry{Link: link}, nil
	}
	return nil, errors.Wrapf(runtime.ErrInvalidInstruction, "unknown method discriminator %x", discriminator)
}

func decodeString(args []byte) (string, error) {
	if len(args) < 4 {
		return "", errors.New("missing string length")
	}
	length := binary.LittleEndian.Uint32(args)
	if uint64(len(args)-4) != uint64(length) {
		return "", errors.Errorf("string of %d bytes in %d bytes of arguments", length, len(args)-4)
	}
	value := args[4:]
	if !utf8.Valid(value) {
		return "", errors.New("string is not valid utf8")
	}
	return string(value), nil
}
