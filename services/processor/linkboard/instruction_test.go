// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package linkboard

import (
	"encoding/hex"
	"github.com/orbs-network/orbs-linkboard-go/services/runtime"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestMethodDiscriminatorsAreSha256Prefixes(t *testing.T) {
	require.Equal(t, "afaf6d1f0d989bed", hex.EncodeToString(initializeDiscriminator[:]))
	require.Equal(t, "a426efd032099ddf", hex.EncodeToString(appendEntryDiscriminator[:]))
}

func TestDecodeRequest(t *testing.T) {
	request, err := DecodeRequest(EncodeInitialize())
	require.NoError(t, err)
	require.IsType(t, &Initialize{}, request)

	request, err = DecodeRequest(EncodeAppendEntry("http://a.gif"))
	require.NoError(t, err)
	require.Equal(t, &AppendEntry{Link: "http://a.gif"}, request)

	request, err = DecodeRequest(EncodeAppendEntry(""))
	require.NoError(t, err)
	require.Equal(t, &AppendEntry{Link: ""}, request, "empty links are not validated away")
}

func TestDecodeRequestRejectsMalformedData(t *testing.T) {
	appendEntry := EncodeAppendEntry("http://a.gif")
	invalidUtf8 := append(EncodeAppendEntry("ab")[:12], 0xff, 0xfe)

	for name, data := range map[string][]byte{
		"empty":                   nil,
		"short discriminator":     EncodeInitialize()[:7],
		"unknown method":          []byte("12345678"),
		"initialize with args":    append(EncodeInitialize(), 1),
		"append without length":   appendEntry[:10],
		"append with short link":  appendEntry[:len(appendEntry)-1],
		"append with extra bytes": append(EncodeAppendEntry("x"), 0),
		"append with bad utf8":    invalidUtf8,
	} {
		_, err := DecodeRequest(data)
		require.Equal(t, runtime.ErrInvalidInstruction, errors.Cause(err), name)
	}
}
