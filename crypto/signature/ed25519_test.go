// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package signature

import (
	"encoding/hex"
	"github.com/orbs-network/orbs-linkboard-go/test/crypto/keys"
	"github.com/stretchr/testify/require"
	"testing"
)

var someDataToSign = []byte("this is what we want to sign")
var expectedSigByKeyPair0 = "b228422c0c2b384bc60c7e0b14107b609d5c0d6fe72d6c6fbdd5ade28f017d3b8bc9a3f69ae8797af20ae31b8407f814c2852d0110140ef202ce719786eabd0c"

func TestSignEd25519(t *testing.T) {
	kp := keys.Ed25519KeyPairForTests(1)

	sig, err := SignEd25519(kp.PrivateKey(), someDataToSign)
	require.NoError(t, err)
	require.Len(t, sig, ED25519_SIGNATURE_SIZE_BYTES)
	require.True(t, VerifyEd25519(kp.PublicKey(), someDataToSign, sig), "verification failed")
}

func TestSignEd25519InvalidPrivateKey(t *testing.T) {
	_, err := SignEd25519([]byte{0}, someDataToSign)
	require.Error(t, err, "sign succeeded with invalid pk")
}

func TestVerifyEd25519(t *testing.T) {
	kp := keys.Ed25519KeyPairForTests(0)

	expectedSigBytes, err := hex.DecodeString(expectedSigByKeyPair0)
	require.NoError(t, err)
	require.True(t, VerifyEd25519(kp.PublicKey(), someDataToSign, expectedSigBytes), "verification failed")
}

func TestVerifyEd25519RejectsOtherSigner(t *testing.T) {
	expectedSigBytes, err := hex.DecodeString(expectedSigByKeyPair0)
	require.NoError(t, err)
	require.False(t, VerifyEd25519(keys.Ed25519KeyPairForTests(1).PublicKey(), someDataToSign, expectedSigBytes))
}

func TestVerifyEd25519RejectsTamperedData(t *testing.T) {
	kp := keys.Ed25519KeyPairForTests(0)
	expectedSigBytes, err := hex.DecodeString(expectedSigByKeyPair0)
	require.NoError(t, err)
	require.False(t, VerifyEd25519(kp.PublicKey(), []byte("this is not what we signed"), expectedSigBytes))
}

func TestVerifyEd25519InvalidPublicKey(t *testing.T) {
	expectedSigBytes, err := hex.DecodeString(expectedSigByKeyPair0)
	require.NoError(t, err)

	require.NotPanics(t, func() {
		require.False(t, VerifyEd25519([]byte{0}, someDataToSign, expectedSigBytes), "verification succeeded without public key")
	})
}

func BenchmarkSignEd25519(b *testing.B) {
	kp := keys.Ed25519KeyPairForTests(1)
	for i := 0; i < b.N; i++ {
		if _, err := SignEd25519(kp.PrivateKey(), someDataToSign); err != nil {
			b.Error(err)
		}
	}
}

func BenchmarkVerifyEd25519(b *testing.B) {
	b.StopTimer()
	kp := keys.Ed25519KeyPairForTests(1)

	if sig, err := SignEd25519(kp.PrivateKey(), someDataToSign); err != nil {
		b.Error(err)
	} else {
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			if !VerifyEd25519(kp.PublicKey(), someDataToSign, sig) {
				b.Error("verification failed")
			}
		}
	}
}
