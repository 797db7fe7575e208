// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package ss58

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// Alice's well known sr25519 development key.
const (
	alicePubHex  = "d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"
	aliceAddress = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"
)

func TestEncodeAlice(t *testing.T) {
	pub, err := hex.DecodeString(alicePubHex)
	require.NoError(t, err)

	address, err := Encode(42, pub)
	require.NoError(t, err)
	require.Equal(t, aliceAddress, address)
}

func TestDecodeAlice(t *testing.T) {
	prefix, pub, err := Decode(aliceAddress)
	require.NoError(t, err)
	require.Equal(t, uint16(42), prefix)
	require.Equal(t, alicePubHex, hex.EncodeToString(pub))
}

func TestRoundTrip(t *testing.T) {
	pub := make([]byte, 32)
	for i := range pub {
		pub[i] = byte(i * 7)
	}

	for _, prefix := range []uint16{0, 2, 42, 63} {
		address, err := Encode(prefix, pub)
		require.NoError(t, err)

		gotPrefix, gotPub, err := Decode(address)
		require.NoError(t, err)
		require.Equal(t, prefix, gotPrefix)
		require.Equal(t, pub, gotPub)
	}
}

func TestEncodeErrors(t *testing.T) {
	_, err := Encode(64, make([]byte, 32))
	require.ErrorIs(t, err, ErrInvalidPrefix)

	_, err = Encode(42, make([]byte, 20))
	require.ErrorIs(t, err, ErrInvalidAddress)
}

func TestDecodeErrors(t *testing.T) {
	_, _, err := Decode("not an address")
	require.ErrorIs(t, err, ErrInvalidAddress)

	// flip the last character to corrupt the checksum
	corrupted := aliceAddress[:len(aliceAddress)-1] + "Z"
	_, _, err = Decode(corrupted)
	require.Error(t, err)
}
