// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package keyring

import (
	"testing"

	bip39 "github.com/cosmos/go-bip39"
	"github.com/stretchr/testify/require"
)

const aliceAddress = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"

func TestDevAlice(t *testing.T) {
	alice, err := Dev("Alice")
	require.NoError(t, err)
	require.Equal(t, aliceAddress, alice.Address())
	require.Equal(t, aliceAddress, alice.AccountID().SS58())
}

func TestFromStringInvalid(t *testing.T) {
	_, err := FromString("0xnot-a-seed")
	require.Error(t, err)
}

func TestGenerate(t *testing.T) {
	pair, mnemonic, err := Generate()
	require.NoError(t, err)
	require.True(t, bip39.IsMnemonicValid(mnemonic))

	// the mnemonic re-derives the same account
	again, err := FromString(mnemonic)
	require.NoError(t, err)
	require.Equal(t, pair.AccountID(), again.AccountID())
}

func TestSignAndVerify(t *testing.T) {
	alice, err := Dev("Alice")
	require.NoError(t, err)

	msg := []byte("helloworld")
	sig, err := alice.Sign(msg)
	require.NoError(t, err)
	require.Len(t, sig, 64)

	ok, err := VerifySr25519(alice.AccountID(), msg, sig)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = VerifySr25519(alice.AccountID(), []byte("other message"), sig)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAlephKeyPair(t *testing.T) {
	pair, err := AlephFromString("//Alice")
	require.NoError(t, err)
	require.Len(t, pair.Public(), 32)

	msg := []byte{1, 2, 3}
	sig, err := pair.Sign(msg)
	require.NoError(t, err)
	require.True(t, pair.Verify(msg, sig))
	require.False(t, pair.Verify([]byte{3, 2, 1}, sig))
}
