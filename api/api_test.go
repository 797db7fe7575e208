// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"testing"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/stretchr/testify/require"

	"github.com/Cardinal-Cryptography/aleph-client-go/lib/hashers"
	"github.com/Cardinal-Cryptography/aleph-client-go/metadata"
	"github.com/Cardinal-Cryptography/aleph-client-go/primitives"
)

func dest(t *testing.T, who primitives.AccountID) types.MultiAddress {
	t.Helper()
	addr, err := who.MultiAddress()
	require.NoError(t, err)
	return addr
}

func TestTxPayloadName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		payload *TxPayload
		name    string
		argLen  int
	}{
		{Tx().System().Remark([]byte("hi")), "System.remark", 1},
		{Tx().Balances().TransferKeepAlive(dest(t, primitives.AccountID{}), types.NewUCompactFromUInt(1)), "Balances.transfer_keep_alive", 2},
		{Tx().Staking().Chill(), "Staking.chill", 0},
		{Tx().Aleph().SetEmergencyFinalizer(primitives.AccountID{}), "Aleph.set_emergency_finalizer", 1},
		{Tx().Elections().SetElectionsOpenness(primitives.ElectionsPermissionless), "Elections.set_elections_openness", 1},
		{Tx().Vesting().Vest(), "Vesting.vest", 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.name, tt.payload.Name())
			require.Len(t, tt.payload.Args(), tt.argLen)
		})
	}
}

func TestStorageAddressBytes(t *testing.T) {
	t.Parallel()

	who := primitives.AccountID{1, 2, 3}
	addr := Storage().System().Account(who)

	expected := hashers.Twox128([]byte("System"))
	expected = append(expected, hashers.Twox128([]byte("Account"))...)
	expected = append(expected, hashers.Blake2b128ConcatHasher.Hash(who[:])...)

	require.Equal(t, expected, addr.Bytes())
	require.Equal(t, "System", addr.PalletName())
	require.Equal(t, "Account", addr.EntryName())
}

func TestStorageAddressPlainEntry(t *testing.T) {
	t.Parallel()

	addr := Storage().Session().CurrentIndex()

	expected := hashers.Twox128([]byte("Session"))
	expected = append(expected, hashers.Twox128([]byte("CurrentIndex"))...)

	require.Equal(t, expected, addr.Bytes())
	require.Empty(t, addr.Keys())
}

func TestStorageAddressDoubleMap(t *testing.T) {
	t.Parallel()

	validator := primitives.AccountID{7}
	addr := Storage().Staking().ErasStakers(3, validator)
	require.Len(t, addr.Keys(), 2)

	expected := hashers.Twox128([]byte("Staking"))
	expected = append(expected, hashers.Twox128([]byte("ErasStakers"))...)
	expected = append(expected, hashers.Twox64ConcatHasher.Hash(encodeUint32(3))...)
	expected = append(expected, hashers.Twox64ConcatHasher.Hash(validator[:])...)

	require.Equal(t, expected, addr.Bytes())
}

func TestValidationHashStable(t *testing.T) {
	t.Parallel()

	first := Tx().Balances().Transfer(dest(t, primitives.AccountID{}), types.NewUCompactFromUInt(1))
	second := Tx().Balances().Transfer(dest(t, primitives.AccountID{9}), types.NewUCompactFromUInt(2))
	require.Equal(t, first.ValidationHash(), second.ValidationHash(),
		"hash depends on the call's shape, not its arguments")

	other := Tx().Balances().TransferKeepAlive(dest(t, primitives.AccountID{}), types.NewUCompactFromUInt(1))
	require.NotEqual(t, first.ValidationHash(), other.ValidationHash())
}

func TestValidationHashKindsDistinct(t *testing.T) {
	t.Parallel()

	// A call, a storage entry and a constant never collide on the same
	// pallet/name pair.
	call := newTxPayload("Sudo", "Key", nil).ValidationHash()
	storage := Storage().Sudo().Key().ValidationHash()
	require.NotEqual(t, call, storage)
}

func TestRuntimeFingerprintMatchesManifest(t *testing.T) {
	t.Parallel()

	summary := metadata.Summary{Pallets: RuntimePallets()}
	require.Equal(t, metadata.Fingerprint(summary), RuntimeFingerprint())
	require.NoError(t, Validate(summary))
}

func TestValidateRejectsForeignRuntime(t *testing.T) {
	t.Parallel()

	pallets := RuntimePallets()
	pallets[0].Name = "Frame"
	err := Validate(metadata.Summary{Pallets: pallets})
	require.ErrorIs(t, err, metadata.ErrIncompatibleMetadata)

	// Dropping a pallet is also a mismatch.
	err = Validate(metadata.Summary{Pallets: RuntimePallets()[1:]})
	require.ErrorIs(t, err, metadata.ErrIncompatibleMetadata)
}
