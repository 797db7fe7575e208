// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package metadata

import (
	"testing"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/stretchr/testify/require"
)

func testSummary() Summary {
	return Summary{Pallets: []PalletInfo{
		{Name: "System", Index: 0, HasCalls: true, HasStorage: true, Constants: 6},
		{Name: "Balances", Index: 5, HasCalls: true, HasStorage: true, Constants: 3},
		{Name: "Aleph", Index: 11, HasCalls: true, HasStorage: true},
	}}
}

func TestFingerprintDeterministic(t *testing.T) {
	require.Equal(t, Fingerprint(testSummary()), Fingerprint(testSummary()))
}

func TestFingerprintOrderIndependent(t *testing.T) {
	shuffled := testSummary()
	shuffled.Pallets[0], shuffled.Pallets[2] = shuffled.Pallets[2], shuffled.Pallets[0]
	require.Equal(t, Fingerprint(testSummary()), Fingerprint(shuffled))
}

func TestFingerprintSensitivity(t *testing.T) {
	base := Fingerprint(testSummary())

	renamed := testSummary()
	renamed.Pallets[1].Name = "Assets"
	require.NotEqual(t, base, Fingerprint(renamed))

	moved := testSummary()
	moved.Pallets[1].Index = 6
	require.NotEqual(t, base, Fingerprint(moved))

	extraConst := testSummary()
	extraConst.Pallets[2].Constants = 1
	require.NotEqual(t, base, Fingerprint(extraConst))
}

func TestValidate(t *testing.T) {
	expected := Fingerprint(testSummary())
	require.NoError(t, Validate(testSummary(), expected))

	changed := testSummary()
	changed.Pallets = changed.Pallets[:2]
	err := Validate(changed, expected)
	require.ErrorIs(t, err, ErrIncompatibleMetadata)
}

func TestSummarizeRejectsOldMetadata(t *testing.T) {
	meta := &types.Metadata{Version: 13}

	_, err := Summarize(meta)
	require.ErrorIs(t, err, ErrUnsupportedVersion)

	_, err = ConstantValue(meta, "System", "SS58Prefix")
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestSummarizeV14(t *testing.T) {
	meta := &types.Metadata{
		Version: 14,
		AsMetadataV14: types.MetadataV14{
			Pallets: []types.PalletMetadataV14{
				{Name: "System", Index: 0, HasCalls: true, HasStorage: true},
				{Name: "Aleph", Index: 11, HasCalls: true},
			},
		},
	}

	summary, err := Summarize(meta)
	require.NoError(t, err)
	require.Equal(t, Summary{Pallets: []PalletInfo{
		{Name: "System", Index: 0, HasCalls: true, HasStorage: true},
		{Name: "Aleph", Index: 11, HasCalls: true},
	}}, summary)
}

func TestItemFingerprint(t *testing.T) {
	a := ItemFingerprint("call", "Balances", "transfer", "MultiAddress", "Compact<u128>")
	b := ItemFingerprint("call", "Balances", "transfer", "MultiAddress", "Compact<u128>")
	require.Equal(t, a, b)

	require.NotEqual(t, a, ItemFingerprint("call", "Balances", "transfer_keep_alive", "MultiAddress", "Compact<u128>"))
	require.NotEqual(t, a, ItemFingerprint("storage", "Balances", "transfer", "MultiAddress", "Compact<u128>"))
	require.NotEqual(t, a, ItemFingerprint("call", "Balances", "transfer", "MultiAddress"))
}
