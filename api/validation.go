// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"github.com/Cardinal-Cryptography/aleph-client-go/metadata"
)

// runtimePallets is the pallet list of the AlephRuntime these bindings were
// generated against. Regenerate the bindings when the runtime changes.
var runtimePallets = []metadata.PalletInfo{
	{Name: "System", Index: 0, HasCalls: true, HasStorage: true, Constants: 6},
	{Name: "RandomnessCollectiveFlip", Index: 1, HasStorage: true},
	{Name: "Scheduler", Index: 2, HasCalls: true, HasStorage: true, Constants: 2},
	{Name: "Aura", Index: 3, HasStorage: true},
	{Name: "Timestamp", Index: 4, HasCalls: true, HasStorage: true, Constants: 1},
	{Name: "Balances", Index: 5, HasCalls: true, HasStorage: true, Constants: 4},
	{Name: "TransactionPayment", Index: 6, HasStorage: true, Constants: 1},
	{Name: "Authorship", Index: 7, HasCalls: true, HasStorage: true, Constants: 1},
	{Name: "Staking", Index: 8, HasCalls: true, HasStorage: true, Constants: 6},
	{Name: "History", Index: 9, HasStorage: true},
	{Name: "Session", Index: 10, HasCalls: true, HasStorage: true},
	{Name: "Aleph", Index: 11, HasCalls: true, HasStorage: true},
	{Name: "Elections", Index: 12, HasCalls: true, HasStorage: true},
	{Name: "Treasury", Index: 13, HasCalls: true, HasStorage: true, Constants: 6},
	{Name: "Vesting", Index: 14, HasCalls: true, HasStorage: true, Constants: 2},
	{Name: "Utility", Index: 15, HasCalls: true, Constants: 1},
	{Name: "Multisig", Index: 16, HasCalls: true, HasStorage: true, Constants: 3},
	{Name: "Sudo", Index: 17, HasCalls: true, HasStorage: true},
	{Name: "Contracts", Index: 18, HasCalls: true, HasStorage: true, Constants: 5},
	{Name: "NominationPools", Index: 19, HasCalls: true, HasStorage: true, Constants: 2},
	{Name: "Identity", Index: 20, HasCalls: true, HasStorage: true, Constants: 5},
	{Name: "CommitteeManagement", Index: 21, HasCalls: true, HasStorage: true},
}

var runtimeFingerprint = metadata.Fingerprint(metadata.Summary{Pallets: runtimePallets})

// RuntimeFingerprint is the compatibility hash baked into these bindings.
func RuntimeFingerprint() [32]byte {
	return runtimeFingerprint
}

// RuntimePallets returns a copy of the baked pallet manifest.
func RuntimePallets() []metadata.PalletInfo {
	pallets := make([]metadata.PalletInfo, len(runtimePallets))
	copy(pallets, runtimePallets)
	return pallets
}

// Validate checks the live chain's metadata summary against the baked
// fingerprint. A nil result means the bindings match the runtime; otherwise
// metadata.ErrIncompatibleMetadata is returned and the bindings must be
// regenerated.
func Validate(summary metadata.Summary) error {
	return metadata.Validate(summary, runtimeFingerprint)
}
