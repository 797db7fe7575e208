// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"github.com/Cardinal-Cryptography/aleph-client-go/primitives"
)

// ElectionsTx builds pallet_elections call payloads.
type ElectionsTx struct{}

// Elections returns the elections call builders.
func (TxAPI) Elections() ElectionsTx { return ElectionsTx{} }

// ChangeValidators builds Elections.change_validators (root only). Unset
// options leave the corresponding setting untouched.
func (ElectionsTx) ChangeValidators(
	reserved primitives.OptionAccountIDs,
	nonReserved primitives.OptionAccountIDs,
	committeeSize primitives.OptionCommitteeSeats,
) *TxPayload {
	return newTxPayload("Elections", "change_validators",
		[]interface{}{reserved, nonReserved, committeeSize},
		"Option<Vec<AccountId>>", "Option<Vec<AccountId>>", "Option<CommitteeSeats>")
}

// SetElectionsOpenness builds Elections.set_elections_openness (root only).
func (ElectionsTx) SetElectionsOpenness(openness primitives.ElectionOpenness) *TxPayload {
	return newTxPayload("Elections", "set_elections_openness",
		[]interface{}{openness}, "ElectionOpenness")
}

// ElectionsStorage builds pallet_elections storage addresses.
type ElectionsStorage struct{}

// Elections returns the elections storage builders.
func (StorageAPI) Elections() ElectionsStorage { return ElectionsStorage{} }

// CommitteeSize addresses Elections.CommitteeSize, the seats of the current
// era.
func (ElectionsStorage) CommitteeSize() *StorageAddress {
	return newStorageAddress("Elections", "CommitteeSize")
}

// NextEraCommitteeSize addresses the seats of the next era.
func (ElectionsStorage) NextEraCommitteeSize() *StorageAddress {
	return newStorageAddress("Elections", "NextEraCommitteeSize")
}

// CurrentEraValidators addresses the reserved/non-reserved split of the
// current era.
func (ElectionsStorage) CurrentEraValidators() *StorageAddress {
	return newStorageAddress("Elections", "CurrentEraValidators")
}

// NextEraReservedValidators addresses the reserved validators of the next
// era.
func (ElectionsStorage) NextEraReservedValidators() *StorageAddress {
	return newStorageAddress("Elections", "NextEraReservedValidators")
}

// NextEraNonReservedValidators addresses the non-reserved validators of the
// next era.
func (ElectionsStorage) NextEraNonReservedValidators() *StorageAddress {
	return newStorageAddress("Elections", "NextEraNonReservedValidators")
}

// Openness addresses Elections.Openness.
func (ElectionsStorage) Openness() *StorageAddress {
	return newStorageAddress("Elections", "Openness")
}

// ElectionsConstants builds pallet_elections constant addresses.
type ElectionsConstants struct{}

// Elections returns the elections constant builders.
func (ConstantsAPI) Elections() ElectionsConstants { return ElectionsConstants{} }

// SessionPeriod addresses the session length, in blocks.
func (ElectionsConstants) SessionPeriod() *ConstantAddress {
	return newConstantAddress("Elections", "SessionPeriod", "u32")
}
