// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"github.com/Cardinal-Cryptography/aleph-client-go/primitives"
)

// AlephTx builds pallet_aleph call payloads.
type AlephTx struct{}

// Aleph returns the aleph call builders.
func (TxAPI) Aleph() AlephTx { return AlephTx{} }

// SetEmergencyFinalizer builds Aleph.set_emergency_finalizer (root only).
func (AlephTx) SetEmergencyFinalizer(finalizer primitives.AccountID) *TxPayload {
	return newTxPayload("Aleph", "set_emergency_finalizer",
		[]interface{}{finalizer}, "Public")
}

// ScheduleFinalityVersionChange builds Aleph.schedule_finality_version_change
// (root only).
func (AlephTx) ScheduleFinalityVersionChange(versionIncoming primitives.Version, session primitives.SessionIndex) *TxPayload {
	return newTxPayload("Aleph", "schedule_finality_version_change",
		[]interface{}{versionIncoming, session}, "u32", "u32")
}

// AlephStorage builds pallet_aleph storage addresses.
type AlephStorage struct{}

// Aleph returns the aleph storage builders.
func (StorageAPI) Aleph() AlephStorage { return AlephStorage{} }

// FinalityVersion addresses Aleph.FinalityVersion, the current finality
// protocol version.
func (AlephStorage) FinalityVersion() *StorageAddress {
	return newStorageAddress("Aleph", "FinalityVersion")
}

// FinalityScheduledVersionChange addresses the pending finality version
// change, if any.
func (AlephStorage) FinalityScheduledVersionChange() *StorageAddress {
	return newStorageAddress("Aleph", "FinalityScheduledVersionChange")
}

// EmergencyFinalizer addresses Aleph.EmergencyFinalizer.
func (AlephStorage) EmergencyFinalizer() *StorageAddress {
	return newStorageAddress("Aleph", "EmergencyFinalizer")
}
