// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"

	"github.com/Cardinal-Cryptography/aleph-client-go/lib/hashers"
	"github.com/Cardinal-Cryptography/aleph-client-go/primitives"
)

// VestingTx builds pallet_vesting call payloads.
type VestingTx struct{}

// Vesting returns the vesting call builders.
func (TxAPI) Vesting() VestingTx { return VestingTx{} }

// Vest builds Vesting.vest.
func (VestingTx) Vest() *TxPayload {
	return newTxPayload("Vesting", "vest", nil)
}

// VestOther builds Vesting.vest_other.
func (VestingTx) VestOther(target types.MultiAddress) *TxPayload {
	return newTxPayload("Vesting", "vest_other",
		[]interface{}{target}, "MultiAddress")
}

// VestedTransfer builds Vesting.vested_transfer.
func (VestingTx) VestedTransfer(target types.MultiAddress, schedule primitives.VestingInfo) *TxPayload {
	return newTxPayload("Vesting", "vested_transfer",
		[]interface{}{target, schedule}, "MultiAddress", "VestingInfo")
}

// MergeSchedules builds Vesting.merge_schedules.
func (VestingTx) MergeSchedules(schedule1, schedule2 uint32) *TxPayload {
	return newTxPayload("Vesting", "merge_schedules",
		[]interface{}{schedule1, schedule2}, "u32", "u32")
}

// VestingStorage builds pallet_vesting storage addresses.
type VestingStorage struct{}

// Vesting returns the vesting storage builders.
func (StorageAPI) Vesting() VestingStorage { return VestingStorage{} }

// Vesting addresses Vesting.Vesting, the vesting schedules of an account.
func (VestingStorage) Vesting(who primitives.AccountID) *StorageAddress {
	return newStorageAddress("Vesting", "Vesting",
		StorageMapKey{Hasher: hashers.Blake2b128ConcatHasher, Value: who[:]})
}
