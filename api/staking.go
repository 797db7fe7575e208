// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"

	"github.com/Cardinal-Cryptography/aleph-client-go/lib/hashers"
	"github.com/Cardinal-Cryptography/aleph-client-go/primitives"
)

// StakingTx builds pallet_staking call payloads.
type StakingTx struct{}

// Staking returns the staking call builders.
func (TxAPI) Staking() StakingTx { return StakingTx{} }

// Bond builds Staking.bond.
func (StakingTx) Bond(controller types.MultiAddress, value types.UCompact, payee primitives.RewardDestination) *TxPayload {
	return newTxPayload("Staking", "bond",
		[]interface{}{controller, value, payee},
		"MultiAddress", "Compact<u128>", "RewardDestination")
}

// BondExtra builds Staking.bond_extra.
func (StakingTx) BondExtra(maxAdditional types.UCompact) *TxPayload {
	return newTxPayload("Staking", "bond_extra",
		[]interface{}{maxAdditional}, "Compact<u128>")
}

// Validate builds Staking.validate.
func (StakingTx) Validate(prefs primitives.ValidatorPrefs) *TxPayload {
	return newTxPayload("Staking", "validate",
		[]interface{}{prefs}, "ValidatorPrefs")
}

// Nominate builds Staking.nominate.
func (StakingTx) Nominate(targets []types.MultiAddress) *TxPayload {
	return newTxPayload("Staking", "nominate",
		[]interface{}{targets}, "Vec<MultiAddress>")
}

// Chill builds Staking.chill.
func (StakingTx) Chill() *TxPayload {
	return newTxPayload("Staking", "chill", nil)
}

// PayoutStakers builds Staking.payout_stakers.
func (StakingTx) PayoutStakers(validatorStash primitives.AccountID, era primitives.EraIndex) *TxPayload {
	return newTxPayload("Staking", "payout_stakers",
		[]interface{}{validatorStash, era}, "AccountId", "u32")
}

// ForceNewEra builds Staking.force_new_era (root only).
func (StakingTx) ForceNewEra() *TxPayload {
	return newTxPayload("Staking", "force_new_era", nil)
}

// StakingStorage builds pallet_staking storage addresses.
type StakingStorage struct{}

// Staking returns the staking storage builders.
func (StorageAPI) Staking() StakingStorage { return StakingStorage{} }

// ActiveEra addresses Staking.ActiveEra.
func (StakingStorage) ActiveEra() *StorageAddress {
	return newStorageAddress("Staking", "ActiveEra")
}

// CurrentEra addresses Staking.CurrentEra.
func (StakingStorage) CurrentEra() *StorageAddress {
	return newStorageAddress("Staking", "CurrentEra")
}

// Bonded addresses Staking.Bonded, the controller of a stash.
func (StakingStorage) Bonded(stash primitives.AccountID) *StorageAddress {
	return newStorageAddress("Staking", "Bonded",
		StorageMapKey{Hasher: hashers.Twox64ConcatHasher, Value: stash[:]})
}

// Ledger addresses Staking.Ledger, the staking state of a controller.
func (StakingStorage) Ledger(controller primitives.AccountID) *StorageAddress {
	return newStorageAddress("Staking", "Ledger",
		StorageMapKey{Hasher: hashers.Blake2b128ConcatHasher, Value: controller[:]})
}

// ErasValidatorReward addresses Staking.ErasValidatorReward for an era.
func (StakingStorage) ErasValidatorReward(era primitives.EraIndex) *StorageAddress {
	return newStorageAddress("Staking", "ErasValidatorReward",
		StorageMapKey{Hasher: hashers.Twox64ConcatHasher, Value: encodeUint32(era)})
}

// ErasStakers addresses Staking.ErasStakers, a validator's era exposure.
func (StakingStorage) ErasStakers(era primitives.EraIndex, validator primitives.AccountID) *StorageAddress {
	return newStorageAddress("Staking", "ErasStakers",
		StorageMapKey{Hasher: hashers.Twox64ConcatHasher, Value: encodeUint32(era)},
		StorageMapKey{Hasher: hashers.Twox64ConcatHasher, Value: validator[:]})
}

// ErasRewardPoints addresses Staking.ErasRewardPoints for an era.
func (StakingStorage) ErasRewardPoints(era primitives.EraIndex) *StorageAddress {
	return newStorageAddress("Staking", "ErasRewardPoints",
		StorageMapKey{Hasher: hashers.Twox64ConcatHasher, Value: encodeUint32(era)})
}

// MinimumValidatorCount addresses Staking.MinimumValidatorCount.
func (StakingStorage) MinimumValidatorCount() *StorageAddress {
	return newStorageAddress("Staking", "MinimumValidatorCount")
}

// StakingConstants builds pallet_staking constant addresses.
type StakingConstants struct{}

// Staking returns the staking constant builders.
func (ConstantsAPI) Staking() StakingConstants { return StakingConstants{} }

// SessionsPerEra addresses the number of sessions in a staking era.
func (StakingConstants) SessionsPerEra() *ConstantAddress {
	return newConstantAddress("Staking", "SessionsPerEra", "u32")
}

// BondingDuration addresses the unbonding period, in eras.
func (StakingConstants) BondingDuration() *ConstantAddress {
	return newConstantAddress("Staking", "BondingDuration", "u32")
}
