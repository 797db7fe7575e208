// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"

	"github.com/Cardinal-Cryptography/aleph-client-go/lib/hashers"
	"github.com/Cardinal-Cryptography/aleph-client-go/primitives"
)

// CommitteeManagementTx builds pallet_committee_management call payloads.
type CommitteeManagementTx struct{}

// CommitteeManagement returns the committee management call builders.
func (TxAPI) CommitteeManagement() CommitteeManagementTx { return CommitteeManagementTx{} }

// BanFromCommittee builds CommitteeManagement.ban_from_committee (root only).
func (CommitteeManagementTx) BanFromCommittee(validator primitives.AccountID, reason []byte) *TxPayload {
	return newTxPayload("CommitteeManagement", "ban_from_committee",
		[]interface{}{validator, reason}, "AccountId", "Vec<u8>")
}

// SetBanConfig builds CommitteeManagement.set_ban_config (root only). Unset
// options leave the corresponding setting untouched.
func (CommitteeManagementTx) SetBanConfig(
	minimalExpectedPerformance types.OptionU32,
	underperformedSessionCountThreshold types.OptionU32,
	cleanSessionCounterDelay types.OptionU32,
	banPeriod types.OptionU32,
) *TxPayload {
	return newTxPayload("CommitteeManagement", "set_ban_config",
		[]interface{}{
			minimalExpectedPerformance,
			underperformedSessionCountThreshold,
			cleanSessionCounterDelay,
			banPeriod,
		},
		"Option<u32>", "Option<u32>", "Option<u32>", "Option<u32>")
}

// CommitteeManagementStorage builds pallet_committee_management storage
// addresses.
type CommitteeManagementStorage struct{}

// CommitteeManagement returns the committee management storage builders.
func (StorageAPI) CommitteeManagement() CommitteeManagementStorage {
	return CommitteeManagementStorage{}
}

// BanConfig addresses CommitteeManagement.BanConfig.
func (CommitteeManagementStorage) BanConfig() *StorageAddress {
	return newStorageAddress("CommitteeManagement", "BanConfig")
}

// SessionValidatorBlockCount addresses the blocks a validator produced in the
// current session.
func (CommitteeManagementStorage) SessionValidatorBlockCount(who primitives.AccountID) *StorageAddress {
	return newStorageAddress("CommitteeManagement", "SessionValidatorBlockCount",
		StorageMapKey{Hasher: hashers.Twox64ConcatHasher, Value: who[:]})
}

// UnderperformedValidatorSessionCount addresses a validator's count of
// underperformed sessions.
func (CommitteeManagementStorage) UnderperformedValidatorSessionCount(who primitives.AccountID) *StorageAddress {
	return newStorageAddress("CommitteeManagement", "UnderperformedValidatorSessionCount",
		StorageMapKey{Hasher: hashers.Twox64ConcatHasher, Value: who[:]})
}

// Banned addresses CommitteeManagement.Banned, the ban info of a validator.
func (CommitteeManagementStorage) Banned(who primitives.AccountID) *StorageAddress {
	return newStorageAddress("CommitteeManagement", "Banned",
		StorageMapKey{Hasher: hashers.Twox64ConcatHasher, Value: who[:]})
}
