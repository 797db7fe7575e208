// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"github.com/Cardinal-Cryptography/aleph-client-go/lib/hashers"
	"github.com/Cardinal-Cryptography/aleph-client-go/primitives"
)

// MultisigTx builds pallet_multisig call payloads.
type MultisigTx struct{}

// Multisig returns the multisig call builders.
func (TxAPI) Multisig() MultisigTx { return MultisigTx{} }

// ApproveAsMulti builds Multisig.approve_as_multi. Pass an empty timepoint
// for the first approval of a call.
func (MultisigTx) ApproveAsMulti(
	threshold uint16,
	otherSignatories []primitives.AccountID,
	maybeTimepoint primitives.OptionTimepoint,
	callHash [32]byte,
	maxWeight primitives.Weight,
) *TxPayload {
	return newTxPayload("Multisig", "approve_as_multi",
		[]interface{}{threshold, otherSignatories, maybeTimepoint, callHash, maxWeight},
		"u16", "Vec<AccountId>", "Option<Timepoint>", "[u8;32]", "Weight")
}

// CancelAsMulti builds Multisig.cancel_as_multi.
func (MultisigTx) CancelAsMulti(
	threshold uint16,
	otherSignatories []primitives.AccountID,
	timepoint primitives.Timepoint,
	callHash [32]byte,
) *TxPayload {
	return newTxPayload("Multisig", "cancel_as_multi",
		[]interface{}{threshold, otherSignatories, timepoint, callHash},
		"u16", "Vec<AccountId>", "Timepoint", "[u8;32]")
}

// MultisigStorage builds pallet_multisig storage addresses.
type MultisigStorage struct{}

// Multisig returns the multisig storage builders.
func (StorageAPI) Multisig() MultisigStorage { return MultisigStorage{} }

// Multisigs addresses Multisig.Multisigs, the open multisig operation of an
// account and call hash.
func (MultisigStorage) Multisigs(who primitives.AccountID, callHash [32]byte) *StorageAddress {
	return newStorageAddress("Multisig", "Multisigs",
		StorageMapKey{Hasher: hashers.Twox64ConcatHasher, Value: who[:]},
		StorageMapKey{Hasher: hashers.Blake2b128ConcatHasher, Value: callHash[:]})
}

// MultisigConstants builds pallet_multisig constant addresses.
type MultisigConstants struct{}

// Multisig returns the multisig constant builders.
func (ConstantsAPI) Multisig() MultisigConstants { return MultisigConstants{} }

// DepositBase addresses the base deposit reserved for an open multisig.
func (MultisigConstants) DepositBase() *ConstantAddress {
	return newConstantAddress("Multisig", "DepositBase", "u128")
}

// DepositFactor addresses the per-signatory deposit.
func (MultisigConstants) DepositFactor() *ConstantAddress {
	return newConstantAddress("Multisig", "DepositFactor", "u128")
}
