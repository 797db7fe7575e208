// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"

	"github.com/Cardinal-Cryptography/aleph-client-go/lib/hashers"
	"github.com/Cardinal-Cryptography/aleph-client-go/primitives"
)

// BalancesTx builds pallet_balances call payloads.
type BalancesTx struct{}

// Balances returns the balances call builders.
func (TxAPI) Balances() BalancesTx { return BalancesTx{} }

// Transfer builds Balances.transfer.
func (BalancesTx) Transfer(dest types.MultiAddress, value types.UCompact) *TxPayload {
	return newTxPayload("Balances", "transfer",
		[]interface{}{dest, value}, "MultiAddress", "Compact<u128>")
}

// TransferKeepAlive builds Balances.transfer_keep_alive.
func (BalancesTx) TransferKeepAlive(dest types.MultiAddress, value types.UCompact) *TxPayload {
	return newTxPayload("Balances", "transfer_keep_alive",
		[]interface{}{dest, value}, "MultiAddress", "Compact<u128>")
}

// BalancesStorage builds pallet_balances storage addresses.
type BalancesStorage struct{}

// Balances returns the balances storage builders.
func (StorageAPI) Balances() BalancesStorage { return BalancesStorage{} }

// TotalIssuance addresses Balances.TotalIssuance.
func (BalancesStorage) TotalIssuance() *StorageAddress {
	return newStorageAddress("Balances", "TotalIssuance")
}

// Locks addresses Balances.Locks for an account.
func (BalancesStorage) Locks(who primitives.AccountID) *StorageAddress {
	return newStorageAddress("Balances", "Locks",
		StorageMapKey{Hasher: hashers.Blake2b128ConcatHasher, Value: who[:]})
}

// BalancesConstants builds pallet_balances constant addresses.
type BalancesConstants struct{}

// Balances returns the balances constant builders.
func (ConstantsAPI) Balances() BalancesConstants { return BalancesConstants{} }

// ExistentialDeposit addresses the minimum balance an account may hold.
func (BalancesConstants) ExistentialDeposit() *ConstantAddress {
	return newConstantAddress("Balances", "ExistentialDeposit", "u128")
}
