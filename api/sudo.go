// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"

	"github.com/Cardinal-Cryptography/aleph-client-go/primitives"
)

// SudoTx builds pallet_sudo call payloads.
type SudoTx struct{}

// Sudo returns the sudo call builders.
func (TxAPI) Sudo() SudoTx { return SudoTx{} }

// Sudo builds Sudo.sudo around an already-resolved runtime call.
func (SudoTx) Sudo(call types.Call) *TxPayload {
	return newTxPayload("Sudo", "sudo", []interface{}{call}, "Call")
}

// SudoUncheckedWeight builds Sudo.sudo_unchecked_weight, dispatching the
// wrapped call without weight checking.
func (SudoTx) SudoUncheckedWeight(call types.Call, weight primitives.Weight) *TxPayload {
	return newTxPayload("Sudo", "sudo_unchecked_weight",
		[]interface{}{call, weight}, "Call", "Weight")
}

// SudoStorage builds pallet_sudo storage addresses.
type SudoStorage struct{}

// Sudo returns the sudo storage builders.
func (StorageAPI) Sudo() SudoStorage { return SudoStorage{} }

// Key addresses Sudo.Key, the current sudo account.
func (SudoStorage) Key() *StorageAddress {
	return newStorageAddress("Sudo", "Key")
}
