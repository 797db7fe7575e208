// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"github.com/Cardinal-Cryptography/aleph-client-go/lib/hashers"
	"github.com/Cardinal-Cryptography/aleph-client-go/primitives"
)

// SystemTx builds frame_system call payloads.
type SystemTx struct{}

// System returns the system call builders.
func (TxAPI) System() SystemTx { return SystemTx{} }

// Remark builds System.remark.
func (SystemTx) Remark(remark []byte) *TxPayload {
	return newTxPayload("System", "remark", []interface{}{remark}, "Vec<u8>")
}

// SetCode builds System.set_code, the runtime upgrade call.
func (SystemTx) SetCode(code []byte) *TxPayload {
	return newTxPayload("System", "set_code", []interface{}{code}, "Vec<u8>")
}

// SystemStorage builds frame_system storage addresses.
type SystemStorage struct{}

// System returns the system storage builders.
func (StorageAPI) System() SystemStorage { return SystemStorage{} }

// Account addresses System.Account, the nonce and balance record of an
// account.
func (SystemStorage) Account(who primitives.AccountID) *StorageAddress {
	return newStorageAddress("System", "Account",
		StorageMapKey{Hasher: hashers.Blake2b128ConcatHasher, Value: who[:]})
}

// Events addresses System.Events, the event records of the current block.
func (SystemStorage) Events() *StorageAddress {
	return newStorageAddress("System", "Events")
}

// SystemConstants builds frame_system constant addresses.
type SystemConstants struct{}

// System returns the system constant builders.
func (ConstantsAPI) System() SystemConstants { return SystemConstants{} }

// SS58Prefix addresses the chain's address encoding prefix.
func (SystemConstants) SS58Prefix() *ConstantAddress {
	return newConstantAddress("System", "SS58Prefix", "u16")
}

// BlockHashCount addresses the number of block hashes kept in state.
func (SystemConstants) BlockHashCount() *ConstantAddress {
	return newConstantAddress("System", "BlockHashCount", "u32")
}
