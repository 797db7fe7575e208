// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"github.com/Cardinal-Cryptography/aleph-client-go/lib/hashers"
	"github.com/Cardinal-Cryptography/aleph-client-go/primitives"
)

// SessionTx builds pallet_session call payloads.
type SessionTx struct{}

// Session returns the session call builders.
func (TxAPI) Session() SessionTx { return SessionTx{} }

// SetKeys builds Session.set_keys. The ownership proof is unused by aleph
// chains and normally empty.
func (SessionTx) SetKeys(keys primitives.SessionKeys, proof []byte) *TxPayload {
	return newTxPayload("Session", "set_keys",
		[]interface{}{keys, proof}, "SessionKeys", "Vec<u8>")
}

// SessionStorage builds pallet_session storage addresses.
type SessionStorage struct{}

// Session returns the session storage builders.
func (StorageAPI) Session() SessionStorage { return SessionStorage{} }

// CurrentIndex addresses Session.CurrentIndex.
func (SessionStorage) CurrentIndex() *StorageAddress {
	return newStorageAddress("Session", "CurrentIndex")
}

// Validators addresses Session.Validators, the current validator set.
func (SessionStorage) Validators() *StorageAddress {
	return newStorageAddress("Session", "Validators")
}

// NextKeys addresses Session.NextKeys, the session keys a validator will use
// next session.
func (SessionStorage) NextKeys(who primitives.AccountID) *StorageAddress {
	return newStorageAddress("Session", "NextKeys",
		StorageMapKey{Hasher: hashers.Twox64ConcatHasher, Value: who[:]})
}
