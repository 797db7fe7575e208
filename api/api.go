// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

// Package api contains the typed runtime bindings for AlephRuntime: for every
// supported pallet, builders for call payloads, storage addresses and
// constant addresses. The builders are pure constructors; they tag the typed
// arguments with the pallet name, the item name and a static validation hash,
// and leave encoding, signing and transport to the client layer.
//
// The layout mirrors metadata-generated bindings on purpose: accessors are
// flat, monomorphic and carry no logic, so that regenerating them against new
// metadata is mechanical.
package api

import (
	"encoding/binary"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"

	"github.com/Cardinal-Cryptography/aleph-client-go/lib/hashers"
	"github.com/Cardinal-Cryptography/aleph-client-go/metadata"
)

// TxPayload is an opaque, typed call description: pallet name, call name,
// typed arguments and the static validation hash of the call's shape.
type TxPayload struct {
	palletName     string
	callName       string
	args           []interface{}
	validationHash [32]byte
}

func newTxPayload(pallet, call string, args []interface{}, shape ...string) *TxPayload {
	return &TxPayload{
		palletName:     pallet,
		callName:       call,
		args:           args,
		validationHash: metadata.ItemFingerprint("call", pallet, call, shape...),
	}
}

// PalletName returns the pallet the call belongs to.
func (p *TxPayload) PalletName() string { return p.palletName }

// CallName returns the call's name within its pallet.
func (p *TxPayload) CallName() string { return p.callName }

// Name returns the "Pallet.call" form used to resolve the call index in
// runtime metadata.
func (p *TxPayload) Name() string { return p.palletName + "." + p.callName }

// Args returns the typed call arguments, in declaration order.
func (p *TxPayload) Args() []interface{} { return p.args }

// ValidationHash is the static fingerprint of the call's shape.
func (p *TxPayload) ValidationHash() [32]byte { return p.validationHash }

// StorageMapKey is one key component of a storage map address: the encoded
// value plus the hasher the runtime declares for it.
type StorageMapKey struct {
	Hasher hashers.Hasher
	Value  []byte
}

// StorageAddress is an opaque, typed storage key: pallet name, entry name,
// encoded map key components with their hashers, and the entry's static
// validation hash.
type StorageAddress struct {
	palletName     string
	entryName      string
	keys           []StorageMapKey
	validationHash [32]byte
}

func newStorageAddress(pallet, entry string, keys ...StorageMapKey) *StorageAddress {
	shape := make([]string, 0, len(keys))
	for _, k := range keys {
		shape = append(shape, k.Hasher.Name())
	}
	return &StorageAddress{
		palletName:     pallet,
		entryName:      entry,
		keys:           keys,
		validationHash: metadata.ItemFingerprint("storage", pallet, entry, shape...),
	}
}

// PalletName returns the pallet the entry belongs to.
func (a *StorageAddress) PalletName() string { return a.palletName }

// EntryName returns the storage entry's name within its pallet.
func (a *StorageAddress) EntryName() string { return a.entryName }

// Keys returns the encoded map key components.
func (a *StorageAddress) Keys() []StorageMapKey { return a.keys }

// ValidationHash is the static fingerprint of the entry's shape.
func (a *StorageAddress) ValidationHash() [32]byte { return a.validationHash }

// Bytes builds the raw storage key:
// twox128(pallet) ++ twox128(entry) ++ hasher(component)...
func (a *StorageAddress) Bytes() []byte {
	key := hashers.Twox128([]byte(a.palletName))
	key = append(key, hashers.Twox128([]byte(a.entryName))...)
	for _, k := range a.keys {
		key = append(key, k.Hasher.Hash(k.Value)...)
	}
	return key
}

// StorageKey resolves the address against runtime metadata, letting the
// metadata drive hasher selection.
func (a *StorageAddress) StorageKey(meta *types.Metadata) (types.StorageKey, error) {
	args := make([][]byte, 0, len(a.keys))
	for _, k := range a.keys {
		args = append(args, k.Value)
	}
	return types.CreateStorageKey(meta, a.palletName, a.entryName, args...)
}

// ConstantAddress is an opaque, typed pallet constant reference.
type ConstantAddress struct {
	palletName     string
	constantName   string
	validationHash [32]byte
}

func newConstantAddress(pallet, constant string, shape ...string) *ConstantAddress {
	return &ConstantAddress{
		palletName:     pallet,
		constantName:   constant,
		validationHash: metadata.ItemFingerprint("constant", pallet, constant, shape...),
	}
}

// PalletName returns the pallet the constant belongs to.
func (c *ConstantAddress) PalletName() string { return c.palletName }

// ConstantName returns the constant's name within its pallet.
func (c *ConstantAddress) ConstantName() string { return c.constantName }

// ValidationHash is the static fingerprint of the constant's shape.
func (c *ConstantAddress) ValidationHash() [32]byte { return c.validationHash }

// TxAPI is the root of the call builders, one method per pallet.
type TxAPI struct{}

// Tx returns the call builders.
func Tx() TxAPI { return TxAPI{} }

// StorageAPI is the root of the storage address builders, one method per
// pallet.
type StorageAPI struct{}

// Storage returns the storage address builders.
func Storage() StorageAPI { return StorageAPI{} }

// ConstantsAPI is the root of the constant address builders, one method per
// pallet.
type ConstantsAPI struct{}

// Constants returns the constant address builders.
func Constants() ConstantsAPI { return ConstantsAPI{} }

// encodeUint32 is the SCALE fixed-width encoding of a u32 map key.
func encodeUint32(v uint32) []byte {
	out := make([]byte, 4)
	binary.LittleEndian.PutUint32(out, v)
	return out
}
