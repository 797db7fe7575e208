// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"errors"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"

	"github.com/Cardinal-Cryptography/aleph-client-go/api"
	"github.com/Cardinal-Cryptography/aleph-client-go/internal/metrics"
	"github.com/Cardinal-Cryptography/aleph-client-go/metadata"
	"github.com/Cardinal-Cryptography/aleph-client-go/primitives"
)

// ErrStorageNotFound is returned by GetStorage when the entry has no value.
var ErrStorageNotFound = errors.New("storage value not found")

// GetStorage reads and decodes a storage entry at the latest block. Missing
// values are an error; use GetStorageMaybe for entries that may be unset.
func (c *Connection) GetStorage(addr *api.StorageAddress, target interface{}) error {
	ok, err := c.GetStorageMaybe(addr, target)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s.%s", ErrStorageNotFound, addr.PalletName(), addr.EntryName())
	}
	return nil
}

// GetStorageMaybe reads a storage entry at the latest block. It reports
// whether the entry had a value.
func (c *Connection) GetStorageMaybe(addr *api.StorageAddress, target interface{}) (bool, error) {
	metrics.StorageQueries.WithLabelValues(addr.PalletName()).Inc()
	ok, err := c.api.RPC.State.GetStorageLatest(types.StorageKey(addr.Bytes()), target)
	if err != nil {
		return false, fmt.Errorf("reading %s.%s: %w", addr.PalletName(), addr.EntryName(), err)
	}
	return ok, nil
}

// GetStorageAt reads and decodes a storage entry at the given block.
func (c *Connection) GetStorageAt(addr *api.StorageAddress, target interface{}, at types.Hash) error {
	ok, err := c.GetStorageMaybeAt(addr, target, at)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s.%s", ErrStorageNotFound, addr.PalletName(), addr.EntryName())
	}
	return nil
}

// GetStorageMaybeAt reads a storage entry at the given block. It reports
// whether the entry had a value.
func (c *Connection) GetStorageMaybeAt(addr *api.StorageAddress, target interface{}, at types.Hash) (bool, error) {
	metrics.StorageQueries.WithLabelValues(addr.PalletName()).Inc()
	ok, err := c.api.RPC.State.GetStorage(types.StorageKey(addr.Bytes()), target, at)
	if err != nil {
		return false, fmt.Errorf("reading %s.%s: %w", addr.PalletName(), addr.EntryName(), err)
	}
	return ok, nil
}

// GetConstant reads and decodes a pallet constant from the cached metadata.
func (c *Connection) GetConstant(addr *api.ConstantAddress, target interface{}) error {
	raw, err := metadata.ConstantValue(c.meta, addr.PalletName(), addr.ConstantName())
	if err != nil {
		return err
	}
	if err := codec.Decode(raw, target); err != nil {
		return fmt.Errorf("decoding constant %s.%s: %w", addr.PalletName(), addr.ConstantName(), err)
	}
	return nil
}

// GetAccountInfo reads the System.Account record of an account. A missing
// record decodes as the zero value, matching on-chain semantics for accounts
// that never existed.
func (c *Connection) GetAccountInfo(who primitives.AccountID) (types.AccountInfo, error) {
	var info types.AccountInfo
	_, err := c.GetStorageMaybe(api.Storage().System().Account(who), &info)
	return info, err
}

// GetNonce returns the next free nonce of an account.
func (c *Connection) GetNonce(who primitives.AccountID) (uint32, error) {
	info, err := c.GetAccountInfo(who)
	if err != nil {
		return 0, err
	}
	return uint32(info.Nonce), nil
}

// GetSudoKey reads the current sudo account.
func (c *Connection) GetSudoKey() (primitives.AccountID, error) {
	var key primitives.AccountID
	if err := c.GetStorage(api.Storage().Sudo().Key(), &key); err != nil {
		return primitives.AccountID{}, err
	}
	return key, nil
}
