// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"

	"github.com/Cardinal-Cryptography/aleph-client-go/api"
	"github.com/Cardinal-Cryptography/aleph-client-go/primitives"
)

// SetKeys declares the session keys the signer will use from the next
// session on. Keys usually come from RotateKeys.
func (s *SignedConnection) SetKeys(ctx context.Context, keys primitives.SessionKeys, status TxStatus) (TxInfo, error) {
	return s.SendTx(ctx, api.Tx().Session().SetKeys(keys, nil), status)
}

// GetCurrentSessionIndex returns the index of the current session.
func (c *Connection) GetCurrentSessionIndex() (primitives.SessionIndex, error) {
	var index primitives.SessionIndex
	err := c.GetStorage(api.Storage().Session().CurrentIndex(), &index)
	return index, err
}

// GetValidators returns the validator set of the current session.
func (c *Connection) GetValidators() ([]primitives.AccountID, error) {
	var validators []primitives.AccountID
	err := c.GetStorage(api.Storage().Session().Validators(), &validators)
	return validators, err
}

// GetNextSessionKeys returns the keys a validator declared for the next
// session, if any.
func (c *Connection) GetNextSessionKeys(who primitives.AccountID) (primitives.SessionKeys, bool, error) {
	var keys primitives.SessionKeys
	ok, err := c.GetStorageMaybe(api.Storage().Session().NextKeys(who), &keys)
	return keys, ok, err
}
