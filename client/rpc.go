// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"

	"github.com/Cardinal-Cryptography/aleph-client-go/keyring"
	"github.com/Cardinal-Cryptography/aleph-client-go/primitives"
)

// RawCall performs a JSON-RPC call this package does not wrap.
func (c *Connection) RawCall(result interface{}, method string, args ...interface{}) error {
	return c.api.Client.Call(result, method, args...)
}

// RotateKeys asks the node to generate a fresh set of session keys in its
// keystore and returns them, ready for Session.set_keys.
func (c *Connection) RotateKeys() (primitives.SessionKeys, error) {
	var encoded string
	if err := c.RawCall(&encoded, "author_rotateKeys"); err != nil {
		return primitives.SessionKeys{}, fmt.Errorf("author_rotateKeys: %w", err)
	}
	return primitives.NewSessionKeysFromHex(encoded)
}

// EmergencyFinalize signs the block with the emergency finalizer key and
// submits the signature to the node's finalization RPC.
func (c *Connection) EmergencyFinalize(finalizer *keyring.AlephKeyPair, hash types.Hash, number primitives.BlockNumber) error {
	sig, err := finalizer.Sign(hash[:])
	if err != nil {
		return fmt.Errorf("signing block %s: %w", hash.Hex(), err)
	}
	var result interface{}
	err = c.RawCall(&result, "alephNode_emergencyFinalize", codec.HexEncodeToString(sig), hash.Hex(), number)
	if err != nil {
		return fmt.Errorf("alephNode_emergencyFinalize: %w", err)
	}
	return nil
}
