// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package keyring

import (
	"fmt"

	subkey "github.com/vedhavyas/go-subkey"
	subkeyed25519 "github.com/vedhavyas/go-subkey/ed25519"

	"github.com/Cardinal-Cryptography/aleph-client-go/primitives"
)

// AlephKeyPair is the ed25519 key a validator uses in the aleph finality
// gadget, e.g. for emergency finalization.
type AlephKeyPair struct {
	pair subkey.KeyPair
}

// AlephFromString derives an aleph ed25519 keypair from a secret URI.
func AlephFromString(secret string) (*AlephKeyPair, error) {
	pair, err := subkey.DeriveKeyPair(subkeyed25519.Scheme{}, secret)
	if err != nil {
		return nil, fmt.Errorf("deriving aleph keypair: %w", err)
	}
	return &AlephKeyPair{pair: pair}, nil
}

// Sign signs msg with the finality key.
func (a *AlephKeyPair) Sign(msg []byte) ([]byte, error) {
	return a.pair.Sign(msg)
}

// Verify checks a signature made by this key.
func (a *AlephKeyPair) Verify(msg, sig []byte) bool {
	return a.pair.Verify(msg, sig)
}

// Public returns the raw 32 byte public key.
func (a *AlephKeyPair) Public() []byte {
	return a.pair.Public()
}

// AccountID returns the public key as an account identifier.
func (a *AlephKeyPair) AccountID() (primitives.AccountID, error) {
	return primitives.NewAccountID(a.pair.Public())
}
