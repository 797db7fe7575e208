// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

// Package keyring manages the keys used to sign chain transactions. sr25519
// transaction keys are derived from secret URIs the same way subkey does it:
// a mnemonic phrase, a 0x-prefixed seed, or a dev path such as "//Alice".
package keyring

import (
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"
	bip39 "github.com/cosmos/go-bip39"

	"github.com/Cardinal-Cryptography/aleph-client-go/primitives"
)

// KeyPair signs chain transactions with an sr25519 key.
type KeyPair struct {
	pair      signature.KeyringPair
	accountID primitives.AccountID
}

// FromString derives a KeyPair from a secret URI.
func FromString(secret string) (*KeyPair, error) {
	pair, err := signature.KeyringPairFromSecret(secret, primitives.AddressPrefix)
	if err != nil {
		return nil, fmt.Errorf("deriving keypair from secret: %w", err)
	}

	accountID, err := primitives.NewAccountID(pair.PublicKey)
	if err != nil {
		return nil, err
	}

	return &KeyPair{pair: pair, accountID: accountID}, nil
}

// Dev returns the keypair of a well known development account, e.g.
// Dev("Alice").
func Dev(name string) (*KeyPair, error) {
	return FromString("//" + name)
}

// Generate creates a fresh 12 word mnemonic and the keypair derived from it.
func Generate() (*KeyPair, string, error) {
	entropy, err := bip39.NewEntropy(128)
	if err != nil {
		return nil, "", fmt.Errorf("generating entropy: %w", err)
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, "", fmt.Errorf("generating mnemonic: %w", err)
	}

	pair, err := FromString(mnemonic)
	if err != nil {
		return nil, "", err
	}
	return pair, mnemonic, nil
}

// Signer exposes the underlying keyring pair for extrinsic signing.
func (k *KeyPair) Signer() signature.KeyringPair {
	return k.pair
}

// AccountID returns the account the keypair controls.
func (k *KeyPair) AccountID() primitives.AccountID {
	return k.accountID
}

// Address returns the SS58 address of the keypair.
func (k *KeyPair) Address() string {
	return k.accountID.SS58()
}

// Sign signs msg with the transaction key, under the substrate signing
// context.
func (k *KeyPair) Sign(msg []byte) ([]byte, error) {
	return signature.Sign(msg, k.pair.URI)
}
