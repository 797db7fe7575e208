// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

// Package ss58 implements the SS58 address format used by Substrate chains.
// An address is base58(prefix ++ pubkey ++ checksum) where the checksum is
// the first two bytes of blake2b-512("SS58PRE" ++ prefix ++ pubkey).
package ss58

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcutil/base58"
	"golang.org/x/crypto/blake2b"
)

const checksumPrefix = "SS58PRE"

var (
	ErrInvalidAddress  = errors.New("invalid ss58 address")
	ErrInvalidChecksum = errors.New("invalid ss58 checksum")
	ErrInvalidPrefix   = errors.New("ss58 prefix out of range")
)

func checksum(data []byte) []byte {
	h, err := blake2b.New512(nil)
	if err != nil {
		panic(err)
	}
	_, _ = h.Write([]byte(checksumPrefix))
	_, _ = h.Write(data)
	return h.Sum(nil)[:2]
}

// Encode returns the address of a 32 byte public key under the given network
// prefix. Only simple (single byte, 0..63) prefixes are supported, which
// covers the generic substrate prefix 42 used by aleph chains.
func Encode(prefix uint16, pubkey []byte) (string, error) {
	if prefix > 63 {
		return "", fmt.Errorf("%w: %d", ErrInvalidPrefix, prefix)
	}
	if len(pubkey) != 32 {
		return "", fmt.Errorf("%w: public key must be 32 bytes", ErrInvalidAddress)
	}

	data := append([]byte{byte(prefix)}, pubkey...)
	return base58.Encode(append(data, checksum(data)...)), nil
}

// MustEncode is Encode for known-good inputs.
func MustEncode(prefix uint16, pubkey []byte) string {
	address, err := Encode(prefix, pubkey)
	if err != nil {
		panic(err)
	}
	return address
}

// Decode parses an address into its network prefix and 32 byte public key,
// verifying the checksum.
func Decode(address string) (prefix uint16, pubkey []byte, err error) {
	raw := base58.Decode(address)
	// 1 prefix byte + 32 key bytes + 2 checksum bytes
	if len(raw) != 35 {
		return 0, nil, fmt.Errorf("%w: wrong length %d", ErrInvalidAddress, len(raw))
	}

	data, sum := raw[:33], raw[33:]
	if !bytes.Equal(checksum(data), sum) {
		return 0, nil, ErrInvalidChecksum
	}

	return uint16(data[0]), data[1:], nil
}
