// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package primitives

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"

	"github.com/Cardinal-Cryptography/aleph-client-go/lib/ss58"
)

// AccountIDLength is the byte length of an on-chain account identifier.
const AccountIDLength = 32

var ErrAccountIDLength = errors.New("account ID must be 32 bytes")

// AccountID is a chain account identifier, the raw 32 bytes behind an SS58
// address.
type AccountID [AccountIDLength]byte

// NewAccountID builds an AccountID from raw bytes.
func NewAccountID(in []byte) (AccountID, error) {
	if len(in) != AccountIDLength {
		return AccountID{}, fmt.Errorf("%w: got %d", ErrAccountIDLength, len(in))
	}
	var id AccountID
	copy(id[:], in)
	return id, nil
}

// NewAccountIDFromSS58 parses an SS58 address into an AccountID.
func NewAccountIDFromSS58(address string) (AccountID, error) {
	_, pub, err := ss58.Decode(address)
	if err != nil {
		return AccountID{}, fmt.Errorf("decoding ss58 address: %w", err)
	}
	return NewAccountID(pub)
}

// NewAccountIDFromHex parses a 0x-prefixed hex public key into an AccountID.
func NewAccountIDFromHex(s string) (AccountID, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return AccountID{}, fmt.Errorf("decoding hex account ID: %w", err)
	}
	return NewAccountID(b)
}

// SS58 returns the address of the account under the aleph prefix.
func (id AccountID) SS58() string {
	return ss58.MustEncode(AddressPrefix, id[:])
}

// Hex returns the 0x-prefixed hex form of the account ID.
func (id AccountID) Hex() string {
	return "0x" + hex.EncodeToString(id[:])
}

func (id AccountID) String() string {
	return id.SS58()
}

// MultiAddress converts the account ID to the runtime's address type.
func (id AccountID) MultiAddress() (types.MultiAddress, error) {
	return types.NewMultiAddressFromAccountID(id[:])
}
