// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

// Package primitives mirrors the value types and constants shared between
// aleph-node runtimes and their clients. Everything here is a passive
// SCALE-coded value type; there is no behaviour beyond construction and
// (de)serialization.
package primitives

import (
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

// BlockNumber indexes blocks of the chain.
type BlockNumber = uint32

// SessionIndex indexes sessions, the periods between authority rotations.
type SessionIndex = uint32

// EraIndex indexes staking eras.
type EraIndex = uint32

// Version of the finality protocol (pallet aleph).
type Version = uint32

// Balance is the chain's fungible token amount.
type Balance = types.U128

const (
	// TokenDecimals is the number of decimal places of one AZERO.
	TokenDecimals = 12

	// AddressPrefix is the SS58 address encoding of aleph chains.
	AddressPrefix = 42

	// DefaultSessionPeriod is the default session length, in blocks.
	DefaultSessionPeriod = 5

	// DefaultMillisecsPerBlock is the expected block time.
	DefaultMillisecsPerBlock = 4000
)

// TokenUnit is 10^TokenDecimals, the smallest-unit value of one AZERO.
func TokenUnit() *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(TokenDecimals), nil)
}

// NewBalance builds a Balance from a raw big integer amount.
func NewBalance(amount *big.Int) Balance {
	return types.NewU128(*amount)
}

// NewBalanceFromTokens builds a Balance of n whole AZERO.
func NewBalanceFromTokens(n uint64) Balance {
	amount := new(big.Int).Mul(new(big.Int).SetUint64(n), TokenUnit())
	return types.NewU128(*amount)
}
