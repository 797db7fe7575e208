// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package primitives

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

// CommitteeSeats describes how many seats in a session committee are taken by
// reserved and non reserved validators.
type CommitteeSeats struct {
	ReservedSeats    uint32
	NonReservedSeats uint32
}

// Size returns the total number of seats.
func (c CommitteeSeats) Size() uint32 {
	return c.ReservedSeats + c.NonReservedSeats
}

// EraValidators is the validator set split maintained by pallet elections.
type EraValidators struct {
	Reserved    []AccountID
	NonReserved []AccountID
}

// ElectionOpenness is the mode of the validator elections.
type ElectionOpenness byte

const (
	ElectionsPermissioned ElectionOpenness = iota
	ElectionsPermissionless
)

// BanReason tells why a validator was banned by committee management.
type BanReason struct {
	IsInsufficientUptime bool
	SessionCount         uint32
	IsOtherReason        bool
	OtherReason          []byte
}

// Encode implements scale encoding for the ban reason enum.
func (b BanReason) Encode(encoder scale.Encoder) error {
	switch {
	case b.IsInsufficientUptime:
		if err := encoder.PushByte(0); err != nil {
			return err
		}
		return encoder.Encode(b.SessionCount)
	case b.IsOtherReason:
		if err := encoder.PushByte(1); err != nil {
			return err
		}
		return encoder.Encode(b.OtherReason)
	}
	return errors.New("ban reason variant not set")
}

// Decode implements scale decoding for the ban reason enum.
func (b *BanReason) Decode(decoder scale.Decoder) error {
	tag, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	switch tag {
	case 0:
		b.IsInsufficientUptime = true
		return decoder.Decode(&b.SessionCount)
	case 1:
		b.IsOtherReason = true
		return decoder.Decode(&b.OtherReason)
	}
	return fmt.Errorf("unknown ban reason variant %d", tag)
}

// BanInfo describes a ban laid on a validator.
type BanInfo struct {
	Reason BanReason
	Start  SessionIndex
}

// BanConfig is the committee management ban configuration.
// MinimalExpectedPerformance is a perbill (parts per billion).
type BanConfig struct {
	MinimalExpectedPerformance          uint32
	UnderperformedSessionCountThreshold SessionIndex
	CleanSessionCounterDelay            SessionIndex
	BanPeriod                           EraIndex
}

// SessionKeys are the aura and aleph public keys a validator rotates between
// sessions. The wire form is the 64 byte concatenation of both keys.
type SessionKeys struct {
	Aura  [32]byte
	Aleph [32]byte
}

var ErrSessionKeysLength = errors.New("session keys must be 64 bytes")

// NewSessionKeysFromHex parses the author_rotateKeys result, a 0x-prefixed
// 64 byte hex blob.
func NewSessionKeysFromHex(s string) (SessionKeys, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(strings.Trim(s, `"`), "0x"))
	if err != nil {
		return SessionKeys{}, fmt.Errorf("decoding session keys: %w", err)
	}
	if len(b) != 64 {
		return SessionKeys{}, fmt.Errorf("%w: got %d", ErrSessionKeysLength, len(b))
	}
	var keys SessionKeys
	copy(keys.Aura[:], b[:32])
	copy(keys.Aleph[:], b[32:])
	return keys, nil
}

// Hex returns the 0x-prefixed wire form of the keys.
func (k SessionKeys) Hex() string {
	return "0x" + hex.EncodeToString(k.Aura[:]) + hex.EncodeToString(k.Aleph[:])
}

// BalanceLock is a lock on some amount of an account's balance.
type BalanceLock struct {
	ID      [8]byte
	Amount  Balance
	Reasons byte
}

// VestingInfo is a single vesting schedule of pallet vesting.
type VestingInfo struct {
	Locked        Balance
	PerBlock      Balance
	StartingBlock BlockNumber
}

// UnlockChunk is a portion of staked funds being unbonded.
type UnlockChunk struct {
	Value types.UCompact
	Era   types.UCompact
}

// StakingLedger is the staking state of a controller account.
type StakingLedger struct {
	Stash          AccountID
	Total          types.UCompact
	Active         types.UCompact
	Unlocking      []UnlockChunk
	ClaimedRewards []EraIndex
}

// IndividualExposure is a nominator's backing of a validator.
type IndividualExposure struct {
	Who   AccountID
	Value types.UCompact
}

// Exposure is the stake backing a validator in an era.
type Exposure struct {
	Total  types.UCompact
	Own    types.UCompact
	Others []IndividualExposure
}

// EraRewardPoints are the reward points accumulated by validators in an era.
type EraRewardPoints struct {
	Total      uint32
	Individual []IndividualRewardPoints
}

// IndividualRewardPoints is a single validator's entry of EraRewardPoints.
type IndividualRewardPoints struct {
	Validator AccountID
	Points    uint32
}

// ActiveEraInfo is the index and start timestamp of the active staking era.
type ActiveEraInfo struct {
	Index EraIndex
	Start types.OptionU64
}

// VersionChange is a scheduled change of the finality protocol version.
type VersionChange struct {
	VersionIncoming Version
	Session         SessionIndex
}

// Multisig is the state of an open multisig operation.
type Multisig struct {
	When      Timepoint
	Deposit   Balance
	Depositor AccountID
	Approvals []AccountID
}

// Multisig timepoint, the global position of a multisig call's first approval.
type Timepoint struct {
	Height BlockNumber
	Index  uint32
}
