// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package primitives

import (
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

// Weight is the v2 dispatch weight: computation time and proof size, both
// compact encoded.
type Weight struct {
	RefTime   types.UCompact
	ProofSize types.UCompact
}

// ZeroWeight is the weight used with sudo_unchecked_weight to skip weight
// checking.
func ZeroWeight() Weight {
	return Weight{
		RefTime:   types.NewUCompactFromUInt(0),
		ProofSize: types.NewUCompactFromUInt(0),
	}
}

// ValidatorPrefs are the preferences a validator declares with
// staking.validate.
type ValidatorPrefs struct {
	// Commission is a compact perbill.
	Commission types.UCompact
	Blocked    bool
}

// RewardDestination selects where staking rewards are paid.
type RewardDestination struct {
	IsStaked     bool
	IsStash      bool
	IsController bool
	IsAccount    bool
	Account      AccountID
	IsNone       bool
}

// RewardDestinationStaked pays rewards back into the stake.
func RewardDestinationStaked() RewardDestination {
	return RewardDestination{IsStaked: true}
}

// RewardDestinationStash pays rewards to the stash account.
func RewardDestinationStash() RewardDestination {
	return RewardDestination{IsStash: true}
}

// Encode implements scale encoding for the reward destination enum.
func (r RewardDestination) Encode(encoder scale.Encoder) error {
	switch {
	case r.IsStaked:
		return encoder.PushByte(0)
	case r.IsStash:
		return encoder.PushByte(1)
	case r.IsController:
		return encoder.PushByte(2)
	case r.IsAccount:
		if err := encoder.PushByte(3); err != nil {
			return err
		}
		return encoder.Encode(r.Account)
	case r.IsNone:
		return encoder.PushByte(4)
	}
	return fmt.Errorf("reward destination variant not set")
}

// Decode implements scale decoding for the reward destination enum.
func (r *RewardDestination) Decode(decoder scale.Decoder) error {
	tag, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	switch tag {
	case 0:
		r.IsStaked = true
	case 1:
		r.IsStash = true
	case 2:
		r.IsController = true
	case 3:
		r.IsAccount = true
		return decoder.Decode(&r.Account)
	case 4:
		r.IsNone = true
	default:
		return fmt.Errorf("unknown reward destination variant %d", tag)
	}
	return nil
}
