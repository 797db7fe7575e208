// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"

	"github.com/Cardinal-Cryptography/aleph-client-go/api"
	"github.com/Cardinal-Cryptography/aleph-client-go/primitives"
)

// Bond stakes value with the signer as both stash and controller.
func (s *SignedConnection) Bond(ctx context.Context, value primitives.Balance, payee primitives.RewardDestination, status TxStatus) (TxInfo, error) {
	controller, err := s.signer.AccountID().MultiAddress()
	if err != nil {
		return TxInfo{}, err
	}
	return s.SendTx(ctx, api.Tx().Staking().Bond(controller, types.NewUCompact(value.Int), payee), status)
}

// BondExtra stakes additional funds from the stash.
func (s *SignedConnection) BondExtra(ctx context.Context, value primitives.Balance, status TxStatus) (TxInfo, error) {
	return s.SendTx(ctx, api.Tx().Staking().BondExtra(types.NewUCompact(value.Int)), status)
}

// perbillPerPercent scales a percentage to parts per billion.
const perbillPerPercent = 10_000_000

// Validate declares the intent to validate with the given commission
// percentage.
func (s *SignedConnection) Validate(ctx context.Context, commissionPercent uint8, status TxStatus) (TxInfo, error) {
	prefs := primitives.ValidatorPrefs{
		Commission: types.NewUCompactFromUInt(uint64(commissionPercent) * perbillPerPercent),
	}
	return s.SendTx(ctx, api.Tx().Staking().Validate(prefs), status)
}

// Nominate nominates a single validator stash.
func (s *SignedConnection) Nominate(ctx context.Context, target primitives.AccountID, status TxStatus) (TxInfo, error) {
	addr, err := target.MultiAddress()
	if err != nil {
		return TxInfo{}, err
	}
	return s.SendTx(ctx, api.Tx().Staking().Nominate([]types.MultiAddress{addr}), status)
}

// Chill declares the intent to stop validating or nominating.
func (s *SignedConnection) Chill(ctx context.Context, status TxStatus) (TxInfo, error) {
	return s.SendTx(ctx, api.Tx().Staking().Chill(), status)
}

// PayoutStakers pays out the rewards of a validator and its nominators for
// an era.
func (s *SignedConnection) PayoutStakers(ctx context.Context, stash primitives.AccountID, era primitives.EraIndex, status TxStatus) (TxInfo, error) {
	return s.SendTx(ctx, api.Tx().Staking().PayoutStakers(stash, era), status)
}

// ForceNewEra schedules a new staking era at the end of the current session.
func (r *RootConnection) ForceNewEra(ctx context.Context, status TxStatus) (TxInfo, error) {
	return r.Sudo(ctx, api.Tx().Staking().ForceNewEra(), status)
}

// GetActiveEra returns the index of the active staking era.
func (c *Connection) GetActiveEra() (primitives.EraIndex, error) {
	var active primitives.ActiveEraInfo
	if err := c.GetStorage(api.Storage().Staking().ActiveEra(), &active); err != nil {
		return 0, err
	}
	return active.Index, nil
}

// GetCurrentEra returns the latest planned era, which may be ahead of the
// active one at era boundaries.
func (c *Connection) GetCurrentEra() (primitives.EraIndex, error) {
	var era primitives.EraIndex
	err := c.GetStorage(api.Storage().Staking().CurrentEra(), &era)
	return era, err
}

// GetController returns the controller of a stash, if the stash is bonded.
func (c *Connection) GetController(stash primitives.AccountID) (primitives.AccountID, bool, error) {
	var controller primitives.AccountID
	ok, err := c.GetStorageMaybe(api.Storage().Staking().Bonded(stash), &controller)
	return controller, ok, err
}

// GetLedger returns the staking ledger of a controller.
func (c *Connection) GetLedger(controller primitives.AccountID) (primitives.StakingLedger, error) {
	var ledger primitives.StakingLedger
	err := c.GetStorage(api.Storage().Staking().Ledger(controller), &ledger)
	return ledger, err
}

// GetExposure returns the stake backing a validator in an era.
func (c *Connection) GetExposure(era primitives.EraIndex, validator primitives.AccountID) (primitives.Exposure, error) {
	var exposure primitives.Exposure
	_, err := c.GetStorageMaybe(api.Storage().Staking().ErasStakers(era, validator), &exposure)
	return exposure, err
}

// GetEraValidatorReward returns the total validator payout of a finished
// era.
func (c *Connection) GetEraValidatorReward(era primitives.EraIndex) (primitives.Balance, error) {
	var reward primitives.Balance
	err := c.GetStorage(api.Storage().Staking().ErasValidatorReward(era), &reward)
	return reward, err
}

// GetEraRewardPoints returns the reward points accumulated in an era.
func (c *Connection) GetEraRewardPoints(era primitives.EraIndex) (primitives.EraRewardPoints, error) {
	var points primitives.EraRewardPoints
	_, err := c.GetStorageMaybe(api.Storage().Staking().ErasRewardPoints(era), &points)
	return points, err
}

// GetMinimumValidatorCount returns the minimum validator set size.
func (c *Connection) GetMinimumValidatorCount() (uint32, error) {
	var count uint32
	err := c.GetStorage(api.Storage().Staking().MinimumValidatorCount(), &count)
	return count, err
}

// GetSessionsPerEra returns the number of sessions in a staking era.
func (c *Connection) GetSessionsPerEra() (uint32, error) {
	var sessions uint32
	err := c.GetConstant(api.Constants().Staking().SessionsPerEra(), &sessions)
	return sessions, err
}
