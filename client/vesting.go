// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"

	"github.com/Cardinal-Cryptography/aleph-client-go/api"
	"github.com/Cardinal-Cryptography/aleph-client-go/primitives"
)

// Vest unlocks the signer's vested funds.
func (s *SignedConnection) Vest(ctx context.Context, status TxStatus) (TxInfo, error) {
	return s.SendTx(ctx, api.Tx().Vesting().Vest(), status)
}

// VestOther unlocks the vested funds of another account.
func (s *SignedConnection) VestOther(ctx context.Context, target primitives.AccountID, status TxStatus) (TxInfo, error) {
	addr, err := target.MultiAddress()
	if err != nil {
		return TxInfo{}, err
	}
	return s.SendTx(ctx, api.Tx().Vesting().VestOther(addr), status)
}

// VestedTransfer transfers funds under a vesting schedule.
func (s *SignedConnection) VestedTransfer(ctx context.Context, target primitives.AccountID, schedule primitives.VestingInfo, status TxStatus) (TxInfo, error) {
	addr, err := target.MultiAddress()
	if err != nil {
		return TxInfo{}, err
	}
	return s.SendTx(ctx, api.Tx().Vesting().VestedTransfer(addr, schedule), status)
}

// MergeSchedules merges two of the signer's vesting schedules.
func (s *SignedConnection) MergeSchedules(ctx context.Context, schedule1, schedule2 uint32, status TxStatus) (TxInfo, error) {
	return s.SendTx(ctx, api.Tx().Vesting().MergeSchedules(schedule1, schedule2), status)
}

// GetVestingSchedules returns the vesting schedules of an account.
func (c *Connection) GetVestingSchedules(who primitives.AccountID) ([]primitives.VestingInfo, error) {
	var schedules []primitives.VestingInfo
	_, err := c.GetStorageMaybe(api.Storage().Vesting().Vesting(who), &schedules)
	return schedules, err
}
