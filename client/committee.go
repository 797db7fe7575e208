// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"

	"github.com/Cardinal-Cryptography/aleph-client-go/api"
	"github.com/Cardinal-Cryptography/aleph-client-go/primitives"
)

// GetBanConfig returns the committee ban configuration.
func (c *Connection) GetBanConfig() (primitives.BanConfig, error) {
	var config primitives.BanConfig
	err := c.GetStorage(api.Storage().CommitteeManagement().BanConfig(), &config)
	return config, err
}

// GetBanInfo returns the ban laid on a validator, if any.
func (c *Connection) GetBanInfo(who primitives.AccountID) (primitives.BanInfo, bool, error) {
	var info primitives.BanInfo
	ok, err := c.GetStorageMaybe(api.Storage().CommitteeManagement().Banned(who), &info)
	return info, ok, err
}

// GetUnderperformedValidatorSessionCount returns how many consecutive
// sessions a validator underperformed in.
func (c *Connection) GetUnderperformedValidatorSessionCount(who primitives.AccountID) (uint32, error) {
	var count uint32
	_, err := c.GetStorageMaybe(api.Storage().CommitteeManagement().UnderperformedValidatorSessionCount(who), &count)
	return count, err
}

// GetSessionValidatorBlockCount returns how many blocks a validator produced
// in the current session.
func (c *Connection) GetSessionValidatorBlockCount(who primitives.AccountID) (uint32, error) {
	var count uint32
	_, err := c.GetStorageMaybe(api.Storage().CommitteeManagement().SessionValidatorBlockCount(who), &count)
	return count, err
}

// BanFromCommittee bans a validator from the committee, with a free-form
// reason.
func (r *RootConnection) BanFromCommittee(ctx context.Context, validator primitives.AccountID, reason []byte, status TxStatus) (TxInfo, error) {
	return r.Sudo(ctx, api.Tx().CommitteeManagement().BanFromCommittee(validator, reason), status)
}

// BanConfigChange holds the ban configuration fields to update. Nil fields
// are left untouched.
type BanConfigChange struct {
	MinimalExpectedPerformance          *uint32
	UnderperformedSessionCountThreshold *uint32
	CleanSessionCounterDelay            *uint32
	BanPeriod                           *uint32
}

// SetBanConfig updates the ban configuration.
func (r *RootConnection) SetBanConfig(ctx context.Context, change BanConfigChange, status TxStatus) (TxInfo, error) {
	payload := api.Tx().CommitteeManagement().SetBanConfig(
		optionU32(change.MinimalExpectedPerformance),
		optionU32(change.UnderperformedSessionCountThreshold),
		optionU32(change.CleanSessionCounterDelay),
		optionU32(change.BanPeriod),
	)
	return r.Sudo(ctx, payload, status)
}

func optionU32(v *uint32) types.OptionU32 {
	if v == nil {
		return types.NewOptionU32Empty()
	}
	return types.NewOptionU32(types.U32(*v))
}
