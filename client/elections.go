// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"

	"github.com/Cardinal-Cryptography/aleph-client-go/api"
	"github.com/Cardinal-Cryptography/aleph-client-go/primitives"
)

// GetCommitteeSize returns the committee seats of the current era.
func (c *Connection) GetCommitteeSize() (primitives.CommitteeSeats, error) {
	var seats primitives.CommitteeSeats
	err := c.GetStorage(api.Storage().Elections().CommitteeSize(), &seats)
	return seats, err
}

// GetNextEraCommitteeSize returns the committee seats of the next era.
func (c *Connection) GetNextEraCommitteeSize() (primitives.CommitteeSeats, error) {
	var seats primitives.CommitteeSeats
	err := c.GetStorage(api.Storage().Elections().NextEraCommitteeSize(), &seats)
	return seats, err
}

// GetCurrentEraValidators returns the reserved/non-reserved validator split
// of the current era.
func (c *Connection) GetCurrentEraValidators() (primitives.EraValidators, error) {
	var validators primitives.EraValidators
	err := c.GetStorage(api.Storage().Elections().CurrentEraValidators(), &validators)
	return validators, err
}

// GetNextEraReservedValidators returns the reserved validators of the next
// era.
func (c *Connection) GetNextEraReservedValidators() ([]primitives.AccountID, error) {
	var validators []primitives.AccountID
	err := c.GetStorage(api.Storage().Elections().NextEraReservedValidators(), &validators)
	return validators, err
}

// GetNextEraNonReservedValidators returns the non-reserved validators of the
// next era.
func (c *Connection) GetNextEraNonReservedValidators() ([]primitives.AccountID, error) {
	var validators []primitives.AccountID
	err := c.GetStorage(api.Storage().Elections().NextEraNonReservedValidators(), &validators)
	return validators, err
}

// GetElectionsOpenness returns the election mode.
func (c *Connection) GetElectionsOpenness() (primitives.ElectionOpenness, error) {
	var openness primitives.ElectionOpenness
	err := c.GetStorage(api.Storage().Elections().Openness(), &openness)
	return openness, err
}

// ChangeValidators updates the validator sets and committee seats for the
// next era. Nil arguments leave the corresponding setting untouched.
func (r *RootConnection) ChangeValidators(
	ctx context.Context,
	reserved []primitives.AccountID,
	nonReserved []primitives.AccountID,
	committeeSize *primitives.CommitteeSeats,
	status TxStatus,
) (TxInfo, error) {
	reservedOpt := primitives.NewOptionAccountIDsEmpty()
	if reserved != nil {
		reservedOpt = primitives.NewOptionAccountIDs(reserved)
	}
	nonReservedOpt := primitives.NewOptionAccountIDsEmpty()
	if nonReserved != nil {
		nonReservedOpt = primitives.NewOptionAccountIDs(nonReserved)
	}
	seatsOpt := primitives.NewOptionCommitteeSeatsEmpty()
	if committeeSize != nil {
		seatsOpt = primitives.NewOptionCommitteeSeats(*committeeSize)
	}
	payload := api.Tx().Elections().ChangeValidators(reservedOpt, nonReservedOpt, seatsOpt)
	return r.Sudo(ctx, payload, status)
}

// SetElectionsOpenness switches between permissioned and permissionless
// elections.
func (r *RootConnection) SetElectionsOpenness(ctx context.Context, openness primitives.ElectionOpenness, status TxStatus) (TxInfo, error) {
	return r.Sudo(ctx, api.Tx().Elections().SetElectionsOpenness(openness), status)
}
