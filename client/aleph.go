// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"

	"github.com/Cardinal-Cryptography/aleph-client-go/api"
	"github.com/Cardinal-Cryptography/aleph-client-go/primitives"
)

// GetFinalityVersion returns the finality protocol version in effect.
func (c *Connection) GetFinalityVersion() (primitives.Version, error) {
	var version primitives.Version
	err := c.GetStorage(api.Storage().Aleph().FinalityVersion(), &version)
	return version, err
}

// GetScheduledFinalityVersionChange returns the pending finality version
// change, if one is scheduled.
func (c *Connection) GetScheduledFinalityVersionChange() (primitives.VersionChange, bool, error) {
	var change primitives.VersionChange
	ok, err := c.GetStorageMaybe(api.Storage().Aleph().FinalityScheduledVersionChange(), &change)
	return change, ok, err
}

// GetEmergencyFinalizer returns the emergency finalizer key, if one is set.
func (c *Connection) GetEmergencyFinalizer() (primitives.AccountID, bool, error) {
	var finalizer primitives.AccountID
	ok, err := c.GetStorageMaybe(api.Storage().Aleph().EmergencyFinalizer(), &finalizer)
	return finalizer, ok, err
}

// ScheduleFinalityVersionChange schedules a finality protocol version change
// at the start of the given session.
func (r *RootConnection) ScheduleFinalityVersionChange(ctx context.Context, version primitives.Version, session primitives.SessionIndex, status TxStatus) (TxInfo, error) {
	return r.Sudo(ctx, api.Tx().Aleph().ScheduleFinalityVersionChange(version, session), status)
}

// SetEmergencyFinalizer sets the emergency finalizer key. The change takes
// effect two sessions later.
func (r *RootConnection) SetEmergencyFinalizer(ctx context.Context, finalizer primitives.AccountID, status TxStatus) (TxInfo, error) {
	return r.Sudo(ctx, api.Tx().Aleph().SetEmergencyFinalizer(finalizer), status)
}
