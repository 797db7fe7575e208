// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"

	"github.com/Cardinal-Cryptography/aleph-client-go/api"
	"github.com/Cardinal-Cryptography/aleph-client-go/primitives"
)

// EventAlephChangeEmergencyFinalizer is emitted when the emergency finalizer
// key is rotated.
type EventAlephChangeEmergencyFinalizer struct {
	Phase     types.Phase
	Finalizer primitives.AccountID
	Topics    []types.Hash
}

// EventAlephScheduleFinalityVersionChange is emitted when a finality version
// change is scheduled.
type EventAlephScheduleFinalityVersionChange struct {
	Phase  types.Phase
	Change primitives.VersionChange
	Topics []types.Hash
}

// EventAlephFinalityVersionChange is emitted when a scheduled finality
// version change takes effect.
type EventAlephFinalityVersionChange struct {
	Phase  types.Phase
	Change primitives.VersionChange
	Topics []types.Hash
}

// EventElectionsChangeValidators is emitted when the validator sets or the
// committee seats for the next era change.
type EventElectionsChangeValidators struct {
	Phase         types.Phase
	Reserved      []primitives.AccountID
	NonReserved   []primitives.AccountID
	CommitteeSize primitives.CommitteeSeats
	Topics        []types.Hash
}

// ValidatorBan pairs a banned validator with its ban info.
type ValidatorBan struct {
	Who  primitives.AccountID
	Info primitives.BanInfo
}

// EventCommitteeManagementBanValidators is emitted when validators are
// banned from the committee.
type EventCommitteeManagementBanValidators struct {
	Phase  types.Phase
	Bans   []ValidatorBan
	Topics []types.Hash
}

// EventCommitteeManagementSetBanConfig is emitted when the ban configuration
// changes.
type EventCommitteeManagementSetBanConfig struct {
	Phase  types.Phase
	Config primitives.BanConfig
	Topics []types.Hash
}

// EventRecords extends the standard frame events with the aleph-specific
// pallets. Decoding fails for blocks containing events of pallets listed in
// neither place; use GetEventsRaw for those.
type EventRecords struct {
	types.EventRecords
	Aleph_ChangeEmergencyFinalizer      []EventAlephChangeEmergencyFinalizer
	Aleph_ScheduleFinalityVersionChange []EventAlephScheduleFinalityVersionChange
	Aleph_FinalityVersionChange         []EventAlephFinalityVersionChange
	Elections_ChangeValidators          []EventElectionsChangeValidators
	CommitteeManagement_BanValidators   []EventCommitteeManagementBanValidators
	CommitteeManagement_SetBanConfig    []EventCommitteeManagementSetBanConfig
}

// GetEventsRaw fetches the undecoded System.Events value of a block.
func (c *Connection) GetEventsRaw(at types.Hash) (types.EventRecordsRaw, error) {
	key := types.StorageKey(api.Storage().System().Events().Bytes())
	raw, err := c.api.RPC.State.GetStorageRaw(key, at)
	if err != nil {
		return nil, fmt.Errorf("fetching events at %s: %w", at.Hex(), err)
	}
	return types.EventRecordsRaw(*raw), nil
}

// GetEvents fetches and decodes the events of a block.
func (c *Connection) GetEvents(at types.Hash) (*EventRecords, error) {
	raw, err := c.GetEventsRaw(at)
	if err != nil {
		return nil, err
	}
	var events EventRecords
	if err := raw.DecodeEventRecords(c.meta, &events); err != nil {
		return nil, fmt.Errorf("decoding events at %s: %w", at.Hex(), err)
	}
	return &events, nil
}
