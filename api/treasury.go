// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

// TreasuryTx builds pallet_treasury call payloads.
type TreasuryTx struct{}

// Treasury returns the treasury call builders.
func (TxAPI) Treasury() TreasuryTx { return TreasuryTx{} }

// ProposeSpend builds Treasury.propose_spend.
func (TreasuryTx) ProposeSpend(value types.UCompact, beneficiary types.MultiAddress) *TxPayload {
	return newTxPayload("Treasury", "propose_spend",
		[]interface{}{value, beneficiary}, "Compact<u128>", "MultiAddress")
}

// ApproveProposal builds Treasury.approve_proposal (root only).
func (TreasuryTx) ApproveProposal(proposalID types.UCompact) *TxPayload {
	return newTxPayload("Treasury", "approve_proposal",
		[]interface{}{proposalID}, "Compact<u32>")
}

// RejectProposal builds Treasury.reject_proposal (root only).
func (TreasuryTx) RejectProposal(proposalID types.UCompact) *TxPayload {
	return newTxPayload("Treasury", "reject_proposal",
		[]interface{}{proposalID}, "Compact<u32>")
}

// TreasuryStorage builds pallet_treasury storage addresses.
type TreasuryStorage struct{}

// Treasury returns the treasury storage builders.
func (StorageAPI) Treasury() TreasuryStorage { return TreasuryStorage{} }

// ProposalCount addresses Treasury.ProposalCount.
func (TreasuryStorage) ProposalCount() *StorageAddress {
	return newStorageAddress("Treasury", "ProposalCount")
}

// Approvals addresses Treasury.Approvals, the queue of approved proposals.
func (TreasuryStorage) Approvals() *StorageAddress {
	return newStorageAddress("Treasury", "Approvals")
}

// TreasuryConstants builds pallet_treasury constant addresses.
type TreasuryConstants struct{}

// Treasury returns the treasury constant builders.
func (ConstantsAPI) Treasury() TreasuryConstants { return TreasuryConstants{} }

// ProposalBond addresses the permill bond taken from spend proposers.
func (TreasuryConstants) ProposalBond() *ConstantAddress {
	return newConstantAddress("Treasury", "ProposalBond", "Permill")
}

// SpendPeriod addresses the period between successive spends.
func (TreasuryConstants) SpendPeriod() *ConstantAddress {
	return newConstantAddress("Treasury", "SpendPeriod", "u32")
}

// Burn addresses the permill of excess funds burnt per spend period.
func (TreasuryConstants) Burn() *ConstantAddress {
	return newConstantAddress("Treasury", "Burn", "Permill")
}
