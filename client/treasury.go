// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"

	"github.com/Cardinal-Cryptography/aleph-client-go/api"
	"github.com/Cardinal-Cryptography/aleph-client-go/primitives"
)

// TreasuryAccount returns the treasury's account, derived from the treasury
// pallet id the way PalletId::into_account_truncating does: the raw id
// zero-padded to account length.
func TreasuryAccount() primitives.AccountID {
	var account primitives.AccountID
	copy(account[:], "modl"+"py/trsry")
	return account
}

// GetProposalsCount returns the number of treasury proposals ever made.
func (c *Connection) GetProposalsCount() (uint32, error) {
	var count uint32
	_, err := c.GetStorageMaybe(api.Storage().Treasury().ProposalCount(), &count)
	return count, err
}

// GetApprovals returns the queue of approved treasury proposals.
func (c *Connection) GetApprovals() ([]uint32, error) {
	var approvals []uint32
	_, err := c.GetStorageMaybe(api.Storage().Treasury().Approvals(), &approvals)
	return approvals, err
}

// ProposeSpend proposes a treasury spend to a beneficiary, bonding a part of
// the amount.
func (s *SignedConnection) ProposeSpend(ctx context.Context, value primitives.Balance, beneficiary primitives.AccountID, status TxStatus) (TxInfo, error) {
	addr, err := beneficiary.MultiAddress()
	if err != nil {
		return TxInfo{}, err
	}
	return s.SendTx(ctx, api.Tx().Treasury().ProposeSpend(types.NewUCompact(value.Int), addr), status)
}

// ApproveProposal approves a treasury proposal.
func (r *RootConnection) ApproveProposal(ctx context.Context, proposalID uint32, status TxStatus) (TxInfo, error) {
	payload := api.Tx().Treasury().ApproveProposal(types.NewUCompactFromUInt(uint64(proposalID)))
	return r.Sudo(ctx, payload, status)
}

// RejectProposal rejects a treasury proposal, slashing the proposer's bond.
func (r *RootConnection) RejectProposal(ctx context.Context, proposalID uint32, status TxStatus) (TxInfo, error) {
	payload := api.Tx().Treasury().RejectProposal(types.NewUCompactFromUInt(uint64(proposalID)))
	return r.Sudo(ctx, payload, status)
}
