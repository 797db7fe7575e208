// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"

	"github.com/Cardinal-Cryptography/aleph-client-go/api"
	"github.com/Cardinal-Cryptography/aleph-client-go/lib/hashers"
	"github.com/Cardinal-Cryptography/aleph-client-go/primitives"
)

// multisigPrefix is the pallet's account derivation tag.
const multisigPrefix = "modlpy/utilisuba"

// MultisigAccount derives the account of a multisig party from its
// signatories and threshold. Signatory order does not matter.
func MultisigAccount(signatories []primitives.AccountID, threshold uint16) (primitives.AccountID, error) {
	sorted := make([]primitives.AccountID, len(signatories))
	copy(sorted, signatories)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i][:], sorted[j][:]) < 0
	})

	encodedSignatories, err := codec.Encode(sorted)
	if err != nil {
		return primitives.AccountID{}, fmt.Errorf("encoding signatories: %w", err)
	}
	encodedThreshold, err := codec.Encode(threshold)
	if err != nil {
		return primitives.AccountID{}, fmt.Errorf("encoding threshold: %w", err)
	}

	entropy := make([]byte, 0, len(multisigPrefix)+len(encodedSignatories)+len(encodedThreshold))
	entropy = append(entropy, multisigPrefix...)
	entropy = append(entropy, encodedSignatories...)
	entropy = append(entropy, encodedThreshold...)
	return primitives.AccountID(hashers.Blake2b256(entropy)), nil
}

// ApproveAsMulti registers the signer's approval of a multisig call,
// identified by its hash. Pass nil timepoint for the first approval.
func (s *SignedConnection) ApproveAsMulti(
	ctx context.Context,
	threshold uint16,
	otherSignatories []primitives.AccountID,
	timepoint *primitives.Timepoint,
	callHash [32]byte,
	maxWeight primitives.Weight,
	status TxStatus,
) (TxInfo, error) {
	timepointOpt := primitives.NewOptionTimepointEmpty()
	if timepoint != nil {
		timepointOpt = primitives.NewOptionTimepoint(*timepoint)
	}
	payload := api.Tx().Multisig().ApproveAsMulti(threshold, otherSignatories, timepointOpt, callHash, maxWeight)
	return s.SendTx(ctx, payload, status)
}

// CancelAsMulti cancels a multisig operation opened by the signer,
// returning the deposit.
func (s *SignedConnection) CancelAsMulti(
	ctx context.Context,
	threshold uint16,
	otherSignatories []primitives.AccountID,
	timepoint primitives.Timepoint,
	callHash [32]byte,
	status TxStatus,
) (TxInfo, error) {
	payload := api.Tx().Multisig().CancelAsMulti(threshold, otherSignatories, timepoint, callHash)
	return s.SendTx(ctx, payload, status)
}

// GetMultisig returns the state of an open multisig operation, if any.
func (c *Connection) GetMultisig(party primitives.AccountID, callHash [32]byte) (primitives.Multisig, bool, error) {
	var multisig primitives.Multisig
	ok, err := c.GetStorageMaybe(api.Storage().Multisig().Multisigs(party, callHash), &multisig)
	return multisig, ok, err
}
