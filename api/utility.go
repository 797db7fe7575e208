// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

// UtilityTx builds pallet_utility call payloads.
type UtilityTx struct{}

// Utility returns the utility call builders.
func (TxAPI) Utility() UtilityTx { return UtilityTx{} }

// Batch builds Utility.batch over already-resolved runtime calls.
func (UtilityTx) Batch(calls []types.Call) *TxPayload {
	return newTxPayload("Utility", "batch",
		[]interface{}{calls}, "Vec<Call>")
}

// BatchAll builds Utility.batch_all, the atomic variant of batch.
func (UtilityTx) BatchAll(calls []types.Call) *TxPayload {
	return newTxPayload("Utility", "batch_all",
		[]interface{}{calls}, "Vec<Call>")
}

// UtilityConstants builds pallet_utility constant addresses.
type UtilityConstants struct{}

// Utility returns the utility constant builders.
func (ConstantsAPI) Utility() UtilityConstants { return UtilityConstants{} }

// BatchedCallsLimit addresses the maximum number of calls in a batch.
func (UtilityConstants) BatchedCallsLimit() *ConstantAddress {
	return newConstantAddress("Utility", "batched_calls_limit", "u32")
}
