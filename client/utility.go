// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"

	"github.com/Cardinal-Cryptography/aleph-client-go/api"
)

func (s *SignedConnection) buildCalls(payloads []*api.TxPayload) ([]types.Call, error) {
	calls := make([]types.Call, 0, len(payloads))
	for _, payload := range payloads {
		call, err := s.buildCall(payload)
		if err != nil {
			return nil, err
		}
		calls = append(calls, call)
	}
	return calls, nil
}

// Batch submits the payloads as a single transaction. Execution stops at the
// first failing call, without rolling back the preceding ones.
func (s *SignedConnection) Batch(ctx context.Context, payloads []*api.TxPayload, status TxStatus) (TxInfo, error) {
	calls, err := s.buildCalls(payloads)
	if err != nil {
		return TxInfo{}, err
	}
	return s.SendTx(ctx, api.Tx().Utility().Batch(calls), status)
}

// BatchAll is the atomic variant of Batch: either every call succeeds or the
// whole batch is rolled back.
func (s *SignedConnection) BatchAll(ctx context.Context, payloads []*api.TxPayload, status TxStatus) (TxInfo, error) {
	calls, err := s.buildCalls(payloads)
	if err != nil {
		return TxInfo{}, err
	}
	return s.SendTx(ctx, api.Tx().Utility().BatchAll(calls), status)
}
