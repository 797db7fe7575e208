// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"

	"github.com/Cardinal-Cryptography/aleph-client-go/api"
	"github.com/Cardinal-Cryptography/aleph-client-go/primitives"
)

// Sudo dispatches the payload with root origin.
func (r *RootConnection) Sudo(ctx context.Context, payload *api.TxPayload, status TxStatus) (TxInfo, error) {
	call, err := r.buildCall(payload)
	if err != nil {
		return TxInfo{}, err
	}
	return r.SendTx(ctx, api.Tx().Sudo().Sudo(call), status)
}

// SudoUncheckedWeight dispatches the payload with root origin and no weight
// checking, the variant used for calls whose benchmarked weight would not
// fit a block.
func (r *RootConnection) SudoUncheckedWeight(ctx context.Context, payload *api.TxPayload, status TxStatus) (TxInfo, error) {
	call, err := r.buildCall(payload)
	if err != nil {
		return TxInfo{}, err
	}
	return r.SendTx(ctx, api.Tx().Sudo().SudoUncheckedWeight(call, primitives.ZeroWeight()), status)
}
