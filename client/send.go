// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"

	"github.com/Cardinal-Cryptography/aleph-client-go/api"
	"github.com/Cardinal-Cryptography/aleph-client-go/internal/metrics"
	"github.com/Cardinal-Cryptography/aleph-client-go/lib/hashers"
)

// TxStatus selects how long SendTx follows a submitted transaction.
type TxStatus int

const (
	// TxSubmitted returns as soon as the node accepts the transaction.
	TxSubmitted TxStatus = iota
	// TxInBlock waits until the transaction lands in a best-chain block.
	TxInBlock
	// TxFinalized waits until the containing block is finalized.
	TxFinalized
)

// String implements fmt.Stringer.
func (s TxStatus) String() string {
	switch s {
	case TxSubmitted:
		return "submitted"
	case TxInBlock:
		return "in_block"
	case TxFinalized:
		return "finalized"
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// TxInfo identifies a submitted transaction. BlockHash is zero when the
// transaction was only watched to the submitted status.
type TxInfo struct {
	BlockHash types.Hash
	TxHash    types.Hash
}

var (
	// ErrTxDropped means the node dropped the transaction from its pool.
	ErrTxDropped = errors.New("transaction dropped")
	// ErrTxInvalid means the node rejected the transaction as invalid.
	ErrTxInvalid = errors.New("transaction invalid")
	// ErrTxUsurped means the transaction was replaced by another with the
	// same nonce.
	ErrTxUsurped = errors.New("transaction usurped")
)

// SendTx signs the payload, submits it and follows the submission until it
// reaches the requested status.
func (s *SignedConnection) SendTx(ctx context.Context, payload *api.TxPayload, status TxStatus) (TxInfo, error) {
	return s.SendTxWithTip(ctx, payload, 0, status)
}

// SendTxWithTip is SendTx with a priority tip for the block author.
func (s *SignedConnection) SendTxWithTip(ctx context.Context, payload *api.TxPayload, tip uint64, status TxStatus) (TxInfo, error) {
	call, err := s.buildCall(payload)
	if err != nil {
		return TxInfo{}, err
	}
	ext := types.NewExtrinsic(call)

	nonce, err := s.nonces.Next()
	if err != nil {
		return TxInfo{}, fmt.Errorf("fetching nonce: %w", err)
	}

	opts := types.SignatureOptions{
		BlockHash:          s.genesisHash,
		Era:                types.ExtrinsicEra{IsMortalEra: false},
		GenesisHash:        s.genesisHash,
		Nonce:              types.NewUCompactFromUInt(uint64(nonce)),
		SpecVersion:        s.runtimeVersion.SpecVersion,
		Tip:                types.NewUCompactFromUInt(tip),
		TransactionVersion: s.runtimeVersion.TransactionVersion,
	}
	// The nonce is consumed at this point, so every failure before the
	// chain sees the transaction must resync it or the next submission
	// would sit in the future pool.
	if err := ext.Sign(s.signer.Signer(), opts); err != nil {
		s.nonces.Resync()
		return TxInfo{}, fmt.Errorf("signing %s: %w", payload.Name(), err)
	}

	encoded, err := codec.Encode(ext)
	if err != nil {
		s.nonces.Resync()
		return TxInfo{}, fmt.Errorf("encoding extrinsic: %w", err)
	}
	txHash := types.Hash(hashers.Blake2b256(encoded))

	logger.Debug("submitting transaction",
		"call", payload.Name(), "nonce", nonce, "hash", txHash.Hex(), "watch", status)

	info, err := s.submit(ctx, ext, txHash, status)
	if err != nil {
		metrics.TransactionsFailed.Inc()
		s.nonces.Resync()
		return TxInfo{}, fmt.Errorf("submitting %s: %w", payload.Name(), err)
	}
	return info, nil
}

func (s *SignedConnection) submit(ctx context.Context, ext types.Extrinsic, txHash types.Hash, status TxStatus) (TxInfo, error) {
	start := time.Now()
	metrics.TransactionsSubmitted.Inc()

	if status == TxSubmitted {
		if _, err := s.api.RPC.Author.SubmitExtrinsic(ext); err != nil {
			return TxInfo{}, err
		}
		metrics.TransactionStatusDuration.WithLabelValues(status.String()).Observe(time.Since(start).Seconds())
		return TxInfo{TxHash: txHash}, nil
	}

	sub, err := s.api.RPC.Author.SubmitAndWatchExtrinsic(ext)
	if err != nil {
		return TxInfo{}, err
	}
	defer sub.Unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return TxInfo{}, ctx.Err()
		case err := <-sub.Err():
			return TxInfo{}, err
		case st := <-sub.Chan():
			switch {
			case st.IsInBlock && status == TxInBlock:
				metrics.TransactionStatusDuration.WithLabelValues(status.String()).Observe(time.Since(start).Seconds())
				return TxInfo{BlockHash: st.AsInBlock, TxHash: txHash}, nil
			case st.IsFinalized:
				// Finalized implies in block, so this also satisfies
				// a TxInBlock watch that missed the earlier status.
				metrics.TransactionStatusDuration.WithLabelValues(status.String()).Observe(time.Since(start).Seconds())
				return TxInfo{BlockHash: st.AsFinalized, TxHash: txHash}, nil
			case st.IsDropped:
				return TxInfo{}, ErrTxDropped
			case st.IsInvalid:
				return TxInfo{}, ErrTxInvalid
			case st.IsUsurped:
				return TxInfo{}, fmt.Errorf("%w: by %s", ErrTxUsurped, st.AsUsurped.Hex())
			}
		}
	}
}
