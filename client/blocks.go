// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"

	"github.com/Cardinal-Cryptography/aleph-client-go/api"
	"github.com/Cardinal-Cryptography/aleph-client-go/lib/hashers"
	"github.com/Cardinal-Cryptography/aleph-client-go/primitives"
)

// HeaderHash computes a header's block hash, blake2b-256 over its SCALE
// encoding.
func HeaderHash(header types.Header) (types.Hash, error) {
	encoded, err := codec.Encode(header)
	if err != nil {
		return types.Hash{}, fmt.Errorf("encoding header: %w", err)
	}
	return types.Hash(hashers.Blake2b256(encoded)), nil
}

// GetBlockHash returns the canonical-chain hash of a block number.
func (c *Connection) GetBlockHash(number primitives.BlockNumber) (types.Hash, error) {
	return c.api.RPC.Chain.GetBlockHash(uint64(number))
}

// GetBlockNumber returns the number of the block with the given hash.
func (c *Connection) GetBlockNumber(hash types.Hash) (primitives.BlockNumber, error) {
	header, err := c.api.RPC.Chain.GetHeader(hash)
	if err != nil {
		return 0, fmt.Errorf("fetching header %s: %w", hash.Hex(), err)
	}
	return primitives.BlockNumber(header.Number), nil
}

// GetBestBlockNumber returns the number of the current best block.
func (c *Connection) GetBestBlockNumber() (primitives.BlockNumber, error) {
	header, err := c.api.RPC.Chain.GetHeaderLatest()
	if err != nil {
		return 0, err
	}
	return primitives.BlockNumber(header.Number), nil
}

// GetFinalizedBlockHash returns the hash of the latest finalized block.
func (c *Connection) GetFinalizedBlockHash() (types.Hash, error) {
	return c.api.RPC.Chain.GetFinalizedHead()
}

// GetFinalizedBlockNumber returns the number of the latest finalized block.
func (c *Connection) GetFinalizedBlockNumber() (primitives.BlockNumber, error) {
	hash, err := c.GetFinalizedBlockHash()
	if err != nil {
		return 0, err
	}
	return c.GetBlockNumber(hash)
}

// SessionPeriod reads the session length, in blocks, from the runtime.
func (c *Connection) SessionPeriod() (uint32, error) {
	var period uint32
	if err := c.GetConstant(api.Constants().Elections().SessionPeriod(), &period); err != nil {
		return 0, err
	}
	return period, nil
}

// FirstBlockOfSession returns the number of the session's first block.
func (c *Connection) FirstBlockOfSession(session primitives.SessionIndex) (primitives.BlockNumber, error) {
	period, err := c.SessionPeriod()
	if err != nil {
		return 0, err
	}
	return primitives.BlockNumber(session) * period, nil
}

// GetCurrentSession returns the session the given block belongs to, derived
// from the block number and the session period.
func (c *Connection) GetCurrentSession(number primitives.BlockNumber) (primitives.SessionIndex, error) {
	period, err := c.SessionPeriod()
	if err != nil {
		return 0, err
	}
	return primitives.SessionIndex(number / period), nil
}
