// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"

	"github.com/Cardinal-Cryptography/aleph-client-go/api"
	"github.com/Cardinal-Cryptography/aleph-client-go/primitives"
)

// BlockStatus selects which chain the waiting helpers observe.
type BlockStatus int

const (
	// BlockBest observes the best (not necessarily final) chain.
	BlockBest BlockStatus = iota
	// BlockFinalized observes the finalized chain.
	BlockFinalized
)

// String implements fmt.Stringer.
func (s BlockStatus) String() string {
	switch s {
	case BlockBest:
		return "best"
	case BlockFinalized:
		return "finalized"
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// headSubscription unifies the best and finalized head subscriptions.
type headSubscription struct {
	heads <-chan types.Header
	errs  <-chan error
	unsub func()
}

func (c *Connection) subscribeHeads(status BlockStatus) (*headSubscription, error) {
	switch status {
	case BlockFinalized:
		sub, err := c.api.RPC.Chain.SubscribeFinalizedHeads()
		if err != nil {
			return nil, fmt.Errorf("subscribing to finalized heads: %w", err)
		}
		return &headSubscription{heads: sub.Chan(), errs: sub.Err(), unsub: sub.Unsubscribe}, nil
	default:
		sub, err := c.api.RPC.Chain.SubscribeNewHeads()
		if err != nil {
			return nil, fmt.Errorf("subscribing to new heads: %w", err)
		}
		return &headSubscription{heads: sub.Chan(), errs: sub.Err(), unsub: sub.Unsubscribe}, nil
	}
}

// waitForHead runs done against every incoming head until it reports true.
func (c *Connection) waitForHead(ctx context.Context, status BlockStatus, done func(types.Header) (bool, error)) error {
	sub, err := c.subscribeHeads(status)
	if err != nil {
		return err
	}
	defer sub.unsub()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-sub.errs:
			return fmt.Errorf("head subscription: %w", err)
		case header := <-sub.heads:
			ok, err := done(header)
			if err != nil {
				return err
			}
			if ok {
				return nil
			}
		}
	}
}

// WaitForBlock blocks until the chain selected by status produces a block
// whose number satisfies the predicate. The current head is checked first,
// so an already-satisfied predicate returns immediately.
func (c *Connection) WaitForBlock(ctx context.Context, pred func(primitives.BlockNumber) bool, status BlockStatus) error {
	current, err := c.currentBlockNumber(status)
	if err != nil {
		return err
	}
	if pred(current) {
		return nil
	}
	return c.waitForHead(ctx, status, func(header types.Header) (bool, error) {
		return pred(primitives.BlockNumber(header.Number)), nil
	})
}

// WaitForBlockNumber blocks until the chain reaches the given block number.
func (c *Connection) WaitForBlockNumber(ctx context.Context, number primitives.BlockNumber, status BlockStatus) error {
	return c.WaitForBlock(ctx, blockAtLeast(number), status)
}

func blockAtLeast(number primitives.BlockNumber) func(primitives.BlockNumber) bool {
	return func(current primitives.BlockNumber) bool {
		return current >= number
	}
}

func (c *Connection) currentBlockNumber(status BlockStatus) (primitives.BlockNumber, error) {
	if status == BlockFinalized {
		return c.GetFinalizedBlockNumber()
	}
	return c.GetBestBlockNumber()
}

// WaitForSession blocks until the first block of the given session.
func (c *Connection) WaitForSession(ctx context.Context, session primitives.SessionIndex, status BlockStatus) error {
	first, err := c.FirstBlockOfSession(session)
	if err != nil {
		return err
	}
	return c.WaitForBlockNumber(ctx, first, status)
}

// WaitForNSessions blocks until n sessions have passed from the current one.
func (c *Connection) WaitForNSessions(ctx context.Context, n uint32, status BlockStatus) error {
	current, err := c.currentBlockNumber(status)
	if err != nil {
		return err
	}
	session, err := c.GetCurrentSession(current)
	if err != nil {
		return err
	}
	return c.WaitForSession(ctx, session+n, status)
}

// WaitForEra blocks until the active staking era reaches the given index.
func (c *Connection) WaitForEra(ctx context.Context, era primitives.EraIndex, status BlockStatus) error {
	reached, err := c.activeEraReached(era)
	if err != nil || reached {
		return err
	}
	return c.waitForHead(ctx, status, func(types.Header) (bool, error) {
		return c.activeEraReached(era)
	})
}

func (c *Connection) activeEraReached(era primitives.EraIndex) (bool, error) {
	var active primitives.ActiveEraInfo
	ok, err := c.GetStorageMaybe(api.Storage().Staking().ActiveEra(), &active)
	if err != nil {
		return false, err
	}
	return ok && active.Index >= era, nil
}

// WaitForNEras blocks until n eras have passed from the active one.
func (c *Connection) WaitForNEras(ctx context.Context, n uint32, status BlockStatus) error {
	var active primitives.ActiveEraInfo
	if err := c.GetStorage(api.Storage().Staking().ActiveEra(), &active); err != nil {
		return err
	}
	return c.WaitForEra(ctx, active.Index+n, status)
}

// WaitForEvent blocks until a block whose events satisfy match. Blocks whose
// events cannot be decoded are skipped with a warning, since runtimes emit
// events of pallets these bindings do not cover.
func (c *Connection) WaitForEvent(ctx context.Context, status BlockStatus, match func(*EventRecords) bool) error {
	return c.waitForHead(ctx, status, func(header types.Header) (bool, error) {
		// Hash the header we were handed rather than resolving the number
		// through the node, which can point at a sibling after a reorg.
		hash, err := HeaderHash(header)
		if err != nil {
			return false, err
		}
		events, err := c.GetEvents(hash)
		if err != nil {
			logger.Warn("skipping block with undecodable events",
				"block", uint32(header.Number), "error", err)
			return false, nil
		}
		return match(events), nil
	})
}
