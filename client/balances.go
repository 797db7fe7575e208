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

// GetFreeBalance returns the free balance of an account.
func (c *Connection) GetFreeBalance(who primitives.AccountID) (primitives.Balance, error) {
	info, err := c.GetAccountInfo(who)
	if err != nil {
		return primitives.Balance{}, err
	}
	return info.Data.Free, nil
}

// GetTotalIssuance returns the total amount of tokens in existence.
func (c *Connection) GetTotalIssuance() (primitives.Balance, error) {
	var total primitives.Balance
	err := c.GetStorage(api.Storage().Balances().TotalIssuance(), &total)
	return total, err
}

// GetBalanceLocks returns the locks on an account's balance.
func (c *Connection) GetBalanceLocks(who primitives.AccountID) ([]primitives.BalanceLock, error) {
	var locks []primitives.BalanceLock
	_, err := c.GetStorageMaybe(api.Storage().Balances().Locks(who), &locks)
	return locks, err
}

// GetExistentialDeposit returns the minimum balance an account may hold.
func (c *Connection) GetExistentialDeposit() (primitives.Balance, error) {
	var deposit primitives.Balance
	err := c.GetConstant(api.Constants().Balances().ExistentialDeposit(), &deposit)
	return deposit, err
}

// Transfer sends amount to dest, allowing the sender to be reaped.
func (s *SignedConnection) Transfer(ctx context.Context, dest primitives.AccountID, amount primitives.Balance, status TxStatus) (TxInfo, error) {
	addr, err := dest.MultiAddress()
	if err != nil {
		return TxInfo{}, err
	}
	return s.SendTx(ctx, api.Tx().Balances().Transfer(addr, types.NewUCompact(amount.Int)), status)
}

// TransferKeepAlive sends amount to dest, failing if the sender would be
// reaped.
func (s *SignedConnection) TransferKeepAlive(ctx context.Context, dest primitives.AccountID, amount primitives.Balance, status TxStatus) (TxInfo, error) {
	addr, err := dest.MultiAddress()
	if err != nil {
		return TxInfo{}, err
	}
	return s.SendTx(ctx, api.Tx().Balances().TransferKeepAlive(addr, types.NewUCompact(amount.Int)), status)
}

// TransferWithTip is Transfer with a priority tip for the block author.
func (s *SignedConnection) TransferWithTip(ctx context.Context, dest primitives.AccountID, amount primitives.Balance, tip uint64, status TxStatus) (TxInfo, error) {
	addr, err := dest.MultiAddress()
	if err != nil {
		return TxInfo{}, err
	}
	return s.SendTxWithTip(ctx, api.Tx().Balances().Transfer(addr, types.NewUCompact(amount.Int)), tip, status)
}

// BatchTransfer sends the same amount to every destination in a single
// atomic batch.
func (s *SignedConnection) BatchTransfer(ctx context.Context, dests []primitives.AccountID, amount primitives.Balance, status TxStatus) (TxInfo, error) {
	calls := make([]types.Call, 0, len(dests))
	for _, dest := range dests {
		addr, err := dest.MultiAddress()
		if err != nil {
			return TxInfo{}, fmt.Errorf("destination %s: %w", dest, err)
		}
		call, err := s.buildCall(api.Tx().Balances().Transfer(addr, types.NewUCompact(amount.Int)))
		if err != nil {
			return TxInfo{}, err
		}
		calls = append(calls, call)
	}
	return s.SendTx(ctx, api.Tx().Utility().BatchAll(calls), status)
}
