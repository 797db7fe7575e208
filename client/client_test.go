// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"testing"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"github.com/stretchr/testify/require"

	"github.com/Cardinal-Cryptography/aleph-client-go/lib/hashers"
	"github.com/Cardinal-Cryptography/aleph-client-go/primitives"
)

func TestTxStatusString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status TxStatus
		want   string
	}{
		{TxSubmitted, "submitted"},
		{TxInBlock, "in_block"},
		{TxFinalized, "finalized"},
		{TxStatus(42), "unknown(42)"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.status.String())
	}
}

func TestBlockStatusString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "best", BlockBest.String())
	require.Equal(t, "finalized", BlockFinalized.String())
	require.Equal(t, "unknown(9)", BlockStatus(9).String())
}

func TestMultisigAccountOrderIndependent(t *testing.T) {
	t.Parallel()

	a := primitives.AccountID{1}
	b := primitives.AccountID{2}
	c := primitives.AccountID{3}

	first, err := MultisigAccount([]primitives.AccountID{a, b, c}, 2)
	require.NoError(t, err)
	second, err := MultisigAccount([]primitives.AccountID{c, a, b}, 2)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestMultisigAccountDependsOnThreshold(t *testing.T) {
	t.Parallel()

	signatories := []primitives.AccountID{{1}, {2}}

	two, err := MultisigAccount(signatories, 2)
	require.NoError(t, err)
	one, err := MultisigAccount(signatories, 1)
	require.NoError(t, err)
	require.NotEqual(t, two, one)
}

func TestMultisigAccountLeavesInputUnsorted(t *testing.T) {
	t.Parallel()

	signatories := []primitives.AccountID{{9}, {1}}
	_, err := MultisigAccount(signatories, 2)
	require.NoError(t, err)
	require.Equal(t, primitives.AccountID{9}, signatories[0])
}

func TestBlockAtLeast(t *testing.T) {
	t.Parallel()

	pred := blockAtLeast(10)
	require.False(t, pred(9))
	require.True(t, pred(10))
	require.True(t, pred(11))
}

func TestHeaderHash(t *testing.T) {
	t.Parallel()

	header := types.Header{
		ParentHash:     types.Hash{1, 2, 3},
		Number:         7,
		StateRoot:      types.Hash{4},
		ExtrinsicsRoot: types.Hash{5},
	}

	hash, err := HeaderHash(header)
	require.NoError(t, err)

	encoded, err := codec.Encode(header)
	require.NoError(t, err)
	require.Equal(t, types.Hash(hashers.Blake2b256(encoded)), hash)

	// The hash pins the exact header, not just its number.
	sibling := header
	sibling.StateRoot = types.Hash{9}
	siblingHash, err := HeaderHash(sibling)
	require.NoError(t, err)
	require.NotEqual(t, hash, siblingHash)
}

func TestTreasuryAccount(t *testing.T) {
	t.Parallel()

	account := TreasuryAccount()
	require.Equal(t, []byte("modlpy/trsry"), account[:12])
	for _, b := range account[12:] {
		require.Zero(t, b)
	}
}
