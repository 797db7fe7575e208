// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNonceManagerSequence(t *testing.T) {
	t.Parallel()

	fetches := 0
	m := newNonceManager(func() (uint32, error) {
		fetches++
		return 7, nil
	})

	for want := uint32(7); want < 10; want++ {
		got, err := m.Next()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	require.Equal(t, 1, fetches, "chain is queried once until a resync")
}

func TestNonceManagerResync(t *testing.T) {
	t.Parallel()

	chainNonce := uint32(3)
	m := newNonceManager(func() (uint32, error) {
		return chainNonce, nil
	})

	got, err := m.Next()
	require.NoError(t, err)
	require.Equal(t, uint32(3), got)

	// A submission failed and the chain moved on without us.
	chainNonce = 10
	m.Resync()

	got, err = m.Next()
	require.NoError(t, err)
	require.Equal(t, uint32(10), got)
}

func TestNonceManagerResyncReleasesConsumedNonce(t *testing.T) {
	t.Parallel()

	m := newNonceManager(func() (uint32, error) {
		return 5, nil
	})

	got, err := m.Next()
	require.NoError(t, err)
	require.Equal(t, uint32(5), got)

	// The signed transaction never reached the chain, so the account
	// nonce is still 5 and must be handed out again.
	m.Resync()

	got, err = m.Next()
	require.NoError(t, err)
	require.Equal(t, uint32(5), got)
}

func TestNonceManagerFetchError(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("node unreachable")
	m := newNonceManager(func() (uint32, error) {
		return 0, fetchErr
	})

	_, err := m.Next()
	require.ErrorIs(t, err, fetchErr)
}

func TestNonceManagerConcurrent(t *testing.T) {
	t.Parallel()

	const goroutines = 32
	m := newNonceManager(func() (uint32, error) {
		return 0, nil
	})

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[uint32]bool)
	)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			nonce, err := m.Next()
			require.NoError(t, err)
			mu.Lock()
			defer mu.Unlock()
			require.False(t, seen[nonce], "nonce %d handed out twice", nonce)
			seen[nonce] = true
		}()
	}
	wg.Wait()
	require.Len(t, seen, goroutines)
}
