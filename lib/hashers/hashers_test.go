// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package hashers

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTwox128(t *testing.T) {
	system := Twox128([]byte("System"))
	require.Len(t, system, 16)

	// deterministic and input sensitive
	require.Equal(t, system, Twox128([]byte("System")))
	require.NotEqual(t, system, Twox128([]byte("Session")))
}

func TestTwox64Concat(t *testing.T) {
	in := []byte{1, 2, 3, 4}
	out := Twox64ConcatHasher.Hash(in)

	require.Len(t, out, 8+len(in))
	require.True(t, bytes.HasSuffix(out, in))
	require.Equal(t, Twox64(in), out[:8])
}

func TestBlake2b128Concat(t *testing.T) {
	in := []byte("some storage key")
	out := Blake2b128ConcatHasher.Hash(in)

	require.Len(t, out, 16+len(in))
	require.True(t, bytes.HasSuffix(out, in))
	require.Equal(t, Blake2b128(in), out[:16])
}

func TestIdentity(t *testing.T) {
	in := []byte{0xde, 0xad}
	require.Equal(t, in, IdentityHasher.Hash(in))
}

func TestHasherNames(t *testing.T) {
	tests := map[string]Hasher{
		"Twox64Concat":     Twox64ConcatHasher,
		"Blake2_128Concat": Blake2b128ConcatHasher,
		"Identity":         IdentityHasher,
	}
	for name, hasher := range tests {
		require.Equal(t, name, hasher.Name())
	}
}
