// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

// Package hashers implements the storage-key hashers of Substrate runtimes:
// twox128 for pallet and entry prefixes, and the per-key hashers declared by
// storage map metadata.
package hashers

import (
	"encoding/binary"

	"github.com/OneOfOne/xxhash"
	"golang.org/x/crypto/blake2b"
)

// Hasher turns an encoded storage map key component into its trie form.
type Hasher interface {
	// Name is the hasher name as it appears in runtime metadata.
	Name() string
	// Hash computes the key component.
	Hash(in []byte) []byte
}

// Twox64 returns the xx64 hash of the input with seed 0.
func Twox64(in []byte) []byte {
	h := xxhash.NewS64(0)
	// Write on xxhash never errors
	_, _ = h.Write(in)
	out := make([]byte, 8)
	binary.LittleEndian.PutUint64(out, h.Sum64())
	return out
}

// Twox128 computes xxHash64 twice with seeds 0 and 1 and concatenates the
// results.
func Twox128(in []byte) []byte {
	out := make([]byte, 16)
	for seed := uint64(0); seed < 2; seed++ {
		h := xxhash.NewS64(seed)
		_, _ = h.Write(in)
		binary.LittleEndian.PutUint64(out[seed*8:], h.Sum64())
	}
	return out
}

// Blake2b128 returns the 128-bit blake2b hash of the input.
func Blake2b128(in []byte) []byte {
	h, err := blake2b.New(16, nil)
	if err != nil {
		panic(err) // only fails for invalid digest sizes
	}
	_, _ = h.Write(in)
	return h.Sum(nil)
}

// Blake2b256 returns the 256-bit blake2b hash of the input.
func Blake2b256(in []byte) [32]byte {
	return blake2b.Sum256(in)
}

type twox64Concat struct{}

func (twox64Concat) Name() string { return "Twox64Concat" }

func (twox64Concat) Hash(in []byte) []byte {
	return append(Twox64(in), in...)
}

type blake2b128Concat struct{}

func (blake2b128Concat) Name() string { return "Blake2_128Concat" }

func (blake2b128Concat) Hash(in []byte) []byte {
	return append(Blake2b128(in), in...)
}

type identity struct{}

func (identity) Name() string { return "Identity" }

func (identity) Hash(in []byte) []byte { return in }

var (
	// Twox64ConcatHasher is the transparent twox64 hasher.
	Twox64ConcatHasher Hasher = twox64Concat{}
	// Blake2b128ConcatHasher is the transparent blake2b-128 hasher.
	Blake2b128ConcatHasher Hasher = blake2b128Concat{}
	// IdentityHasher stores keys unhashed.
	IdentityHasher Hasher = identity{}
)
