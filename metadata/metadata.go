// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

// Package metadata checks runtime metadata compatibility. Generated bindings
// bake in a fingerprint of the pallet list they were produced from; a live
// node's metadata is summarized, fingerprinted the same way and compared with
// a single equality check. On mismatch the only recovery is regenerating the
// bindings.
package metadata

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"

	"github.com/Cardinal-Cryptography/aleph-client-go/lib/hashers"
)

var (
	// ErrIncompatibleMetadata reports that the live chain's metadata hash
	// differs from the one the bindings were generated against.
	ErrIncompatibleMetadata = errors.New("node metadata is incompatible with the generated bindings")

	// ErrUnsupportedVersion reports a metadata version the client cannot read.
	ErrUnsupportedVersion = errors.New("unsupported metadata version")
)

// PalletInfo is the per-pallet shape that takes part in the compatibility
// fingerprint.
type PalletInfo struct {
	Name       string
	Index      uint8
	HasCalls   bool
	HasStorage bool
	Constants  int
}

// Summary is the extracted pallet list of a runtime.
type Summary struct {
	Pallets []PalletInfo
}

// Summarize extracts a Summary from decoded V14 runtime metadata.
func Summarize(meta *types.Metadata) (Summary, error) {
	if meta.Version != 14 {
		return Summary{}, fmt.Errorf("%w: v%d", ErrUnsupportedVersion, meta.Version)
	}

	var summary Summary
	for _, pallet := range meta.AsMetadataV14.Pallets {
		summary.Pallets = append(summary.Pallets, PalletInfo{
			Name:       string(pallet.Name),
			Index:      uint8(pallet.Index),
			HasCalls:   pallet.HasCalls,
			HasStorage: pallet.HasStorage,
			Constants:  len(pallet.Constants),
		})
	}
	return summary, nil
}

// Fingerprint computes the 32 byte compatibility hash of a summary: blake2b
// over the canonicalized (index-ordered) pallet list.
func Fingerprint(summary Summary) [32]byte {
	pallets := make([]PalletInfo, len(summary.Pallets))
	copy(pallets, summary.Pallets)
	sort.Slice(pallets, func(i, j int) bool { return pallets[i].Index < pallets[j].Index })

	var buf bytes.Buffer
	for _, p := range pallets {
		fmt.Fprintf(&buf, "%s:%d:%t:%t:%d\n",
			p.Name, p.Index, p.HasCalls, p.HasStorage, p.Constants)
	}
	return hashers.Blake2b256(buf.Bytes())
}

// Validate compares the summary's fingerprint against the expected constant.
// Returns nil on an exact match and ErrIncompatibleMetadata otherwise.
func Validate(summary Summary, expected [32]byte) error {
	if Fingerprint(summary) != expected {
		return ErrIncompatibleMetadata
	}
	return nil
}

// ItemFingerprint is the static validation hash attached to a generated
// call, storage or constant accessor: blake2b over the item's descriptor.
func ItemFingerprint(kind, pallet, item string, shape ...string) [32]byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s/%s.%s", kind, pallet, item)
	for _, s := range shape {
		fmt.Fprintf(&buf, ":%s", s)
	}
	return hashers.Blake2b256(buf.Bytes())
}

// ConstantValue finds the raw SCALE bytes of a pallet constant in V14
// metadata.
func ConstantValue(meta *types.Metadata, pallet, name string) ([]byte, error) {
	if meta.Version != 14 {
		return nil, fmt.Errorf("%w: v%d", ErrUnsupportedVersion, meta.Version)
	}

	for _, p := range meta.AsMetadataV14.Pallets {
		if string(p.Name) != pallet {
			continue
		}
		for _, c := range p.Constants {
			if string(c.Name) == name {
				return c.Value, nil
			}
		}
		return nil, fmt.Errorf("constant %s.%s not found", pallet, name)
	}
	return nil, fmt.Errorf("pallet %s not found", pallet)
}
