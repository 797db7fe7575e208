// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package keyring

import (
	"fmt"

	schnorrkel "github.com/ChainSafe/go-schnorrkel"
	"github.com/gtank/merlin"

	"github.com/Cardinal-Cryptography/aleph-client-go/primitives"
)

// SigningContext is the context string substrate chains sign transactions
// under.
var SigningContext = []byte("substrate")

func signingTranscript(msg []byte) *merlin.Transcript {
	return schnorrkel.NewSigningContext(SigningContext, msg)
}

// VerifySr25519 checks an sr25519 signature over msg against the public key
// behind an account ID.
func VerifySr25519(pubkey primitives.AccountID, msg, sig []byte) (bool, error) {
	if len(sig) != 64 {
		return false, fmt.Errorf("signature must be 64 bytes, got %d", len(sig))
	}

	pub := &schnorrkel.PublicKey{}
	if err := pub.Decode([32]byte(pubkey)); err != nil {
		return false, fmt.Errorf("decoding public key: %w", err)
	}

	var raw [64]byte
	copy(raw[:], sig)
	s := &schnorrkel.Signature{}
	if err := s.Decode(raw); err != nil {
		return false, fmt.Errorf("decoding signature: %w", err)
	}

	return pub.Verify(s, signingTranscript(msg))
}
