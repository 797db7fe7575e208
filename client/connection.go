// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

// Package client is the hand-written chain API layer: connection management,
// transaction submission, storage access, event decoding and the waiting
// helpers, plus high level per-pallet calls built on the typed bindings.
package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	gsrpc "github.com/centrifuge/go-substrate-rpc-client/v4"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	log "github.com/inconshreveable/log15"

	"github.com/Cardinal-Cryptography/aleph-client-go/api"
	"github.com/Cardinal-Cryptography/aleph-client-go/internal/metrics"
	"github.com/Cardinal-Cryptography/aleph-client-go/keyring"
	"github.com/Cardinal-Cryptography/aleph-client-go/metadata"
)

var logger = log.New("pkg", "client")

var (
	// ErrNotSudoKey is returned when a root connection is requested with a
	// key that is not the on-chain sudo key.
	ErrNotSudoKey = errors.New("signer is not the sudo key")
)

// Options tune connection establishment.
type Options struct {
	// Attempts is how many times to try the websocket before giving up.
	Attempts int
	// RetryDelay is the pause between attempts.
	RetryDelay time.Duration
	// SkipValidation disables the metadata compatibility check.
	SkipValidation bool
}

// DefaultOptions mirror the retry behaviour validators rely on when a node
// restarts: ten attempts, one second apart.
func DefaultOptions() Options {
	return Options{Attempts: 10, RetryDelay: time.Second}
}

// Connection is a read-only connection to an aleph node. It caches the
// runtime metadata, the runtime version and the genesis hash, all of which
// are fixed for the lifetime of a runtime.
type Connection struct {
	api            *gsrpc.SubstrateAPI
	meta           *types.Metadata
	runtimeVersion *types.RuntimeVersion
	genesisHash    types.Hash
}

// Connect dials the node at url with default options.
func Connect(ctx context.Context, url string) (*Connection, error) {
	return ConnectWithOptions(ctx, url, DefaultOptions())
}

// ConnectWithOptions dials the node at url, retrying per opts, then fetches
// and validates the runtime metadata against the compatibility fingerprint
// baked into the bindings.
func ConnectWithOptions(ctx context.Context, url string, opts Options) (*Connection, error) {
	if opts.Attempts < 1 {
		opts.Attempts = 1
	}

	var (
		substrateAPI *gsrpc.SubstrateAPI
		err          error
	)
	for attempt := 1; attempt <= opts.Attempts; attempt++ {
		substrateAPI, err = gsrpc.NewSubstrateAPI(url)
		if err == nil {
			break
		}
		metrics.ConnectionRetries.Inc()
		logger.Warn("connection attempt failed", "url", url, "attempt", attempt, "error", err)
		if attempt == opts.Attempts {
			return nil, fmt.Errorf("connecting to %s: %w", url, err)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(opts.RetryDelay):
		}
	}

	meta, err := substrateAPI.RPC.State.GetMetadataLatest()
	if err != nil {
		return nil, fmt.Errorf("fetching metadata: %w", err)
	}
	runtimeVersion, err := substrateAPI.RPC.State.GetRuntimeVersionLatest()
	if err != nil {
		return nil, fmt.Errorf("fetching runtime version: %w", err)
	}
	genesisHash, err := substrateAPI.RPC.Chain.GetBlockHash(0)
	if err != nil {
		return nil, fmt.Errorf("fetching genesis hash: %w", err)
	}

	if !opts.SkipValidation {
		summary, err := metadata.Summarize(meta)
		if err != nil {
			return nil, err
		}
		if err := api.Validate(summary); err != nil {
			return nil, err
		}
	}

	logger.Info("connected", "url", url,
		"spec", string(runtimeVersion.SpecName), "version", uint32(runtimeVersion.SpecVersion))

	return &Connection{
		api:            substrateAPI,
		meta:           meta,
		runtimeVersion: runtimeVersion,
		genesisHash:    genesisHash,
	}, nil
}

// Metadata returns the cached runtime metadata.
func (c *Connection) Metadata() *types.Metadata { return c.meta }

// RuntimeVersion returns the cached runtime version.
func (c *Connection) RuntimeVersion() *types.RuntimeVersion { return c.runtimeVersion }

// GenesisHash returns the chain's genesis block hash.
func (c *Connection) GenesisHash() types.Hash { return c.genesisHash }

// API exposes the underlying substrate API for calls this package does not
// wrap.
func (c *Connection) API() *gsrpc.SubstrateAPI { return c.api }

// buildCall resolves a typed payload into a runtime call using the cached
// metadata, for wrapping in sudo or utility batches.
func (c *Connection) buildCall(payload *api.TxPayload) (types.Call, error) {
	call, err := types.NewCall(c.meta, payload.Name(), payload.Args()...)
	if err != nil {
		return types.Call{}, fmt.Errorf("building call %s: %w", payload.Name(), err)
	}
	return call, nil
}

// SignedConnection is a connection with a signing key, able to submit
// transactions. Nonces are managed locally so consecutive submissions do not
// have to wait for each other to be included in a block.
type SignedConnection struct {
	*Connection
	signer *keyring.KeyPair
	nonces *nonceManager
}

// NewSignedConnection attaches a signer to an established connection.
func NewSignedConnection(conn *Connection, signer *keyring.KeyPair) *SignedConnection {
	s := &SignedConnection{Connection: conn, signer: signer}
	s.nonces = newNonceManager(func() (uint32, error) {
		return conn.GetNonce(signer.AccountID())
	})
	return s
}

// SignedConnect dials the node and attaches a signer in one step.
func SignedConnect(ctx context.Context, url string, signer *keyring.KeyPair) (*SignedConnection, error) {
	conn, err := Connect(ctx, url)
	if err != nil {
		return nil, err
	}
	return NewSignedConnection(conn, signer), nil
}

// Signer returns the keypair transactions are signed with.
func (s *SignedConnection) Signer() *keyring.KeyPair { return s.signer }

// RootConnection is a signed connection whose key has been verified to be
// the on-chain sudo key, able to dispatch root-only calls.
type RootConnection struct {
	*SignedConnection
}

// NewRootConnection checks the signer against Sudo.Key and promotes the
// connection. ErrNotSudoKey is returned on a mismatch.
func NewRootConnection(conn *SignedConnection) (*RootConnection, error) {
	sudoKey, err := conn.GetSudoKey()
	if err != nil {
		return nil, err
	}
	if sudoKey != conn.signer.AccountID() {
		return nil, fmt.Errorf("%w: sudo key is %s", ErrNotSudoKey, sudoKey)
	}
	return &RootConnection{SignedConnection: conn}, nil
}

// RootConnect dials the node, attaches a signer and verifies it against the
// on-chain sudo key in one step.
func RootConnect(ctx context.Context, url string, signer *keyring.KeyPair) (*RootConnection, error) {
	signed, err := SignedConnect(ctx, url, signer)
	if err != nil {
		return nil, err
	}
	return NewRootConnection(signed)
}
