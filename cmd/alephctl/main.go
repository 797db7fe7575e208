// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

// alephctl is a command line companion for aleph nodes: token transfers,
// balance queries, session key management and runtime metadata checks over
// the client package.
package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/inconshreveable/log15"
	"github.com/urfave/cli"

	"github.com/Cardinal-Cryptography/aleph-client-go/client"
	"github.com/Cardinal-Cryptography/aleph-client-go/keyring"
)

var logger = log.New("pkg", "alephctl")

func main() {
	app := cli.NewApp()
	app.Name = "alephctl"
	app.Usage = "Command line client for aleph chains"
	app.Flags = globalFlags
	app.Commands = []cli.Command{
		transferCommand,
		balanceCommand,
		sessionCommand,
		validateMetadataCommand,
		finalityVersionCommand,
	}

	if err := app.Run(os.Args); err != nil {
		logger.Crit("command failed", "error", err)
		os.Exit(1)
	}
}

// resolveConfig merges the config file, defaults and global flags.
func resolveConfig(ctx *cli.Context) (Config, error) {
	cfg := DefaultConfig()
	if path := ctx.GlobalString(ConfigFlag.Name); path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}
	if endpoint := ctx.GlobalString(EndpointFlag.Name); endpoint != "" {
		cfg.Connection.Endpoint = endpoint
	}
	if seed := ctx.GlobalString(SeedFlag.Name); seed != "" {
		cfg.Account.Seed = seed
	}
	if level := ctx.GlobalString(LogFlag.Name); level != "" {
		cfg.Log.Level = level
	}
	if ctx.GlobalBool(SkipValidationFlag.Name) {
		cfg.Connection.SkipValidation = true
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	level, err := log.LvlFromString(cfg.Log.Level)
	if err != nil {
		return Config{}, fmt.Errorf("parsing log level: %w", err)
	}
	log.Root().SetHandler(log.LvlFilterHandler(level, log.StreamHandler(os.Stderr, log.TerminalFormat())))

	return cfg, nil
}

func connect(ctx *cli.Context) (*client.Connection, error) {
	cfg, err := resolveConfig(ctx)
	if err != nil {
		return nil, err
	}
	opts := client.DefaultOptions()
	opts.SkipValidation = cfg.Connection.SkipValidation
	return client.ConnectWithOptions(context.Background(), cfg.Connection.Endpoint, opts)
}

func connectSigned(ctx *cli.Context) (*client.SignedConnection, error) {
	cfg, err := resolveConfig(ctx)
	if err != nil {
		return nil, err
	}
	if cfg.Account.Seed == "" {
		return nil, fmt.Errorf("this command needs a signing account, set --%s or account.seed", SeedFlag.Name)
	}
	signer, err := keyring.FromString(cfg.Account.Seed)
	if err != nil {
		return nil, err
	}
	opts := client.DefaultOptions()
	opts.SkipValidation = cfg.Connection.SkipValidation
	conn, err := client.ConnectWithOptions(context.Background(), cfg.Connection.Endpoint, opts)
	if err != nil {
		return nil, err
	}
	return client.NewSignedConnection(conn, signer), nil
}

// watchStatus maps the --finalized flag to the submission watch level.
func watchStatus(ctx *cli.Context) client.TxStatus {
	if ctx.Bool(FinalizedFlag.Name) {
		return client.TxFinalized
	}
	return client.TxInBlock
}
