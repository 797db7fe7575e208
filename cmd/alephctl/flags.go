// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/urfave/cli"
)

var (
	// ConfigFlag points at a TOML config file.
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "Path to a TOML config file",
	}
	// EndpointFlag is the node websocket endpoint.
	EndpointFlag = cli.StringFlag{
		Name:  "endpoint",
		Usage: "Websocket endpoint of the node, eg. ws://127.0.0.1:9944",
	}
	// SeedFlag is the signing account's secret.
	SeedFlag = cli.StringFlag{
		Name:  "seed",
		Usage: "Secret seed of the signing account: a dev path (//Alice), a mnemonic or a 0x-seed",
	}
	// LogFlag sets the global log level.
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Global log level. Supports levels crit (silent), eror, warn, info, dbug and trce (trace)",
	}
	// SkipValidationFlag disables the metadata compatibility check.
	SkipValidationFlag = cli.BoolFlag{
		Name:  "skip-validation",
		Usage: "Skip the runtime metadata compatibility check on connect",
	}
	// FinalizedFlag makes submissions wait for finalization.
	FinalizedFlag = cli.BoolFlag{
		Name:  "finalized",
		Usage: "Wait until the transaction is finalized instead of just included in a block",
	}
)

var globalFlags = []cli.Flag{
	ConfigFlag,
	EndpointFlag,
	SeedFlag,
	LogFlag,
	SkipValidationFlag,
}
