// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"math/big"

	"github.com/urfave/cli"

	"github.com/Cardinal-Cryptography/aleph-client-go/api"
	"github.com/Cardinal-Cryptography/aleph-client-go/client"
	"github.com/Cardinal-Cryptography/aleph-client-go/metadata"
	"github.com/Cardinal-Cryptography/aleph-client-go/primitives"
)

var transferCommand = cli.Command{
	Name:      "transfer",
	Usage:     "Transfer tokens to an account",
	ArgsUsage: "<destination-ss58> <amount-tokens>",
	Flags:     []cli.Flag{FinalizedFlag},
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 2 {
			return fmt.Errorf("expected destination and amount, got %d arguments", ctx.NArg())
		}
		dest, err := primitives.NewAccountIDFromSS58(ctx.Args().Get(0))
		if err != nil {
			return err
		}
		tokens, ok := new(big.Int).SetString(ctx.Args().Get(1), 10)
		if !ok {
			return fmt.Errorf("invalid amount %q", ctx.Args().Get(1))
		}
		amount := primitives.NewBalance(new(big.Int).Mul(tokens, primitives.TokenUnit()))

		conn, err := connectSigned(ctx)
		if err != nil {
			return err
		}
		info, err := conn.TransferKeepAlive(context.Background(), dest, amount, watchStatus(ctx))
		if err != nil {
			return err
		}
		logger.Info("transfer sent", "to", dest, "tx", info.TxHash.Hex(), "block", info.BlockHash.Hex())
		return nil
	},
}

var balanceCommand = cli.Command{
	Name:      "balance",
	Usage:     "Show the free balance of an account",
	ArgsUsage: "<address-ss58>",
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 1 {
			return fmt.Errorf("expected an address, got %d arguments", ctx.NArg())
		}
		who, err := primitives.NewAccountIDFromSS58(ctx.Args().Get(0))
		if err != nil {
			return err
		}
		conn, err := connect(ctx)
		if err != nil {
			return err
		}
		free, err := conn.GetFreeBalance(who)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s\n", who, free.Int)
		return nil
	},
}

var sessionCommand = cli.Command{
	Name:  "session",
	Usage: "Manage session keys",
	Subcommands: []cli.Command{
		{
			Name:  "rotate-keys",
			Usage: "Generate new session keys in the node's keystore and print them",
			Action: func(ctx *cli.Context) error {
				conn, err := connect(ctx)
				if err != nil {
					return err
				}
				keys, err := conn.RotateKeys()
				if err != nil {
					return err
				}
				fmt.Println(keys.Hex())
				return nil
			},
		},
		{
			Name:      "set-keys",
			Usage:     "Declare session keys for the signing account, rotating first if none are given",
			ArgsUsage: "[keys-hex]",
			Flags:     []cli.Flag{FinalizedFlag},
			Action: func(ctx *cli.Context) error {
				conn, err := connectSigned(ctx)
				if err != nil {
					return err
				}
				var keys primitives.SessionKeys
				if ctx.NArg() > 0 {
					keys, err = primitives.NewSessionKeysFromHex(ctx.Args().Get(0))
				} else {
					keys, err = conn.RotateKeys()
				}
				if err != nil {
					return err
				}
				info, err := conn.SetKeys(context.Background(), keys, watchStatus(ctx))
				if err != nil {
					return err
				}
				logger.Info("session keys set", "keys", keys.Hex(), "tx", info.TxHash.Hex())
				return nil
			},
		},
		{
			Name:      "next-keys",
			Usage:     "Show the session keys an account declared for the next session",
			ArgsUsage: "<address-ss58>",
			Action: func(ctx *cli.Context) error {
				if ctx.NArg() != 1 {
					return fmt.Errorf("expected an address, got %d arguments", ctx.NArg())
				}
				who, err := primitives.NewAccountIDFromSS58(ctx.Args().Get(0))
				if err != nil {
					return err
				}
				conn, err := connect(ctx)
				if err != nil {
					return err
				}
				keys, ok, err := conn.GetNextSessionKeys(who)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println("no keys declared")
					return nil
				}
				fmt.Println(keys.Hex())
				return nil
			},
		},
	},
}

var validateMetadataCommand = cli.Command{
	Name:  "validate-metadata",
	Usage: "Check the node's runtime metadata against the bindings",
	Action: func(ctx *cli.Context) error {
		cfg, err := resolveConfig(ctx)
		if err != nil {
			return err
		}
		// Connect without validation so a mismatch is reported, not fatal.
		opts := client.DefaultOptions()
		opts.SkipValidation = true
		conn, err := client.ConnectWithOptions(context.Background(), cfg.Connection.Endpoint, opts)
		if err != nil {
			return err
		}
		summary, err := metadata.Summarize(conn.Metadata())
		if err != nil {
			return err
		}
		if err := api.Validate(summary); err != nil {
			return err
		}
		fmt.Println("metadata compatible")
		return nil
	},
}

var finalityVersionCommand = cli.Command{
	Name:  "finality-version",
	Usage: "Show the finality protocol version and any scheduled change",
	Action: func(ctx *cli.Context) error {
		conn, err := connect(ctx)
		if err != nil {
			return err
		}
		version, err := conn.GetFinalityVersion()
		if err != nil {
			return err
		}
		fmt.Printf("finality version: %d\n", version)
		change, ok, err := conn.GetScheduledFinalityVersionChange()
		if err != nil {
			return err
		}
		if ok {
			fmt.Printf("scheduled change: version %d at session %d\n", change.VersionIncoming, change.Session)
		}
		return nil
	},
}
