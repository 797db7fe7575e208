// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/naoina/toml"
)

// Config is the TOML configuration of alephctl. Command line flags override
// whatever the file sets.
type Config struct {
	Connection ConnectionConfig `toml:"connection"`
	Account    AccountConfig    `toml:"account"`
	Log        LogConfig        `toml:"log"`
}

// ConnectionConfig selects the node to talk to.
type ConnectionConfig struct {
	Endpoint       string `toml:"endpoint" validate:"required,uri"`
	SkipValidation bool   `toml:"skip-validation"`
}

// AccountConfig selects the signing account.
type AccountConfig struct {
	Seed string `toml:"seed"`
}

// LogConfig tunes logging.
type LogConfig struct {
	Level string `toml:"level" validate:"omitempty,oneof=crit eror warn info dbug trce"`
}

// DefaultConfig targets a local development node.
func DefaultConfig() Config {
	return Config{
		Connection: ConnectionConfig{Endpoint: "ws://127.0.0.1:9944"},
		Log:        LogConfig{Level: "info"},
	}
}

// LoadConfig reads and validates a TOML config file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	if err := toml.NewDecoder(f).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration's field constraints.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
