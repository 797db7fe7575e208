// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
[connection]
endpoint = "wss://ws.test.azero.dev"

[account]
seed = "//Alice"

[log]
level = "dbug"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "wss://ws.test.azero.dev", cfg.Connection.Endpoint)
	require.Equal(t, "//Alice", cfg.Account.Seed)
	require.Equal(t, "dbug", cfg.Log.Level)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigInvalidLogLevel(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(writeConfig(t, `
[log]
level = "verbose"
`))
	require.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
