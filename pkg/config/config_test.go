package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
Endpoint: https://rpc.testnet.miden.io:443
DialTimeout: 10s
RequestTimeout: 30s
LogLevel: debug
`), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "https://rpc.testnet.miden.io:443", cfg.Endpoint)
	require.Equal(t, 10*time.Second, cfg.DialTimeout)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, "debug", cfg.LogLevel)
	require.False(t, cfg.Insecure)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("Endpoint: [broken"), 0o644))
	_, err = LoadFile(path)
	require.Error(t, err)
}
