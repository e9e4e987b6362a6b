package options

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MCarlomagno/miden-rpc-client/pkg/config"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
	"go.uber.org/zap/zapcore"
)

func testContext(t *testing.T, args ...string) *cli.Context {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String(RPCEndpointFlag, "", "")
	set.Duration("timeout", DefaultTimeout, "")
	set.Bool("insecure", false, "")
	set.String("ca-cert", "", "")
	set.String("config-file", "", "")
	set.Bool("debug", false, "")
	require.NoError(t, set.Parse(args))
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestGetConfigRequiresEndpoint(t *testing.T) {
	_, err := GetConfig(testContext(t))
	require.Error(t, err)
}

func TestGetConfigFromFlags(t *testing.T) {
	ctx := testContext(t, "--rpc-endpoint", "localhost:50051", "--insecure")

	cfg, err := GetConfig(ctx)
	require.NoError(t, err)
	require.Equal(t, "localhost:50051", cfg.Endpoint)
	require.True(t, cfg.Insecure)
	require.Equal(t, DefaultTimeout, cfg.RequestTimeout)
}

func TestGetConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
Endpoint: https://rpc.testnet.miden.io:443
RequestTimeout: 42s
`), 0o644))

	ctx := testContext(t, "--config-file", path)
	cfg, err := GetConfig(ctx)
	require.NoError(t, err)
	require.Equal(t, "https://rpc.testnet.miden.io:443", cfg.Endpoint)
	require.Equal(t, 42*time.Second, cfg.RequestTimeout)

	ctx = testContext(t, "--config-file", path, "--rpc-endpoint", "localhost:50051")
	cfg, err = GetConfig(ctx)
	require.NoError(t, err)
	require.Equal(t, "localhost:50051", cfg.Endpoint)
}

func TestGetTimeoutContext(t *testing.T) {
	gctx, cancel := GetTimeoutContext(testContext(t))
	defer cancel()

	deadline, ok := gctx.Deadline()
	require.True(t, ok)
	require.WithinDuration(t, time.Now().Add(DefaultTimeout), deadline, time.Second)
}

func TestHandleLoggingParams(t *testing.T) {
	log, err := HandleLoggingParams(true, config.Config{LogLevel: "info"})
	require.NoError(t, err)
	require.True(t, log.Core().Enabled(zapcore.DebugLevel))

	_, err = HandleLoggingParams(false, config.Config{LogLevel: "not a level"})
	require.Error(t, err)
}
