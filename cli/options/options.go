/*
Package options contains a set of common CLI options and helper functions to use them.
*/
package options

import (
	"context"
	"time"

	"github.com/MCarlomagno/miden-rpc-client/pkg/config"
	"github.com/MCarlomagno/miden-rpc-client/pkg/rpcclient"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultTimeout is the default timeout used for RPC requests.
const DefaultTimeout = 10 * time.Second

// RPCEndpointFlag is a long flag name for the node endpoint. It can be used
// to check for flag presence in the context.
const RPCEndpointFlag = "rpc-endpoint"

// RPC is a set of flags used for node connections (endpoint, timeout and
// transport security).
var RPC = []cli.Flag{
	cli.StringFlag{
		Name:  RPCEndpointFlag + ", r",
		Usage: "Node RPC address (host:port or a grpc(s):// URL)",
	},
	cli.DurationFlag{
		Name:  "timeout, s",
		Value: DefaultTimeout,
		Usage: "Timeout for the operation",
	},
	cli.BoolFlag{
		Name:  "insecure",
		Usage: "Disable TLS for host:port endpoints",
	},
	cli.StringFlag{
		Name:  "ca-cert",
		Usage: "Path to an extra PEM root certificate to trust",
	},
	cli.StringFlag{
		Name:  "config-file",
		Usage: "Path to a YAML client configuration file (flags override it)",
	},
	cli.BoolFlag{
		Name:  "debug, d",
		Usage: "Enable debug logging",
	},
}

// GetConfig resolves the effective client configuration: the config file when
// given, overridden by explicit flags.
func GetConfig(ctx *cli.Context) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if path := ctx.String("config-file"); path != "" {
		cfg, err = config.LoadFile(path)
		if err != nil {
			return cfg, cli.NewExitError(err, 1)
		}
	}
	if ep := ctx.String(RPCEndpointFlag); ep != "" {
		cfg.Endpoint = ep
	}
	if ctx.IsSet("timeout") || cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = ctx.Duration("timeout")
	}
	if ctx.Bool("insecure") {
		cfg.Insecure = true
	}
	if ca := ctx.String("ca-cert"); ca != "" {
		cfg.CACert = ca
	}
	if cfg.Endpoint == "" {
		return cfg, cli.NewExitError("node RPC address is missing, use --"+RPCEndpointFlag, 1)
	}
	return cfg, nil
}

// GetTimeoutContext returns a context bounding the whole operation, using the
// timeout flag or the config file's RequestTimeout.
func GetTimeoutContext(ctx *cli.Context) (context.Context, func()) {
	timeout := ctx.Duration("timeout")
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return context.WithTimeout(context.Background(), timeout)
}

// GetRPCClient connects to the node selected by the context's flags.
func GetRPCClient(gctx context.Context, ctx *cli.Context) (*rpcclient.Client, error) {
	cfg, err := GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	c, err := rpcclient.New(gctx, cfg.Endpoint, rpcclient.Options{
		DialTimeout: cfg.DialTimeout,
		CACert:      cfg.CACert,
		Insecure:    cfg.Insecure,
	})
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	return c, nil
}

// HandleLoggingParams builds a console logger for CLI diagnostics. A debug
// flag overrides the configured level.
func HandleLoggingParams(debug bool, cfg config.Config) (*zap.Logger, error) {
	var (
		level = zapcore.InfoLevel
		err   error
	)
	if len(cfg.LogLevel) > 0 {
		level, err = zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
	}
	if debug {
		level = zapcore.DebugLevel
	}

	cc := zap.NewProductionConfig()
	cc.DisableCaller = true
	cc.DisableStacktrace = true
	cc.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cc.Encoding = "console"
	cc.Level = zap.NewAtomicLevelAt(level)
	cc.Sampling = nil

	return cc.Build()
}

// Logger builds the logger for a command from its flags.
func Logger(ctx *cli.Context) *zap.Logger {
	cfg, _ := GetConfig(ctx)
	log, err := HandleLoggingParams(ctx.Bool("debug"), cfg)
	if err != nil {
		return zap.NewNop()
	}
	return log
}
