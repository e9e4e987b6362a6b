package submit

import (
	"fmt"
	"os"

	"github.com/MCarlomagno/miden-rpc-client/cli/options"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

// NewCommands returns 'submit' command.
func NewCommands() []cli.Command {
	submitFlags := append([]cli.Flag{}, options.RPC...)
	return []cli.Command{{
		Name:  "submit",
		Usage: "submit externally proven payloads",
		Subcommands: []cli.Command{
			{
				Name:      "tx",
				Usage:     "submit a proven transaction",
				ArgsUsage: "proofFile",
				Action:    submitTx,
				Flags:     submitFlags,
			},
			{
				Name:      "batch",
				Usage:     "submit a proven transaction batch",
				ArgsUsage: "batchFile",
				Action:    submitBatch,
				Flags:     submitFlags,
			},
		},
	}}
}

func submitTx(ctx *cli.Context) error {
	payload, err := payloadArg(ctx)
	if err != nil {
		return err
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, err := options.GetRPCClient(gctx, ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	log := options.Logger(ctx)
	log.Debug("submitting transaction", zap.Int("size", len(payload)))

	resp, err := c.SubmitProvenTransaction(gctx, payload)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintf(ctx.App.Writer, "Accepted at block height %d\n", resp.GetBlockHeight())
	return nil
}

func submitBatch(ctx *cli.Context) error {
	payload, err := payloadArg(ctx)
	if err != nil {
		return err
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, err := options.GetRPCClient(gctx, ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	log := options.Logger(ctx)
	log.Debug("submitting batch", zap.Int("size", len(payload)))

	resp, err := c.SubmitProvenBatch(gctx, payload)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintf(ctx.App.Writer, "Accepted at block height %d\n", resp.GetBlockHeight())
	return nil
}

func payloadArg(ctx *cli.Context) ([]byte, error) {
	args := ctx.Args()
	if len(args) == 0 {
		return nil, cli.NewExitError("Payload file is missing", 1)
	}
	payload, err := os.ReadFile(args[0])
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	return payload, nil
}
