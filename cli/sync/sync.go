package sync

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/MCarlomagno/miden-rpc-client/cli/options"
	"github.com/MCarlomagno/miden-rpc-client/pkg/types"
	"github.com/urfave/cli"
)

// NewCommands returns 'sync' command.
func NewCommands() []cli.Command {
	fromFlags := append([]cli.Flag{
		cli.UintFlag{
			Name:  "from",
			Usage: "Block number to sync from",
		},
	}, options.RPC...)
	rangeFlags := append([]cli.Flag{
		cli.UintFlag{
			Name:  "from",
			Usage: "First block of the range",
		},
		cli.UintFlag{
			Name:  "to",
			Usage: "Last block of the range (chain tip if omitted)",
		},
	}, options.RPC...)
	return []cli.Command{{
		Name:  "sync",
		Usage: "sync ledger state relevant to accounts and notes",
		Subcommands: []cli.Command{
			{
				Name:      "state",
				Usage:     "sync accounts and note tags from a block",
				ArgsUsage: "[accountID...] [tag:N...]",
				Action:    syncState,
				Flags:     fromFlags,
			},
			{
				Name:      "notes",
				Usage:     "sync notes matching tags from a block",
				ArgsUsage: "tag [tag...]",
				Action:    syncNotes,
				Flags:     fromFlags,
			},
			{
				Name:      "vault",
				Usage:     "sync account vault updates in a block range",
				ArgsUsage: "accountID",
				Action:    syncVault,
				Flags:     rangeFlags,
			},
			{
				Name:      "maps",
				Usage:     "sync account storage map updates in a block range",
				ArgsUsage: "accountID",
				Action:    syncMaps,
				Flags:     rangeFlags,
			},
		},
	}}
}

// syncState accepts account ids (hex) and note tags (tag:N) in any order.
func syncState(ctx *cli.Context) error {
	var (
		accounts []types.AccountID
		tags     []types.NoteTag
	)
	for _, arg := range ctx.Args() {
		if tag, ok := parseTagArg(arg); ok {
			tags = append(tags, tag)
			continue
		}
		id, err := types.AccountIDFromString(arg)
		if err != nil {
			return cli.NewExitError(fmt.Sprintf("Invalid account id or tag: %s", arg), 1)
		}
		accounts = append(accounts, id)
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, err := options.GetRPCClient(gctx, ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	resp, err := c.SyncState(gctx, uint32(ctx.Uint("from")), accounts, tags)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	w := tabwriter.NewWriter(ctx.App.Writer, 0, 2, 2, ' ', 0)
	fmt.Fprintf(w, "Chain tip:\t%d\n", resp.GetChainTip())
	if header := resp.GetBlockHeader(); header != nil {
		fmt.Fprintf(w, "Synced to:\t%d\n", header.GetBlockNum())
	}
	fmt.Fprintf(w, "Accounts:\t%d\n", len(resp.GetAccounts()))
	fmt.Fprintf(w, "Transactions:\t%d\n", len(resp.GetTransactions()))
	fmt.Fprintf(w, "Notes:\t%d\n", len(resp.GetNotes()))
	return w.Flush()
}

func syncNotes(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) == 0 {
		return cli.NewExitError("Note tag is missing", 1)
	}
	tags := make([]types.NoteTag, 0, len(args))
	for _, arg := range args {
		tag, err := strconv.ParseUint(arg, 0, 32)
		if err != nil {
			return cli.NewExitError(fmt.Sprintf("Invalid note tag: %s", arg), 1)
		}
		tags = append(tags, types.NoteTag(tag))
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, err := options.GetRPCClient(gctx, ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	resp, err := c.SyncNotes(gctx, uint32(ctx.Uint("from")), tags)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	w := tabwriter.NewWriter(ctx.App.Writer, 0, 2, 2, ' ', 0)
	fmt.Fprintf(w, "Chain tip:\t%d\n", resp.GetChainTip())
	fmt.Fprintf(w, "Notes:\t%d\n", len(resp.GetNotes()))
	return w.Flush()
}

func syncVault(ctx *cli.Context) error {
	id, from, to, err := rangeArgs(ctx)
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

	resp, err := c.SyncAccountVault(gctx, id, from, to)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	w := tabwriter.NewWriter(ctx.App.Writer, 0, 2, 2, ' ', 0)
	fmt.Fprintf(w, "Chain tip:\t%d\n", resp.GetChainTip())
	fmt.Fprintf(w, "Updates:\t%d\n", len(resp.GetUpdates()))
	return w.Flush()
}

func syncMaps(ctx *cli.Context) error {
	id, from, to, err := rangeArgs(ctx)
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

	resp, err := c.SyncStorageMaps(gctx, id, from, to)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	w := tabwriter.NewWriter(ctx.App.Writer, 0, 2, 2, ' ', 0)
	fmt.Fprintf(w, "Chain tip:\t%d\n", resp.GetChainTip())
	fmt.Fprintf(w, "Updates:\t%d\n", len(resp.GetUpdates()))
	return w.Flush()
}

func parseTagArg(arg string) (types.NoteTag, bool) {
	if len(arg) < 5 || arg[:4] != "tag:" {
		return 0, false
	}
	tag, err := strconv.ParseUint(arg[4:], 0, 32)
	if err != nil {
		return 0, false
	}
	return types.NoteTag(tag), true
}

func rangeArgs(ctx *cli.Context) (types.AccountID, uint32, *uint32, error) {
	args := ctx.Args()
	if len(args) == 0 {
		return nil, 0, nil, cli.NewExitError("Account id is missing", 1)
	}
	id, err := types.AccountIDFromString(args[0])
	if err != nil {
		return nil, 0, nil, cli.NewExitError(fmt.Sprintf("Invalid account id: %s", args[0]), 1)
	}
	var to *uint32
	if ctx.IsSet("to") {
		n := uint32(ctx.Uint("to"))
		to = &n
	}
	return id, uint32(ctx.Uint("from")), to, nil
}
