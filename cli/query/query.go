package query

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/MCarlomagno/miden-rpc-client/cli/options"
	"github.com/MCarlomagno/miden-rpc-client/pkg/noderpc"
	"github.com/MCarlomagno/miden-rpc-client/pkg/types"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

// NewCommands returns 'query' command.
func NewCommands() []cli.Command {
	queryFlags := append([]cli.Flag{}, options.RPC...)
	headerFlags := append([]cli.Flag{
		cli.BoolFlag{
			Name:  "with-proof",
			Usage: "Request the header's chain inclusion proof",
		},
	}, options.RPC...)
	return []cli.Command{{
		Name:  "query",
		Usage: "query node state",
		Subcommands: []cli.Command{
			{
				Name:   "status",
				Usage:  "query node status",
				Action: queryStatus,
				Flags:  queryFlags,
			},
			{
				Name:      "header",
				Usage:     "query block header by number (latest if omitted)",
				ArgsUsage: "[blockNum]",
				Action:    queryHeader,
				Flags:     headerFlags,
			},
			{
				Name:      "block",
				Usage:     "query raw block by number",
				ArgsUsage: "blockNum",
				Action:    queryBlock,
				Flags:     queryFlags,
			},
			{
				Name:      "account",
				Usage:     "query account details",
				ArgsUsage: "accountID",
				Action:    queryAccount,
				Flags:     queryFlags,
			},
			{
				Name:      "commitment",
				Usage:     "query account state commitment",
				ArgsUsage: "accountID",
				Action:    queryCommitment,
				Flags:     queryFlags,
			},
			{
				Name:      "notes",
				Usage:     "query committed notes by id",
				ArgsUsage: "noteID [noteID...]",
				Action:    queryNotes,
				Flags:     queryFlags,
			},
			{
				Name:      "nullifiers",
				Usage:     "query nullifier proofs",
				ArgsUsage: "nullifier [nullifier...]",
				Action:    queryNullifiers,
				Flags:     queryFlags,
			},
		},
	}}
}

func queryStatus(ctx *cli.Context) error {
	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, err := options.GetRPCClient(gctx, ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	st, err := c.GetStatus(gctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	w := tabwriter.NewWriter(ctx.App.Writer, 0, 2, 2, ' ', 0)
	fmt.Fprintf(w, "Version:\t%s\n", st.GetVersion())
	if store := st.GetStore(); store != nil {
		fmt.Fprintf(w, "Store:\t%s (v%s)\n", store.GetStatus(), store.GetVersion())
		fmt.Fprintf(w, "Chain tip:\t%d\n", store.GetChainTip())
	}
	if bp := st.GetBlockProducer(); bp != nil {
		fmt.Fprintf(w, "Block producer:\t%s (v%s)\n", bp.GetStatus(), bp.GetVersion())
	}
	return w.Flush()
}

func queryHeader(ctx *cli.Context) error {
	var blockNum *uint32
	if args := ctx.Args(); len(args) > 0 {
		num, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return cli.NewExitError(fmt.Sprintf("Invalid block number: %s", args[0]), 1)
		}
		n := uint32(num)
		blockNum = &n
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, err := options.GetRPCClient(gctx, ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	resp, err := c.GetBlockHeaderByNumber(gctx, blockNum, ctx.Bool("with-proof"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	header := resp.GetBlockHeader()
	if header == nil {
		return cli.NewExitError("no header in response", 1)
	}

	w := tabwriter.NewWriter(ctx.App.Writer, 0, 2, 2, ' ', 0)
	fmt.Fprintf(w, "Block:\t%d\n", header.GetBlockNum())
	fmt.Fprintf(w, "Version:\t%d\n", header.GetVersion())
	fmt.Fprintf(w, "Timestamp:\t%d\n", header.GetTimestamp())
	fmt.Fprintf(w, "Previous block:\t%s\n", digestString(header.GetPrevBlockCommitment()))
	fmt.Fprintf(w, "Chain commitment:\t%s\n", digestString(header.GetChainCommitment()))
	fmt.Fprintf(w, "Account root:\t%s\n", digestString(header.GetAccountRoot()))
	fmt.Fprintf(w, "Nullifier root:\t%s\n", digestString(header.GetNullifierRoot()))
	fmt.Fprintf(w, "Note root:\t%s\n", digestString(header.GetNoteRoot()))
	if resp.MmrPath != nil {
		fmt.Fprintf(w, "Chain length:\t%d\n", resp.GetChainLength())
		fmt.Fprintf(w, "MMR path:\t%d siblings\n", len(resp.GetMmrPath().GetSiblings()))
	}
	return w.Flush()
}

func queryBlock(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) == 0 {
		return cli.NewExitError("Block number is missing", 1)
	}
	num, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("Invalid block number: %s", args[0]), 1)
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, err := options.GetRPCClient(gctx, ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	resp, err := c.GetBlockByNumber(gctx, uint32(num))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	block := resp.GetBlock()
	if block == nil {
		fmt.Fprintf(ctx.App.Writer, "Block %d is not committed yet\n", num)
		return nil
	}
	fmt.Fprintln(ctx.App.Writer, hex.EncodeToString(block))
	return nil
}

func queryAccount(ctx *cli.Context) error {
	id, err := accountIDArg(ctx)
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

	details, err := c.GetAccountDetails(gctx, id)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	w := tabwriter.NewWriter(ctx.App.Writer, 0, 2, 2, ' ', 0)
	if summary := details.GetSummary(); summary != nil {
		fmt.Fprintf(w, "Account:\t%s\n", id)
		fmt.Fprintf(w, "Commitment:\t%s\n", digestString(summary.GetAccountCommitment()))
		fmt.Fprintf(w, "Block:\t%d\n", summary.GetBlockNum())
	}
	if data := details.GetDetails(); data != nil {
		fmt.Fprintf(w, "Details:\t%d bytes\n", len(data))
	} else {
		fmt.Fprintf(w, "Details:\tnot public\n")
	}
	return w.Flush()
}

func queryCommitment(ctx *cli.Context) error {
	id, err := accountIDArg(ctx)
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

	commitment, err := c.GetAccountCommitment(gctx, id)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, commitment)
	return nil
}

func queryNotes(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) == 0 {
		return cli.NewExitError("Note id is missing", 1)
	}
	ids := make([]types.NoteID, 0, len(args))
	for _, arg := range args {
		id, err := types.NoteIDFromString(arg)
		if err != nil {
			return cli.NewExitError(fmt.Sprintf("Invalid note id: %s", arg), 1)
		}
		ids = append(ids, id)
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, err := options.GetRPCClient(gctx, ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	log := options.Logger(ctx)
	log.Debug("fetching notes", zap.Int("count", len(ids)))

	resp, err := c.GetNotesByID(gctx, ids)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	w := tabwriter.NewWriter(ctx.App.Writer, 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "BLOCK\tINDEX\tNOTE")
	for _, note := range resp.GetNotes() {
		fmt.Fprintf(w, "%d\t%d\t%s\n",
			note.GetBlockNum(),
			note.GetNoteIndexInBlock(),
			digestString(note.GetNoteId().GetId()))
	}
	return w.Flush()
}

func queryNullifiers(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) == 0 {
		return cli.NewExitError("Nullifier is missing", 1)
	}
	nullifiers := make([]types.Nullifier, 0, len(args))
	for _, arg := range args {
		n, err := types.WordFromString(arg)
		if err != nil {
			return cli.NewExitError(fmt.Sprintf("Invalid nullifier: %s", arg), 1)
		}
		nullifiers = append(nullifiers, n)
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, err := options.GetRPCClient(gctx, ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	resp, err := c.CheckNullifiers(gctx, nullifiers)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	w := tabwriter.NewWriter(ctx.App.Writer, 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "NULLIFIER\tSPENT AT")
	for _, proof := range resp.GetProofs() {
		spent := "unspent"
		if proof.GetBlockNum() != 0 {
			spent = strconv.FormatUint(uint64(proof.GetBlockNum()), 10)
		}
		fmt.Fprintf(w, "%s\t%s\n", digestString(proof.GetNullifier()), spent)
	}
	return w.Flush()
}

func accountIDArg(ctx *cli.Context) (types.AccountID, error) {
	args := ctx.Args()
	if len(args) == 0 {
		return nil, cli.NewExitError("Account id is missing", 1)
	}
	id, err := types.AccountIDFromString(args[0])
	if err != nil {
		return nil, cli.NewExitError(fmt.Sprintf("Invalid account id: %s", args[0]), 1)
	}
	return id, nil
}

func digestString(d *noderpc.Digest) string {
	if d == nil {
		return "-"
	}
	return types.Word{d.GetD0(), d.GetD1(), d.GetD2(), d.GetD3()}.String()
}
