package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/MCarlomagno/miden-rpc-client/cli/query"
	"github.com/MCarlomagno/miden-rpc-client/cli/submit"
	"github.com/MCarlomagno/miden-rpc-client/cli/sync"
	"github.com/MCarlomagno/miden-rpc-client/pkg/config"
	"github.com/urfave/cli"
)

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "miden-cli\nVersion: %s\nGoVersion: %s\n",
		config.Version,
		runtime.Version(),
	)
}

// New creates a miden-cli instance of [cli.App] with all commands included.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "miden-cli"
	ctl.Version = config.Version
	ctl.Usage = "query a Miden node and submit proven transactions"
	ctl.ErrWriter = os.Stdout

	ctl.Commands = append(ctl.Commands, query.NewCommands()...)
	ctl.Commands = append(ctl.Commands, submit.NewCommands()...)
	ctl.Commands = append(ctl.Commands, sync.NewCommands()...)
	return ctl
}
