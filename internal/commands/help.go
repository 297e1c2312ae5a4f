package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/store"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "ltask help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  ltask                                    List all tasks
  ltask list [common flags]                List all tasks
  ltask add [common flags] <description...>
  ltask edit [common flags] <id> <description...>
  ltask toggle [common flags] <id>         (alias: done)
  ltask remove [common flags] <id>         (alias: rm)
  ltask search [common flags] <query...>
  ltask help
  ltask version

Common flags:
  --config <dir>   Override config directory
  --file <path>    Override task file path
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
