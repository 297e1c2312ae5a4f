package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/output"
	"ltask/internal/search"
	"ltask/internal/store"
)

func init() {
	Register(&SearchCmd{})
}

// SearchCmd implements the search command. The query matches a task when
// its characters appear in order within the task's id, description or
// status word.
type SearchCmd struct{}

func (c *SearchCmd) Name() string      { return "search" }
func (c *SearchCmd) Aliases() []string { return nil }
func (c *SearchCmd) Synopsis() string  { return "Fuzzy-search tasks" }
func (c *SearchCmd) Usage() string     { return "ltask search <query...>" }
func (c *SearchCmd) NeedsStore() bool  { return true }

func (c *SearchCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SearchCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	query := strings.Join(args, " ")
	if strings.TrimSpace(query) == "" {
		fmt.Fprintln(errOut, "error: query required")
		return exitcode.UserError
	}

	tasks, err := st.Load()
	if err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}

	matched := search.Filter(query, tasks)
	if len(matched) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "No tasks matched the query.")
		}
		return exitcode.Success
	}

	output.FormatTasks(out, matched)
	return exitcode.Success
}
