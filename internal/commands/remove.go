package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/store"
	"ltask/internal/task"
)

func init() {
	Register(&RemoveCmd{})
}

// RemoveCmd implements the remove command.
type RemoveCmd struct{}

func (c *RemoveCmd) Name() string      { return "remove" }
func (c *RemoveCmd) Aliases() []string { return []string{"rm"} }
func (c *RemoveCmd) Synopsis() string  { return "Delete a task by id" }
func (c *RemoveCmd) Usage() string     { return "ltask remove <id>" }
func (c *RemoveCmd) NeedsStore() bool  { return true }

func (c *RemoveCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RemoveCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	id, err := ParseIDArg(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	tasks, err := st.Load()
	if err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}

	i := task.Find(tasks, id)
	if i < 0 {
		fmt.Fprintf(errOut, "error: task with id %d not found\n", id)
		return exitcode.UserError
	}

	tasks = append(tasks[:i], tasks[i+1:]...)

	if err := st.Save(tasks); err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "Task removed.")
	}
	return exitcode.Success
}
