package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/store"
	"ltask/internal/task"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command.
type EditCmd struct{}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Replace a task description" }
func (c *EditCmd) Usage() string     { return "ltask edit <id> <description...>" }
func (c *EditCmd) NeedsStore() bool  { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintf(errOut, "error: %v\n", ErrIDRequired)
		return exitcode.UserError
	}

	id, err := ParseID(args[0])
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	description := strings.Join(args[1:], " ")
	if strings.TrimSpace(description) == "" {
		fmt.Fprintln(errOut, "error: description required")
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

	// Id and completed state are left untouched.
	tasks[i].Description = description

	if err := st.Save(tasks); err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "Task with ID %d was updated.\n", id)
	}
	return exitcode.Success
}
