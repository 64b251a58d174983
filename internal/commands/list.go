package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&ListCmd{})
	Register(&RemainingCmd{})
}

// ListCmd implements the list command.
// Handles both `todo` (no args) and `todo list`.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "todo list" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, store *service.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	list := store.Tasks()
	if cfg.Quiet {
		// Task lines only; no empty notice or summary.
		for i, task := range list {
			output.FormatTask(out, i+1, task)
		}
		return exitcode.Success
	}

	output.FormatList(out, list)
	return exitcode.Success
}

// RemainingCmd prints the number of open tasks.
type RemainingCmd struct{}

func (c *RemainingCmd) Name() string      { return "remaining" }
func (c *RemainingCmd) Aliases() []string { return []string{"count"} }
func (c *RemainingCmd) Synopsis() string  { return "Print the number of open tasks" }
func (c *RemainingCmd) Usage() string     { return "todo remaining" }
func (c *RemainingCmd) NeedsStore() bool  { return true }

func (c *RemainingCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RemainingCmd) Run(ctx context.Context, cfg *config.Config, store *service.Store, args []string, out, errOut io.Writer) int {
	fmt.Fprintln(out, store.RemainingCount())
	return exitcode.Success
}
