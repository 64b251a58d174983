package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&ToggleCmd{})
}

// ToggleCmd implements the toggle command.
type ToggleCmd struct{}

func (c *ToggleCmd) Name() string      { return "toggle" }
func (c *ToggleCmd) Aliases() []string { return []string{"done"} }
func (c *ToggleCmd) Synopsis() string  { return "Mark tasks completed, or open again" }
func (c *ToggleCmd) Usage() string     { return "todo toggle <ref...>" }
func (c *ToggleCmd) NeedsStore() bool  { return true }

func (c *ToggleCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ToggleCmd) Run(ctx context.Context, cfg *config.Config, store *service.Store, args []string, out, errOut io.Writer) int {
	return runForRefs(ctx, cfg, store, args, out, errOut, store.Toggle)
}

// runForRefs resolves every reference first, then applies fn to each id.
// Shared by toggle and rm.
func runForRefs(
	ctx context.Context,
	cfg *config.Config,
	store *service.Store,
	args []string,
	out, errOut io.Writer,
	fn func(context.Context, int64) (service.TaskList, error),
) int {
	refs, err := ParseTaskRefs(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	ids, err := resolveTaskRefs(store.Tasks(), refs)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	for _, id := range ids {
		if _, err := fn(ctx, id); err != nil {
			return reportStoreError(errOut, err)
		}
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
