package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/export"
	"todo/internal/service"
)

func init() {
	Register(&ExportCmd{})
	Register(&ReportCmd{})
}

// ExportCmd implements the export command.
type ExportCmd struct {
	format string
}

// SetFormat sets the output format (for testing).
func (c *ExportCmd) SetFormat(format string) {
	c.format = format
}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return nil }
func (c *ExportCmd) Synopsis() string  { return "Print the task list as JSON or YAML" }
func (c *ExportCmd) Usage() string     { return "todo export [--format json|yaml]" }
func (c *ExportCmd) NeedsStore() bool  { return true }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.format, "format", export.FormatJSON, "")
	fs.StringVar(&c.format, "f", export.FormatJSON, "")
}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, store *service.Store, args []string, out, errOut io.Writer) int {
	format := c.format
	if format == "" {
		format = export.FormatJSON
	}
	if format != export.FormatJSON && format != export.FormatYAML {
		fmt.Fprintf(errOut, "error: unknown format: %s\n", format)
		return exitcode.UserError
	}

	if err := export.Write(out, store.Tasks(), format); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.StorageError
	}
	return exitcode.Success
}

// ReportCmd implements the report command.
type ReportCmd struct {
	outPath string
	now     func() time.Time
}

// SetOutPath sets the report destination (for testing).
func (c *ReportCmd) SetOutPath(path string) {
	c.outPath = path
}

func (c *ReportCmd) Name() string      { return "report" }
func (c *ReportCmd) Aliases() []string { return nil }
func (c *ReportCmd) Synopsis() string  { return "Write the task list as a PDF" }
func (c *ReportCmd) Usage() string     { return "todo report --out <file.pdf>" }
func (c *ReportCmd) NeedsStore() bool  { return true }

func (c *ReportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.outPath, "out", "", "")
	fs.StringVar(&c.outPath, "o", "", "")
}

func (c *ReportCmd) Run(ctx context.Context, cfg *config.Config, store *service.Store, args []string, out, errOut io.Writer) int {
	if c.outPath == "" {
		fmt.Fprintln(errOut, "error: --out required")
		return exitcode.UserError
	}

	now := time.Now
	if c.now != nil {
		now = c.now
	}

	data, err := export.BuildReport(store.Tasks(), now())
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.StorageError
	}
	if err := os.WriteFile(c.outPath, data, 0644); err != nil {
		fmt.Fprintf(errOut, "error: failed to write report: %v\n", err)
		return exitcode.StorageError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, c.outPath)
	}
	return exitcode.Success
}
