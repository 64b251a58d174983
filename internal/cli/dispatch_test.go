package cli_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"todo/internal/backend"
	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
	"todo/internal/testutil"
)

// testFactory creates a store factory backed by the given FakeSlot.
func testFactory(slot *testutil.FakeSlot) cli.StoreFactory {
	return func(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*service.Store, error) {
		return service.New(slot, service.Options{Logger: &logger, KeepEmpty: cfg.KeepEmpty}), nil
	}
}

// run dispatches args with an isolated config directory prepended to the flags.
func run(t *testing.T, d *cli.Dispatcher, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	if len(args) > 0 {
		args = append([]string{args[0], "--config", t.TempDir()}, args[1:]...)
	}
	var outBuf, errBuf bytes.Buffer
	code = d.Run(context.Background(), args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeSlot()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"unknowncmd"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeSlot()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"--quiet"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_NoArgsListsTasks(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeSlot()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), nil, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Friday Mehmet's class") {
		t.Errorf("expected seed task in output, got %q", stdout.String())
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	stdout, stderr, code := run(t, dispatcher, "help")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Error("expected help output to contain 'Usage:'")
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	stdout, stderr, code := run(t, dispatcher, "version")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "todo 0.1.0\n" {
		t.Errorf("expected 'todo 0.1.0\\n', got %q", stdout)
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	_, stderr, code := run(t, dispatcher, "help", "--unknown")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_MissingFlagValue(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	_, stderr, code := run(t, dispatcher, "export", "--format")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: flag needs an argument: -format\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_UnknownBackendFlag(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeSlot()))

	_, stderr, code := run(t, dispatcher, "list", "--backend", "redis")

	if code != exitcode.ConfigError {
		t.Errorf("expected exit code %d, got %d", exitcode.ConfigError, code)
	}
	expected := "error: config error: unknown backend: redis\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_FactoryError(t *testing.T) {
	factory := func(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*service.Store, error) {
		return nil, errors.New("database is locked")
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	_, stderr, code := run(t, dispatcher, "list")

	if code != exitcode.StorageError {
		t.Errorf("expected exit code %d, got %d", exitcode.StorageError, code)
	}
	expected := "error: storage error: database is locked\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_ClosesStore(t *testing.T) {
	slot := testutil.NewFakeSlot()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(slot))

	if _, _, code := run(t, dispatcher, "list"); code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !slot.Closed() {
		t.Error("expected slot to be closed after dispatch")
	}
}

func TestDispatcher_DebugLogsToStderr(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeSlot()))

	stdout, stderr, code := run(t, dispatcher, "add", "--debug", "Buy", "milk")

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok\n" {
		t.Errorf("expected ok, got %q", stdout)
	}
	if !strings.Contains(stderr, "added task") {
		t.Errorf("expected debug log on stderr, got %q", stderr)
	}
}

// The seed scenario, end to end through the real file and sqlite backends.
func TestDispatcher_ScenarioAcrossInvocations(t *testing.T) {
	for _, backendName := range []string{config.BackendFile, config.BackendSQLite} {
		t.Run(backendName, func(t *testing.T) {
			dispatcher := cli.NewDispatcher(commands.DefaultRegistry, backend.NewStore)
			dataDir := t.TempDir()
			common := []string{"--data", dataDir, "--backend", backendName}

			step := func(name string, args ...string) string {
				t.Helper()
				full := append(append([]string{name}, common...), args...)
				stdout, stderr, code := run(t, dispatcher, full...)
				if code != exitcode.Success {
					t.Fatalf("%v: expected exit code %d, got %d (stderr %q)", full, exitcode.Success, code, stderr)
				}
				return stdout
			}

			step("add", "Buy", "milk")
			step("toggle", "2")
			if got := step("remaining"); got != "1\n" {
				t.Errorf("expected 1 remaining, got %q", got)
			}
			step("rm", "#1")
			if got := step("remaining"); got != "0\n" {
				t.Errorf("expected 0 remaining, got %q", got)
			}

			expected := "   1  [x]  Buy milk\n------------\n0 task(s) remaining\n"
			if got := step("list"); got != expected {
				t.Errorf("expected %q, got %q", expected, got)
			}
		})
	}
}
