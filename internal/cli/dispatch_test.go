package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"taskboard/internal/cli"
	"taskboard/internal/commands"
	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/service"
	"taskboard/internal/testutil"
)

func strptr(s string) *string { return &s }

// runDispatcher runs the dispatcher with the given store factory and args.
func runDispatcher(t *testing.T, factory cli.StoreFactory, args []string) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	d := cli.NewDispatcher(commands.DefaultRegistry, factory)
	code = d.Run(context.Background(), args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func fakeFactory(store *testutil.FakeStore) cli.StoreFactory {
	return func(ctx context.Context, cfg *config.Config) (service.Store, error) {
		return store, nil
	}
}

func TestUnknownCommand(t *testing.T) {
	_, stderr, code := runDispatcher(t, nil, []string{"frobnicate"})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unknown command: frobnicate\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestFlagBeforeCommand(t *testing.T) {
	_, stderr, code := runDispatcher(t, nil, []string{"--quiet", "tasks"})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unknown command: --quiet\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestUnknownFlag(t *testing.T) {
	_, stderr, code := runDispatcher(t, nil, []string{"version", "--bogus"})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unknown flag: bogus\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestHelpCommand(t *testing.T) {
	stdout, _, code := runDispatcher(t, nil, []string{"help"})

	if code != exitcode.Success {
		t.Errorf("unexpected exit code %d", code)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Errorf("expected usage text, got %q", stdout)
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, _, code := runDispatcher(t, nil, []string{"version"})

	if code != exitcode.Success {
		t.Errorf("unexpected exit code %d", code)
	}
	if stdout != "taskboard "+commands.Version+"\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
}

func TestNoArgsRunsDashboard(t *testing.T) {
	store := testutil.NewFakeStore()
	store.AddTask(service.Task{ID: "t1", Title: "Brief the team", Priority: 1, Status: service.StatusPending})

	stdout, stderr, code := runDispatcher(t, fakeFactory(store), nil)

	if code != exitcode.Success {
		t.Fatalf("unexpected exit code %d (stderr %q)", code, stderr)
	}
	if !strings.Contains(stdout, "Case Review Project") {
		t.Errorf("expected project summary, got %q", stdout)
	}
	if !strings.Contains(stdout, "Total tasks:   1") {
		t.Errorf("expected task count, got %q", stdout)
	}
}

func TestAliasDispatch(t *testing.T) {
	store := testutil.NewFakeStore()

	stdout, stderr, code := runDispatcher(t, fakeFactory(store), []string{"dash", "--config", t.TempDir()})

	if code != exitcode.Success {
		t.Fatalf("unexpected exit code %d (stderr %q)", code, stderr)
	}
	if !strings.Contains(stdout, "Case Review Project") {
		t.Errorf("expected project summary, got %q", stdout)
	}
}

func TestStatusEndToEnd(t *testing.T) {
	store := testutil.NewFakeStore()
	store.AddTask(service.Task{ID: "t1", Title: "x", Priority: 2, Status: service.StatusPending})

	stdout, stderr, code := runDispatcher(t, fakeFactory(store), []string{"status", "--config", t.TempDir(), "t1", "completed"})

	if code != exitcode.Success {
		t.Fatalf("unexpected exit code %d (stderr %q)", code, stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
	if got := store.Tasks()[0].Status; got != service.StatusCompleted {
		t.Errorf("stored status = %s", got)
	}
}

func TestAddEndToEndQuiet(t *testing.T) {
	store := testutil.NewFakeStore()

	stdout, stderr, code := runDispatcher(t, fakeFactory(store),
		[]string{"add", "--config", t.TempDir(), "--quiet", "--priority", "2", "Prepare", "exhibits"})

	if code != exitcode.Success {
		t.Fatalf("unexpected exit code %d (stderr %q)", code, stderr)
	}
	if stdout != "" {
		t.Errorf("quiet run should be silent, got %q", stdout)
	}
	rows := store.Tasks()
	if len(rows) != 1 || rows[0].Title != "Prepare exhibits" {
		t.Errorf("unexpected stored rows %+v", rows)
	}
}

func TestNotConnected(t *testing.T) {
	_, stderr, code := runDispatcher(t, nil, []string{"tasks", "--config", t.TempDir()})

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if stderr != "error: not connected (run: taskboard connect)\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestBackendFailureExitCode(t *testing.T) {
	store := testutil.NewFakeStore()
	store.ListTasksErr = testutil.ErrNotFound

	_, stderr, code := runDispatcher(t, fakeFactory(store), []string{"tasks", "--config", t.TempDir()})

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if !strings.Contains(stderr, "backend error") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestProjectFileOverridesSchedule(t *testing.T) {
	dir := t.TempDir()
	project := []byte(`{"name": "Appeal Prep", "dates": ["September 1"]}`)
	if err := os.WriteFile(filepath.Join(dir, config.ProjectFile), project, 0600); err != nil {
		t.Fatal(err)
	}

	store := testutil.NewFakeStore()
	store.AddTask(service.Task{ID: "t1", Title: "x", Priority: 1, DueDate: strptr("September 1"), Status: service.StatusPending})

	stdout, stderr, code := runDispatcher(t, fakeFactory(store), []string{"dates", "--config", dir})

	if code != exitcode.Success {
		t.Fatalf("unexpected exit code %d (stderr %q)", code, stderr)
	}
	if stdout != "September 1  (1 tasks)\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
}
