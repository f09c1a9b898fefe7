package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"taskboard/internal/board"
	"taskboard/internal/commands"
	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/service"
	"taskboard/internal/testutil"
)

func strptr(s string) *string { return &s }

// runCommand is a helper to run a command against a FakeStore-backed board.
func runCommand(t *testing.T, cmd commands.Command, store *testutil.FakeStore, args []string, quiet bool) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	cfg := &config.Config{
		Dir:   t.TempDir(),
		Quiet: quiet,
	}

	var b *board.Board
	if store != nil {
		b = board.New(store, config.DefaultProject())
	}

	ctx := context.Background()
	code = cmd.Run(ctx, cfg, b, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func seededStore() *testutil.FakeStore {
	store := testutil.NewFakeStore()
	store.AddPerson(1, "Alice")
	store.AddPerson(2, "Bob")
	store.AddTask(service.Task{
		ID:       "t1",
		Title:    "Interview the witness",
		Priority: 1,
		DueDate:  strptr("August 4"),
		Executor: []string{"Alice"},
		Target:   []string{"Bob"},
		Category: strptr("witness"),
		Status:   service.StatusPending,
	})
	store.AddTask(service.Task{
		ID:       "t2",
		Title:    "File the petition",
		Priority: 2,
		DueDate:  strptr("August 5"),
		Executor: []string{"Bob"},
		Category: strptr("petition"),
		Risks:    strptr("court may reject the filing"),
		Status:   service.StatusInProgress,
	})
	return store
}

// Tests for version command

func TestVersionCommand(t *testing.T) {
	cmd := &commands.VersionCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "taskboard 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

// Tests for help command

func TestHelpCommand(t *testing.T) {
	cmd := &commands.HelpCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	testutil.GoldenString(t, "help", stdout)
}

// Tests for dashboard command

func TestDashboardCommand(t *testing.T) {
	cmd := &commands.DashboardCmd{}
	stdout, stderr, code := runCommand(t, cmd, seededStore(), nil, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	for _, want := range []string{
		"Case Review Project",
		"Total tasks:   2",
		"Team members:  2",
		"Pending:       1",
		"High priority: 1",
		"Priority tasks for August 4",
		"Interview the witness",
		"High risk tasks",
		"court may reject the filing",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("dashboard output missing %q:\n%s", want, stdout)
		}
	}
}

func TestDashboardCommand_LoadFailure(t *testing.T) {
	store := seededStore()
	store.ListTasksErr = testutil.ErrNotFound

	cmd := &commands.DashboardCmd{}
	_, stderr, code := runCommand(t, cmd, store, nil, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if !strings.Contains(stderr, "backend error") {
		t.Errorf("expected backend error, got %q", stderr)
	}
}

// Tests for dates command

func TestDatesCommand_ListsSchedule(t *testing.T) {
	cmd := &commands.DatesCmd{}
	stdout, _, code := runCommand(t, cmd, seededStore(), nil, false)

	if code != exitcode.Success {
		t.Fatalf("unexpected exit code %d", code)
	}
	expected := "August 4  (1 tasks)\nAugust 5  (1 tasks)\nAugust 6  (0 tasks)\nAugust 7  (0 tasks)\nAugust 8  (0 tasks)\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestDatesCommand_ExpandsDate(t *testing.T) {
	cmd := &commands.DatesCmd{}
	stdout, _, code := runCommand(t, cmd, seededStore(), []string{"August", "4"}, false)

	if code != exitcode.Success {
		t.Fatalf("unexpected exit code %d", code)
	}
	if !strings.Contains(stdout, "Interview the witness") {
		t.Errorf("expected expanded task, got %q", stdout)
	}
	if strings.Contains(stdout, "File the petition") {
		t.Errorf("task from another date leaked in: %q", stdout)
	}
	if !strings.Contains(stdout, "recommendation:") {
		t.Errorf("expected a recommendation line, got %q", stdout)
	}
}

func TestDatesCommand_UnknownDate(t *testing.T) {
	cmd := &commands.DatesCmd{}
	_, stderr, code := runCommand(t, cmd, seededStore(), []string{"August", "20"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unknown date: August 20\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for people command

func TestPeopleCommand_ListsPeople(t *testing.T) {
	cmd := &commands.PeopleCmd{}
	stdout, _, code := runCommand(t, cmd, seededStore(), nil, false)

	if code != exitcode.Success {
		t.Fatalf("unexpected exit code %d", code)
	}
	expected := "Alice  (1 tasks)\nBob  (2 tasks)\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestPeopleCommand_ExpandsPersonWithRole(t *testing.T) {
	cmd := &commands.PeopleCmd{}
	stdout, _, code := runCommand(t, cmd, seededStore(), []string{"Bob"}, false)

	if code != exitcode.Success {
		t.Fatalf("unexpected exit code %d", code)
	}
	// Bob is the target of t1 and the executor of t2.
	if !strings.Contains(stdout, "role: Target") || !strings.Contains(stdout, "role: Executor") {
		t.Errorf("expected both roles, got %q", stdout)
	}
}

func TestPeopleCommand_UnknownPerson(t *testing.T) {
	cmd := &commands.PeopleCmd{}
	_, stderr, code := runCommand(t, cmd, seededStore(), []string{"Dave"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unknown person: Dave\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestPeopleCommand_NoPeople(t *testing.T) {
	store := testutil.NewFakeStore()
	cmd := &commands.PeopleCmd{}
	stdout, _, code := runCommand(t, cmd, store, nil, false)

	if code != exitcode.Success {
		t.Fatalf("unexpected exit code %d", code)
	}
	if stdout != "no people\n" {
		t.Errorf("expected graceful empty view, got %q", stdout)
	}
}

// Tests for tasks command

func TestTasksCommand_ListsAll(t *testing.T) {
	cmd := &commands.TasksCmd{}
	stdout, _, code := runCommand(t, cmd, seededStore(), nil, false)

	if code != exitcode.Success {
		t.Fatalf("unexpected exit code %d", code)
	}
	expected := "   1  Interview the witness  [P1] [Pending]\n   2  File the petition  [P2] [In Progress]\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestTasksCommand_ExpandsTask(t *testing.T) {
	cmd := &commands.TasksCmd{}
	stdout, _, code := runCommand(t, cmd, seededStore(), []string{"t2"}, false)

	if code != exitcode.Success {
		t.Fatalf("unexpected exit code %d", code)
	}
	for _, want := range []string{
		"File the petition",
		"id: t2 | category: petition",
		"risk: court may reject the filing",
		"recommendation: " + board.RecommendRisk,
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("detail output missing %q:\n%s", want, stdout)
		}
	}
}

func TestTasksCommand_NotFound(t *testing.T) {
	cmd := &commands.TasksCmd{}
	_, stderr, code := runCommand(t, cmd, seededStore(), []string{"nope"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task not found: nope\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for add command

func TestAddCommand_CreatesTask(t *testing.T) {
	store := testutil.NewFakeStore()
	cmd := &commands.AddCmd{}
	parseFlags(t, cmd, []string{"--priority", "2", "--executor", "Alice, Bob ,  ", "--due", "August 5", "--category", "legal"})

	stdout, stderr, code := runCommand(t, cmd, store, []string{"Call", "the", "lawyer"}, false)

	if code != exitcode.Success {
		t.Fatalf("unexpected exit code %d (stderr %q)", code, stderr)
	}
	if !strings.HasPrefix(stdout, "created custom-") {
		t.Errorf("expected created id, got %q", stdout)
	}

	rows := store.Tasks()
	if len(rows) != 1 {
		t.Fatalf("expected 1 stored task, got %d", len(rows))
	}
	task := rows[0]
	if task.Title != "Call the lawyer" {
		t.Errorf("title = %q", task.Title)
	}
	if len(task.Executor) != 2 || task.Executor[0] != "Alice" || task.Executor[1] != "Bob" {
		t.Errorf("executor = %v", task.Executor)
	}
	if task.Status != service.StatusPending || task.Risks != nil {
		t.Errorf("creation defaults violated: %+v", task)
	}
}

func TestAddCommand_TitleRequired(t *testing.T) {
	store := testutil.NewFakeStore()
	cmd := &commands.AddCmd{}

	_, stderr, code := runCommand(t, cmd, store, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: title required\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if store.InsertTaskCalls != 0 {
		t.Errorf("no remote call expected, got %d", store.InsertTaskCalls)
	}
}

func TestAddCommand_InvalidPriority(t *testing.T) {
	store := testutil.NewFakeStore()
	cmd := &commands.AddCmd{}
	parseFlags(t, cmd, []string{"--priority", "4"})

	_, stderr, code := runCommand(t, cmd, store, []string{"x"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: invalid priority: 4\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestAddCommand_InvalidCategory(t *testing.T) {
	store := testutil.NewFakeStore()
	cmd := &commands.AddCmd{}
	parseFlags(t, cmd, []string{"--category", "golf"})

	_, stderr, code := runCommand(t, cmd, store, []string{"x"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: invalid category: golf\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestAddCommand_BackendFailure(t *testing.T) {
	store := testutil.NewFakeStore()
	store.InsertTaskErr = testutil.ErrNotFound
	cmd := &commands.AddCmd{}
	parseFlags(t, cmd, nil)

	_, stderr, code := runCommand(t, cmd, store, []string{"x"}, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if !strings.Contains(stderr, "backend error") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for status command

func TestStatusCommand_UpdatesStatus(t *testing.T) {
	store := seededStore()
	cmd := &commands.StatusCmd{}

	stdout, stderr, code := runCommand(t, cmd, store, []string{"t1", "blocked"}, false)

	if code != exitcode.Success {
		t.Fatalf("unexpected exit code %d (stderr %q)", code, stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected ok, got %q", stdout)
	}
	if got := store.Tasks()[0].Status; got != service.StatusBlocked {
		t.Errorf("stored status = %s", got)
	}
}

func TestStatusCommand_InvalidStatus(t *testing.T) {
	cmd := &commands.StatusCmd{}
	_, stderr, code := runCommand(t, cmd, seededStore(), []string{"t1", "done"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: invalid status: done\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestStatusCommand_TaskNotFound(t *testing.T) {
	cmd := &commands.StatusCmd{}
	_, stderr, code := runCommand(t, cmd, seededStore(), []string{"nope", "blocked"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task not found: nope\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestStatusCommand_ArgsRequired(t *testing.T) {
	cmd := &commands.StatusCmd{}
	_, stderr, code := runCommand(t, cmd, seededStore(), []string{"t1"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task id and status required\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for connect/disconnect commands

func TestConnectCommand_WritesCredentials(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{Dir: dir}

	cmd := &commands.ConnectCmd{}
	parseFlags(t, cmd, []string{"--url", "https://abc.supabase.co", "--key", "secret"})

	var outBuf, errBuf bytes.Buffer
	code := cmd.Run(context.Background(), cfg, nil, nil, &outBuf, &errBuf)

	if code != exitcode.Success {
		t.Fatalf("unexpected exit code %d (stderr %q)", code, errBuf.String())
	}

	data, err := os.ReadFile(filepath.Join(dir, config.StoreFile))
	if err != nil {
		t.Fatalf("credentials not written: %v", err)
	}
	var creds config.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		t.Fatalf("invalid credentials file: %v", err)
	}
	if creds.URL != "https://abc.supabase.co" || creds.APIKey != "secret" {
		t.Errorf("unexpected credentials %+v", creds)
	}
}

func TestConnectCommand_MissingFlags(t *testing.T) {
	cmd := &commands.ConnectCmd{}
	parseFlags(t, cmd, nil)

	_, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.Contains(stderr, "--url and --key required") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDisconnectCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{Dir: dir}
	if err := cfg.SaveCredentials(&config.Credentials{Backend: config.BackendREST, URL: "u", APIKey: "k"}); err != nil {
		t.Fatal(err)
	}

	cmd := &commands.DisconnectCmd{}
	var outBuf, errBuf bytes.Buffer
	code := cmd.Run(context.Background(), cfg, nil, nil, &outBuf, &errBuf)

	if code != exitcode.Success {
		t.Fatalf("unexpected exit code %d", code)
	}
	if cfg.HasCredentials() {
		t.Error("credentials file should be gone")
	}

	// Second run reports not connected but still succeeds.
	outBuf.Reset()
	code = cmd.Run(context.Background(), cfg, nil, nil, &outBuf, &errBuf)
	if code != exitcode.Success {
		t.Errorf("unexpected exit code %d", code)
	}
	if outBuf.String() != "not connected\n" {
		t.Errorf("expected not connected, got %q", outBuf.String())
	}
}

// parseFlags registers the command's flags and parses args into them,
// the way the dispatcher does before Run.
func parseFlags(t *testing.T, cmd commands.Command, args []string) {
	t.Helper()
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("flag parse: %v", err)
	}
}
