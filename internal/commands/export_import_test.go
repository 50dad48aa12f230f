package commands_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"todo/internal/commands"
	"todo/internal/exitcode"
	"todo/internal/store"
	"todo/internal/testutil"
)

func TestExportCommand_JSONToStdout(t *testing.T) {
	st := testutil.NewFakeStore()
	st.Seed("Buy milk", store.Low, false)

	cmd := &commands.ExportCmd{}
	stdout, stderr, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d: %s", exitcode.Success, code, stderr)
	}
	if !strings.Contains(stdout, `"title": "Buy milk"`) {
		t.Errorf("expected JSON snapshot on stdout, got %q", stdout)
	}
}

func TestExportCommand_ToFile(t *testing.T) {
	st := testutil.NewFakeStore()
	st.Seed("Buy milk", store.Low, false)
	path := filepath.Join(t.TempDir(), "export.json")

	cmd := &commands.ExportCmd{}
	cmd.SetOut(path)
	stdout, stderr, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d: %s", exitcode.Success, code, stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected 'ok', got %q", stdout)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected export file: %v", err)
	}
	if !strings.Contains(string(data), `"title": "Buy milk"`) {
		t.Errorf("unexpected export contents %q", data)
	}
}

func TestExportCommand_PDFNeedsOut(t *testing.T) {
	st := testutil.NewFakeStore()

	cmd := &commands.ExportCmd{}
	cmd.SetFormat("pdf")
	_, stderr, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: pdf export requires --out <file>\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestExportCommand_UnknownFormat(t *testing.T) {
	st := testutil.NewFakeStore()

	cmd := &commands.ExportCmd{}
	cmd.SetFormat("xml")
	_, stderr, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unknown format xml\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestImportCommand_Merge(t *testing.T) {
	st := testutil.NewFakeStore()
	st.Seed("existing", store.Low, false)

	path := filepath.Join(t.TempDir(), "import.json")
	data := `[{"id":"imp-1","title":"imported","priority":"High","completed":false,"created_at":"2026-01-02T15:00:00Z","completed_at":null}]`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := &commands.ImportCmd{}
	stdout, stderr, code := runCommand(t, cmd, st, []string{path}, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d: %s", exitcode.Success, code, stderr)
	}
	if stdout != "imported 1\n" {
		t.Errorf("expected 'imported 1', got %q", stdout)
	}
	if got := len(st.List()); got != 2 {
		t.Errorf("expected 2 tasks after merge, got %d", got)
	}
}

func TestImportCommand_Replace(t *testing.T) {
	st := testutil.NewFakeStore()
	st.Seed("existing", store.Low, false)

	path := filepath.Join(t.TempDir(), "import.json")
	data := `[{"id":"imp-1","title":"imported","priority":"High","completed":false,"created_at":"2026-01-02T15:00:00Z","completed_at":null}]`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := &commands.ImportCmd{}
	cmd.SetReplace(true)
	_, _, code := runCommand(t, cmd, st, []string{path}, true)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}

	tasks := st.List()
	if len(tasks) != 1 || tasks[0].ID != "imp-1" {
		t.Errorf("expected collection replaced, got %+v", tasks)
	}
}

func TestImportCommand_BadRecord(t *testing.T) {
	st := testutil.NewFakeStore()

	path := filepath.Join(t.TempDir(), "import.json")
	data := `[{"id":"imp-1","title":"","priority":"High","completed":false,"created_at":"2026-01-02T15:00:00Z","completed_at":null}]`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := &commands.ImportCmd{}
	_, stderr, code := runCommand(t, cmd, st, []string{path}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.Contains(stderr, "record 0") {
		t.Errorf("expected offending record named, got %q", stderr)
	}
	if len(st.List()) != 0 {
		t.Error("expected nothing imported")
	}
}

func TestImportCommand_UnparseableFile(t *testing.T) {
	st := testutil.NewFakeStore()

	path := filepath.Join(t.TempDir(), "import.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := &commands.ImportCmd{}
	_, _, code := runCommand(t, cmd, st, []string{path}, false)

	if code != exitcode.DataError {
		t.Errorf("expected exit code %d, got %d", exitcode.DataError, code)
	}
}

func TestImportCommand_MissingFile(t *testing.T) {
	st := testutil.NewFakeStore()

	cmd := &commands.ImportCmd{}
	_, _, code := runCommand(t, cmd, st, []string{filepath.Join(t.TempDir(), "nope.json")}, false)

	if code != exitcode.IOError {
		t.Errorf("expected exit code %d, got %d", exitcode.IOError, code)
	}
}

func TestImportCommand_NoArgs(t *testing.T) {
	st := testutil.NewFakeStore()

	cmd := &commands.ImportCmd{}
	_, stderr, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: import file required\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestReportCommand(t *testing.T) {
	st := testutil.NewFakeStore()
	st.Seed("Buy milk", store.Low, false)
	path := filepath.Join(t.TempDir(), "report.pdf")

	cmd := &commands.ReportCmd{}
	stdout, stderr, code := runCommand(t, cmd, st, []string{path}, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d: %s", exitcode.Success, code, stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected 'ok', got %q", stdout)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected report file: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF-") {
		t.Error("expected PDF output")
	}
}

func TestReportCommand_NoArgs(t *testing.T) {
	st := testutil.NewFakeStore()

	cmd := &commands.ReportCmd{}
	_, stderr, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: output file required\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}
