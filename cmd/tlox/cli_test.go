package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// buildBinary compiles the tlox binary into a temp directory owned by the
// calling test; each test that calls it builds its own copy.
func buildBinary(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	binary := filepath.Join(dir, "tlox")

	cmd := exec.Command("go", "build", "-o", binary, ".")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build tlox: %v\n%s", err, out)
	}
	return binary
}

func TestCLINestedScopesFixture(t *testing.T) {
	binary := buildBinary(t)

	cmd := exec.Command(binary, "run", "../../testdata/global_scopes.lox")
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, output)
	}

	snaps.MatchSnapshot(t, string(output))
}

func TestCLIRecursiveFibonacciFixture(t *testing.T) {
	binary := buildBinary(t)

	cmd := exec.Command(binary, "run", "../../testdata/fibonacci.lox")
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, output)
	}

	want := "55\n"
	if string(output) != want {
		t.Errorf("got %q, want %q", output, want)
	}
}

func TestCLIExitCodeForParseError(t *testing.T) {
	binary := buildBinary(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "bad_if.lox")
	writeFile(t, file, "if true == !nil { print \"Not none\"; }\n")

	cmd := exec.Command(binary, "run", file)
	output, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected an ExitError, got %v (output=%s)", err, output)
	}
	if exitErr.ExitCode() != 65 {
		t.Errorf("got exit code %d, want 65", exitErr.ExitCode())
	}
}

func TestCLIExitCodeForRuntimeError(t *testing.T) {
	binary := buildBinary(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "undefined.lox")
	writeFile(t, file, "for (var i = 0; i < 3; i = i + 1) { print i; }\nprint i;\n")

	cmd := exec.Command(binary, "run", file)
	_, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected an ExitError")
	}
	if exitErr.ExitCode() != 70 {
		t.Errorf("got exit code %d, want 70", exitErr.ExitCode())
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
