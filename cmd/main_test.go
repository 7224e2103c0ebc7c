package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func envOf(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func writePoem(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "poem.txt")
	body := "Rust:\nsafe, fast, productive.\nPick three.\nTrust me.\nDuct tape.\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write poem: %v", err)
	}
	return path
}

func TestRunSuccess(t *testing.T) {
	path := writePoem(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"minigrep", "duct", path}, envOf(nil), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	want := "Searching for duct in " + path + "\nsafe, fast, productive.\n"
	if stdout.String() != want {
		t.Fatalf("Expected: %q, got: %q", want, stdout.String())
	}
	if stderr.Len() != 0 {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
}

func TestRunIgnoreCaseEnv(t *testing.T) {
	path := writePoem(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"minigrep", "RuSt", path}, envOf(map[string]string{"IGNORE_CASE": ""}), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	want := "Searching for RuSt in " + path + "\nRust:\nTrust me.\n"
	if stdout.String() != want {
		t.Fatalf("Expected: %q, got: %q", want, stdout.String())
	}
}

func TestRunNoMatchesExitsZero(t *testing.T) {
	path := writePoem(t)
	var stdout, stderr bytes.Buffer

	if code := run([]string{"minigrep", "zzz", path}, envOf(nil), &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if stdout.String() != "Searching for zzz in "+path+"\n" {
		t.Fatalf("unexpected stdout: %q", stdout.String())
	}
}

func TestRunArgumentError(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"minigrep", "hello"}, envOf(nil), &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if stdout.Len() != 0 {
		t.Fatalf("nothing must reach stdout before arguments parse, got %q", stdout.String())
	}
	want := "Problem parsing arguments: not enough arguments: missing file path\n"
	if stderr.String() != want {
		t.Fatalf("Expected: %q, got: %q", want, stderr.String())
	}
}

func TestRunMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unknownfile.txt")
	var stdout, stderr bytes.Buffer

	code := run([]string{"minigrep", "hello", path}, envOf(nil), &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	// only the banner
	if stdout.String() != "Searching for hello in "+path+"\n" {
		t.Fatalf("unexpected stdout: %q", stdout.String())
	}
	if !strings.HasPrefix(stderr.String(), "Application error: ") {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
}

func TestRunBadSettings(t *testing.T) {
	path := writePoem(t)
	settings := filepath.Join(t.TempDir(), "minigrep.yaml")
	if err := os.WriteFile(settings, []byte("log_level: loud\n"), 0644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	var stdout, stderr bytes.Buffer

	code := run([]string{"minigrep", "duct", path}, envOf(map[string]string{"MINIGREP_CONFIG": settings}), &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.HasPrefix(stderr.String(), "Application error: ") {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
}
