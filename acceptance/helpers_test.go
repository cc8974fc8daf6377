package acceptance_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// runPlint executes the plint binary and returns stdout, stderr, and exit code.
func runPlint(t *testing.T, dir string, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(plintBinary, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("failed to run plint: %v", err)
		}
	}
	return stdout.String(), stderr.String(), exitCode
}

// writeTemplate creates a template file with the given content and returns its name.
func writeTemplate(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	return name
}

// validTemplate contains every required section and a fenced example.
const validTemplate = `## Context
Inventory service prompt template.

## Task
Implement stock-level reconciliation.

## Requirements
- Reconcile hourly
- Depends on the warehouse feed

## Validation
Table-driven tests for success and error scenarios.

## Output Format
A single Go package.

## Security
Never log credentials.

` + "```go\nfunc Reconcile() {}\n```\n"
