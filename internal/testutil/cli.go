package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"
)

// CaptureOutput captures stdout during function execution. Commands
// print with fmt, so swapping os.Stdout is enough to see everything.
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	// Save original stdout
	oldStdout := os.Stdout

	// Create pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	// Drain the pipe while fn runs so a long board listing can't fill it
	outC := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	// Close writer and restore stdout, also when fn stops the test early
	restored := false
	restore := func() {
		if restored {
			return
		}
		restored = true
		_ = w.Close()
		os.Stdout = oldStdout
	}
	defer restore()

	fn()
	restore()

	return <-outC
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}
	return result
}

// JSONObject returns the object stored under key in a --json result,
// e.g. "board" from `board show --json`
func JSONObject(t *testing.T, output, key string) map[string]any {
	t.Helper()

	obj, ok := ParseJSON(t, output)[key].(map[string]any)
	if !ok {
		t.Fatalf("JSON output has no %q object\nOutput: %s", key, output)
	}
	return obj
}

// JSONList returns the array stored under key in a --json result,
// e.g. "tickets" from `ticket list --json`
func JSONList(t *testing.T, output, key string) []any {
	t.Helper()

	list, ok := ParseJSON(t, output)[key].([]any)
	if !ok {
		t.Fatalf("JSON output has no %q list\nOutput: %s", key, output)
	}
	return list
}
