package main

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// resetFlags restores every global flag to its default for one test.
func resetFlags(t *testing.T) {
	t.Helper()
	verbose, quiet, jsonOut = false, false, false
	arenaName, growBy, count, seed = "heap", 64, 10_000, 1
	insertAt, searchLinear = "front", false
	withMetrics = false
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	done := make(chan []byte)
	go func() {
		var b bytes.Buffer
		_, _ = b.ReadFrom(r)
		done <- b.Bytes()
	}()

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout
	return string(<-done), fnErr
}

// runJSON runs fn with --json and decodes the single result it prints.
func runJSON(t *testing.T, fn func() error) Result {
	t.Helper()
	jsonOut = true
	out, err := captureOutput(t, fn)
	require.NoError(t, err, out)

	var res Result
	require.NoError(t, json.Unmarshal([]byte(out), &res), out)
	return res
}
