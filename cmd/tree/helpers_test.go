package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// runCLI runs the command with a fresh root command and captured streams.
func runCLI(t *testing.T, args ...string) (string, string, int) {
	t.Helper()

	origOut, origErr, origCmd := stdout, stderr, rootCmd
	t.Cleanup(func() {
		stdout, stderr, rootCmd = origOut, origErr, origCmd
		verbose = false
	})

	var out, errOut bytes.Buffer
	stdout, stderr = &out, &errOut
	verbose = false
	rootCmd = newRootCmd()

	code := run(args)
	return out.String(), errOut.String(), code
}

// mkTree creates files (and their parent directories) under a temp root.
// Entries ending in "/" are created as empty directories.
func mkTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		if strings.HasSuffix(f, "/") {
			require.NoError(t, os.MkdirAll(p, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}
	return root
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}
