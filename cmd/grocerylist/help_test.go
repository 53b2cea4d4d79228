package main

// Notes:
// - printUsage, printGenerateUsage, runHelp: we test that each topic prints
//   its usage and that unknown topics are reported.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunHelp - Help topics
// ---------------------------------------------------------------------------

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantStdout string
		wantStderr string
	}{
		{"no topic", nil, "Commands:", ""},
		{"generate", []string{"generate"}, "--mode <s>", ""},
		{"version", []string{"version"}, "grocerylist version", ""},
		{"unknown", []string{"frobnicate"}, "", "frobnicate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := newTestEnv()
			runHelp(tt.args, env)

			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want it to contain %q", stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestPrintGenerateUsage_ListsEveryFlag(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printGenerateUsage(&buf)

	for _, flag := range []string{
		"--output", "--format", "--config", "--workers", "--watch", "--skip-blank", "--raw",
		"--mode", "--names", "--title", "--date", "--font", "--font-size", "--columns",
		"--template", "--asset-path", "--quiet", "--verbose",
	} {
		if !strings.Contains(buf.String(), flag) {
			t.Errorf("generate usage missing %s", flag)
		}
	}
}
