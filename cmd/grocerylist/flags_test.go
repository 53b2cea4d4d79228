package main

// Notes:
// - parseGenerateFlags: we test every flag group, short forms, positional
//   arguments interleaved with flags, and help/unknown flag errors.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	flag "github.com/spf13/pflag"
)

// ---------------------------------------------------------------------------
// TestParseGenerateFlags - Flag parsing
// ---------------------------------------------------------------------------

func TestParseGenerateFlags(t *testing.T) {
	t.Parallel()

	args := []string{
		"week.txt",
		"-o", "out",
		"-f", "md",
		"-w", "4",
		"--watch",
		"-c", "home",
		"-q",
		"-m", "split-two",
		"--names", "Alice,Bob",
		"--title", "Shopping",
		"--date", "auto:iso",
		"--font", "Lato",
		"--font-size", "11",
		"--columns", "3",
		"--skip-blank",
		"--raw",
		"--template", "compact",
		"--asset-path", "/assets",
		"extra.list",
	}

	got, positional, err := parseGenerateFlags(args, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseGenerateFlags() error = %v", err)
	}

	want := &generateFlags{
		common:   commonFlags{config: "home", quiet: true},
		output:   "out",
		format:   "md",
		workers:  4,
		watch:    true,
		split:    splitFlags{mode: "split-two", names: "Alice,Bob"},
		document: documentFlags{title: "Shopping", date: "auto:iso", font: "Lato", fontSize: 11, columns: 3},
		input:    inputFlags{skipBlank: true, raw: true},
		assets:   assetFlags{template: "compact", assetPath: "/assets"},
	}
	opts := cmp.AllowUnexported(generateFlags{}, commonFlags{}, splitFlags{}, documentFlags{}, inputFlags{}, assetFlags{})
	if diff := cmp.Diff(want, got, opts); diff != "" {
		t.Errorf("flags mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"week.txt", "extra.list"}, positional); diff != "" {
		t.Errorf("positional mismatch (-want +got):\n%s", diff)
	}
}

func TestParseGenerateFlags_Defaults(t *testing.T) {
	t.Parallel()

	got, positional, err := parseGenerateFlags([]string{"list.txt"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseGenerateFlags() error = %v", err)
	}
	opts := cmp.AllowUnexported(generateFlags{}, commonFlags{}, splitFlags{}, documentFlags{}, inputFlags{}, assetFlags{})
	if diff := cmp.Diff(&generateFlags{}, got, opts); diff != "" {
		t.Errorf("default flags mismatch (-want +got):\n%s", diff)
	}
	if len(positional) != 1 || positional[0] != "list.txt" {
		t.Errorf("positional = %v, want [list.txt]", positional)
	}
}

func TestParseGenerateFlags_Errors(t *testing.T) {
	t.Parallel()

	t.Run("help prints usage", func(t *testing.T) {
		t.Parallel()

		var usage bytes.Buffer
		_, _, err := parseGenerateFlags([]string{"--help"}, &usage)
		if !errors.Is(err, flag.ErrHelp) {
			t.Fatalf("error = %v, want flag.ErrHelp", err)
		}
		if !strings.Contains(usage.String(), "Usage: grocerylist generate") {
			t.Errorf("usage not printed, got %q", usage.String())
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseGenerateFlags([]string{"--nope"}, &bytes.Buffer{})
		if err == nil || errors.Is(err, flag.ErrHelp) {
			t.Fatalf("error = %v, want unknown flag error", err)
		}
	})

	t.Run("non-numeric columns", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseGenerateFlags([]string{"--columns", "two"}, &bytes.Buffer{})
		if err == nil {
			t.Fatal("expected error for non-numeric --columns")
		}
	})
}
