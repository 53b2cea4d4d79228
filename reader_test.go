package grocerylist

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadItems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"lf terminated", "apples\nbread\n", []string{"apples", "bread"}},
		{"no final terminator", "apples\nbread", []string{"apples", "bread"}},
		{"crlf", "apples\r\nbread\r\n", []string{"apples", "bread"}},
		{"blank lines preserved", "apples\n\nbread\n", []string{"apples", "", "bread"}},
		{"whitespace preserved", "  sugar \n", []string{"  sugar "}},
		{"duplicates kept", "milk\nmilk\n", []string{"milk", "milk"}},
		{"empty file", "", []string{}},
		{"utf8 bom", "\xEF\xBB\xBFtea\n", []string{"tea"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeInput(t, t.TempDir(), "list.txt", tt.content)
			got, err := ReadItems(path)
			if err != nil {
				t.Fatalf("ReadItems() error = %v", err)
			}
			if got == nil {
				t.Fatal("ReadItems() returned nil slice")
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ReadItems() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadItems_Errors(t *testing.T) {
	t.Parallel()

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing.txt")
		_, err := ReadItems(path)
		if !errors.Is(err, ErrInputNotFound) {
			t.Fatalf("error = %v, want ErrInputNotFound", err)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("error = %v, want wrapped fs.ErrNotExist", err)
		}
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, err := ReadItems(t.TempDir())
		if !errors.Is(err, ErrInputNotReadable) {
			t.Errorf("error = %v, want ErrInputNotReadable", err)
		}
	})

	t.Run("permission denied", func(t *testing.T) {
		t.Parallel()
		if runtime.GOOS == "windows" || os.Geteuid() == 0 {
			t.Skip("permission bits not enforced")
		}

		path := writeInput(t, t.TempDir(), "secret.txt", "milk\n")
		if err := os.Chmod(path, 0o000); err != nil {
			t.Fatal(err)
		}
		_, err := ReadItems(path)
		if !errors.Is(err, ErrInputNotReadable) {
			t.Errorf("error = %v, want ErrInputNotReadable", err)
		}
	})

	t.Run("invalid utf8", func(t *testing.T) {
		t.Parallel()

		path := writeInput(t, t.TempDir(), "latin1.txt", "caf\xE9\n")
		_, err := ReadItems(path)
		if !errors.Is(err, ErrInputDecode) {
			t.Errorf("error = %v, want ErrInputDecode", err)
		}
	})
}

func TestParseItems_UTF16(t *testing.T) {
	t.Parallel()

	// "a\r\nb" in UTF-16LE with BOM
	data := []byte{0xFF, 0xFE, 'a', 0, '\r', 0, '\n', 0, 'b', 0}
	got, err := ParseItems(data)
	if err != nil {
		t.Fatalf("ParseItems() error = %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Errorf("ParseItems() mismatch (-want +got):\n%s", diff)
	}
}
