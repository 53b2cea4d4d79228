package hints

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestForInputNotFound_SuggestsExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "groceries.txt"), []byte("milk\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	hint := ForInputNotFound(filepath.Join(dir, "groceries"))

	if !strings.Contains(hint, "did you mean") {
		t.Errorf("hint = %q, want a suggestion", hint)
	}
	if !strings.Contains(hint, "groceries.txt") {
		t.Errorf("hint = %q, want the .txt sibling", hint)
	}
}

func TestForInputNotFound_Generic(t *testing.T) {
	t.Parallel()

	hint := ForInputNotFound(filepath.Join(t.TempDir(), "nothing.txt"))

	if !strings.HasPrefix(hint, "\n  hint: ") {
		t.Errorf("hint = %q, want hint prefix", hint)
	}
	if !strings.Contains(hint, "one item per line") {
		t.Errorf("hint = %q, want format reminder", hint)
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		searched []string
		want     string
	}{
		{
			name:     "suggests user config path",
			searched: []string{"home.yaml", "home.yml", "/home/u/.config/go-grocerylist/home.yaml"},
			want:     "or create /home/u/.config/go-grocerylist/home.yaml",
		},
		{
			name:     "flag only without user path",
			searched: []string{"home.yaml"},
			want:     "use --config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if hint := ForConfigNotFound(tt.searched); !strings.Contains(hint, tt.want) {
				t.Errorf("ForConfigNotFound() = %q, want substring %q", hint, tt.want)
			}
		})
	}
}

func TestForTemplateNotFound(t *testing.T) {
	t.Parallel()

	if hint := ForTemplateNotFound(nil); hint != "" {
		t.Errorf("ForTemplateNotFound(nil) = %q, want empty", hint)
	}
	hint := ForTemplateNotFound([]string{"compact", "default"})
	if !strings.Contains(hint, "available: compact, default") {
		t.Errorf("ForTemplateNotFound() = %q", hint)
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	for name, hint := range map[string]string{
		"decode":    ForInputDecode(),
		"outputDir": ForOutputDirectory(),
		"sameFile":  ForOutputIsInput(),
		"mode":      ForInvalidMode([]string{"single", "split-two"}),
	} {
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("%s hint = %q, want hint prefix", name, hint)
		}
	}
}
