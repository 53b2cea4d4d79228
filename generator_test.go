package grocerylist

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestGenerator(t *testing.T, opts ...Option) *Generator {
	t.Helper()
	g, err := NewGenerator(append([]Option{WithClock(fixedNow)}, opts...)...)
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}
	return g
}

func TestGenerateFile(t *testing.T) {
	t.Parallel()

	t.Run("single mode next to input", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeInput(t, dir, "groceries.txt", "apples\nbread\nmilk\neggs\n")

		res, err := newTestGenerator(t).GenerateFile(context.Background(), Job{InputPath: input})
		if err != nil {
			t.Fatalf("GenerateFile() error = %v", err)
		}
		wantPath := filepath.Join(dir, "groceries.tex")
		if res.OutputPath != wantPath {
			t.Errorf("OutputPath = %q, want %q", res.OutputPath, wantPath)
		}
		if res.ItemCount != 4 {
			t.Errorf("ItemCount = %d, want 4", res.ItemCount)
		}
		if res.Buckets.Mode != ModeSingle {
			t.Errorf("Mode = %q, want single", res.Buckets.Mode)
		}
		data, err := os.ReadFile(wantPath)
		if err != nil {
			t.Fatal(err)
		}
		assertInOrder(t, string(data), "20240305", `\item[] apples`, `\item[] bread`, `\item[] milk`, `\item[] eggs`)
	})

	t.Run("split-two with names", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeInput(t, dir, "list.csv", "apples\nbread\nmilk\neggs\n")

		res, err := newTestGenerator(t).GenerateFile(context.Background(), Job{
			InputPath: input,
			Mode:      ModeSplitTwo,
			Names:     Names{First: "Alice", Second: "Bob"},
		})
		if err != nil {
			t.Fatalf("GenerateFile() error = %v", err)
		}
		if res.OutputPath != filepath.Join(dir, "list.tex") {
			t.Errorf("OutputPath = %q, want list.tex", res.OutputPath)
		}
		alice, _ := res.Buckets.Get("Alice")
		if diff := cmp.Diff([]string{"apples", "milk"}, alice.Items); diff != "" {
			t.Errorf("Alice mismatch (-want +got):\n%s", diff)
		}
		data, _ := os.ReadFile(res.OutputPath)
		assertInOrder(t, string(data), "\nAll\n", `\newpage`, "\nAlice\n", `\newpage`, "\nBob\n")
	})

	t.Run("skip blank", func(t *testing.T) {
		t.Parallel()

		input := writeInput(t, t.TempDir(), "list.txt", "apples\n\n  \nbread\n")
		res, err := newTestGenerator(t).GenerateFile(context.Background(), Job{InputPath: input, SkipBlank: true})
		if err != nil {
			t.Fatal(err)
		}
		if res.ItemCount != 2 {
			t.Errorf("ItemCount = %d, want 2", res.ItemCount)
		}
	})

	t.Run("blank lines kept by default", func(t *testing.T) {
		t.Parallel()

		input := writeInput(t, t.TempDir(), "list.txt", "apples\n\nbread\n")
		res, err := newTestGenerator(t).GenerateFile(context.Background(), Job{InputPath: input})
		if err != nil {
			t.Fatal(err)
		}
		if res.ItemCount != 3 {
			t.Errorf("ItemCount = %d, want 3", res.ItemCount)
		}
	})

	t.Run("markdown format", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeInput(t, dir, "list.txt", "apples\n")
		res, err := newTestGenerator(t).GenerateFile(context.Background(), Job{
			InputPath: input,
			Render:    RenderOptions{Format: FormatMarkdown},
		})
		if err != nil {
			t.Fatal(err)
		}
		if filepath.Ext(res.OutputPath) != ".md" {
			t.Errorf("OutputPath = %q, want .md", res.OutputPath)
		}
	})

	t.Run("explicit output path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeInput(t, dir, "list.txt", "apples\n")
		out := filepath.Join(dir, "custom.tex")
		res, err := newTestGenerator(t).GenerateFile(context.Background(), Job{InputPath: input, OutputPath: out})
		if err != nil {
			t.Fatal(err)
		}
		if res.OutputPath != out {
			t.Errorf("OutputPath = %q, want %q", res.OutputPath, out)
		}
	})
}

func TestGenerateFile_Errors(t *testing.T) {
	t.Parallel()

	t.Run("input not found writes nothing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := filepath.Join(dir, "missing.txt")
		_, err := newTestGenerator(t).GenerateFile(context.Background(), Job{InputPath: input})
		if !errors.Is(err, ErrInputNotFound) {
			t.Fatalf("error = %v, want ErrInputNotFound", err)
		}
		if _, err := os.Stat(filepath.Join(dir, "missing.tex")); !os.IsNotExist(err) {
			t.Error("output created for missing input")
		}
	})

	t.Run("invalid mode writes nothing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeInput(t, dir, "list.txt", "apples\n")
		_, err := newTestGenerator(t).GenerateFile(context.Background(), Job{InputPath: input, Mode: "triple"})
		if !errors.Is(err, ErrInvalidMode) {
			t.Fatalf("error = %v, want ErrInvalidMode", err)
		}
		if _, err := os.Stat(filepath.Join(dir, "list.tex")); !os.IsNotExist(err) {
			t.Error("output created despite invalid mode")
		}
	})

	t.Run("output is input", func(t *testing.T) {
		t.Parallel()

		input := writeInput(t, t.TempDir(), "list.tex", "apples\n")
		_, err := newTestGenerator(t).GenerateFile(context.Background(), Job{InputPath: input})
		if !errors.Is(err, ErrOutputIsInput) {
			t.Fatalf("error = %v, want ErrOutputIsInput", err)
		}
		data, _ := os.ReadFile(input)
		if string(data) != "apples\n" {
			t.Error("input file was modified")
		}
	})

	t.Run("output not writable", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeInput(t, dir, "list.txt", "apples\n")
		out := filepath.Join(dir, "missing-dir", "list.tex")
		_, err := newTestGenerator(t).GenerateFile(context.Background(), Job{InputPath: input, OutputPath: out})
		if !errors.Is(err, ErrOutputNotWritable) {
			t.Errorf("error = %v, want ErrOutputNotWritable", err)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		input := writeInput(t, t.TempDir(), "list.txt", "apples\n")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := newTestGenerator(t).GenerateFile(ctx, Job{InputPath: input})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}

func TestNewGenerator_Options(t *testing.T) {
	t.Parallel()

	t.Run("unknown template set", func(t *testing.T) {
		t.Parallel()

		_, err := NewGenerator(WithTemplateSet("nope"))
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("error = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("invalid asset path", func(t *testing.T) {
		t.Parallel()

		_, err := NewGenerator(WithAssetPath(filepath.Join(t.TempDir(), "missing")))
		if !errors.Is(err, ErrInvalidAssetPath) {
			t.Errorf("error = %v, want ErrInvalidAssetPath", err)
		}
	})

	t.Run("logger receives debug entries", func(t *testing.T) {
		t.Parallel()

		core, logs := observer.New(zap.DebugLevel)
		g := newTestGenerator(t, WithLogger(zap.New(core)))

		input := writeInput(t, t.TempDir(), "list.txt", "apples\nbread\n")
		if _, err := g.GenerateFile(context.Background(), Job{InputPath: input}); err != nil {
			t.Fatal(err)
		}

		entries := logs.FilterMessage("wrote document").All()
		if len(entries) != 1 {
			t.Fatalf("wrote document entries = %d, want 1", len(entries))
		}
		fields := entries[0].ContextMap()
		if !strings.HasSuffix(fields["input"].(string), "list.txt") {
			t.Errorf("input field = %v", fields["input"])
		}
		if fields["mode"] != "single" {
			t.Errorf("mode field = %v, want single", fields["mode"])
		}
	})

	t.Run("nil options keep defaults", func(t *testing.T) {
		t.Parallel()

		if _, err := NewGenerator(WithLogger(nil), WithClock(nil), WithTemplateSet("")); err != nil {
			t.Errorf("NewGenerator() error = %v", err)
		}
	})
}
