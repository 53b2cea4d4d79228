package grocerylist

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alnah/go-grocerylist/internal/pipeline"
)

// ReadItems reads the list at path and returns one item per line.
// Line terminators ("\n" or "\r\n") are stripped; whitespace inside a line
// is kept. A file ending with a terminator does not produce an extra empty
// item, and an empty file yields an empty non-nil slice.
func ReadItems(path string) ([]string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is user-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrInputNotFound, path, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrInputNotReadable, path, err)
	}

	items, err := ParseItems(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// ParseItems decodes data and splits it into items the same way ReadItems does.
func ParseItems(data []byte) ([]string, error) {
	text, err := pipeline.DecodeText(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputDecode, err)
	}
	return pipeline.SplitLines(text), nil
}
