// Package yamlutil decodes YAML config documents so the rest of the module
// never imports the YAML library directly.
package yamlutil

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxDocumentSize caps config documents. Grocery configs are a few hundred bytes.
const MaxDocumentSize = 64 << 10

// Sentinel errors for YAML decoding.
var (
	ErrEmptyDocument    = errors.New("empty YAML document")
	ErrNilTarget        = errors.New("nil decode target")
	ErrDocumentTooLarge = errors.New("YAML document too large")
	ErrDecode           = errors.New("invalid YAML")
)

// UnmarshalStrict decodes data into v and rejects keys v has no field for,
// which catches misspelled config keys. Decode errors name the line and
// column of the offending token.
func UnmarshalStrict(data []byte, v any) error {
	switch {
	case v == nil:
		return ErrNilTarget
	case len(bytes.TrimSpace(data)) == 0:
		return ErrEmptyDocument
	case len(data) > MaxDocumentSize:
		return fmt.Errorf("%w: %d bytes (max %d)", ErrDocumentTooLarge, len(data), MaxDocumentSize)
	}

	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("%w: %s", ErrDecode, yaml.FormatError(err, false, false))
	}
	return nil
}
