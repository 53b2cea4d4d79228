package grocerylist

import "errors"

// Sentinel errors for library operations.
var (
	// Input errors.
	ErrInputNotFound    = errors.New("input file not found")
	ErrInputNotReadable = errors.New("input file not readable")
	ErrInputDecode      = errors.New("input is not valid text")

	// Output errors.
	ErrOutputNotWritable = errors.New("output file not writable")
	ErrOutputIO          = errors.New("output write failed")
	ErrOutputIsInput     = errors.New("output path is the input file")

	// Validation errors.
	ErrInvalidMode   = errors.New("invalid mode")
	ErrInvalidNames  = errors.New("invalid bucket names")
	ErrInvalidFormat = errors.New("invalid output format")
	ErrInvalidLayout = errors.New("invalid document layout")

	// Asset loading errors.
	ErrTemplateNotFound = errors.New("template not found")
	ErrTemplateParse    = errors.New("invalid document template")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
