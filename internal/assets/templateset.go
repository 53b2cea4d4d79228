package assets

import "fmt"

// TemplateSet holds the templates for one document look.
type TemplateSet struct {
	Name     string // Identifier (set name)
	Document string // LaTeX document template source
}

// DefaultTemplateSetName is the name of the built-in template set.
const DefaultTemplateSetName = "default"

// documentFile is the template file every set directory must contain.
const documentFile = "document.tex"

// maxSetNameLength bounds template set names.
const maxSetNameLength = 64

// ValidateAssetName checks that name can be used as a template set directory:
// 1 to 64 ASCII letters, digits, '-' or '_'.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > maxSetNameLength {
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidAssetName, maxSetNameLength)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
		}
	}
	return nil
}
