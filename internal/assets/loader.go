package assets

import "errors"

// Sentinel errors for template loading.
var (
	ErrTemplateSetNotFound   = errors.New("template set not found")
	ErrIncompleteTemplateSet = errors.New("template set has no " + documentFile)
	ErrInvalidAssetName      = errors.New("invalid template set name")
	ErrInvalidBasePath       = errors.New("asset path is not a directory")
	ErrAssetRead             = errors.New("failed to read template")
	ErrPathTraversal         = errors.New("template path escapes the asset directory")
)

// AssetLoader defines the contract for loading document template sets.
type AssetLoader interface {
	// LoadTemplateSet loads a template set by name.
	// Returns ErrTemplateSetNotFound if the set doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplateSet(name string) (*TemplateSet, error)

	// TemplateSetNames lists the sets this loader can serve, sorted.
	TemplateSetNames() []string
}
