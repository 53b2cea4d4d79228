// Package assets provides the LaTeX document templates used to render
// grocery lists.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in sets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in template sets (default, compact)
// compiled into the binary.
//
// FilesystemLoader lets users supply their own sets from a directory, with
// path traversal protection and symlink resolution.
//
// AssetResolver tries the custom FilesystemLoader first and falls back to
// EmbeddedLoader when a set is not found there, so a directory can override
// one set while the others stay built in.
//
// # Directory Structure
//
//	{basePath}/
//	└── templates/
//	    └── {name}/
//	        └── document.tex     # text/template source, << >> delimiters
//
// # Security
//
// Set names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
