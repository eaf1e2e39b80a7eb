// Package assets provides the site stylesheet and share-card fonts.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (default stylesheet)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// No font is embedded: share cards fall back to the drawing backend's own
// face unless a font is found under the custom base path.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css           # Stylesheets (e.g., index.css)
//	└── fonts/
//	    └── {file}               # .ttf, .otf or .ttc font files
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
