package docs

import "embed"

// FS contains long-form Markdown docs bundled with the dsq binary.
//
//go:embed index.yaml *.md
var FS embed.FS
