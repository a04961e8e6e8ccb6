// Package installer scaffolds Zeme blog projects from embedded templates.
package installer

import "embed"

// Templates contains all scaffold template files.
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS
