// Package lockerpanel embeds the panel's templates and static files for
// production builds. Dev mode reads both from disk instead.
package lockerpanel

import "embed"

//go:embed all:frontend/static
var StaticFS embed.FS

//go:embed all:frontend/templates
var TemplateFS embed.FS
