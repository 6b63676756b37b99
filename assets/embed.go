// Package assets embeds the site content document and static files.
package assets

import "embed"

// ContentFile is the embedded content document used when no path is configured.
const ContentFile = "content.json"

//go:embed content.json static
var FS embed.FS
