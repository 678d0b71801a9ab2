// Package gymkit carries the embedded bundled data consumed at startup.
package gymkit

import "embed"

// DataFS holds the bundled exercise catalog, workout catalog, and workout
// schedule. Binaries mount data/ via fs.Sub.
//
//go:embed data
var DataFS embed.FS
