// Package points embeds the SQL migrations for the items, points and
// point_items tables.
package points

import "embed"

// FS holds every migration file. Tables are created with IF NOT EXISTS so the
// migrations also apply cleanly over a schema created by hand.
//
//go:embed *.sql
var FS embed.FS
