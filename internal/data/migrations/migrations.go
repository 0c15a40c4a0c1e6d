// Package migrations embeds the SQL files that create the books schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
